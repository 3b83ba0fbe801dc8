// Package binary provides fixed-width number decoders over byte cursors.
package binary

import (
	"encoding/binary"

	"github.com/dhamidi/parc"
)

// U8 consumes one byte.
func U8() parc.Parser[uint8] {
	return parc.Any[byte]()
}

// I8 consumes one byte as a signed integer.
func I8() parc.Parser[int8] {
	return parc.Map(parc.Any[byte](), func(b byte) int8 { return int8(b) })
}

// BEU16 consumes two bytes as a big-endian unsigned integer.
func BEU16() parc.Parser[uint16] {
	return parc.Map(parc.Take[[]byte](2), binary.BigEndian.Uint16)
}

// BEU32 consumes four bytes as a big-endian unsigned integer.
func BEU32() parc.Parser[uint32] {
	return parc.Map(parc.Take[[]byte](4), binary.BigEndian.Uint32)
}

// BEU64 consumes eight bytes as a big-endian unsigned integer.
func BEU64() parc.Parser[uint64] {
	return parc.Map(parc.Take[[]byte](8), binary.BigEndian.Uint64)
}

// LEU16 consumes two bytes as a little-endian unsigned integer.
func LEU16() parc.Parser[uint16] {
	return parc.Map(parc.Take[[]byte](2), binary.LittleEndian.Uint16)
}

// LEU32 consumes four bytes as a little-endian unsigned integer.
func LEU32() parc.Parser[uint32] {
	return parc.Map(parc.Take[[]byte](4), binary.LittleEndian.Uint32)
}

// LEU64 consumes eight bytes as a little-endian unsigned integer.
func LEU64() parc.Parser[uint64] {
	return parc.Map(parc.Take[[]byte](8), binary.LittleEndian.Uint64)
}

// BEI16 consumes two bytes as a big-endian signed integer.
func BEI16() parc.Parser[int16] {
	return parc.Map(BEU16(), func(v uint16) int16 { return int16(v) })
}

// BEI32 consumes four bytes as a big-endian signed integer.
func BEI32() parc.Parser[int32] {
	return parc.Map(BEU32(), func(v uint32) int32 { return int32(v) })
}

// BEI64 consumes eight bytes as a big-endian signed integer.
func BEI64() parc.Parser[int64] {
	return parc.Map(BEU64(), func(v uint64) int64 { return int64(v) })
}

// LEI16 consumes two bytes as a little-endian signed integer.
func LEI16() parc.Parser[int16] {
	return parc.Map(LEU16(), func(v uint16) int16 { return int16(v) })
}

// LEI32 consumes four bytes as a little-endian signed integer.
func LEI32() parc.Parser[int32] {
	return parc.Map(LEU32(), func(v uint32) int32 { return int32(v) })
}

// LEI64 consumes eight bytes as a little-endian signed integer.
func LEI64() parc.Parser[int64] {
	return parc.Map(LEU64(), func(v uint64) int64 { return int64(v) })
}

// LengthTake decodes a length with count and then consumes that many
// bytes, returning them as a view of the backing buffer.
func LengthTake[N ~uint8 | ~uint16 | ~uint32 | ~uint64](count parc.Parser[N]) parc.Parser[[]byte] {
	return func(in parc.Input) ([]byte, *parc.ErrMode) {
		n, err := count(in)
		if err != nil {
			return nil, err
		}
		return parc.Take[[]byte](int(n))(in)
	}
}
