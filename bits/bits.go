// Package bits provides sub-byte parsing: a bit-granular cursor over a
// byte buffer and parsers consuming runs of bits.
package bits

import (
	"github.com/dhamidi/parc"
)

// Stream is a cursor whose offset units are bits, most significant bit
// first within each byte. It implements parc.Input and yields individual
// bits (0 or 1) as tokens.
type Stream struct {
	data    []byte
	off     int // in bits
	partial bool
	errs    parc.ErrorFactory
}

var _ parc.TokenStream[uint8] = (*Stream)(nil)

// New wraps a complete buffer.
func New(data []byte) *Stream {
	return &Stream{data: data}
}

// NewPartial wraps a buffer that is a prefix of a longer stream.
func NewPartial(data []byte) *Stream {
	s := New(data)
	s.partial = true
	return s
}

// WithErrorFactory sets the factory used to build error content for
// failures on this cursor and returns the cursor for chaining.
func (s *Stream) WithErrorFactory(f parc.ErrorFactory) *Stream {
	s.errs = f
	return s
}

func (s *Stream) EOFOffset() int {
	return len(s.data)*8 - s.off
}

func (s *Stream) Offset() int {
	return s.off
}

func (s *Stream) IsPartial() bool {
	return s.partial
}

func (s *Stream) Checkpoint() parc.Checkpoint {
	return parc.NewCheckpoint(s.off)
}

func (s *Stream) Reset(cp parc.Checkpoint) {
	s.off = cp.Offset()
}

func (s *Stream) OffsetAt(n int) (int, parc.Needed, bool) {
	if rest := s.EOFOffset(); rest < n {
		return 0, parc.NeededSize(n - rest), false
	}
	return n, parc.Needed{}, true
}

func (s *Stream) NewError(kind parc.ErrorKind) parc.ParseError {
	if s.errs != nil {
		return s.errs(s.off, kind)
	}
	return parc.NewContextError(s.off, kind)
}

func (s *Stream) bitAt(off int) uint8 {
	b := s.data[off/8]
	return (b >> (7 - off%8)) & 1
}

func (s *Stream) NextToken() (uint8, bool) {
	if s.EOFOffset() == 0 {
		return 0, false
	}
	bit := s.bitAt(s.off)
	s.off++
	return bit, true
}

func (s *Stream) PeekToken() (uint8, bool) {
	if s.EOFOffset() == 0 {
		return 0, false
	}
	return s.bitAt(s.off), true
}

func (s *Stream) OffsetFor(pred func(uint8) bool) (int, bool) {
	for off := s.off; off < len(s.data)*8; off++ {
		if pred(s.bitAt(off)) {
			return off - s.off, true
		}
	}
	return 0, false
}

// Take consumes count bits, most significant first, into a uint64.
// count must be between 0 and 64.
func Take(count int) parc.Parser[uint64] {
	if count < 0 || count > 64 {
		panic("bits: Take count must be between 0 and 64")
	}
	return func(in parc.Input) (uint64, *parc.ErrMode) {
		s, ok := in.(*Stream)
		if !ok {
			panic("bits: input is not a bits.Stream")
		}
		if rest := s.EOFOffset(); rest < count {
			if s.partial {
				return 0, parc.Incomplete(parc.NeededSize(count - rest))
			}
			return 0, parc.Backtrack(in, parc.KindSlice)
		}
		var v uint64
		for i := 0; i < count; i++ {
			bit, _ := s.NextToken()
			v = v<<1 | uint64(bit)
		}
		return v, nil
	}
}

// Bool consumes one bit as a boolean.
func Bool() parc.Parser[bool] {
	return parc.Map(Take(1), func(v uint64) bool { return v != 0 })
}
