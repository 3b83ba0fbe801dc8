package parc

// Bytes is a cursor over []byte input. Tokens are single bytes and offsets
// count bytes, so OffsetAt is a plain bounds check. Slices handed out by
// NextSlice alias the backing buffer.
type Bytes struct {
	streamCore
	src []byte
}

var (
	_ TokenStream[byte]   = (*Bytes)(nil)
	_ SliceStream[[]byte] = (*Bytes)(nil)
)

// NewBytes wraps a complete buffer.
func NewBytes(src []byte) *Bytes {
	return &Bytes{src: src}
}

// NewPartialBytes wraps a buffer that is a prefix of a longer stream.
func NewPartialBytes(src []byte) *Bytes {
	b := NewBytes(src)
	b.partial = true
	return b
}

// WithErrorFactory sets the factory used to build error content for
// failures on this cursor and returns the cursor for chaining.
func (b *Bytes) WithErrorFactory(f ErrorFactory) *Bytes {
	b.errs = f
	return b
}

func (b *Bytes) EOFOffset() int {
	return len(b.src) - b.off
}

func (b *Bytes) NextToken() (byte, bool) {
	if b.off >= len(b.src) {
		return 0, false
	}
	tok := b.src[b.off]
	b.off++
	return tok, true
}

func (b *Bytes) PeekToken() (byte, bool) {
	if b.off >= len(b.src) {
		return 0, false
	}
	return b.src[b.off], true
}

func (b *Bytes) NextSlice(n int) []byte {
	end := b.off + n
	if end > len(b.src) {
		end = len(b.src)
	}
	s := b.src[b.off:end]
	b.off = end
	return s
}

func (b *Bytes) OffsetFor(pred func(byte) bool) (int, bool) {
	for i := b.off; i < len(b.src); i++ {
		if pred(b.src[i]) {
			return i - b.off, true
		}
	}
	return 0, false
}

func (b *Bytes) OffsetAt(n int) (int, Needed, bool) {
	if rest := len(b.src) - b.off; rest < n {
		return 0, NeededSize(n - rest), false
	}
	return n, Needed{}, true
}
