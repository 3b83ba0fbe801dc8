package parc

import "unicode/utf8"

// Text is a cursor over string input. Tokens are runes; offsets are byte
// offsets into the string, so OffsetAt resolves rune counts to byte
// positions. Slices handed out by NextSlice share the backing string.
type Text struct {
	streamCore
	src string
}

var (
	_ TokenStream[rune]  = (*Text)(nil)
	_ SliceStream[string] = (*Text)(nil)
)

// NewText wraps a complete string.
func NewText(src string) *Text {
	return &Text{src: src}
}

// NewPartialText wraps a string that is a prefix of a longer stream:
// under-buffered reads answer Incomplete rather than Backtrack.
func NewPartialText(src string) *Text {
	t := NewText(src)
	t.partial = true
	return t
}

// WithErrorFactory sets the factory used to build error content for
// failures on this cursor and returns the cursor for chaining.
func (t *Text) WithErrorFactory(f ErrorFactory) *Text {
	t.errs = f
	return t
}

func (t *Text) EOFOffset() int {
	return len(t.src) - t.off
}

func (t *Text) NextToken() (rune, bool) {
	if t.off >= len(t.src) {
		return 0, false
	}
	r, size := utf8.DecodeRuneInString(t.src[t.off:])
	t.off += size
	return r, true
}

func (t *Text) PeekToken() (rune, bool) {
	if t.off >= len(t.src) {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(t.src[t.off:])
	return r, true
}

func (t *Text) NextSlice(n int) string {
	end := t.off + n
	if end > len(t.src) {
		end = len(t.src)
	}
	s := t.src[t.off:end]
	t.off = end
	return s
}

func (t *Text) OffsetFor(pred func(rune) bool) (int, bool) {
	for i, r := range t.src[t.off:] {
		if pred(r) {
			return i, true
		}
	}
	return 0, false
}

func (t *Text) OffsetAt(n int) (int, Needed, bool) {
	count := 0
	for i := range t.src[t.off:] {
		if count == n {
			return i, Needed{}, true
		}
		count++
	}
	if count == n {
		return len(t.src) - t.off, Needed{}, true
	}
	return 0, NeededSize(n - count), false
}
