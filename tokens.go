package parc

// Tokens is a cursor over a pre-lexed token slice. Offsets count tokens.
// Slices handed out by NextSlice alias the backing slice.
type Tokens[T any] struct {
	streamCore
	src []T
}

// NewTokens wraps a complete token slice.
func NewTokens[T any](src []T) *Tokens[T] {
	return &Tokens[T]{src: src}
}

// NewPartialTokens wraps a token slice that is a prefix of a longer stream.
func NewPartialTokens[T any](src []T) *Tokens[T] {
	t := NewTokens(src)
	t.partial = true
	return t
}

// WithErrorFactory sets the factory used to build error content for
// failures on this cursor and returns the cursor for chaining.
func (t *Tokens[T]) WithErrorFactory(f ErrorFactory) *Tokens[T] {
	t.errs = f
	return t
}

func (t *Tokens[T]) EOFOffset() int {
	return len(t.src) - t.off
}

func (t *Tokens[T]) NextToken() (T, bool) {
	if t.off >= len(t.src) {
		var zero T
		return zero, false
	}
	tok := t.src[t.off]
	t.off++
	return tok, true
}

func (t *Tokens[T]) PeekToken() (T, bool) {
	if t.off >= len(t.src) {
		var zero T
		return zero, false
	}
	return t.src[t.off], true
}

func (t *Tokens[T]) NextSlice(n int) []T {
	end := t.off + n
	if end > len(t.src) {
		end = len(t.src)
	}
	s := t.src[t.off:end]
	t.off = end
	return s
}

func (t *Tokens[T]) OffsetFor(pred func(T) bool) (int, bool) {
	for i := t.off; i < len(t.src); i++ {
		if pred(t.src[i]) {
			return i - t.off, true
		}
	}
	return 0, false
}

func (t *Tokens[T]) OffsetAt(n int) (int, Needed, bool) {
	if rest := len(t.src) - t.off; rest < n {
		return 0, NeededSize(n - rest), false
	}
	return n, Needed{}, true
}
