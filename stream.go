package parc

// Checkpoint is an opaque snapshot of a cursor's position. It is cheap to
// copy, never observes tokens itself, and is only valid against the cursor
// it was taken from.
type Checkpoint struct {
	off int
}

// NewCheckpoint builds a checkpoint for the given absolute offset. It is
// intended for types outside this package that implement [Input]; parser
// code should only obtain checkpoints from [Input.Checkpoint].
func NewCheckpoint(offset int) Checkpoint {
	return Checkpoint{off: offset}
}

// Offset reports the absolute offset the checkpoint restores to.
func (c Checkpoint) Offset() int {
	return c.off
}

// Input is the cursor surface every combinator needs: remaining length,
// position bookkeeping, O(1) checkpoint/rewind, the partial/complete flag
// and an error factory bound to the stream. Token- and slice-level access
// live in [TokenStream] and [SliceStream].
//
// Implementations are pointer types mutated in place by consumption calls.
// No operation panics on exhaustion of a complete cursor.
type Input interface {
	// EOFOffset returns the number of offset units remaining in the
	// buffer. Offset units are bytes for Text and Bytes, tokens for
	// Tokens.
	EOFOffset() int

	// Offset returns the absolute position from the start of the buffer.
	// It never decreases except through Reset.
	Offset() int

	// IsPartial reports whether more input may still arrive after the
	// buffered data. Parsers answer under-buffered reads on a partial
	// cursor with Incomplete instead of Backtrack.
	IsPartial() bool

	// Checkpoint snapshots the current position.
	Checkpoint() Checkpoint

	// Reset restores a position taken from Checkpoint, making previously
	// consumed tokens re-available.
	Reset(Checkpoint)

	// OffsetAt resolves a count of n tokens to a buffer offset. Tokens
	// may be variable-width (runes in a Text cursor), so the result can
	// exceed n. When fewer than n tokens are buffered, ok is false and
	// needed is a lower bound on the missing token count.
	OffsetAt(n int) (offset int, needed Needed, ok bool)

	// NewError builds error content at the current position using the
	// stream's configured factory.
	NewError(kind ErrorKind) ParseError
}

// TokenStream extends Input with per-token access. T is byte for Bytes,
// rune for Text, and the caller's token type for Tokens.
type TokenStream[T any] interface {
	Input

	// NextToken consumes and returns the next token. ok is false at end
	// of buffered input, in which case nothing was consumed.
	NextToken() (tok T, ok bool)

	// PeekToken returns the next token without consuming it.
	PeekToken() (tok T, ok bool)

	// OffsetFor returns the offset of the first token matching pred,
	// without consuming anything. ok is false when no buffered token
	// matches. Tokens are examined in order from the current position.
	OffsetFor(pred func(T) bool) (offset int, ok bool)
}

// SliceStream extends Input with consumption of validated sub-slices.
// S is string for Text, []byte for Bytes, []T for Tokens.
type SliceStream[S any] interface {
	Input

	// NextSlice consumes n offset units and returns them as a view of
	// the backing buffer, never a copy. The caller ensures n is
	// resolvable, normally via OffsetAt.
	NextSlice(n int) S
}

// streamCore carries the position state shared by the concrete cursors.
type streamCore struct {
	off     int
	partial bool
	errs    ErrorFactory
}

func (c *streamCore) Offset() int          { return c.off }
func (c *streamCore) IsPartial() bool      { return c.partial }
func (c *streamCore) Checkpoint() Checkpoint {
	return Checkpoint{off: c.off}
}

func (c *streamCore) Reset(cp Checkpoint) {
	c.off = cp.off
}

// SetPartial toggles whether the same buffer is interpreted as complete
// or as a prefix of a longer stream.
func (c *streamCore) SetPartial(v bool) {
	c.partial = v
}

func (c *streamCore) NewError(kind ErrorKind) ParseError {
	if c.errs != nil {
		return c.errs(c.off, kind)
	}
	return NewContextError(c.off, kind)
}
