package parc

import "fmt"

// Parser is the single capability everything composes: consume input from
// the cursor and produce a value, or fail with an *ErrMode. A Parser is an
// ordinary value; the same parser may be run any number of times against
// any number of cursors.
//
// On failure a parser is not obliged to rewind the cursor. Rewinding is
// the business of the retry-capable combinators (Alt, Opt, Peek, Not and
// the repetition loops); everything else is strictly sequential.
type Parser[O any] func(in Input) (O, *ErrMode)

// Parse runs p and requires it to consume the entire buffered input.
// Callers that want access to leftover input invoke the parser directly
// and inspect the cursor afterwards.
func Parse[O any](p Parser[O], in Input) (O, error) {
	o, err := p(in)
	if err != nil {
		var zero O
		return zero, err
	}
	if in.EOFOffset() != 0 {
		var zero O
		return zero, Backtrack(in, KindEOF)
	}
	return o, nil
}

// Maybe is the result of [Opt]: a value plus whether the inner parser
// matched.
type Maybe[O any] struct {
	Value O
	OK    bool
}

// Map transforms a parser's output.
func Map[A, B any](p Parser[A], f func(A) B) Parser[B] {
	return func(in Input) (B, *ErrMode) {
		a, err := p(in)
		if err != nil {
			var zero B
			return zero, err
		}
		return f(a), nil
	}
}

// TryMap transforms a parser's output through a fallible function. A
// conversion error becomes a Backtrack wrapping the foreign error.
func TryMap[A, B any](p Parser[A], f func(A) (B, error)) Parser[B] {
	return func(in Input) (B, *ErrMode) {
		var zero B
		a, err := p(in)
		if err != nil {
			return zero, err
		}
		b, convErr := f(a)
		if convErr != nil {
			return zero, BacktrackFrom(ExternalError(in, KindExternal, convErr))
		}
		return b, nil
	}
}

// Value replaces a parser's output with a fixed value.
func Value[A, B any](p Parser[A], v B) Parser[B] {
	return Map(p, func(A) B { return v })
}

// Verify runs p and then checks its output; a failed check rewinds the
// cursor and backtracks.
func Verify[O any](p Parser[O], pred func(O) bool) Parser[O] {
	return func(in Input) (O, *ErrMode) {
		cp := in.Checkpoint()
		o, err := p(in)
		if err != nil {
			return o, err
		}
		if !pred(o) {
			in.Reset(cp)
			var zero O
			return zero, Backtrack(in, KindVerify)
		}
		return o, nil
	}
}

// Context attaches a human-readable label to errors escaping p.
// Incomplete passes through untouched.
func Context[O any](p Parser[O], label string) Parser[O] {
	return func(in Input) (O, *ErrMode) {
		o, err := p(in)
		if err != nil && err.Cause() != nil {
			return o, err.replace(err.Cause().AddContext(label))
		}
		return o, err
	}
}

// tokenStream asserts the cursor yields T tokens. Composing a token-level
// parser with a cursor of the wrong token type is a programming error,
// not a parse failure.
func tokenStream[T any](in Input) TokenStream[T] {
	ts, ok := in.(TokenStream[T])
	if !ok {
		var zero T
		panic(fmt.Sprintf("parc: input %T does not yield %T tokens", in, zero))
	}
	return ts
}

// sliceStream asserts the cursor hands out S slices.
func sliceStream[S any](in Input) SliceStream[S] {
	ss, ok := in.(SliceStream[S])
	if !ok {
		var zero S
		panic(fmt.Sprintf("parc: input %T does not produce %T slices", in, zero))
	}
	return ss
}
