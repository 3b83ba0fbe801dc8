package parc

// Any consumes and returns the next token of any value. On an exhausted
// partial cursor it reports Incomplete; on a complete one it backtracks.
func Any[T any]() Parser[T] {
	return func(in Input) (T, *ErrMode) {
		ts := tokenStream[T](in)
		tok, ok := ts.NextToken()
		if !ok {
			var zero T
			if in.IsPartial() {
				return zero, Incomplete(NeededSize(1))
			}
			return zero, Backtrack(in, KindToken)
		}
		return tok, nil
	}
}

// Token consumes the next token when it equals want.
func Token[T comparable](want T) Parser[T] {
	return OneOf(want)
}

// OneOf consumes the next token when it is one of set.
func OneOf[T comparable](set ...T) Parser[T] {
	return matchToken(func(tok T) bool {
		for _, want := range set {
			if tok == want {
				return true
			}
		}
		return false
	})
}

// NoneOf consumes the next token when it is none of set.
func NoneOf[T comparable](set ...T) Parser[T] {
	return matchToken(func(tok T) bool {
		for _, want := range set {
			if tok == want {
				return false
			}
		}
		return true
	})
}

func matchToken[T any](pred func(T) bool) Parser[T] {
	return func(in Input) (T, *ErrMode) {
		var zero T
		ts := tokenStream[T](in)
		tok, ok := ts.PeekToken()
		if !ok {
			if in.IsPartial() {
				return zero, Incomplete(NeededSize(1))
			}
			return zero, Backtrack(in, KindToken)
		}
		if !pred(tok) {
			return zero, Backtrack(in, KindToken)
		}
		ts.NextToken()
		return tok, nil
	}
}

// Take consumes exactly n tokens, returning them as a view of the backing
// buffer. An under-buffered partial cursor yields Incomplete carrying the
// number of missing tokens; a complete one backtracks.
func Take[S any](n int) Parser[S] {
	return func(in Input) (S, *ErrMode) {
		off, needed, ok := in.OffsetAt(n)
		if !ok {
			var zero S
			if in.IsPartial() {
				return zero, Incomplete(needed)
			}
			return zero, Backtrack(in, KindSlice)
		}
		return sliceStream[S](in).NextSlice(off), nil
	}
}

// TakeWhile consumes tokens matching pred, between min and max of them
// (max < 0 means unbounded), returning the consumed view. On a partial
// cursor where every buffered token matches, the result is Incomplete:
// the span might extend into data not yet buffered.
func TakeWhile[T, S any](min, max int, pred func(T) bool) Parser[S] {
	return func(in Input) (S, *ErrMode) {
		var zero S
		ts := tokenStream[T](in)
		end, found := ts.OffsetFor(func(tok T) bool { return !pred(tok) })
		if !found {
			// Every buffered token matches. Unless the declared maximum
			// is already buffered, a partial cursor cannot know where
			// the span ends.
			maxOff, _, maxOK := -1, Needed{}, false
			if max >= 0 {
				maxOff, _, maxOK = in.OffsetAt(max)
			}
			if maxOK {
				end = maxOff
			} else if in.IsPartial() {
				return zero, Incomplete(NeededUnknown)
			} else {
				end = in.EOFOffset()
			}
		} else if max >= 0 {
			if maxOff, _, ok := in.OffsetAt(max); ok && maxOff < end {
				end = maxOff
			}
		}
		if min > 0 {
			minOff, _, ok := in.OffsetAt(min)
			if !ok || end < minOff {
				// The run is known to end before min tokens; more input
				// cannot change that, so even a partial cursor backtracks.
				return zero, Backtrack(in, KindSlice)
			}
		}
		return sliceStream[S](in).NextSlice(end), nil
	}
}

// TakeTill consumes tokens until pred matches, requiring at least min of
// them. The matching token itself is not consumed.
func TakeTill[T, S any](min int, pred func(T) bool) Parser[S] {
	return TakeWhile[T, S](min, -1, func(tok T) bool { return !pred(tok) })
}

// Literal consumes input equal to lit. A partial cursor holding a strict
// prefix of lit reports Incomplete with the missing length.
func Literal[S ~string | ~[]byte](lit S) Parser[S] {
	return func(in Input) (S, *ErrMode) {
		var zero S
		n := len(lit)
		if in.EOFOffset() < n {
			if in.IsPartial() {
				return zero, Incomplete(NeededSize(n - in.EOFOffset()))
			}
			return zero, Backtrack(in, KindLiteral)
		}
		ss := sliceStream[S](in)
		cp := in.Checkpoint()
		got := ss.NextSlice(n)
		if string(got) != string(lit) {
			in.Reset(cp)
			return zero, Backtrack(in, KindLiteral)
		}
		return got, nil
	}
}

// Taken runs p, discards its output and returns the exact input p
// consumed as a view of the backing buffer. Failures of p propagate
// unchanged, without rewinding.
func Taken[S, O any](p Parser[O]) Parser[S] {
	return func(in Input) (S, *ErrMode) {
		var zero S
		cp := in.Checkpoint()
		start := in.Offset()
		if _, err := p(in); err != nil {
			return zero, err
		}
		n := in.Offset() - start
		in.Reset(cp)
		return sliceStream[S](in).NextSlice(n), nil
	}
}

// Rest consumes and returns everything still buffered, which may be
// empty.
func Rest[S any]() Parser[S] {
	return func(in Input) (S, *ErrMode) {
		return sliceStream[S](in).NextSlice(in.EOFOffset()), nil
	}
}

// EOF succeeds only at the end of a complete cursor's input. Against a
// partial cursor the end is unknowable, so the result is Incomplete.
func EOF() Parser[struct{}] {
	return func(in Input) (struct{}, *ErrMode) {
		if in.EOFOffset() != 0 {
			return struct{}{}, Backtrack(in, KindEOF)
		}
		if in.IsPartial() {
			return struct{}{}, Incomplete(NeededSize(1))
		}
		return struct{}{}, nil
	}
}
