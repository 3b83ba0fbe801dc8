package parc

// Empty succeeds without consuming anything.
func Empty() Parser[struct{}] {
	return func(in Input) (struct{}, *ErrMode) {
		return struct{}{}, nil
	}
}

// Fail backtracks without consuming anything. It is the usual default
// branch of [Dispatch].
func Fail[O any]() Parser[O] {
	return func(in Input) (O, *ErrMode) {
		var zero O
		return zero, Backtrack(in, KindFail)
	}
}

// Opt runs p; a Backtrack rewinds the cursor and succeeds with an empty
// Maybe. Cut and Incomplete propagate.
func Opt[O any](p Parser[O]) Parser[Maybe[O]] {
	return func(in Input) (Maybe[O], *ErrMode) {
		cp := in.Checkpoint()
		o, err := p(in)
		if err == nil {
			return Maybe[O]{Value: o, OK: true}, nil
		}
		if err.IsBacktrack() {
			in.Reset(cp)
			return Maybe[O]{}, nil
		}
		return Maybe[O]{}, err
	}
}

// Peek runs p and always rewinds the cursor afterwards, returning p's
// result unchanged.
func Peek[O any](p Parser[O]) Parser[O] {
	return func(in Input) (O, *ErrMode) {
		cp := in.Checkpoint()
		o, err := p(in)
		in.Reset(cp)
		return o, err
	}
}

// Not runs p without consuming input and succeeds exactly when p
// backtracked. A success of p becomes a Backtrack; Cut and Incomplete
// propagate unchanged.
func Not[O any](p Parser[O]) Parser[struct{}] {
	return func(in Input) (struct{}, *ErrMode) {
		cp := in.Checkpoint()
		_, err := p(in)
		in.Reset(cp)
		switch {
		case err == nil:
			return struct{}{}, Backtrack(in, KindNot)
		case err.IsBacktrack():
			return struct{}{}, nil
		default:
			return struct{}{}, err
		}
	}
}

// CutErr promotes a Backtrack from p to Cut, stopping an enclosing Alt
// from trying further branches. Success, Cut and Incomplete pass through.
// Applying it twice behaves like applying it once.
func CutErr[O any](p Parser[O]) Parser[O] {
	return func(in Input) (O, *ErrMode) {
		o, err := p(in)
		if err != nil {
			return o, err.Cut()
		}
		return o, nil
	}
}

// BacktrackErr demotes a Cut from p back to Backtrack, the inverse of
// [CutErr].
func BacktrackErr[O any](p Parser[O]) Parser[O] {
	return func(in Input) (O, *ErrMode) {
		o, err := p(in)
		if err != nil {
			return o, err.Backtrack()
		}
		return o, nil
	}
}
