package parc

// Alt tries each parser in declared order from the same position,
// returning the first success. A branch that backtracks has the cursor
// rewound before the next branch runs; a Cut or Incomplete stops the
// scan immediately and propagates without trying remaining branches.
//
// When every branch backtracks, branch errors are merged left to right
// through [ParseError.Or] and the cursor is left at its pre-Alt position.
func Alt[O any](parsers ...Parser[O]) Parser[O] {
	return func(in Input) (O, *ErrMode) {
		var zero O
		cp := in.Checkpoint()
		var merged ParseError
		for _, p := range parsers {
			o, err := p(in)
			if err == nil {
				return o, nil
			}
			if !err.IsBacktrack() {
				return zero, err
			}
			if cause := err.Cause(); cause != nil {
				if merged == nil {
					merged = cause
				} else {
					merged = merged.Or(cause)
				}
			}
			in.Reset(cp)
		}
		if merged == nil {
			return zero, Backtrack(in, KindAlt)
		}
		return zero, BacktrackFrom(merged)
	}
}

// Dispatch peeks one token through selector without consuming anything,
// picks exactly one branch from the table (falling back to def, typically
// [Fail], when the token has no entry) and runs only that branch from the
// pre-peek position. It is observably equivalent to an Alt whose branches
// each start by matching their discriminating token, but never attempts
// more than one branch.
//
// A selector failure propagates as-is; in particular a Backtrack means
// "no token to dispatch on".
func Dispatch[T comparable, O any](selector Parser[T], table map[T]Parser[O], def Parser[O]) Parser[O] {
	return func(in Input) (O, *ErrMode) {
		tok, err := Peek(selector)(in)
		if err != nil {
			var zero O
			return zero, err
		}
		branch, ok := table[tok]
		if !ok {
			branch = def
		}
		return branch(in)
	}
}
