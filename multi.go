package parc

// Repeat runs p until max successes have accumulated (max < 0 means
// unbounded), p backtracks (the cursor is rewound to before that attempt
// and the loop stops), or p fails with Cut or Incomplete (propagated
// immediately). Fewer than min successes is a Backtrack.
//
// Every successful iteration must strictly advance the cursor; a
// zero-advance success panics instead of looping forever.
func Repeat[O any](min, max int, p Parser[O]) Parser[[]O] {
	return func(in Input) ([]O, *ErrMode) {
		var out []O
		var last *ErrMode
		for max < 0 || len(out) < max {
			cp := in.Checkpoint()
			before := in.EOFOffset()
			o, err := p(in)
			if err != nil {
				if !err.IsBacktrack() {
					return nil, err
				}
				in.Reset(cp)
				last = err
				break
			}
			if in.EOFOffset() == before {
				panic("parc: Repeat parser must consume input")
			}
			out = append(out, o)
		}
		if len(out) < min {
			if last != nil && last.Cause() != nil {
				return nil, BacktrackFrom(last.Cause().Append(in.Offset(), KindRepeat))
			}
			return nil, Backtrack(in, KindRepeat)
		}
		return out, nil
	}
}

// FoldRepeat is [Repeat] reducing through fold instead of collecting.
// init builds the fresh accumulator for each run of the returned parser.
func FoldRepeat[O, A any](min, max int, p Parser[O], init func() A, fold func(A, O) A) Parser[A] {
	return func(in Input) (A, *ErrMode) {
		acc := init()
		count := 0
		var last *ErrMode
		for max < 0 || count < max {
			cp := in.Checkpoint()
			before := in.EOFOffset()
			o, err := p(in)
			if err != nil {
				if !err.IsBacktrack() {
					var zero A
					return zero, err
				}
				in.Reset(cp)
				last = err
				break
			}
			if in.EOFOffset() == before {
				panic("parc: FoldRepeat parser must consume input")
			}
			acc = fold(acc, o)
			count++
		}
		if count < min {
			var zero A
			if last != nil && last.Cause() != nil {
				return zero, BacktrackFrom(last.Cause().Append(in.Offset(), KindRepeat))
			}
			return zero, Backtrack(in, KindRepeat)
		}
		return acc, nil
	}
}

// Separated0 parses zero or more p separated by sep, stopping without
// consuming a trailing separator the moment sep or the following p
// backtracks. Cut and Incomplete propagate.
func Separated0[O, S any](p Parser[O], sep Parser[S]) Parser[[]O] {
	return func(in Input) ([]O, *ErrMode) {
		cp := in.Checkpoint()
		first, err := p(in)
		if err != nil {
			if !err.IsBacktrack() {
				return nil, err
			}
			in.Reset(cp)
			return nil, nil
		}
		return separatedTail(in, p, sep, []O{first})
	}
}

// Separated1 is [Separated0] requiring at least one p.
func Separated1[O, S any](p Parser[O], sep Parser[S]) Parser[[]O] {
	return func(in Input) ([]O, *ErrMode) {
		first, err := p(in)
		if err != nil {
			return nil, err
		}
		return separatedTail(in, p, sep, []O{first})
	}
}

func separatedTail[O, S any](in Input, p Parser[O], sep Parser[S], out []O) ([]O, *ErrMode) {
	for {
		cp := in.Checkpoint()
		before := in.EOFOffset()
		if _, err := sep(in); err != nil {
			if !err.IsBacktrack() {
				return nil, err
			}
			in.Reset(cp)
			return out, nil
		}
		o, err := p(in)
		if err != nil {
			if !err.IsBacktrack() {
				return nil, err
			}
			in.Reset(cp)
			return out, nil
		}
		if in.EOFOffset() == before {
			panic("parc: Separated parsers must consume input")
		}
		out = append(out, o)
	}
}

// SeparatedFoldLeft1 parses one or more p separated by sep, reducing
// left-associatively: op(op(a, s1, b), s2, c).
func SeparatedFoldLeft1[O, S any](p Parser[O], sep Parser[S], op func(acc O, sep S, next O) O) Parser[O] {
	return func(in Input) (O, *ErrMode) {
		acc, err := p(in)
		if err != nil {
			var zero O
			return zero, err
		}
		for {
			cp := in.Checkpoint()
			before := in.EOFOffset()
			s, err := sep(in)
			if err != nil {
				if !err.IsBacktrack() {
					var zero O
					return zero, err
				}
				in.Reset(cp)
				return acc, nil
			}
			next, err := p(in)
			if err != nil {
				if !err.IsBacktrack() {
					var zero O
					return zero, err
				}
				in.Reset(cp)
				return acc, nil
			}
			if in.EOFOffset() == before {
				panic("parc: SeparatedFoldLeft1 parsers must consume input")
			}
			acc = op(acc, s, next)
		}
	}
}

// SeparatedFoldRight1 parses one or more p separated by sep, reducing
// right-associatively: op(a, s1, op(b, s2, c)).
func SeparatedFoldRight1[O, S any](p Parser[O], sep Parser[S], op func(item O, sep S, acc O) O) Parser[O] {
	return func(in Input) (O, *ErrMode) {
		var items []O
		var seps []S
		first, err := p(in)
		if err != nil {
			var zero O
			return zero, err
		}
		items = append(items, first)
		for {
			cp := in.Checkpoint()
			before := in.EOFOffset()
			s, err := sep(in)
			if err != nil {
				if !err.IsBacktrack() {
					var zero O
					return zero, err
				}
				in.Reset(cp)
				break
			}
			next, err := p(in)
			if err != nil {
				if !err.IsBacktrack() {
					var zero O
					return zero, err
				}
				in.Reset(cp)
				break
			}
			if in.EOFOffset() == before {
				panic("parc: SeparatedFoldRight1 parsers must consume input")
			}
			items = append(items, next)
			seps = append(seps, s)
		}
		acc := items[len(items)-1]
		for i := len(seps) - 1; i >= 0; i-- {
			acc = op(items[i], seps[i], acc)
		}
		return acc, nil
	}
}

// RepeatTill accumulates p until end succeeds, returning both. The loop
// must eventually reach end: a Backtrack from p before end has matched is
// promoted to Cut rather than silently stopping.
func RepeatTill[O, E any](p Parser[O], end Parser[E]) Parser[Pair[[]O, E]] {
	return func(in Input) (Pair[[]O, E], *ErrMode) {
		var out []O
		for {
			cp := in.Checkpoint()
			e, err := end(in)
			if err == nil {
				return Pair[[]O, E]{First: out, Second: e}, nil
			}
			if !err.IsBacktrack() {
				var zero Pair[[]O, E]
				return zero, err
			}
			in.Reset(cp)
			before := in.EOFOffset()
			o, perr := p(in)
			if perr != nil {
				var zero Pair[[]O, E]
				return zero, perr.Cut()
			}
			if in.EOFOffset() == before {
				panic("parc: RepeatTill parser must consume input")
			}
			out = append(out, o)
		}
	}
}
