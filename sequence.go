package parc

// Pair holds the results of two sequenced parsers.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Preceded runs first and second in order, discarding first's value.
// Like all sequential combinators it never rewinds: a failure of second
// leaves first's consumption in place.
func Preceded[A, B any](first Parser[A], second Parser[B]) Parser[B] {
	return func(in Input) (B, *ErrMode) {
		if _, err := first(in); err != nil {
			var zero B
			return zero, err
		}
		return second(in)
	}
}

// Terminated runs first and second in order, discarding second's value.
func Terminated[A, B any](first Parser[A], second Parser[B]) Parser[A] {
	return func(in Input) (A, *ErrMode) {
		a, err := first(in)
		if err != nil {
			var zero A
			return zero, err
		}
		if _, err := second(in); err != nil {
			var zero A
			return zero, err
		}
		return a, nil
	}
}

// Delimited runs open, body and close in order, keeping only body's value.
func Delimited[A, B, C any](open Parser[A], body Parser[B], close Parser[C]) Parser[B] {
	return Preceded(open, Terminated(body, close))
}

// SeparatedPair runs first, sep and second in order, keeping the outer two
// values.
func SeparatedPair[A, S, B any](first Parser[A], sep Parser[S], second Parser[B]) Parser[Pair[A, B]] {
	return func(in Input) (Pair[A, B], *ErrMode) {
		var zero Pair[A, B]
		a, err := first(in)
		if err != nil {
			return zero, err
		}
		if _, err := sep(in); err != nil {
			return zero, err
		}
		b, err := second(in)
		if err != nil {
			return zero, err
		}
		return Pair[A, B]{First: a, Second: b}, nil
	}
}

// Seq runs homogeneous parsers in declared order on the shared cursor,
// collecting their values. Any failure aborts immediately without
// rewinding.
func Seq[O any](parsers ...Parser[O]) Parser[[]O] {
	return func(in Input) ([]O, *ErrMode) {
		out := make([]O, 0, len(parsers))
		for _, p := range parsers {
			o, err := p(in)
			if err != nil {
				return nil, err
			}
			out = append(out, o)
		}
		return out, nil
	}
}

// Seq2 runs two heterogeneous parsers in order and combines their values.
func Seq2[A, B, O any](pa Parser[A], pb Parser[B], combine func(A, B) O) Parser[O] {
	return func(in Input) (O, *ErrMode) {
		var zero O
		a, err := pa(in)
		if err != nil {
			return zero, err
		}
		b, err := pb(in)
		if err != nil {
			return zero, err
		}
		return combine(a, b), nil
	}
}

// Seq3 runs three heterogeneous parsers in order and combines their
// values.
func Seq3[A, B, C, O any](pa Parser[A], pb Parser[B], pc Parser[C], combine func(A, B, C) O) Parser[O] {
	return func(in Input) (O, *ErrMode) {
		var zero O
		a, err := pa(in)
		if err != nil {
			return zero, err
		}
		b, err := pb(in)
		if err != nil {
			return zero, err
		}
		c, err := pc(in)
		if err != nil {
			return zero, err
		}
		return combine(a, b, c), nil
	}
}

// Seq4 runs four heterogeneous parsers in order and combines their values.
func Seq4[A, B, C, D, O any](pa Parser[A], pb Parser[B], pc Parser[C], pd Parser[D], combine func(A, B, C, D) O) Parser[O] {
	return func(in Input) (O, *ErrMode) {
		var zero O
		a, err := pa(in)
		if err != nil {
			return zero, err
		}
		b, err := pb(in)
		if err != nil {
			return zero, err
		}
		c, err := pc(in)
		if err != nil {
			return zero, err
		}
		d, err := pd(in)
		if err != nil {
			return zero, err
		}
		return combine(a, b, c, d), nil
	}
}
