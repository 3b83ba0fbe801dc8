package parc

// Assoc fixes how an infix operator binds against its own precedence
// level.
type Assoc int

const (
	// AssocLeft groups a+b+c as (a+b)+c.
	AssocLeft Assoc = iota
	// AssocRight groups a=b=c as a=(b=c).
	AssocRight
	// AssocNeither groups like AssocLeft but rejects an immediate repeat
	// of an operator at the same power, so a==b==c does not parse.
	AssocNeither
)

// Unary reduces a matched prefix or postfix operator's operand. It
// receives the cursor so reducers may sub-parse; a failure there is a
// hard, non-rewinding error unless the reducer demotes it explicitly.
type Unary[O any] func(in Input, operand O) (O, *ErrMode)

// Binary reduces a matched infix operator's operands.
type Binary[O any] func(in Input, left, right O) (O, *ErrMode)

// Prefix describes a matched prefix operator: its binding power and the
// reduction to apply. Descriptors are constructed fresh from the matched
// token at parse time, so the reduction is chosen dynamically.
type Prefix[O any] struct {
	Power int
	Fold  Unary[O]
}

// Postfix describes a matched postfix operator.
type Postfix[O any] struct {
	Power int
	Fold  Unary[O]
}

// Infix describes a matched infix operator. Power is the left binding
// power; the right-hand power is derived from the associativity: Power+1
// for left and neither, Power-1 for right. Using odd powers per level
// (2L+1) yields the conventional (2L+1, 2L+2) and (2L+1, 2L) pairs.
type Infix[O any] struct {
	Assoc Assoc
	Power int
	Fold  Binary[O]
}

// ExpressionParser parses prefix/infix/postfix operator expressions by
// binding power into a caller-supplied reduction type. Build one with
// [Expression]; operator parsers left unset never match.
type ExpressionParser[O any] struct {
	operand Parser[O]
	prefix  Parser[Prefix[O]]
	postfix Parser[Postfix[O]]
	infix   Parser[Infix[O]]
}

// Expression starts a precedence parser around the given atomic-operand
// parser.
func Expression[O any](operand Parser[O]) *ExpressionParser[O] {
	return &ExpressionParser[O]{
		operand: operand,
		prefix:  Fail[Prefix[O]](),
		postfix: Fail[Postfix[O]](),
		infix:   Fail[Infix[O]](),
	}
}

// Prefix sets the parser recognizing prefix operators. It must yield a
// descriptor for the operator it consumed, and must consume input when it
// succeeds.
func (e *ExpressionParser[O]) Prefix(p Parser[Prefix[O]]) *ExpressionParser[O] {
	e.prefix = p
	return e
}

// Postfix sets the parser recognizing postfix operators.
func (e *ExpressionParser[O]) Postfix(p Parser[Postfix[O]]) *ExpressionParser[O] {
	e.postfix = p
	return e
}

// Infix sets the parser recognizing infix operators.
func (e *ExpressionParser[O]) Infix(p Parser[Infix[O]]) *ExpressionParser[O] {
	e.infix = p
	return e
}

// Parser returns the assembled expression parser.
func (e *ExpressionParser[O]) Parser() Parser[O] {
	return func(in Input) (O, *ErrMode) {
		return e.parse(in, 0)
	}
}

func (e *ExpressionParser[O]) parse(in Input, minPower int) (O, *ErrMode) {
	var zero O

	head, err := Opt(e.operand)(in)
	if err != nil {
		return zero, err
	}
	var operand O
	if head.OK {
		operand = head.Value
	} else {
		// No atomic operand, so a prefix operator is required.
		before := in.EOFOffset()
		pre, err := e.prefix(in)
		if err != nil {
			return zero, err
		}
		if in.EOFOffset() == before {
			panic("parc: Expression prefix parsers must consume input")
		}
		rhs, err := e.parse(in, pre.Power)
		if err != nil {
			return zero, err
		}
		operand, err = pre.Fold(in, rhs)
		if err != nil {
			return zero, err
		}
	}

	// Tracks the power of a just-applied AssocNeither operator so an
	// immediate repeat at the same power stops the loop.
	prevNeither := -1
	for in.EOFOffset() > 0 {
		cp := in.Checkpoint()
		post, err := Opt(e.postfix)(in)
		if err != nil {
			return zero, err
		}
		if post.OK {
			if post.Value.Power < minPower {
				// This postfix binds to an outer recursion level.
				in.Reset(cp)
				break
			}
			operand, err = post.Value.Fold(in, operand)
			if err != nil {
				return zero, err
			}
			continue
		}

		cp = in.Checkpoint()
		inf, err := Opt(e.infix)(in)
		if err != nil {
			return zero, err
		}
		if !inf.OK {
			break
		}
		op := inf.Value
		leftPower := op.Power
		rightPower := leftPower + 1
		neither := -1
		switch op.Assoc {
		case AssocRight:
			rightPower = leftPower - 1
		case AssocNeither:
			neither = leftPower
		}
		if leftPower < minPower || (prevNeither >= 0 && leftPower == prevNeither) {
			in.Reset(cp)
			break
		}
		prevNeither = neither
		rhs, err := e.parse(in, rightPower)
		if err != nil {
			return zero, err
		}
		operand, err = op.Fold(in, operand, rhs)
		if err != nil {
			return zero, err
		}
	}
	return operand, nil
}
