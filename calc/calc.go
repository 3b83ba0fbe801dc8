// Package calc implements a small arithmetic expression language on top
// of parc, exercising the combinator engine end to end: integer literals,
// unary sign, factorial, the usual binary operators with precedence, a
// right-associative power operator and a non-associative comparison.
//
// The grammar is documented in grammar.ebnf.
package calc

import (
	"fmt"
	"math"

	"github.com/dhamidi/parc"
	"github.com/dhamidi/parc/ascii"
	"github.com/dhamidi/parc/trace"
)

// Expr is a parsed expression node.
type Expr interface {
	exprNode()
}

// Num is an integer literal.
type Num struct {
	Value int64
}

// Unary is a prefix sign or postfix factorial application.
type Unary struct {
	Op byte // '+', '-' or '!'
	X  Expr
}

// Binary is an infix operator application.
type Binary struct {
	Op string // "+", "-", "*", "/", "%", "^" or "=="
	X  Expr
	Y  Expr
}

func (Num) exprNode()    {}
func (Unary) exprNode()  {}
func (Binary) exprNode() {}

// Binding powers, odd left powers per level so derived right powers
// never collide across levels.
const (
	powerCompare = 1  // == (non-associative)
	powerSum     = 3  // + -
	powerProduct = 5  // * / %
	powerPower   = 9  // ^ (right-associative)
	powerSign    = 11 // unary + -
	powerBang    = 13 // postfix !
)

// Option configures the parser built by [Parser].
type Option func(*config)

type config struct {
	trace bool
}

// WithTrace wraps the grammar's sub-parsers with the execution tracer.
func WithTrace() Option {
	return func(c *config) {
		c.trace = true
	}
}

// Parser builds the expression parser. The returned parser leaves
// trailing input in place; use [Parse] to require full consumption.
func Parser(opts ...Option) parc.Parser[Expr] {
	cfg := config{}
	for _, opt := range opts {
		opt(&cfg)
	}

	wrap := func(name string, p parc.Parser[Expr]) parc.Parser[Expr] {
		if cfg.trace {
			return trace.Trace(name, p)
		}
		return p
	}

	// expr is assigned below; operand closes over it for parentheses.
	var expr parc.Parser[Expr]

	number := parc.TryMap(ascii.DecUint[string](), func(v uint64) (Expr, error) {
		if v > math.MaxInt64 {
			return nil, fmt.Errorf("integer literal %d out of range", v)
		}
		return Num{Value: int64(v)}, nil
	})

	// A '(' commits to a parenthesized expression: a missing ')' is a
	// hard error, not something to backtrack over.
	parens := parc.Delimited(
		parc.Token('('),
		parc.CutErr(func(in parc.Input) (Expr, *parc.ErrMode) { return expr(in) }),
		lexeme(parc.CutErr(parc.Token(')'))),
	)

	operand := wrap("operand", lexeme(parc.Alt(number, parens)))

	prefix := lexeme(parc.Dispatch(parc.Any[rune](),
		map[rune]parc.Parser[parc.Prefix[Expr]]{
			'+': unaryOp('+', powerSign),
			'-': unaryOp('-', powerSign),
		},
		parc.Fail[parc.Prefix[Expr]](),
	))

	postfix := lexeme(parc.Value(parc.Token('!'), parc.Postfix[Expr]{
		Power: powerBang,
		Fold:  foldUnary('!'),
	}))

	infix := lexeme(parc.Dispatch(parc.Any[rune](),
		map[rune]parc.Parser[parc.Infix[Expr]]{
			'=': binaryOp("==", parc.AssocNeither, powerCompare),
			'+': binaryOp("+", parc.AssocLeft, powerSum),
			'-': binaryOp("-", parc.AssocLeft, powerSum),
			'*': binaryOp("*", parc.AssocLeft, powerProduct),
			'/': binaryOp("/", parc.AssocLeft, powerProduct),
			'%': binaryOp("%", parc.AssocLeft, powerProduct),
			'^': binaryOp("^", parc.AssocRight, powerPower),
		},
		parc.Fail[parc.Infix[Expr]](),
	))

	expr = wrap("expr", parc.Expression(operand).
		Prefix(prefix).
		Postfix(postfix).
		Infix(infix).
		Parser())

	return expr
}

// lexeme skips leading whitespace before p.
func lexeme[O any](p parc.Parser[O]) parc.Parser[O] {
	return parc.Preceded(ascii.Multispace0[string](), p)
}

func unaryOp(op byte, power int) parc.Parser[parc.Prefix[Expr]] {
	return parc.Value(parc.Token(rune(op)), parc.Prefix[Expr]{
		Power: power,
		Fold:  foldUnary(op),
	})
}

func foldUnary(op byte) parc.Unary[Expr] {
	return func(in parc.Input, x Expr) (Expr, *parc.ErrMode) {
		return Unary{Op: op, X: x}, nil
	}
}

func binaryOp(op string, assoc parc.Assoc, power int) parc.Parser[parc.Infix[Expr]] {
	return parc.Value(parc.Literal(op), parc.Infix[Expr]{
		Assoc: assoc,
		Power: power,
		Fold: func(in parc.Input, x, y Expr) (Expr, *parc.ErrMode) {
			return Binary{Op: op, X: x, Y: y}, nil
		},
	})
}

// Parse parses src as a single expression, requiring it to be consumed
// entirely apart from trailing whitespace.
func Parse(src string, opts ...Option) (Expr, error) {
	p := parc.Terminated(Parser(opts...), ascii.Multispace0[string]())
	return parc.Parse(p, parc.NewText(src))
}

// Eval parses and evaluates src.
func Eval(src string, opts ...Option) (int64, error) {
	e, err := Parse(src, opts...)
	if err != nil {
		return 0, err
	}
	return EvalExpr(e)
}

// EvalExpr evaluates a parsed expression.
func EvalExpr(e Expr) (int64, error) {
	switch n := e.(type) {
	case Num:
		return n.Value, nil
	case Unary:
		x, err := EvalExpr(n.X)
		if err != nil {
			return 0, err
		}
		switch n.Op {
		case '+':
			return x, nil
		case '-':
			return -x, nil
		case '!':
			return factorial(x)
		}
		return 0, fmt.Errorf("unknown unary operator %q", n.Op)
	case Binary:
		x, err := EvalExpr(n.X)
		if err != nil {
			return 0, err
		}
		y, err := EvalExpr(n.Y)
		if err != nil {
			return 0, err
		}
		switch n.Op {
		case "+":
			return x + y, nil
		case "-":
			return x - y, nil
		case "*":
			return x * y, nil
		case "/":
			if y == 0 {
				return 0, fmt.Errorf("division by zero")
			}
			return x / y, nil
		case "%":
			if y == 0 {
				return 0, fmt.Errorf("division by zero")
			}
			return x % y, nil
		case "^":
			return ipow(x, y)
		case "==":
			if x == y {
				return 1, nil
			}
			return 0, nil
		}
		return 0, fmt.Errorf("unknown binary operator %q", n.Op)
	}
	return 0, fmt.Errorf("unknown expression node %T", e)
}

func factorial(n int64) (int64, error) {
	if n < 0 {
		return 0, fmt.Errorf("factorial of negative number %d", n)
	}
	if n > 20 {
		return 0, fmt.Errorf("factorial of %d overflows", n)
	}
	v := int64(1)
	for i := int64(2); i <= n; i++ {
		v *= i
	}
	return v, nil
}

func ipow(base, exp int64) (int64, error) {
	if exp < 0 {
		return 0, fmt.Errorf("negative exponent %d", exp)
	}
	v := int64(1)
	for ; exp > 0; exp-- {
		v *= base
	}
	return v, nil
}
