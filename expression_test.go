package parc_test

import (
	"testing"

	"github.com/dhamidi/parc"
	"github.com/dhamidi/parc/ascii"
)

// arith builds a small integer expression parser: comparison, sums,
// products, right-associative exponentiation, sign prefixes and a
// factorial postfix.
func arith() parc.Parser[int] {
	operand := parc.TryMap(ascii.Digit1[string](), atoi)

	binary := func(f func(l, r int) int) parc.Binary[int] {
		return func(_ parc.Input, l, r int) (int, *parc.ErrMode) { return f(l, r), nil }
	}
	unary := func(f func(n int) int) parc.Unary[int] {
		return func(_ parc.Input, n int) (int, *parc.ErrMode) { return f(n), nil }
	}

	infix := parc.Alt(
		parc.Value(parc.Literal("=="), parc.Infix[int]{Assoc: parc.AssocNeither, Power: 1, Fold: binary(func(l, r int) int {
			if l == r {
				return 1
			}
			return 0
		})}),
		parc.Value(parc.Literal("+"), parc.Infix[int]{Assoc: parc.AssocLeft, Power: 3, Fold: binary(func(l, r int) int { return l + r })}),
		parc.Value(parc.Literal("-"), parc.Infix[int]{Assoc: parc.AssocLeft, Power: 3, Fold: binary(func(l, r int) int { return l - r })}),
		parc.Value(parc.Literal("*"), parc.Infix[int]{Assoc: parc.AssocLeft, Power: 5, Fold: binary(func(l, r int) int { return l * r })}),
		parc.Value(parc.Literal("^"), parc.Infix[int]{Assoc: parc.AssocRight, Power: 7, Fold: binary(func(l, r int) int {
			out := 1
			for i := 0; i < r; i++ {
				out *= l
			}
			return out
		})}),
	)

	prefix := parc.Alt(
		parc.Value(parc.Token('-'), parc.Prefix[int]{Power: 9, Fold: unary(func(n int) int { return -n })}),
		parc.Value(parc.Token('+'), parc.Prefix[int]{Power: 9, Fold: unary(func(n int) int { return n })}),
	)

	postfix := parc.Value(parc.Token('!'), parc.Postfix[int]{Power: 11, Fold: unary(func(n int) int {
		out := 1
		for i := 2; i <= n; i++ {
			out *= i
		}
		return out
	})})

	return parc.Expression(operand).Prefix(prefix).Postfix(postfix).Infix(infix).Parser()
}

func TestExpressionPrecedence(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"7", 7},
		{"1+2*3", 7},
		{"2*3+4", 10},
		{"2+3*4", 14},
		{"10-3-2", 5},
		{"2^3^2", 512},
		{"2*2^3", 16},
		{"-3+4", 1},
		{"+5", 5},
		{"--3", 3},
		{"3!", 6},
		{"-3!", -6},
		{"2*3!", 12},
		{"1==1", 1},
		{"1+1==2", 1},
		{"1==2", 0},
	}
	p := arith()
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parc.Parse(p, parc.NewText(tt.input))
			if err != nil {
				t.Fatalf("parse %q: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("got %d, want %d", got, tt.want)
			}
		})
	}
}

func TestExpressionNeitherAssocStops(t *testing.T) {
	// A second comparison at the same level does not chain: the parser
	// stops before it and leaves it unconsumed.
	in := parc.NewText("1==2==3")
	got, err := arith()(in)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got != 0 {
		t.Errorf("got %d, want 0", got)
	}
	if rem := in.NextSlice(in.EOFOffset()); rem != "==3" {
		t.Errorf("remainder %q, want %q", rem, "==3")
	}

	if _, err := parc.Parse(arith(), parc.NewText("1==2==3")); err == nil {
		t.Error("Parse should reject the unconsumed second comparison")
	}
}

func TestExpressionMissingOperand(t *testing.T) {
	_, err := arith()(parc.NewText("*3"))
	if err == nil || !err.IsBacktrack() {
		t.Errorf("err = %v, want Backtrack", err)
	}

	// A prefix operator with nothing after it fails in the recursion.
	_, err = arith()(parc.NewText("-"))
	if err == nil || !err.IsBacktrack() {
		t.Errorf("dangling prefix = %v, want Backtrack", err)
	}
}

func TestExpressionPrefixMustConsume(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("a non-consuming prefix parser should panic")
		}
	}()
	broken := parc.Expression(parc.TryMap(ascii.Digit1[string](), atoi)).
		Prefix(parc.Value(parc.Empty(), parc.Prefix[int]{Power: 9})).
		Parser()
	broken(parc.NewText("x"))
}
