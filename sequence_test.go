package parc_test

import (
	"strings"
	"testing"

	"github.com/dhamidi/parc"
	"github.com/dhamidi/parc/ascii"
)

func TestPrecededTerminatedDelimited(t *testing.T) {
	in := parc.NewText(`"quoted"`)
	quoted := parc.Delimited(
		parc.Literal(`"`),
		parc.TakeTill[rune, string](0, func(r rune) bool { return r == '"' }),
		parc.Literal(`"`),
	)
	got, err := quoted(in)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got != "quoted" {
		t.Errorf("got %q, want %q", got, "quoted")
	}
	if in.EOFOffset() != 0 {
		t.Errorf("%d bytes left over", in.EOFOffset())
	}

	in = parc.NewText("  x")
	r, err := parc.Preceded(ascii.Space0[string](), parc.Any[rune]())(in)
	if err != nil || r != 'x' {
		t.Errorf("Preceded = %q, %v", r, err)
	}

	in = parc.NewText("x;")
	r, err = parc.Terminated(parc.Any[rune](), parc.Literal(";"))(in)
	if err != nil || r != 'x' {
		t.Errorf("Terminated = %q, %v", r, err)
	}
}

func TestSequenceDoesNotRewind(t *testing.T) {
	p := parc.Preceded(parc.Literal("ab"), parc.Literal("cd"))
	in := parc.NewText("abXX")
	_, err := p(in)
	if err == nil || !err.IsBacktrack() {
		t.Fatalf("err = %v, want Backtrack", err)
	}
	// The first parser's consumption stays in place; rewinding is the
	// enclosing combinator's job.
	if in.Offset() != 2 {
		t.Errorf("offset = %d, want 2", in.Offset())
	}
}

func TestSeparatedPair(t *testing.T) {
	kv := parc.SeparatedPair(
		ascii.Alpha1[string](),
		parc.Literal("="),
		ascii.Digit1[string](),
	)
	got, err := kv(parc.NewText("port=8080"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got.First != "port" || got.Second != "8080" {
		t.Errorf("got %+v", got)
	}
}

func TestSeq(t *testing.T) {
	p := parc.Seq(parc.Literal("a"), parc.Literal("b"), parc.Literal("c"))
	got, err := p(parc.NewText("abc"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if strings.Join(got, "") != "abc" {
		t.Errorf("got %v", got)
	}
}

func TestSeq3(t *testing.T) {
	type header struct {
		name  string
		value string
	}
	p := parc.Seq3(
		ascii.Alpha1[string](),
		parc.Literal(": "),
		parc.TakeTill[rune, string](0, func(r rune) bool { return r == '\n' }),
		func(name string, _ string, value string) header {
			return header{name: name, value: value}
		},
	)
	got, err := p(parc.NewText("Host: example.com"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got.name != "Host" || got.value != "example.com" {
		t.Errorf("got %+v", got)
	}
}
