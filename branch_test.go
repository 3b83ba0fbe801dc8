package parc_test

import (
	"testing"

	"github.com/dhamidi/parc"
	"github.com/dhamidi/parc/ascii"
)

func TestAltDeclaredOrder(t *testing.T) {
	p := parc.Alt(parc.Literal("ab"), parc.Literal("cd"))

	tests := []struct {
		input   string
		want    string
		wantRem string
	}{
		{"abef", "ab", "ef"},
		{"cdef", "cd", "ef"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			in := parc.NewText(tt.input)
			got, err := p(in)
			if err != nil {
				t.Fatalf("parse %q: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
			if rem := in.NextSlice(in.EOFOffset()); rem != tt.wantRem {
				t.Errorf("remainder %q, want %q", rem, tt.wantRem)
			}
		})
	}
}

func TestAltAllBranchesFail(t *testing.T) {
	p := parc.Alt(parc.Literal("ab"), parc.Literal("cd"))
	in := parc.NewText("zz")
	_, err := p(in)
	if err == nil || !err.IsBacktrack() {
		t.Fatalf("err = %v, want Backtrack", err)
	}
	if in.Offset() != 0 {
		t.Errorf("cursor at offset %d after failed Alt, want 0", in.Offset())
	}
}

func TestAltStopsOnCut(t *testing.T) {
	// A '+' commits to the digits that must follow; the catch-all second
	// branch must not run.
	p := parc.Alt(
		parc.Preceded(parc.Literal("+"), parc.CutErr(ascii.Digit1[string]())),
		parc.Rest[string](),
	)

	in := parc.NewText("+")
	_, err := p(in)
	if err == nil || !err.IsCut() {
		t.Fatalf("err = %v, want Cut", err)
	}

	// Without the committing prefix the second branch is still reachable.
	in = parc.NewText("z")
	got, err := p(in)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got != "z" {
		t.Errorf("got %q, want %q", got, "z")
	}
}

func TestAltPropagatesIncomplete(t *testing.T) {
	p := parc.Alt(parc.Literal("abc"), parc.Literal("zzz"))
	in := parc.NewPartialText("ab")
	_, err := p(in)
	if err == nil || !err.IsIncomplete() {
		t.Fatalf("err = %v, want Incomplete", err)
	}
}

func TestAltMergesWithLongestPolicy(t *testing.T) {
	// "ab" fails at offset 2, "a" then "x" fails at offset 1: the longest
	// policy should report the further branch even though it ran first.
	p := parc.Alt(
		parc.Preceded(parc.Literal("ab"), parc.Literal("c")),
		parc.Preceded(parc.Literal("a"), parc.Literal("x")),
	)
	in := parc.NewText("abz").WithErrorFactory(parc.NewLongestError)
	_, err := p(in)
	if err == nil {
		t.Fatal("expected an error")
	}
	if got := err.Cause().Offset(); got != 2 {
		t.Errorf("reported offset %d, want 2", got)
	}
}

func TestDispatch(t *testing.T) {
	table := map[rune]parc.Parser[string]{
		'a': parc.Literal("abc"),
		'z': parc.Literal("zebra"),
	}
	p := parc.Dispatch(parc.Any[rune](), table, parc.Fail[string]())

	in := parc.NewText("zebra!")
	got, err := p(in)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	// The branch runs from the pre-peek position, so it sees its own
	// discriminating token.
	if got != "zebra" {
		t.Errorf("got %q, want %q", got, "zebra")
	}

	in = parc.NewText("moo")
	_, err = p(in)
	if err == nil || !err.IsBacktrack() {
		t.Errorf("unmapped token: err = %v, want Backtrack", err)
	}
	if in.Offset() != 0 {
		t.Errorf("cursor at offset %d after default branch, want 0", in.Offset())
	}
}
