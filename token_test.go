package parc_test

import (
	"testing"
	"unicode"

	"github.com/dhamidi/parc"
)

func TestAny(t *testing.T) {
	in := parc.NewText("ab")
	r, err := parc.Any[rune]()(in)
	if err != nil || r != 'a' {
		t.Fatalf("Any = %q, %v", r, err)
	}

	in = parc.NewText("")
	_, err = parc.Any[rune]()(in)
	if err == nil || !err.IsBacktrack() {
		t.Errorf("Any on empty complete input = %v, want Backtrack", err)
	}

	_, err = parc.Any[rune]()(parc.NewPartialText(""))
	if err == nil || !err.IsIncomplete() {
		t.Errorf("Any on empty partial input = %v, want Incomplete", err)
	}
}

func TestOneOfNoneOf(t *testing.T) {
	in := parc.NewText("+1")
	r, err := parc.OneOf('+', '-')(in)
	if err != nil || r != '+' {
		t.Fatalf("OneOf = %q, %v", r, err)
	}

	in = parc.NewText("+1")
	_, err = parc.NoneOf('+', '-')(in)
	if err == nil || !err.IsBacktrack() {
		t.Errorf("NoneOf on excluded token = %v, want Backtrack", err)
	}
	if in.Offset() != 0 {
		t.Errorf("mismatch consumed input: offset %d", in.Offset())
	}
}

func TestTake(t *testing.T) {
	in := parc.NewText("héllo")
	got, err := parc.Take[string](3)(in)
	if err != nil {
		t.Fatalf("Take(3): %v", err)
	}
	if got != "hél" {
		t.Errorf("got %q, want %q (tokens are runes, not bytes)", got, "hél")
	}

	// Under-buffered partial input reports how much is missing.
	_, err = parc.Take[string](6)(parc.NewPartialText("abc"))
	if err == nil || !err.IsIncomplete() {
		t.Fatalf("err = %v, want Incomplete", err)
	}
	if n, ok := err.Needed().Size(); !ok || n != 3 {
		t.Errorf("needed = %v, want 3", err.Needed())
	}

	_, err = parc.Take[string](6)(parc.NewText("abc"))
	if err == nil || !err.IsBacktrack() {
		t.Errorf("complete under-sized input = %v, want Backtrack", err)
	}
}

func TestTakeWhile(t *testing.T) {
	digits := func(r rune) bool { return unicode.IsDigit(r) }

	tests := []struct {
		name    string
		min     int
		max     int
		input   string
		want    string
		wantErr bool
	}{
		{"zero ok on no match", 0, -1, "abc", "", false},
		{"consumes matching run", 0, -1, "123abc", "123", false},
		{"max bounds the run", 0, 2, "12345", "12", false},
		{"min enforced", 2, -1, "1a", "", true},
		{"min met exactly", 2, -1, "12a", "12", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := parc.NewText(tt.input)
			got, err := parc.TakeWhile[rune, string](tt.min, tt.max, digits)(in)
			if tt.wantErr {
				if err == nil || !err.IsBacktrack() {
					t.Fatalf("err = %v, want Backtrack", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("parse %q: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTakeWhilePartial(t *testing.T) {
	digits := func(r rune) bool { return unicode.IsDigit(r) }

	// Every buffered token matches: the run may continue past the buffer.
	_, err := parc.TakeWhile[rune, string](0, -1, digits)(parc.NewPartialText("123"))
	if err == nil || !err.IsIncomplete() {
		t.Errorf("unbounded all-match = %v, want Incomplete", err)
	}

	// The declared maximum is already buffered, so the span is decidable.
	got, err := parc.TakeWhile[rune, string](0, 3, digits)(parc.NewPartialText("123"))
	if err != nil || got != "123" {
		t.Errorf("bounded all-match = %q, %v; want %q, nil", got, err, "123")
	}

	// A non-matching token ends the run even on partial input.
	got, err = parc.TakeWhile[rune, string](0, -1, digits)(parc.NewPartialText("12a"))
	if err != nil || got != "12" {
		t.Errorf("terminated run = %q, %v; want %q, nil", got, err, "12")
	}

	// A run that terminates before min tokens is a definite mismatch:
	// more input past the buffer cannot extend it, so no Incomplete.
	_, err = parc.TakeWhile[rune, string](5, -1, digits)(parc.NewPartialText("12a"))
	if err == nil || !err.IsBacktrack() {
		t.Errorf("short terminated run = %v, want Backtrack", err)
	}
}

func TestTakeTill(t *testing.T) {
	in := parc.NewText("key=value")
	got, err := parc.TakeTill[rune, string](1, func(r rune) bool { return r == '=' })(in)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got != "key" {
		t.Errorf("got %q, want %q", got, "key")
	}
	if r, _ := in.PeekToken(); r != '=' {
		t.Errorf("terminator consumed: next token %q", r)
	}
}

func TestLiteral(t *testing.T) {
	in := parc.NewText("hello world")
	got, err := parc.Literal("hello")(in)
	if err != nil || got != "hello" {
		t.Fatalf("Literal = %q, %v", got, err)
	}

	in = parc.NewText("help")
	_, err = parc.Literal("hello")(in)
	if err == nil || !err.IsBacktrack() {
		t.Fatalf("mismatch = %v, want Backtrack", err)
	}
	if in.Offset() != 0 {
		t.Errorf("mismatch consumed input: offset %d", in.Offset())
	}

	_, err = parc.Literal("hello")(parc.NewPartialText("hel"))
	if err == nil || !err.IsIncomplete() {
		t.Fatalf("partial prefix = %v, want Incomplete", err)
	}
	if n, ok := err.Needed().Size(); !ok || n != 2 {
		t.Errorf("needed = %v, want 2", err.Needed())
	}
}

func TestLiteralBytes(t *testing.T) {
	in := parc.NewBytes([]byte{0xCA, 0xFE, 0x01})
	got, err := parc.Literal([]byte{0xCA, 0xFE})(in)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(got) != 2 || got[0] != 0xCA {
		t.Errorf("got % x", got)
	}
}

func TestTaken(t *testing.T) {
	p := parc.Taken[string](parc.Seq(parc.Literal("ab"), parc.Literal("cd")))

	in := parc.NewText("abcdef")
	got, err := p(in)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	// The captured slice is exactly what the inner parser consumed.
	if got != "abcd" {
		t.Errorf("got %q, want %q", got, "abcd")
	}
	if rem := in.NextSlice(in.EOFOffset()); rem != "ef" {
		t.Errorf("remainder %q, want %q", rem, "ef")
	}

	in = parc.NewText("abXX")
	_, err = p(in)
	if err == nil || !err.IsBacktrack() {
		t.Fatalf("err = %v, want Backtrack", err)
	}
}

func TestRestAndEOF(t *testing.T) {
	in := parc.NewText("tail")
	got, err := parc.Rest[string]()(in)
	if err != nil || got != "tail" {
		t.Fatalf("Rest = %q, %v", got, err)
	}
	if _, err := parc.EOF()(in); err != nil {
		t.Errorf("EOF at end = %v", err)
	}

	in = parc.NewText("x")
	if _, err := parc.EOF()(in); err == nil || !err.IsBacktrack() {
		t.Errorf("EOF before end = %v, want Backtrack", err)
	}

	if _, err := parc.EOF()(parc.NewPartialText("")); err == nil || !err.IsIncomplete() {
		t.Errorf("EOF on partial input = %v, want Incomplete", err)
	}
}
