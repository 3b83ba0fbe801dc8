package calc_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/ebnf"
)

// The grammar file documents the language; make sure it stays a valid
// grammar with every production reachable from expr.
func TestGrammarFileIsValid(t *testing.T) {
	f, err := os.Open("grammar.ebnf")
	require.NoError(t, err)
	defer f.Close()

	grammar, err := ebnf.Parse("grammar.ebnf", f)
	require.NoError(t, err)
	require.NoError(t, ebnf.Verify(grammar, "expr"))
}
