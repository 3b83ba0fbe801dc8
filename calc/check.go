package calc

import (
	"strings"

	"github.com/dhamidi/parc"
)

// Issue is a diagnostic for one line of a calc document.
type Issue struct {
	Line    int // 0-based
	Column  int // 0-based byte column of the failure
	Message string
}

// CheckDocument parses a calc document, one expression per line, and
// returns an issue for every line that fails to parse or evaluate.
// Blank lines and lines starting with '#' are skipped.
func CheckDocument(text string) []Issue {
	var issues []Issue
	for i, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		expr, err := Parse(line)
		if err != nil {
			issues = append(issues, Issue{
				Line:    i,
				Column:  errorColumn(err, line),
				Message: err.Error(),
			})
			continue
		}
		if _, err := EvalExpr(expr); err != nil {
			issues = append(issues, Issue{
				Line:    i,
				Message: err.Error(),
			})
		}
	}
	return issues
}

// errorColumn extracts a byte column from a parse error, clamped to the
// line.
func errorColumn(err error, line string) int {
	mode, ok := err.(*parc.ErrMode)
	if !ok || mode.Cause() == nil {
		return 0
	}
	col := mode.Cause().Offset()
	if col > len(line) {
		col = len(line)
	}
	return col
}
