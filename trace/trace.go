// Package trace wraps parsers with entry/exit logging for debugging
// composed grammars. Tracing never alters a parser's result.
//
// Log output goes through commonlog under the "parc.trace" logger; wire a
// backend (for example by importing commonlog/simple and calling
// commonlog.Configure) to see it.
package trace

import (
	"strings"
	"sync/atomic"

	"github.com/tliron/commonlog"

	"github.com/dhamidi/parc"
)

var log = commonlog.GetLogger("parc.trace")

// depth tracks nesting across wrapped parsers. Diagnostic only; it
// carries no parsing semantics.
var depth atomic.Int64

// Trace returns p wrapped with entry/exit logging under name.
func Trace[O any](name string, p parc.Parser[O]) parc.Parser[O] {
	return func(in parc.Input) (O, *parc.ErrMode) {
		d := int(depth.Add(1))
		// Deferred so a panicking parser does not skew the indentation of
		// everything traced after it.
		defer depth.Add(-1)
		indent := strings.Repeat("  ", d-1)
		log.Debugf("%s> %s @ %d", indent, name, in.Offset())

		o, err := p(in)

		switch {
		case err == nil:
			log.Debugf("%s< %s @ %d: ok", indent, name, in.Offset())
		case err.IsIncomplete():
			log.Debugf("%s< %s @ %d: incomplete (%s)", indent, name, in.Offset(), err.Needed())
		case err.IsCut():
			log.Debugf("%s< %s @ %d: cut: %s", indent, name, in.Offset(), err.Cause())
		default:
			log.Debugf("%s< %s @ %d: backtrack", indent, name, in.Offset())
		}
		return o, err
	}
}
