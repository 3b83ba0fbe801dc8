package parc

import (
	"fmt"
	"strings"
)

// Needed is a lower bound on how many more tokens a streaming parse
// requires before it can decide. The zero value means the bound is
// unknown.
type Needed struct {
	size int
}

// NeededUnknown reports that more input is required but no bound is known.
var NeededUnknown = Needed{}

// NeededSize reports that at least n more tokens are required. n must be
// positive.
func NeededSize(n int) Needed {
	if n <= 0 {
		panic("parc: NeededSize requires a positive count")
	}
	return Needed{size: n}
}

// Size returns the bound and whether one is known.
func (n Needed) Size() (int, bool) {
	return n.size, n.size > 0
}

func (n Needed) String() string {
	if n.size > 0 {
		return fmt.Sprintf("at least %d more tokens", n.size)
	}
	return "more input"
}

// ErrorKind names the operation that failed. It is deliberately coarse:
// error content implementations may keep it, fold it into context labels,
// or discard it.
type ErrorKind int

const (
	KindToken ErrorKind = iota
	KindLiteral
	KindSlice
	KindAlt
	KindRepeat
	KindEOF
	KindVerify
	KindNot
	KindFail
	KindExternal
)

func (k ErrorKind) String() string {
	switch k {
	case KindToken:
		return "token"
	case KindLiteral:
		return "literal"
	case KindSlice:
		return "slice"
	case KindAlt:
		return "alternative"
	case KindRepeat:
		return "repetition"
	case KindEOF:
		return "end of input"
	case KindVerify:
		return "verification"
	case KindNot:
		return "negation"
	case KindFail:
		return "fail"
	case KindExternal:
		return "external"
	default:
		return "unknown"
	}
}

// ParseError is the content contract consumed by combinators: building at
// a failure point, extending while unwinding, and merging across
// alternatives.
type ParseError interface {
	error

	// Offset returns the position the error was first raised at.
	Offset() int

	// Append notes an additional failure point observed while the error
	// unwinds through enclosing combinators.
	Append(offset int, kind ErrorKind) ParseError

	// Or merges this error with one from a sibling alternative tried
	// after it. Alt folds branch errors left to right through Or, so the
	// receiver is the older error and other the newer one.
	Or(other ParseError) ParseError

	// AddContext attaches a human-readable label describing what was
	// being parsed.
	AddContext(label string) ParseError
}

// ErrorFactory builds fresh error content at a failure offset. Cursors
// carry one so the content implementation (and with it the Or policy) is
// pluggable without the combinators knowing.
type ErrorFactory func(offset int, kind ErrorKind) ParseError

// ContextError is the default error content: the offset and kind of the
// innermost failure plus a chain of context labels added while unwinding.
// Its Or policy keeps the most recently tried branch's error.
type ContextError struct {
	offset int
	kind   ErrorKind
	labels []string
	cause  error
}

// NewContextError builds a ContextError at the given offset.
func NewContextError(offset int, kind ErrorKind) *ContextError {
	return &ContextError{offset: offset, kind: kind}
}

func (e *ContextError) Offset() int { return e.offset }

// Kind returns the kind recorded at the innermost failure.
func (e *ContextError) Kind() ErrorKind { return e.kind }

// Labels returns the context chain, outermost label last.
func (e *ContextError) Labels() []string { return e.labels }

// Cause returns the wrapped external error, if any.
func (e *ContextError) Cause() error { return e.cause }

func (e *ContextError) Append(offset int, kind ErrorKind) ParseError {
	// The innermost failure stays authoritative.
	return e
}

func (e *ContextError) Or(other ParseError) ParseError {
	return other
}

func (e *ContextError) AddContext(label string) ParseError {
	e.labels = append(e.labels, label)
	return e
}

func (e *ContextError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "offset %d: expected %s", e.offset, e.kind)
	for i := len(e.labels) - 1; i >= 0; i-- {
		fmt.Fprintf(&sb, " in %s", e.labels[i])
	}
	if e.cause != nil {
		fmt.Fprintf(&sb, ": %s", e.cause)
	}
	return sb.String()
}

func (e *ContextError) Unwrap() error { return e.cause }

// LongestError is alternate error content whose Or policy retains
// whichever branch consumed more input before failing. Select it per
// cursor with WithErrorFactory(NewLongestError).
type LongestError struct {
	ContextError
}

// NewLongestError is an [ErrorFactory] producing LongestError content.
func NewLongestError(offset int, kind ErrorKind) ParseError {
	e := &LongestError{}
	e.offset = offset
	e.kind = kind
	return e
}

func (e *LongestError) Or(other ParseError) ParseError {
	if other.Offset() > e.offset {
		return other
	}
	return e
}

func (e *LongestError) Append(offset int, kind ErrorKind) ParseError {
	return e
}

func (e *LongestError) AddContext(label string) ParseError {
	e.labels = append(e.labels, label)
	return e
}

// ExternalError wraps a foreign error (a numeric-conversion failure, say)
// as error content at the cursor's current position.
func ExternalError(in Input, kind ErrorKind, err error) ParseError {
	content := in.NewError(kind)
	if ce, ok := content.(*ContextError); ok {
		ce.cause = err
	} else if le, ok := content.(*LongestError); ok {
		le.cause = err
	}
	return content
}

type severity uint8

const (
	sevBacktrack severity = iota
	sevCut
	sevIncomplete
)

// ErrMode is the tri-state result wrapper every parser fails with:
//
//   - Backtrack: recoverable, enclosing alternatives may be tried.
//   - Cut: stop backtracking, this input is definitely wrong.
//   - Incomplete: not enough buffered input to decide; only legal when
//     the producing cursor is partial.
//
// ErrMode values are immutable: Cut and Backtrack return a new value when
// they change the tier.
type ErrMode struct {
	sev    severity
	cause  ParseError
	needed Needed
}

// Backtrack builds a recoverable error with content created at the
// cursor's current position.
func Backtrack(in Input, kind ErrorKind) *ErrMode {
	return &ErrMode{sev: sevBacktrack, cause: in.NewError(kind)}
}

// BacktrackFrom wraps existing error content as a recoverable error.
func BacktrackFrom(cause ParseError) *ErrMode {
	return &ErrMode{sev: sevBacktrack, cause: cause}
}

// Incomplete reports that the buffered input is insufficient. It carries
// no error content: it is not a domain error.
func Incomplete(needed Needed) *ErrMode {
	return &ErrMode{sev: sevIncomplete, needed: needed}
}

// Cut promotes Backtrack to Cut. It is idempotent on Cut and leaves
// Incomplete untouched.
func (e *ErrMode) Cut() *ErrMode {
	if e.sev != sevBacktrack {
		return e
	}
	return &ErrMode{sev: sevCut, cause: e.cause}
}

// Backtrack demotes Cut to Backtrack, the inverse of Cut. Incomplete is
// untouched.
func (e *ErrMode) Backtrack() *ErrMode {
	if e.sev != sevCut {
		return e
	}
	return &ErrMode{sev: sevBacktrack, cause: e.cause}
}

// IsBacktrack reports whether enclosing alternatives may still be tried.
func (e *ErrMode) IsBacktrack() bool { return e.sev == sevBacktrack }

// IsCut reports whether backtracking has been forbidden.
func (e *ErrMode) IsCut() bool { return e.sev == sevCut }

// IsIncomplete reports whether the parse ran out of buffered input.
func (e *ErrMode) IsIncomplete() bool { return e.sev == sevIncomplete }

// Cause returns the error content, nil for Incomplete.
func (e *ErrMode) Cause() ParseError { return e.cause }

// Needed returns the missing-input bound of an Incomplete error.
func (e *ErrMode) Needed() Needed { return e.needed }

func (e *ErrMode) Error() string {
	switch e.sev {
	case sevIncomplete:
		return fmt.Sprintf("incomplete input: need %s", e.needed)
	case sevCut:
		return fmt.Sprintf("parse failed: %s", e.cause)
	default:
		return fmt.Sprintf("parse backtracked: %s", e.cause)
	}
}

func (e *ErrMode) Unwrap() error {
	if e.cause == nil {
		return nil
	}
	return e.cause
}

// replace swaps the error content, keeping the tier.
func (e *ErrMode) replace(cause ParseError) *ErrMode {
	return &ErrMode{sev: e.sev, cause: cause, needed: e.needed}
}
