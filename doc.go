// Package parc is a parser-combinator engine: a library of small,
// composable building blocks for assembling recursive-descent parsers over
// an arbitrary token sequence (text, bytes, bit streams, pre-lexed tokens)
// without hand-writing a lexer/parser pair.
//
// # Overview
//
// A parser is an ordinary function value:
//
//	type Parser[O any] func(in Input) (O, *ErrMode)
//
// It consumes tokens from a stream cursor and either returns a value with
// the cursor advanced past the consumed input, or an *ErrMode describing
// why it could not. Combinators such as [Alt], [Repeat] and [Preceded]
// compose small parsers into larger ones without knowing anything about
// the concrete input or error content involved.
//
// # Stream cursors
//
// All parsing operates against the [Input] interface: a cursor into a
// backing buffer with O(1) checkpoint/rewind and a partial/complete flag.
// Three concrete cursors are provided:
//
//   - [Text] for string input (rune tokens, byte offsets)
//   - [Bytes] for []byte input (byte tokens)
//   - [Tokens] for pre-lexed token slices
//
// Cursors hand out views of their backing buffer, never copies, and are
// mutated in place as parsers consume input. A [Checkpoint] is a plain
// position snapshot; resetting to it makes previously consumed tokens
// available again.
//
// # Errors
//
// Failures travel as *[ErrMode], which carries one of three tiers:
//
//   - Backtrack: recoverable; an enclosing [Alt], [Opt] or repetition loop
//     may rewind and try something else.
//   - Cut: definitely wrong; sibling alternatives must not be tried.
//     Produced by wrapping a parser in [CutErr].
//   - Incomplete: not enough buffered input to decide. Only legal against
//     a streaming ("partial") cursor; it means "call again with more
//     data", never "malformed input".
//
// The error content behind Backtrack and Cut is a [ParseError] value built
// by the cursor's error factory, by default a *[ContextError]. When every
// branch of an [Alt] backtracks, branch errors are merged through
// [ParseError.Or]; substituting a *[LongestError] factory switches the
// surfaced error from the most recently tried branch to the one that got
// furthest into the input.
//
// # Streaming
//
// A cursor constructed with NewPartialText, NewPartialBytes or
// NewPartialTokens reports IsPartial() == true. Token- and slice-level
// parsers then answer under-buffered reads with Incomplete instead of
// Backtrack. No parse state survives an Incomplete boundary: the caller
// buffers more input and re-invokes the parse from the start.
//
// Operator-precedence expression parsing lives in this package too; see
// [Expression]. Token-class recognizers, number decoders, bit-level
// parsing and the execution tracer live in the ascii, binary, bits and
// trace subpackages.
package parc
