// Package ascii provides token-class recognizers for text and byte
// cursors: digit/alpha/hex/whitespace spans and decimal number decoders.
//
// Every parser is generic over the slice type it returns, string for
// [parc.Text] input and []byte for [parc.Bytes]:
//
//	digits := ascii.Digit1[string]()
package ascii

import (
	"strconv"

	"github.com/dhamidi/parc"
)

// Chars constrains the slice types these recognizers produce.
type Chars interface {
	~string | ~[]byte
}

// Digit0 consumes zero or more ASCII decimal digits.
func Digit0[S Chars]() parc.Parser[S] {
	return span[S](false, isDigit)
}

// Digit1 consumes one or more ASCII decimal digits.
func Digit1[S Chars]() parc.Parser[S] {
	return span[S](true, isDigit)
}

// HexDigit0 consumes zero or more ASCII hexadecimal digits.
func HexDigit0[S Chars]() parc.Parser[S] {
	return span[S](false, isHexDigit)
}

// HexDigit1 consumes one or more ASCII hexadecimal digits.
func HexDigit1[S Chars]() parc.Parser[S] {
	return span[S](true, isHexDigit)
}

// Alpha0 consumes zero or more ASCII letters.
func Alpha0[S Chars]() parc.Parser[S] {
	return span[S](false, isAlpha)
}

// Alpha1 consumes one or more ASCII letters.
func Alpha1[S Chars]() parc.Parser[S] {
	return span[S](true, isAlpha)
}

// AlphaNumeric0 consumes zero or more ASCII letters or digits.
func AlphaNumeric0[S Chars]() parc.Parser[S] {
	return span[S](false, isAlphaNumeric)
}

// AlphaNumeric1 consumes one or more ASCII letters or digits.
func AlphaNumeric1[S Chars]() parc.Parser[S] {
	return span[S](true, isAlphaNumeric)
}

// Space0 consumes zero or more spaces or tabs.
func Space0[S Chars]() parc.Parser[S] {
	return span[S](false, isSpace)
}

// Space1 consumes one or more spaces or tabs.
func Space1[S Chars]() parc.Parser[S] {
	return span[S](true, isSpace)
}

// Multispace0 consumes zero or more spaces, tabs, carriage returns or
// newlines.
func Multispace0[S Chars]() parc.Parser[S] {
	return span[S](false, isMultispace)
}

// Multispace1 consumes one or more spaces, tabs, carriage returns or
// newlines.
func Multispace1[S Chars]() parc.Parser[S] {
	return span[S](true, isMultispace)
}

// LineEnding consumes "\n" or "\r\n".
func LineEnding[S Chars]() parc.Parser[S] {
	return parc.Alt(
		parc.Literal(S("\r\n")),
		parc.Literal(S("\n")),
	)
}

// TillLineEnding consumes everything up to, but not including, the next
// "\n" or "\r\n".
func TillLineEnding[S Chars]() parc.Parser[S] {
	return span[S](false, func(r rune) bool { return r != '\n' && r != '\r' })
}

// DecUint recognizes a run of decimal digits and decodes it, wrapping a
// strconv failure (overflow) as an external error.
func DecUint[S Chars]() parc.Parser[uint64] {
	return parc.TryMap(Digit1[S](), func(s S) (uint64, error) {
		return strconv.ParseUint(string(s), 10, 64)
	})
}

// DecInt recognizes an optionally signed run of decimal digits and
// decodes it.
func DecInt[S Chars]() parc.Parser[int64] {
	return parc.TryMap(signedDigits[S](), func(s S) (int64, error) {
		return strconv.ParseInt(string(s), 10, 64)
	})
}

// signedDigits consumes [+-]?[0-9]+ as one span. A sign with no digits
// after it rewinds, so failed parses leave the cursor where it started.
func signedDigits[S Chars]() parc.Parser[S] {
	p := parc.Taken[S](parc.Preceded(parc.Opt(signToken()), span[S](true, isDigit)))
	return func(in parc.Input) (S, *parc.ErrMode) {
		cp := in.Checkpoint()
		s, err := p(in)
		if err != nil {
			in.Reset(cp)
		}
		return s, err
	}
}

// signToken consumes a single '+' or '-'.
func signToken() parc.Parser[struct{}] {
	return func(in parc.Input) (struct{}, *parc.ErrMode) {
		switch ts := in.(type) {
		case parc.TokenStream[rune]:
			if r, ok := ts.PeekToken(); ok && (r == '+' || r == '-') {
				ts.NextToken()
				return struct{}{}, nil
			}
		case parc.TokenStream[byte]:
			if b, ok := ts.PeekToken(); ok && (b == '+' || b == '-') {
				ts.NextToken()
				return struct{}{}, nil
			}
		default:
			panic("ascii: input is not a text or byte cursor")
		}
		return struct{}{}, parc.Backtrack(in, parc.KindToken)
	}
}

// take consumes n offset units as a slice view.
func take[S Chars](in parc.Input, n int) S {
	ss := in.(parc.SliceStream[S])
	return ss.NextSlice(n)
}

// span consumes a run of tokens matching pred, at least one of them when
// atLeastOne is set. It accepts both rune- and byte-token cursors; the
// classes here are pure ASCII, so the two views agree.
func span[S Chars](atLeastOne bool, pred func(rune) bool) parc.Parser[S] {
	return func(in parc.Input) (S, *parc.ErrMode) {
		var zero S
		var end int
		var found bool
		switch ts := in.(type) {
		case parc.TokenStream[rune]:
			end, found = ts.OffsetFor(func(r rune) bool { return !pred(r) })
		case parc.TokenStream[byte]:
			end, found = ts.OffsetFor(func(b byte) bool { return b >= 0x80 || !pred(rune(b)) })
		default:
			panic("ascii: input is not a text or byte cursor")
		}
		if !found {
			if in.IsPartial() {
				return zero, parc.Incomplete(parc.NeededUnknown)
			}
			end = in.EOFOffset()
		}
		if atLeastOne && end == 0 {
			return zero, parc.Backtrack(in, parc.KindSlice)
		}
		return take[S](in, end), nil
	}
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

func isHexDigit(r rune) bool {
	return isDigit(r) || ('a' <= r && r <= 'f') || ('A' <= r && r <= 'F')
}

func isAlpha(r rune) bool {
	return ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z')
}

func isAlphaNumeric(r rune) bool {
	return isAlpha(r) || isDigit(r)
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t'
}

func isMultispace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\r' || r == '\n'
}
