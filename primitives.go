package comb

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Literal matches expected exactly at the start of the input and
// returns it. The comparison is byte-for-byte and case-sensitive.
func Literal(expected string) Parser[string] {
	return Func[string](func(in Input) (string, Input, error) {
		if !strings.HasPrefix(in.Rest(), expected) {
			return failf[string](in, "expected %q", expected)
		}
		return expected, in.Advance(len(expected)), nil
	})
}

// Identifier matches an alphabetic character followed by the longest
// run of alphabetic or hyphen characters. Any other character ends the
// identifier without failing; only a missing or non-alphabetic first
// character is an error.
var Identifier Parser[string] = Func[string](func(in Input) (string, Input, error) {
	rest := in.Rest()
	first, size := utf8.DecodeRuneInString(rest)
	if size == 0 || !unicode.IsLetter(first) {
		return failf[string](in, "expected identifier")
	}
	end := size
	for end < len(rest) {
		r, n := utf8.DecodeRuneInString(rest[end:])
		if !unicode.IsLetter(r) && r != '-' {
			break
		}
		end += n
	}
	return rest[:end], in.Advance(end), nil
})

// Rune matches a single code point equal to r. Multi-byte code points
// are consumed whole, never split.
func Rune(r rune) Parser[rune] {
	return Satisfy(string(r), func(c rune) bool { return c == r })
}

// Satisfy matches a single code point for which pred returns true. desc
// names what was expected, for error messages.
func Satisfy(desc string, pred func(r rune) bool) Parser[rune] {
	return Func[rune](func(in Input) (rune, Input, error) {
		r, size := utf8.DecodeRuneInString(in.Rest())
		if size == 0 {
			return failf[rune](in, "expected %q, got end of input", desc)
		}
		if !pred(r) {
			return failf[rune](in, "expected %q", desc)
		}
		return r, in.Advance(size), nil
	})
}

// AnyRune matches any single code point, failing only at end of input.
var AnyRune Parser[rune] = Satisfy("any character", func(rune) bool { return true })
