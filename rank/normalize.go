package rank

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks decomposes to NFD and removes combining marks, so both
// precomposed "é" (U+00E9) and decomposed "e"+U+0301 normalize to "e".
// No NFC recomposition afterwards: once the marks are gone both sides of
// a comparison are in the same decomposed form.
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)))

// Prepare readies a string for comparison by stripping diacritics, or
// returns it unchanged when keepDiacritics is true. Pure-ASCII input and
// input the stripping leaves byte-identical are returned as the original
// string without allocating; this is relied on in hot ranking loops.
func Prepare(s string, keepDiacritics bool) string {
	if keepDiacritics {
		return s
	}
	if isASCII(s) {
		return s
	}
	out, _, err := transform.String(stripMarks, s)
	if err != nil || out == s {
		return s
	}
	return out
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

// runeLen is utf8.RuneCountInString with a byte-length fast path for
// ASCII strings.
func runeLen(s string) int {
	if isASCII(s) {
		return len(s)
	}
	return utf8.RuneCountInString(s)
}
