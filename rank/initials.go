package rank

import (
	"strings"
	"unicode/utf8"
)

// Word delimiters for initials extraction: space and hyphen only.
// Underscores and other punctuation do not start a new word.
func isWordDelimiter(r rune) bool {
	return r == ' ' || r == '-'
}

// Initials collects the candidate's acronym: its first rune plus every
// rune that immediately follows a delimiter run. Consecutive delimiters
// collapse, and a trailing delimiter contributes nothing. Lowercase the
// input first for case-insensitive acronym matching.
func Initials(s string) string {
	first, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return ""
	}

	var b strings.Builder
	b.Grow(1 + strings.Count(s, " ") + strings.Count(s, "-"))
	b.WriteRune(first)

	prev := first
	for _, r := range s[size:] {
		if isWordDelimiter(prev) && !isWordDelimiter(r) {
			b.WriteRune(r)
		}
		prev = r
	}
	return b.String()
}
