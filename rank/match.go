package rank

import "strings"

// Query holds a search query prepared once for ranking many candidates:
// the diacritics-stripped form, its lowercased version, its rune count,
// and the lowercased form with a leading space for word-boundary checks.
//
// A Query is immutable after construction and safe for concurrent use.
type Query struct {
	keepDiacritics bool
	prepared       string
	lower          string
	spaced         string
	runeCount      int
}

// NewQuery prepares a query for repeated ranking. keepDiacritics controls
// whether combining marks survive normalization, and is applied to
// candidates as well when ranking.
func NewQuery(query string, keepDiacritics bool) *Query {
	prepared := Prepare(query, keepDiacritics)
	lower := strings.ToLower(prepared)
	return &Query{
		keepDiacritics: keepDiacritics,
		prepared:       prepared,
		lower:          lower,
		spaced:         " " + lower,
		runeCount:      runeLen(lower),
	}
}

// Rank classifies how well candidate matches the query.
//
// The checks run best tier first and short-circuit:
//
//  1. Normalize the candidate (the query was normalized in NewQuery).
//  2. A query with more runes than the candidate can never match.
//  3. Byte-for-byte equality of the normalized strings.
//  4. Lowercase both sides.
//  5. Substring search; when the query is absent, skip to step 9.
//  6. Found at position 0 with equal length: case-insensitive Equal.
//  7. Found at position 0 otherwise: StartsWith.
//  8. Any occurrence preceded by a space: WordStartsWith, else Contains.
//  9. A single-rune query not found as a substring is NoMatch; it never
//     reaches the acronym or fuzzy checks.
//  10. Query contained in the candidate's initials: Acronym.
//  11. Fall back to the fuzzy Closeness score.
func (q *Query) Rank(candidate string) Ranking {
	prepared := Prepare(candidate, q.keepDiacritics)

	if q.runeCount > runeLen(prepared) {
		return NoMatch
	}

	if prepared == q.prepared {
		return CaseSensitiveEqual
	}

	lower := strings.ToLower(prepared)

	if i := strings.Index(lower, q.lower); i >= 0 {
		if i == 0 {
			if len(lower) == len(q.lower) {
				return Equal
			}
			return StartsWith
		}
		// Word boundaries are literal ASCII spaces only; hyphens and
		// underscores do not count.
		if strings.Contains(lower, q.spaced) {
			return WordStartsWith
		}
		return Contains
	}

	if q.runeCount == 1 {
		return NoMatch
	}

	if strings.Contains(Initials(lower), q.lower) {
		return Acronym
	}

	return Closeness(lower, q.lower)
}

// Match classifies a single (candidate, query) pair. For ranking many
// candidates against one query, prefer NewQuery plus Query.Rank, which
// amortizes query preparation.
func Match(candidate, query string, keepDiacritics bool) Ranking {
	return NewQuery(query, keepDiacritics).Rank(candidate)
}
