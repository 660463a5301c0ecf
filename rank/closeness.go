package rank

import "unicode/utf8"

// Closeness scores how tightly the query's characters appear, in order,
// inside the candidate. Each query rune is searched for greedily from just
// past the previous match; if any rune cannot be found the result is
// NoMatch. Otherwise the sub-score is 1 + 1/spread, where spread is the
// rune-position distance between the first and last matched characters,
// with Matches(2.0) as the upper bound when the spread is zero
// (single-rune or empty query).
//
// Matching is case-sensitive: lowercase both inputs first for
// case-insensitive use.
func Closeness(candidate, query string) Ranking {
	var (
		off        int // byte offset into candidate
		pos        int // rune position of the next candidate rune
		firstMatch = -1
		lastMatch  int
	)

	for _, qr := range query {
		found := false
		for off < len(candidate) {
			cr, size := utf8.DecodeRuneInString(candidate[off:])
			off += size
			cur := pos
			pos++
			if cr == qr {
				if firstMatch < 0 {
					firstMatch = cur
				}
				lastMatch = cur
				found = true
				break
			}
		}
		if !found {
			return NoMatch
		}
	}

	// firstMatch stays -1 only for an empty query, which trivially matches
	// with zero spread.
	if firstMatch < 0 {
		firstMatch = 0
	}
	spread := lastMatch - firstMatch
	if spread == 0 {
		return Matches(2.0)
	}
	return Matches(1.0 + 1.0/float64(spread))
}
