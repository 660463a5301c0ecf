package rank

import (
	"fmt"
	"strconv"
	"strings"
)

// Tier values, kept private: Matches carries a continuous sub-score and
// a bare integer would misorder it against Acronym.
const (
	tierNoMatch int8 = iota
	tierMatches
	tierAcronym
	tierContains
	tierWordStartsWith
	tierStartsWith
	tierEqual
	tierCaseSensitiveEqual
)

// Ranking is the quality of a match between a candidate and a query.
//
// Rankings form a total order via Compare. The Matches tier carries a
// continuous sub-score that by convention falls in (1.0, 2.0]; the
// sub-score only orders Matches values against each other. Against any
// fixed tier a Matches value sits at base tier 1, so even Matches(2.0)
// stays below Acronym.
type Ranking struct {
	tier  int8
	score float64
}

// The fixed tiers, best first.
var (
	CaseSensitiveEqual = Ranking{tier: tierCaseSensitiveEqual}
	Equal              = Ranking{tier: tierEqual}
	StartsWith         = Ranking{tier: tierStartsWith}
	WordStartsWith     = Ranking{tier: tierWordStartsWith}
	Contains           = Ranking{tier: tierContains}
	Acronym            = Ranking{tier: tierAcronym}
	NoMatch            = Ranking{tier: tierNoMatch}
)

// Matches builds a fuzzy-match ranking with the given sub-score. Scores
// outside (1.0, 2.0] are not validated; they degrade ordering quality but
// never panic.
func Matches(score float64) Ranking {
	return Ranking{tier: tierMatches, score: score}
}

// Score returns the fuzzy sub-score and whether this is a Matches ranking.
func (r Ranking) Score() (float64, bool) {
	return r.score, r.tier == tierMatches
}

// Compare returns -1, 0, or 1 as r orders before, equal to, or after
// other. Two Matches values compare by sub-score; every other pairing
// compares by tier. A NaN sub-score on either side compares as equal so
// that callers can fall through to their next ordering criterion.
func (r Ranking) Compare(other Ranking) int {
	if r.tier == tierMatches && other.tier == tierMatches {
		switch {
		case r.score < other.score:
			return -1
		case r.score > other.score:
			return 1
		default:
			return 0
		}
	}
	switch {
	case r.tier < other.tier:
		return -1
	case r.tier > other.tier:
		return 1
	default:
		return 0
	}
}

// Less reports whether r is a worse match than other.
func (r Ranking) Less(other Ranking) bool {
	return r.Compare(other) < 0
}

// String returns a stable diagnostic representation, e.g. "StartsWith" or
// "Matches(1.500)".
func (r Ranking) String() string {
	switch r.tier {
	case tierCaseSensitiveEqual:
		return "CaseSensitiveEqual"
	case tierEqual:
		return "Equal"
	case tierStartsWith:
		return "StartsWith"
	case tierWordStartsWith:
		return "WordStartsWith"
	case tierContains:
		return "Contains"
	case tierAcronym:
		return "Acronym"
	case tierMatches:
		return "Matches(" + strconv.FormatFloat(r.score, 'f', 3, 64) + ")"
	default:
		return "NoMatch"
	}
}

// ParseTier resolves a tier name to its Ranking. Names are matched
// case-insensitively in either CamelCase or kebab-case form; "matches"
// resolves to Matches(1.0), the lowest valid fuzzy score.
func ParseTier(name string) (Ranking, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "casesensitiveequal", "case-sensitive-equal":
		return CaseSensitiveEqual, nil
	case "equal":
		return Equal, nil
	case "startswith", "starts-with":
		return StartsWith, nil
	case "wordstartswith", "word-starts-with":
		return WordStartsWith, nil
	case "contains":
		return Contains, nil
	case "acronym":
		return Acronym, nil
	case "matches":
		return Matches(1.0), nil
	case "nomatch", "no-match":
		return NoMatch, nil
	default:
		return NoMatch, fmt.Errorf("%w: %q", ErrUnknownTier, name)
	}
}
