package matchsort

import (
	"cmp"
	"strings"

	"github.com/lexkit/matchsort/rank"
)

// RankedItem annotates an item with its ranking metadata. It is produced
// during the rank-and-filter phase and handed to the sort phase, including
// any caller-supplied tiebreak or sorter override.
type RankedItem[T any] struct {
	// Item is the matched input item.
	Item T

	// Index is the item's position in the input slice, preserved so the
	// final sort stays stable with respect to input order.
	Index int

	// Rank is the item's best ranking across its keys.
	Rank rank.Ranking

	// RankedValue is the string value that produced Rank.
	RankedValue string

	// KeyIndex is the position of the winning value in the flattened
	// key-value sequence; lower means an earlier-declared key.
	KeyIndex int

	// KeyThreshold is the winning key's threshold override, or nil when
	// the global threshold applied.
	KeyThreshold *rank.Ranking
}

// CompareRanked orders two ranked items: better rank first, then lower key
// index, then the tiebreak. The tiebreak runs only when the first two
// levels are equal, so expensive tiebreaks are never called needlessly.
// A nil tiebreak leaves full ties equal.
func CompareRanked[T any](a, b RankedItem[T], tiebreak func(a, b RankedItem[T]) int) int {
	if c := b.Rank.Compare(a.Rank); c != 0 {
		return c
	}
	if c := cmp.Compare(a.KeyIndex, b.KeyIndex); c != 0 {
		return c
	}
	if tiebreak == nil {
		return 0
	}
	return tiebreak(a, b)
}

// ByRankedValue is the default tiebreak: byte-wise comparison of the
// winning values. Ordering is not locale-aware.
func ByRankedValue[T any](a, b RankedItem[T]) int {
	return strings.Compare(a.RankedValue, b.RankedValue)
}
