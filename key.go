package matchsort

import "github.com/lexkit/matchsort/rank"

// Key describes how to pull matchable string values out of an item, with
// optional per-key ranking attributes. Keys are built with NewKey or
// KeyFunc and refined with the chainable Threshold, MinRanking, and
// MaxRanking methods; once handed to a Sorter they are never mutated and
// may be shared across searches.
type Key[T any] struct {
	extract func(T) []string

	// Per-key threshold override; nil means the global threshold applies.
	threshold *rank.Ranking

	// minRanking promotes non-NoMatch results up to this floor.
	minRanking rank.Ranking

	// maxRanking clamps results down to this ceiling.
	maxRanking rank.Ranking
}

// NewKey builds a key from an extractor returning zero or more values,
// e.g. a tags slice. The key defaults to no threshold override, no
// promotion floor, and no clamping ceiling.
func NewKey[T any](extract func(T) []string) Key[T] {
	return Key[T]{
		extract:    extract,
		minRanking: rank.NoMatch,
		maxRanking: rank.CaseSensitiveEqual,
	}
}

// KeyFunc builds a key from a single-value extractor, the common case of
// one struct field per key.
func KeyFunc[T any](extract func(T) string) Key[T] {
	return NewKey(func(item T) []string {
		return []string{extract(item)}
	})
}

// Threshold returns a copy of the key with a per-key threshold override.
// Matches on this key must meet r instead of the global threshold.
func (k Key[T]) Threshold(r rank.Ranking) Key[T] {
	k.threshold = &r
	return k
}

// MinRanking returns a copy of the key with a promotion floor: results
// below r are raised to r, except NoMatch, which is never promoted.
func (k Key[T]) MinRanking(r rank.Ranking) Key[T] {
	k.minRanking = r
	return k
}

// MaxRanking returns a copy of the key with a clamping ceiling: results
// above r are lowered to r.
func (k Key[T]) MaxRanking(r rank.Ranking) Key[T] {
	k.maxRanking = r
	return k
}

// Values returns the key's extracted values for item. An empty result
// means the item offers no match candidates through this key.
func (k Key[T]) Values(item T) []string {
	if k.extract == nil {
		return nil
	}
	return k.extract(item)
}

// RankingInfo is the outcome of evaluating one item across all of its
// keys: the winning rank, the value that produced it, the value's position
// in the flattened key-value sequence, and the winning key's threshold
// override, if any.
type RankingInfo struct {
	Rank         rank.Ranking
	RankedValue  string
	KeyIndex     int
	KeyThreshold *rank.Ranking
}

// HighestRanking evaluates every key's values for item against query and
// returns the best result. See highestRanking for the selection rules.
func HighestRanking[T any](item T, keys []Key[T], query string, keepDiacritics bool) RankingInfo {
	return highestRanking(item, keys, rank.NewQuery(query, keepDiacritics))
}

// highestRanking flattens all keys' values into one sequence, preserving
// key declaration order then per-key value order, and assigns each value a
// running keyIndex. Per value: rank it, clamp down to the key's
// maxRanking, then promote up to minRanking unless the rank is NoMatch.
// The running best is replaced only on a strictly greater rank, so ties
// keep the earliest (lowest keyIndex) value.
func highestRanking[T any](item T, keys []Key[T], q *rank.Query) RankingInfo {
	best := RankingInfo{Rank: rank.NoMatch}

	keyIndex := 0
	for _, key := range keys {
		for _, value := range key.Values(item) {
			r := q.Rank(value)
			if r.Compare(key.maxRanking) > 0 {
				r = key.maxRanking
			}
			if r.Compare(key.minRanking) < 0 && r.Compare(rank.NoMatch) != 0 {
				r = key.minRanking
			}
			if r.Compare(best.Rank) > 0 {
				best = RankingInfo{
					Rank:         r,
					RankedValue:  value,
					KeyIndex:     keyIndex,
					KeyThreshold: key.threshold,
				}
			}
			keyIndex++
		}
	}

	return best
}
