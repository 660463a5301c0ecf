package matchsort

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lexkit/matchsort/rank"
)

func ranked(r rank.Ranking, keyIndex int, value string) RankedItem[string] {
	return RankedItem[string]{Item: value, Rank: r, KeyIndex: keyIndex, RankedValue: value}
}

func TestCompareRanked(t *testing.T) {
	panicTiebreak := func(a, b RankedItem[string]) int {
		panic("tiebreak must not be consulted")
	}

	t.Run("higher rank sorts first", func(t *testing.T) {
		a := ranked(rank.Equal, 0, "a")
		b := ranked(rank.Contains, 0, "b")
		assert.Negative(t, CompareRanked(a, b, panicTiebreak))
		assert.Positive(t, CompareRanked(b, a, panicTiebreak))
	})

	t.Run("lower key index breaks rank ties", func(t *testing.T) {
		a := ranked(rank.Contains, 0, "a")
		b := ranked(rank.Contains, 1, "b")
		assert.Negative(t, CompareRanked(a, b, panicTiebreak))
		assert.Positive(t, CompareRanked(b, a, panicTiebreak))
	})

	t.Run("tiebreak decides full ties", func(t *testing.T) {
		a := ranked(rank.Contains, 0, "apple")
		b := ranked(rank.Contains, 0, "banana")
		assert.Negative(t, CompareRanked(a, b, ByRankedValue[string]))
		assert.Positive(t, CompareRanked(b, a, ByRankedValue[string]))
	})

	t.Run("nil tiebreak leaves ties equal", func(t *testing.T) {
		a := ranked(rank.Contains, 0, "apple")
		b := ranked(rank.Contains, 0, "banana")
		assert.Zero(t, CompareRanked(a, b, nil))
	})

	t.Run("fuzzy sub-scores order within the tier", func(t *testing.T) {
		tight := ranked(rank.Matches(1.5), 0, "a")
		loose := ranked(rank.Matches(1.1), 0, "b")
		assert.Negative(t, CompareRanked(tight, loose, panicTiebreak))
	})
}

func TestByRankedValue(t *testing.T) {
	a := ranked(rank.Contains, 0, "apple")
	b := ranked(rank.Contains, 0, "banana")
	assert.Negative(t, ByRankedValue(a, b))
	assert.Positive(t, ByRankedValue(b, a))
	assert.Zero(t, ByRankedValue(a, a))

	// Bytewise, so uppercase sorts before lowercase.
	upper := ranked(rank.Contains, 0, "Banana")
	assert.Positive(t, ByRankedValue(a, upper))
}
