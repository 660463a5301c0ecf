package rank

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCloseness(t *testing.T) {
	t.Run("spread across the word", func(t *testing.T) {
		// p-l-g-n-d spans rune positions 0..9 in "playground".
		got := Closeness("playground", "plgnd")
		score, ok := got.Score()
		require.True(t, ok)
		assert.InDelta(t, 1.0+1.0/9.0, score, 1e-12)
	})

	t.Run("no common runes", func(t *testing.T) {
		assert.Equal(t, NoMatch, Closeness("abc", "xyz"))
	})

	t.Run("single rune match", func(t *testing.T) {
		got := Closeness("abc", "b")
		score, ok := got.Score()
		require.True(t, ok)
		assert.Equal(t, 2.0, score)
	})

	t.Run("adjacent runes", func(t *testing.T) {
		// a(0) b(1) c(2): spread 2.
		got := Closeness("abcdef", "abc")
		score, ok := got.Score()
		require.True(t, ok)
		assert.Equal(t, 1.5, score)
	})

	t.Run("wider spread scores lower", func(t *testing.T) {
		got := Closeness("abcd", "ad")
		score, ok := got.Score()
		require.True(t, ok)
		assert.InDelta(t, 1.0+1.0/3.0, score, 1e-12)
	})

	t.Run("query rune absent", func(t *testing.T) {
		assert.Equal(t, NoMatch, Closeness("abcd", "az"))
	})

	t.Run("order must be preserved", func(t *testing.T) {
		// Both runes occur, but not in query order.
		assert.Equal(t, NoMatch, Closeness("ba", "ab"))
	})

	t.Run("query longer than candidate", func(t *testing.T) {
		assert.Equal(t, NoMatch, Closeness("ab", "abc"))
	})

	t.Run("case sensitive scan", func(t *testing.T) {
		// Callers lowercase both sides before this step.
		assert.Equal(t, NoMatch, Closeness("ABC", "abc"))
	})

	t.Run("empty query", func(t *testing.T) {
		got := Closeness("abc", "")
		score, ok := got.Score()
		require.True(t, ok)
		assert.Equal(t, 2.0, score)
	})

	t.Run("multibyte runes count as one position", func(t *testing.T) {
		// a(0) é(1) c(2): spread 2, score 1.5 regardless of byte widths.
		got := Closeness("aéc", "ac")
		score, ok := got.Score()
		require.True(t, ok)
		assert.Equal(t, 1.5, score)
	})
}

func TestClosenessScoreRange(t *testing.T) {
	candidates := []string{"playground", "abcdefghij", "hello world", "aéiöu"}
	queries := []string{"pg", "aj", "hw", "au", "plgnd"}

	for _, c := range candidates {
		for _, q := range queries {
			got := Closeness(c, q)
			score, ok := got.Score()
			if !ok {
				assert.Equal(t, NoMatch, got)
				continue
			}
			assert.False(t, math.IsNaN(score))
			assert.GreaterOrEqual(t, score, 1.0, "%q vs %q", c, q)
			assert.LessOrEqual(t, score, 2.0, "%q vs %q", c, q)
		}
	}
}
