package rank

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRankingOrdering(t *testing.T) {
	// From strongest to weakest tier.
	ordered := []Ranking{
		CaseSensitiveEqual,
		Equal,
		StartsWith,
		WordStartsWith,
		Contains,
		Acronym,
		Matches(1.5),
		NoMatch,
	}

	for i := 0; i < len(ordered)-1; i++ {
		hi, lo := ordered[i], ordered[i+1]
		assert.Positive(t, hi.Compare(lo), "%s should outrank %s", hi, lo)
		assert.Negative(t, lo.Compare(hi), "%s should rank below %s", lo, hi)
		assert.True(t, lo.Less(hi))
		assert.False(t, hi.Less(lo))
	}
}

func TestRankingMatchesSubScore(t *testing.T) {
	t.Run("higher score wins", func(t *testing.T) {
		assert.Positive(t, Matches(1.5).Compare(Matches(1.1)))
		assert.Negative(t, Matches(1.1).Compare(Matches(1.5)))
	})

	t.Run("equal scores compare equal", func(t *testing.T) {
		assert.Zero(t, Matches(1.25).Compare(Matches(1.25)))
	})

	t.Run("maximum score stays below acronym", func(t *testing.T) {
		assert.Negative(t, Matches(2.0).Compare(Acronym))
		assert.Positive(t, Acronym.Compare(Matches(2.0)))
	})

	t.Run("nan scores compare equal", func(t *testing.T) {
		nan := Matches(math.NaN())
		assert.Zero(t, nan.Compare(Matches(1.5)))
		assert.Zero(t, Matches(1.5).Compare(nan))
		assert.Zero(t, nan.Compare(nan))
	})
}

func TestRankingCompareEqualTiers(t *testing.T) {
	for _, r := range []Ranking{CaseSensitiveEqual, Equal, StartsWith, WordStartsWith, Contains, Acronym, NoMatch} {
		assert.Zero(t, r.Compare(r), "%s vs itself", r)
		assert.False(t, r.Less(r))
	}
}

func TestRankingScore(t *testing.T) {
	score, ok := Matches(1.5).Score()
	require.True(t, ok)
	assert.Equal(t, 1.5, score)

	_, ok = Contains.Score()
	assert.False(t, ok)
	_, ok = NoMatch.Score()
	assert.False(t, ok)
}

func TestRankingString(t *testing.T) {
	assert.Equal(t, "CaseSensitiveEqual", CaseSensitiveEqual.String())
	assert.Equal(t, "Equal", Equal.String())
	assert.Equal(t, "StartsWith", StartsWith.String())
	assert.Equal(t, "WordStartsWith", WordStartsWith.String())
	assert.Equal(t, "Contains", Contains.String())
	assert.Equal(t, "Acronym", Acronym.String())
	assert.Equal(t, "NoMatch", NoMatch.String())
	assert.Equal(t, "Matches(1.500)", Matches(1.5).String())
}

func TestParseTier(t *testing.T) {
	cases := []struct {
		name string
		want Ranking
	}{
		{"case-sensitive-equal", CaseSensitiveEqual},
		{"CaseSensitiveEqual", CaseSensitiveEqual},
		{"equal", Equal},
		{"starts-with", StartsWith},
		{"StartsWith", StartsWith},
		{"word-starts-with", WordStartsWith},
		{"contains", Contains},
		{"acronym", Acronym},
		{"matches", Matches(1.0)},
		{"no-match", NoMatch},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseTier(tc.name)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	t.Run("unknown tier", func(t *testing.T) {
		_, err := ParseTier("bogus")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUnknownTier)
	})
}
