package spr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/symseq/spr"
)

// distanceFixtures builds the three article sequences over {a,b,c}.
func distanceFixtures(t *testing.T) (s, star, starstar *spr.Model) {
	t.Helper()

	var err error
	s, err = spr.Build("abc", articleSeq, spr.DefaultOptions())
	require.NoError(t, err)
	star, err = spr.Build("abc", "abcbaabcabccbabcabcb", spr.DefaultOptions())
	require.NoError(t, err)
	starstar, err = spr.Build("abc", "bcbabcbaababcbababcc", spr.DefaultOptions())
	require.NoError(t, err)

	return s, star, starstar
}

// TestDistance_SelfIsZero: identical relative frequencies cancel exactly.
func TestDistance_SelfIsZero(t *testing.T) {
	s, _, _ := distanceFixtures(t)
	assert.Zero(t, s.Distance(s))
}

// TestDistance_Symmetric: distance is symmetric by construction.
func TestDistance_Symmetric(t *testing.T) {
	s, star, starstar := distanceFixtures(t)

	assert.Equal(t, s.Distance(star), star.Distance(s))
	assert.Equal(t, s.Distance(starstar), starstar.Distance(s))
	assert.Equal(t, star.Distance(starstar), starstar.Distance(star))
}

// TestDistance_Positive: genuinely different sequences are apart.
func TestDistance_Positive(t *testing.T) {
	s, star, _ := distanceFixtures(t)
	assert.Positive(t, s.Distance(star))
}

// TestDistance_MismatchedAlphabets: differing alphabet sizes are resolved
// by zero-padding, never surfaced as an error.
func TestDistance_MismatchedAlphabets(t *testing.T) {
	small, err := spr.Build("ab", "abababab", spr.DefaultOptions())
	require.NoError(t, err)
	large, err := spr.Build("abc", "ababab", spr.DefaultOptions())
	require.NoError(t, err)

	d := small.Distance(large)
	assert.Equal(t, d, large.Distance(small), "padding keeps symmetry")
	assert.GreaterOrEqual(t, d, 0.0)
}

// TestDistance_MismatchedScales: a model with fewer retained scales
// contributes all-zero blocks for the scales it lacks.
func TestDistance_MismatchedScales(t *testing.T) {
	opts := spr.DefaultOptions()
	opts.MaxLength = 1
	shallow, err := spr.Build("abc", articleSeq, opts)
	require.NoError(t, err)
	deep, err := spr.Build("abc", articleSeq, spr.DefaultOptions())
	require.NoError(t, err)

	require.Equal(t, 1, shallow.Scales())
	require.Equal(t, 4, deep.Scales())

	d := shallow.Distance(deep)
	assert.Equal(t, d, deep.Distance(shallow))
	assert.Positive(t, d, "the deep model's extra scales all count against zero blocks")
}
