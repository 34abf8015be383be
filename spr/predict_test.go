package spr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/symseq/ngram"
	"github.com/katalvlaran/symseq/spr"
)

// TestPredict_Deterministic: in "ababab" every a is followed by b and
// every b by a, at both retained scales, so predictions are certain.
func TestPredict_Deterministic(t *testing.T) {
	m, err := spr.Build("abc", "ababab", spr.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, 2, m.Scales())

	sym, probs, err := m.Predict("ab")
	require.NoError(t, err)
	assert.Equal(t, "a", sym)
	assert.Equal(t, []float64{1, 0, 0}, probs)

	sym, probs, err = m.Predict("ba")
	require.NoError(t, err)
	assert.Equal(t, "b", sym)
	assert.Equal(t, []float64{0, 1, 0}, probs)
}

// TestPredict_EmptyContextUsesTrainingTail: Predict("") continues the
// training sequence from its trailing n_p symbols.
func TestPredict_EmptyContextUsesTrainingTail(t *testing.T) {
	m, err := spr.Build("abc", "ababab", spr.DefaultOptions())
	require.NoError(t, err)

	implicit, probsImplicit, err := m.Predict("")
	require.NoError(t, err)
	explicit, probsExplicit, err := m.Predict("ab")
	require.NoError(t, err)

	assert.Equal(t, explicit, implicit)
	assert.Equal(t, probsExplicit, probsImplicit)
}

// TestPredict_ArgMaxProperty: the returned symbol is always the arg-max of
// the returned vector, ties resolving to the earliest alphabet symbol.
func TestPredict_ArgMaxProperty(t *testing.T) {
	m, err := spr.Build("abc", articleSeq, spr.DefaultOptions())
	require.NoError(t, err)

	symbols := m.Alphabet().Symbols()
	for _, ctx := range []string{"a", "b", "c", "ab", "bc", "abc", "cba", articleSeq} {
		sym, probs, err := m.Predict(ctx)
		require.NoError(t, err, "context %q", ctx)

		require.Len(t, probs, 3)
		assert.InDelta(t, 1.0, floats.Sum(probs), 1e-12, "context %q: averaged vector sums to 1", ctx)

		best := 0
		for j := 1; j < len(probs); j++ {
			if probs[j] > probs[best] {
				best = j
			}
		}
		assert.Equal(t, string(symbols[best]), sym, "context %q", ctx)
	}
}

// TestPredict_TieBreaksToEarliestSymbol: "aabb" leaves a's follower split
// evenly between a and b at scale 1.
func TestPredict_TieBreaksToEarliestSymbol(t *testing.T) {
	m, err := spr.Build("ab", "aabb", spr.DefaultOptions())
	require.NoError(t, err)

	sym, probs, err := m.Predict("a")
	require.NoError(t, err)
	assert.Equal(t, []float64{0.5, 0.5}, probs)
	assert.Equal(t, "a", sym, "exact tie goes to the earlier alphabet symbol")
}

// TestPredict_ZeroSupportScaleAbstains: a scale whose row was never
// observed is dropped from the averaging weight but contributes zeros.
func TestPredict_ZeroSupportScaleAbstains(t *testing.T) {
	m, err := spr.Build("ab", "aabb", spr.DefaultOptions())
	require.NoError(t, err)
	require.GreaterOrEqual(t, m.Scales(), 2)

	// "bb" occurs only at the sequence end, so its scale-2 row is all
	// zero; the prediction must equal the pure scale-1 answer for "b".
	symCtx, probsCtx, err := m.Predict("bb")
	require.NoError(t, err)
	symB, probsB, err := m.Predict("b")
	require.NoError(t, err)

	assert.Equal(t, symB, symCtx)
	assert.Equal(t, probsB, probsCtx)
}

// TestPredict_DegenerateModel: every scale abstaining is an explicit
// error, not a NaN vector.
func TestPredict_DegenerateModel(t *testing.T) {
	m, err := spr.Build("abc", "ababab", spr.DefaultOptions())
	require.NoError(t, err)

	_, _, err = m.Predict("c")
	assert.ErrorIs(t, err, spr.ErrDegenerateModel, "c never occurs, so no scale has support")
}

// TestPredict_UnknownSymbol: a context symbol outside the alphabet is a
// lookup failure, distinct from a valid zero-count row.
func TestPredict_UnknownSymbol(t *testing.T) {
	m, err := spr.Build("abc", "ababab", spr.DefaultOptions())
	require.NoError(t, err)

	_, _, err = m.Predict("zb")
	assert.ErrorIs(t, err, ngram.ErrUnknownSymbol)
}

// TestPredict_ContextLongerThanScales uses only the trailing n_p symbols.
func TestPredict_ContextLongerThanScales(t *testing.T) {
	m, err := spr.Build("abc", "ababab", spr.DefaultOptions())
	require.NoError(t, err)

	long, probsLong, err := m.Predict("abababababab")
	require.NoError(t, err)
	short, probsShort, err := m.Predict("ab")
	require.NoError(t, err)

	assert.Equal(t, short, long)
	assert.Equal(t, probsShort, probsLong)
}
