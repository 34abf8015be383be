package ngram_test

import (
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/symseq/ngram"
)

// TestNew_Validation covers the alphabet constructor sentinels.
func TestNew_Validation(t *testing.T) {
	_, err := ngram.New("")
	assert.ErrorIs(t, err, ngram.ErrEmptyAlphabet, "empty alphabet rejected")

	_, err = ngram.New("aba")
	assert.ErrorIs(t, err, ngram.ErrDuplicateSymbol, "duplicate symbol rejected")

	a, err := ngram.New("abc")
	require.NoError(t, err)
	assert.Equal(t, 3, a.Size())
	assert.Equal(t, "abc", a.String())
}

// TestOnly_SortedAndComplete checks the core generation property: exactly
// S^L distinct patterns, already in lexicographic order.
func TestOnly_SortedAndComplete(t *testing.T) {
	a, err := ngram.New("abc")
	require.NoError(t, err)

	for l := 1; l <= 4; l++ {
		grams := a.Only(l)
		require.Len(t, grams, pow(3, l), "length %d must list S^L patterns", l)

		assert.True(t, sort.StringsAreSorted(grams), "length %d list must be sorted", l)

		seen := make(map[string]struct{}, len(grams))
		for _, g := range grams {
			assert.Len(t, []rune(g), l, "pattern %q has wrong length", g)
			seen[g] = struct{}{}
		}
		assert.Len(t, seen, len(grams), "length %d list must be duplicate-free", l)
	}
}

// TestOnly_KnownLists pins exact outputs for tiny alphabets.
func TestOnly_KnownLists(t *testing.T) {
	a, err := ngram.New("ab")
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b"}, a.Only(1), "length-1 list is the alphabet")
	assert.Equal(t, []string{"aa", "ab", "ba", "bb"}, a.Only(2))
	assert.Equal(t,
		[]string{"aaa", "aab", "aba", "abb", "baa", "bab", "bba", "bbb"},
		a.Only(3))
	assert.Nil(t, a.Only(0), "non-positive length yields nothing")
}

// TestAll_MatchesOnly verifies the truncation recurrence: every list
// derived from the longest one equals the list generated directly.
func TestAll_MatchesOnly(t *testing.T) {
	a, err := ngram.New("abc")
	require.NoError(t, err)

	all := a.All(4)
	require.Len(t, all, 4)
	for l := 1; l <= 4; l++ {
		assert.Equal(t, a.Only(l), all[l-1], "All and Only disagree at length %d", l)
	}

	assert.Nil(t, a.All(0), "non-positive maxLength yields nothing")
}

// TestAll_PrefixProperty: the length-L list, reduced to its length-(L-1)
// prefixes with duplicates removed, equals the length-(L-1) list.
func TestAll_PrefixProperty(t *testing.T) {
	a, err := ngram.New("abcd")
	require.NoError(t, err)

	all := a.All(3)
	for l := 2; l <= 3; l++ {
		var prefixes []string
		for _, g := range all[l-1] {
			p := g[:len(g)-1]
			if len(prefixes) == 0 || prefixes[len(prefixes)-1] != p {
				prefixes = append(prefixes, p)
			}
		}
		assert.Equal(t, all[l-2], prefixes, "prefix reduction broken at length %d", l)
	}
}

// TestIndex_AgreesWithGeneratedOrder: the closed-form row index must match
// the pattern's position in the generated list — the load-bearing invariant
// shared with the PTP builder.
func TestIndex_AgreesWithGeneratedOrder(t *testing.T) {
	a, err := ngram.New("abc")
	require.NoError(t, err)

	for l := 1; l <= 3; l++ {
		for want, g := range a.Only(l) {
			got, err := a.Index(g)
			require.NoError(t, err)
			assert.Equal(t, want, got, "Index(%q)", g)
		}
	}
}

// TestIndex_UnknownSymbol distinguishes "no such row" from zero-count rows.
func TestIndex_UnknownSymbol(t *testing.T) {
	a, err := ngram.New("abc")
	require.NoError(t, err)

	_, err = a.Index("abz")
	assert.ErrorIs(t, err, ngram.ErrUnknownSymbol)
	assert.True(t, strings.Contains(err.Error(), "abz"), "error names the offending pattern")
}

func pow(base, exp int) int {
	out := 1
	for i := 0; i < exp; i++ {
		out *= base
	}

	return out
}
