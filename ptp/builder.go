package ptp

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/symseq/ngram"
	"github.com/katalvlaran/symseq/search"
)

// ErrNoPatterns indicates Build was handed an empty ngram list; there is
// no pattern length to tabulate.
var ErrNoPatterns = errors.New("ptp: empty ngram list")

// Build tabulates the PTP matrix for the pattern length of grams.
//
// Parameters:
//   - seq     — the sequence under analysis (never mutated).
//   - alpha   — the alphabet that generated grams; defines row order.
//   - grams   — the full ngram list for one length L (alpha.Only(L) order).
//   - reduced — optional subset of grams known to occur (a previous scale's
//     found patterns). nil means search every pattern in grams. Rows for
//     candidates outside reduced stay zero, keeping the matrix shape intact.
//   - hp      — hash parameters for the occurrence search.
//
// For each candidate, every occurrence contributes the single symbol that
// follows it; an occurrence ending at the last position of seq has no
// follower and is discarded. Followers outside the alphabet are ignored —
// they have no count column and no valid next-scale candidate.
//
// Returns the matrix and the found length-(L+1) patterns (candidate +
// observed follower), in lexicographic order. The second return feeds the
// next scale's reduced set.
//
// Errors: ErrNoPatterns on an empty grams list; ngram.ErrUnknownSymbol
// (wrapped) when a candidate pattern contains a symbol outside alpha, so
// it has no row to write to.
func Build(seq []rune, alpha *ngram.Alphabet, grams, reduced []string, hp search.Params) (*Matrix, []string, error) {
	if len(grams) == 0 {
		return nil, nil, ErrNoPatterns
	}

	s := alpha.Size()
	m := &Matrix{
		Length:  len([]rune(grams[0])),
		Symbols: s,
		Counts:  make([][]int, len(grams)),
		Totals:  make([]int, len(grams)),
		RelFreq: make([][]float64, len(grams)),
	}
	for r := range grams {
		m.Counts[r] = make([]int, s)
		m.RelFreq[r] = make([]float64, s)
	}

	candidates := grams
	if reduced != nil {
		candidates = reduced
	}

	// Candidates arrive sorted (full list by construction, reduced list by
	// the previous Build), and followers are appended in alphabet order per
	// candidate, so found stays sorted without a merge pass.
	var found []string
	for _, cand := range candidates {
		row, err := alpha.Index(cand)
		if err != nil {
			return nil, nil, fmt.Errorf("ptp.Build: %w", err)
		}

		counts := m.Counts[row]
		for _, start := range search.Find(seq, []rune(cand), hp) {
			next := start + m.Length
			if next >= len(seq) {
				continue // occurrence at the very end: nothing follows it
			}
			if j, ok := alpha.PosOf(seq[next]); ok {
				counts[j]++
			}
		}

		total := 0
		for _, c := range counts {
			total += c
		}
		m.Totals[row] = total
		if total == 0 {
			continue
		}
		for j, c := range counts {
			m.RelFreq[row][j] = float64(c) / float64(total)
			if c > 0 {
				found = append(found, cand+alpha.Symbol(j))
			}
		}
	}

	return m, found, nil
}
