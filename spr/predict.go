package spr

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Predict returns the most likely next symbol after context, together with
// the full probability vector in alphabet order.
//
// An empty context means "continue the training sequence": the trailing
// n_p symbols of the model's own sequence are used. Otherwise the trailing
// min(len(context), n_p) symbols of context drive the prediction.
//
// For each usable scale i, the relative-frequency row of the trailing i
// symbols is added to the vote. A scale whose row was never observed
// (zero total) abstains: it contributes zeros and is excluded from the
// averaging denominator. The averaged vector sums to 1; the arg-max symbol
// is returned, ties resolving to the earliest alphabet symbol.
//
// Errors:
//   - ngram.ErrUnknownSymbol (wrapped) — context contains a symbol with no
//     row in any scale; distinct from a valid zero-count row.
//   - ErrDegenerateModel — every scale abstained, so there is nothing to
//     average; surfaced instead of dividing by zero.
func (m *Model) Predict(context string) (string, []float64, error) {
	ctx := []rune(context)
	if len(ctx) == 0 {
		ctx = tail(m.seq, len(m.ptps))
	}

	w := len(ctx)
	if w > len(m.ptps) {
		w = len(m.ptps)
	}

	sums := make([]float64, m.alpha.Size())
	adjusted := w
	for i := 1; i <= w; i++ {
		sub := string(ctx[len(ctx)-i:])
		row, err := m.alpha.Index(sub)
		if err != nil {
			return "", nil, fmt.Errorf("Predict: scale %d: %w", i, err)
		}

		mat := m.ptps[i-1]
		if mat.Totals[row] == 0 {
			adjusted-- // pattern never observed at this scale: abstain
			continue
		}
		floats.Add(sums, mat.RelFreq[row])
	}

	if adjusted == 0 {
		return "", nil, fmt.Errorf("Predict(%q): %w", string(ctx), ErrDegenerateModel)
	}
	floats.Scale(1/float64(adjusted), sums)

	best := 0
	for j := 1; j < len(sums); j++ {
		if sums[j] > sums[best] {
			best = j
		}
	}

	return m.alpha.Symbol(best), sums, nil
}

// tail returns the last n elements of seq (all of them when n >= len).
func tail(seq []rune, n int) []rune {
	if n >= len(seq) {
		return seq
	}

	return seq[len(seq)-n:]
}
