package spr

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Simulate generates a sequence of exactly n symbols whose pattern
// transition behaviour mimics the training sequence. n <= 0 yields "".
//
// All n uniform draws are taken up front from a deterministic RNG seeded
// by Options.Seed, so a fixed configuration reproduces the same output no
// matter how sampling below unfolds. The first symbol is sampled from the
// no-context prediction; each later symbol is conditioned on the trailing
// min(i, n_p) symbols generated so far. Sampling walks the alphabet in
// order and picks the first symbol whose cumulative probability reaches
// the draw.
//
// Probability vectors are memoized per trailing subsequence in a cache
// scoped to this call — repeated Simulate calls never share state.
//
// Errors: propagated from Predict (ErrDegenerateModel when the generated
// tail has no support at any scale).
func (m *Model) Simulate(n int) (string, error) {
	if n <= 0 {
		return "", nil
	}

	rng := rngFromSeed(m.opts.Seed)
	draws := make([]float64, n)
	for i := range draws {
		draws[i] = rng.Float64()
	}

	_, probs, err := m.Predict("")
	if err != nil {
		return "", fmt.Errorf("Simulate: %w", err)
	}

	symbols := m.alpha.Symbols()
	out := make([]rune, 0, n)
	out = append(out, symbols[sample(probs, draws[0])])

	memo := map[string][]float64{}
	for i := 1; i < n; i++ {
		k := i
		if k > len(m.ptps) {
			k = len(m.ptps)
		}
		sub := string(out[len(out)-k:])

		probs, ok := memo[sub]
		if !ok {
			if _, probs, err = m.Predict(sub); err != nil {
				return "", fmt.Errorf("Simulate: symbol %d: %w", i, err)
			}
			memo[sub] = probs
		}
		out = append(out, symbols[sample(probs, draws[i])])
	}

	return string(out), nil
}

// sample picks the first index whose cumulative probability mass meets or
// exceeds draw. The vector sums to 1, but rounding can leave the last
// cumulative value a hair short of a draw close to 1; the last index
// absorbs that case.
func sample(probs []float64, draw float64) int {
	cum := make([]float64, len(probs))
	floats.CumSum(cum, probs)

	for j, c := range cum {
		if draw <= c {
			return j
		}
	}

	return len(cum) - 1
}
