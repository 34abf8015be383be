package spr

import (
	"fmt"

	"github.com/katalvlaran/symseq/ngram"
	"github.com/katalvlaran/symseq/ptp"
)

// Build constructs a complete SPR model for sequence over alphabet.
//
// Procedure (sparsity-driven, strictly sequential in L):
//  1. For L = 1..MaxLength, credit an Observed count to L: the number of
//     distinct in-alphabet symbols of the sequence at L=1, and the number
//     of distinct length-(L-1) prefixes of the previous scale's found
//     patterns afterwards. Possible is S^L.
//  2. If Observed/Possible falls below Threshold, stop without building
//     this scale's matrix — it is guaranteed too sparse to be useful. The
//     triggering length stays in the sparsity table for diagnostics.
//  3. Otherwise build the scale's PTP matrix, restricting the candidate
//     search to the previous scale's found patterns (the full ngram list
//     at L=1), and carry the new found patterns forward.
//
// The retained scale count n_p is the number of lengths built; when every
// length up to MaxLength passes, n_p == MaxLength.
//
// Errors: configuration sentinels from Options.validate, alphabet
// sentinels from ngram.New. A sequence with no in-alphabet symbols yields
// a model with zero retained scales, not an error.
func Build(alphabet, sequence string, opts Options) (*Model, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	alpha, err := ngram.New(alphabet)
	if err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}

	m := &Model{
		alpha: alpha,
		seq:   []rune(sequence),
		opts:  opts,
	}

	gramsAll := alpha.All(opts.MaxLength)
	found := distinctSymbols(m.seq, alpha)

	var sp Sparsity
	for l := 1; l <= opts.MaxLength; l++ {
		observed := len(found)
		if l > 1 {
			observed = distinctPrefixes(found)
		}
		possible := pow(alpha.Size(), l)
		ratio := float64(observed) / float64(possible)

		sp.Observed = append(sp.Observed, observed)
		sp.Possible = append(sp.Possible, possible)
		sp.Ratio = append(sp.Ratio, ratio)

		if ratio < opts.Threshold {
			break // this scale would be too sparse; keep it only as a diagnostic row
		}

		reduced := found
		if l == 1 {
			reduced = nil // search the full ngram list at the first scale
		}
		mat, fnd, err := ptp.Build(m.seq, alpha, gramsAll[l-1], reduced, opts.Hash)
		if err != nil {
			return nil, fmt.Errorf("Build: scale %d: %w", l, err)
		}

		m.ptps = append(m.ptps, mat)
		m.grams = append(m.grams, gramsAll[l-1])
		found = fnd
	}

	m.sparsity = sp

	return m, nil
}

// distinctSymbols lists the distinct in-alphabet symbols of seq, in
// alphabet order, as one-symbol patterns.
func distinctSymbols(seq []rune, alpha *ngram.Alphabet) []string {
	present := make([]bool, alpha.Size())
	for _, r := range seq {
		if i, ok := alpha.PosOf(r); ok {
			present[i] = true
		}
	}

	var out []string
	for i, p := range present {
		if p {
			out = append(out, alpha.Symbol(i))
		}
	}

	return out
}

// distinctPrefixes counts the distinct drop-last-symbol prefixes of a
// sorted pattern list; sorted input keeps equal prefixes adjacent.
func distinctPrefixes(sorted []string) int {
	n := 0
	prev := ""
	for _, s := range sorted {
		r := []rune(s)
		p := string(r[:len(r)-1])
		if n == 0 || p != prev {
			n++
			prev = p
		}
	}

	return n
}

// pow returns base^exp for small non-negative integer exponents.
func pow(base, exp int) int {
	out := 1
	for i := 0; i < exp; i++ {
		out *= base
	}

	return out
}
