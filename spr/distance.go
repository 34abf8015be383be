package spr

import "math"

// Distance measures the dissimilarity between two built models as the sum,
// over every scale up to the larger retained count, of absolute
// differences between their relative-frequency blocks.
//
// Mismatched shapes are a supported case, resolved internally: with
// S = max of the alphabet sizes and P = max of the retained scale counts,
// each model's scale block is zero-padded to S × S^scale (symbol-major),
// and a model missing a scale entirely contributes an all-zero block. The
// implicit convention is that a larger alphabet appends its extra symbols
// after the smaller one's.
//
// Symmetric by construction; Distance(m, m) == 0.
func (m *Model) Distance(other *Model) float64 {
	s := m.alpha.Size()
	if o := other.alpha.Size(); o > s {
		s = o
	}
	p := len(m.ptps)
	if o := len(other.ptps); o > p {
		p = o
	}

	var d float64
	for scale := 1; scale <= p; scale++ {
		cols := pow(s, scale)
		a := m.padBlock(scale, s, cols)
		b := other.padBlock(scale, s, cols)
		for j := 0; j < s; j++ {
			for r := 0; r < cols; r++ {
				d += math.Abs(a[j][r] - b[j][r])
			}
		}
	}

	return d
}

// padBlock returns the model's relative-frequency block for one scale as
// an s × cols symbol-major matrix: block[j][r] is the probability that
// symbol j follows pattern r. Rows and columns beyond the model's own
// alphabet and pattern range are zero, as is the whole block when the
// scale was not retained.
func (m *Model) padBlock(scale, s, cols int) [][]float64 {
	block := make([][]float64, s)
	for j := range block {
		block[j] = make([]float64, cols)
	}
	if scale > len(m.ptps) {
		return block
	}

	mat := m.ptps[scale-1]
	for r := 0; r < mat.Rows(); r++ {
		for j := 0; j < mat.Symbols; j++ {
			block[j][r] = mat.RelFreq[r][j]
		}
	}

	return block
}
