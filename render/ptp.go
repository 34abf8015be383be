package render

import (
	"fmt"
	"math"

	"github.com/katalvlaran/symseq/ngram"
	"github.com/katalvlaran/symseq/ptp"
	"github.com/katalvlaran/symseq/spr"
)

// MatrixTable renders a PTP matrix: per pattern row, the follower counts
// for each alphabet symbol, the total, and the relative frequencies.
// Count columns share a width fitted to the largest total; frequencies
// print with four decimals. With hideMissing, rows whose pattern was never
// observed (zero total) are dropped from the output.
//
// grams must be the ngram list the matrix rows are indexed by.
// Returns ErrShape (wrapped) when grams and the matrix disagree.
func MatrixTable(m *ptp.Matrix, alpha *ngram.Alphabet, grams []string, hideMissing bool) (string, error) {
	if len(grams) != m.Rows() {
		return "", fmt.Errorf("MatrixTable: %d grams for %d rows: %w", len(grams), m.Rows(), ErrShape)
	}

	countFmt := fmt.Sprintf("%%%dd", intWidth(maxTotal(m)))

	formats := make([]string, 0, 2*m.Symbols+1)
	colHeads := make([]string, 0, 2*m.Symbols+1)
	for j := 0; j < m.Symbols; j++ {
		formats = append(formats, countFmt)
		colHeads = append(colHeads, alpha.Symbol(j))
	}
	formats = append(formats, countFmt)
	colHeads = append(colHeads, "Tot")
	for j := 0; j < m.Symbols; j++ {
		formats = append(formats, "%0.4f")
		colHeads = append(colHeads, alpha.Symbol(j))
	}

	var data [][]float64
	var rowHeads []string
	for r := 0; r < m.Rows(); r++ {
		if hideMissing && m.Totals[r] == 0 {
			continue
		}
		row := make([]float64, 0, 2*m.Symbols+1)
		for _, c := range m.Counts[r] {
			row = append(row, float64(c))
		}
		row = append(row, float64(m.Totals[r]))
		row = append(row, m.RelFreq[r]...)
		data = append(data, row)
		rowHeads = append(rowHeads, grams[r])
	}

	return Table(data, formats, colHeads, rowHeads)
}

// ModelMatrixTable renders one retained scale of a built model.
func ModelMatrixTable(m *spr.Model, scale int, hideMissing bool) (string, error) {
	mat, err := m.PTP(scale)
	if err != nil {
		return "", err
	}
	grams, err := m.Ngrams(scale)
	if err != nil {
		return "", err
	}

	return MatrixTable(mat, m.Alphabet(), grams, hideMissing)
}

// maxTotal returns the largest row total, at least 1 so width math holds
// for all-zero matrices.
func maxTotal(m *ptp.Matrix) int {
	mx := 1
	for _, t := range m.Totals {
		if t > mx {
			mx = t
		}
	}

	return mx
}

// intWidth returns the decimal digit count of a positive integer.
func intWidth(n int) int {
	return int(math.Log10(float64(n))) + 1
}
