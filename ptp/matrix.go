package ptp

// Matrix is the pattern transition table for one pattern length.
//
// Rows follow the lexicographic pattern order of ngram.Alphabet.Only(Length);
// row r describes the pattern with ngram index r. Invariants:
//   - len(Counts) == len(Totals) == len(RelFreq) == Symbols^Length
//   - every row of Counts sums to the matching Totals entry
//   - every row of RelFreq sums to 1 when its total is positive, else
//     every entry is exactly 0
type Matrix struct {
	// Length is the pattern length L this matrix was built for.
	Length int

	// Symbols is the alphabet cardinality S (the number of count and
	// relative-frequency columns per row).
	Symbols int

	// Counts[r][j] is the exact number of times alphabet symbol j directly
	// followed pattern r in the sequence.
	Counts [][]int

	// Totals[r] is the row sum of Counts[r].
	Totals []int

	// RelFreq[r][j] is Counts[r][j]/Totals[r], or 0 when Totals[r] == 0.
	RelFreq [][]float64
}

// Rows returns the number of pattern rows, Symbols^Length.
func (m *Matrix) Rows() int { return len(m.Totals) }

// Observed returns the number of rows with at least one counted transition.
func (m *Matrix) Observed() int {
	n := 0
	for _, t := range m.Totals {
		if t > 0 {
			n++
		}
	}

	return n
}
