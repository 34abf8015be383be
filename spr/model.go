package spr

import (
	"fmt"

	"github.com/katalvlaran/symseq/ngram"
	"github.com/katalvlaran/symseq/ptp"
)

// Sparsity is the diagnostic table of the sparsity-driven build: three
// parallel columns indexed by pattern length, truncated to the lengths
// actually evaluated — including, when the build stopped early, the length
// whose ratio fell below the threshold.
type Sparsity struct {
	// Observed[i] is the distinct-pattern count credited to length i+1.
	Observed []int

	// Possible[i] is S^(i+1), the count of all patterns of length i+1.
	Possible []int

	// Ratio[i] is Observed[i]/Possible[i], the sparsity index.
	Ratio []float64
}

// Len returns the number of evaluated lengths.
func (s Sparsity) Len() int { return len(s.Ratio) }

// Model is a fully-built SPR analysis: the immutable inputs plus every
// retained PTP matrix, their ngram lists, and the sparsity table. Models
// are read-only after Build; all methods are safe for concurrent readers.
type Model struct {
	alpha *ngram.Alphabet
	seq   []rune
	opts  Options

	ptps     []*ptp.Matrix
	grams    [][]string
	sparsity Sparsity
}

// Alphabet returns the model's alphabet.
func (m *Model) Alphabet() *ngram.Alphabet { return m.alpha }

// Sequence returns the training sequence.
func (m *Model) Sequence() string { return string(m.seq) }

// Scales returns n_p, the number of retained pattern lengths.
func (m *Model) Scales() int { return len(m.ptps) }

// PTP returns the retained matrix for the given scale in [1, Scales()].
func (m *Model) PTP(scale int) (*ptp.Matrix, error) {
	if scale < 1 || scale > len(m.ptps) {
		return nil, fmt.Errorf("PTP(%d): %w", scale, ErrNoSuchScale)
	}

	return m.ptps[scale-1], nil
}

// Ngrams returns the pattern list backing the given scale's matrix rows.
func (m *Model) Ngrams(scale int) ([]string, error) {
	if scale < 1 || scale > len(m.grams) {
		return nil, fmt.Errorf("Ngrams(%d): %w", scale, ErrNoSuchScale)
	}

	return m.grams[scale-1], nil
}

// Sparsity returns the build's sparsity table.
func (m *Model) Sparsity() Sparsity { return m.sparsity }

// BuildPTP builds a single PTP matrix from caller-supplied ngrams, outside
// the sparsity procedure, for manual inspection. reduced may be nil to
// search every pattern. The model's sequence, alphabet and hash parameters
// are used; the model itself is not modified.
func (m *Model) BuildPTP(grams, reduced []string) (*ptp.Matrix, []string, error) {
	return ptp.Build(m.seq, m.alpha, grams, reduced, m.opts.Hash)
}

// String summarizes the built model.
func (m *Model) String() string {
	return fmt.Sprintf("spr.Model(alphabet=%q, n=%d, scales=%d)",
		m.alpha.String(), len(m.seq), len(m.ptps))
}
