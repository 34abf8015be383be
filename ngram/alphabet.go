package ngram

import (
	"errors"
	"fmt"
)

// ErrEmptyAlphabet indicates an alphabet with no symbols was requested.
// Usage: if errors.Is(err, ErrEmptyAlphabet) { /* supply symbols */ }.
var ErrEmptyAlphabet = errors.New("ngram: alphabet must not be empty")

// ErrDuplicateSymbol indicates the same symbol appeared twice in an
// alphabet specification; alphabets are ordered sets.
var ErrDuplicateSymbol = errors.New("ngram: duplicate symbol in alphabet")

// ErrUnknownSymbol indicates a pattern contains a symbol outside the
// alphabet, so it has no row in any ngram list.
var ErrUnknownSymbol = errors.New("ngram: symbol not in alphabet")

// Alphabet is an ordered, immutable set of distinct symbols. The declared
// order defines lexicographic order for every pattern list and row index
// derived from it.
type Alphabet struct {
	symbols []rune
	pos     map[rune]int
}

// New builds an Alphabet from the symbols of s, in order.
// Returns ErrEmptyAlphabet or ErrDuplicateSymbol on invalid input.
func New(s string) (*Alphabet, error) {
	symbols := []rune(s)
	if len(symbols) == 0 {
		return nil, ErrEmptyAlphabet
	}

	pos := make(map[rune]int, len(symbols))
	for i, r := range symbols {
		if _, dup := pos[r]; dup {
			return nil, fmt.Errorf("New(%q): %q: %w", s, r, ErrDuplicateSymbol)
		}
		pos[r] = i
	}

	return &Alphabet{symbols: symbols, pos: pos}, nil
}

// Size returns the number of symbols S.
func (a *Alphabet) Size() int { return len(a.symbols) }

// Symbols returns a copy of the symbols in declared order.
func (a *Alphabet) Symbols() []rune {
	out := make([]rune, len(a.symbols))
	copy(out, a.symbols)

	return out
}

// Symbol returns the i-th symbol as a string.
func (a *Alphabet) Symbol(i int) string { return string(a.symbols[i]) }

// PosOf returns the position of r in the alphabet, and whether it belongs.
func (a *Alphabet) PosOf(r rune) (int, bool) {
	i, ok := a.pos[r]

	return i, ok
}

// String renders the alphabet as its symbols in order.
func (a *Alphabet) String() string { return string(a.symbols) }

// Index returns the row of pattern within the lexicographically sorted list
// of all patterns of the same length (i.e. within Only(len(pattern))).
//
// The list is densely ordered, so the row follows in closed form: reading
// the pattern as a mixed-radix numeral over symbol positions,
// idx = ((p0*S + p1)*S + p2)... — O(L) instead of an O(S^L) scan.
//
// Returns ErrUnknownSymbol if any symbol of pattern is outside the alphabet.
func (a *Alphabet) Index(pattern string) (int, error) {
	idx := 0
	for _, r := range pattern {
		p, ok := a.pos[r]
		if !ok {
			return 0, fmt.Errorf("Index(%q): %q: %w", pattern, r, ErrUnknownSymbol)
		}
		idx = idx*len(a.symbols) + p
	}

	return idx, nil
}
