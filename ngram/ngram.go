package ngram

// Generation works column-wise. For patterns of length L over S symbols,
// position c (counted from the low-order end) repeats each symbol S^c times
// and that block S^(L-1-c) times, giving a column of S^L entries; reading
// the columns high-to-low per row yields the full list already in
// lexicographic order — no sort over S^L elements ever happens.
//
// Shorter lists are torn down from the longest one: drop the high-order
// column and keep the first S^L entries of each remaining column. The
// length-1 list is the alphabet itself.

// Only returns the lexicographically sorted list of all S^length patterns
// of exactly the given length. length <= 0 yields nil.
//
// Complexity: O(L · S^L) time and space.
func (a *Alphabet) Only(length int) []string {
	if length <= 0 {
		return nil
	}

	return rows(a.columns(length))
}

// All returns the pattern lists for every length 1..maxLength, shortest
// first, so out[L-1] holds the S^L patterns of length L.
// maxLength <= 0 yields nil.
//
// The longest list is built once from the column recurrence; each shorter
// list is derived from the previous columns by truncation, which is cheaper
// than re-running the recurrence per length.
func (a *Alphabet) All(maxLength int) [][]string {
	if maxLength <= 0 {
		return nil
	}

	out := make([][]string, maxLength)
	cols := a.columns(maxLength)
	out[maxLength-1] = rows(cols)

	for l := maxLength - 1; l >= 2; l-- {
		// Drop the high-order column, keep the first S^l rows of the rest.
		keep := pow(a.Size(), l)
		cols = cols[:l]
		for c := range cols {
			cols[c] = cols[c][:keep]
		}
		out[l-1] = rows(cols)
	}

	out[0] = make([]string, a.Size())
	for i, r := range a.symbols {
		out[0][i] = string(r)
	}

	return out
}

// columns materializes the L per-position symbol columns for the given
// length; cols[c] is the low-to-high order column of S^L runes.
func (a *Alphabet) columns(length int) [][]rune {
	s := a.Size()
	total := pow(s, length)
	cols := make([][]rune, length)

	for c := 0; c < length; c++ {
		symRepeat := pow(s, c) // times each symbol repeats consecutively
		col := make([]rune, 0, total)
		for len(col) < total {
			for _, r := range a.symbols {
				for k := 0; k < symRepeat; k++ {
					col = append(col, r)
				}
			}
		}
		cols[c] = col
	}

	return cols
}

// rows joins columns high-to-low into the per-row pattern strings.
func rows(cols [][]rune) []string {
	n := len(cols[0])
	l := len(cols)
	out := make([]string, n)
	buf := make([]rune, l)

	for r := 0; r < n; r++ {
		for c := 0; c < l; c++ {
			buf[c] = cols[l-1-c][r]
		}
		out[r] = string(buf)
	}

	return out
}

// pow returns base^exp for small non-negative integer exponents.
func pow(base, exp int) int {
	out := 1
	for i := 0; i < exp; i++ {
		out *= base
	}

	return out
}
