package search

// Params holds the polynomial hash parameters for Find.
//
// Fields:
//   - Modulus — large positive integer, ideally prime; bounds every hash value.
//   - Base    — polynomial base in [0, Modulus).
//
// Poor choices raise the collision rate and therefore the number of
// verification passes, but never the correctness of the result.
// Keep Modulus below 2^31 so intermediate products fit in int64.
type Params struct {
	Modulus int64
	Base    int64
}

// Valid reports whether p can drive the rolling hash: a positive modulus
// and a base inside [0, Modulus).
func (p Params) Valid() bool {
	return p.Modulus > 0 && p.Base >= 0 && p.Base < p.Modulus
}

// Find returns every start index i (0-based, i+len(pattern) <= len(seq))
// with seq[i:i+len(pattern)] equal to pattern, in increasing order.
//
// Algorithm: Rabin–Karp. The pattern hash and the first window hash are
// computed by Horner's rule; each subsequent window hash is obtained in
// O(1) by removing the leading symbol's contribution, shifting, and adding
// the trailing symbol. Every hash match is only a candidate — it is
// confirmed symbol-by-symbol before being accepted, since collisions are
// possible under any finite modulus.
//
// An empty pattern, or one longer than seq, yields a nil result.
// Symbols outside any particular alphabet are fine: they hash like any
// other rune and simply compare unequal during verification.
//
// Complexity: O(N) amortized plus O(L) per hash candidate.
// Precondition: p.Valid(); see spr.Options for up-front validation.
func Find(seq, pattern []rune, p Params) []int {
	n, l := len(seq), len(pattern)
	if l == 0 || l > n {
		return nil
	}

	mod := p.Modulus

	// Hash of the pattern and of the first window, via Horner's rule.
	var patHash, winHash int64
	for i := 0; i < l; i++ {
		patHash = (patHash*p.Base + int64(pattern[i])) % mod
		winHash = (winHash*p.Base + int64(seq[i])) % mod
	}

	// lead = Base^(L-1) mod Modulus, the weight of the window's leading symbol.
	lead := int64(1)
	for i := 1; i < l; i++ {
		lead = (lead * p.Base) % mod
	}

	var out []int
	for i := 0; ; i++ {
		if winHash == patHash && verify(seq[i:i+l], pattern) {
			out = append(out, i)
		}
		if i+l == n {
			break
		}
		// Slide the window: drop seq[i], append seq[i+l].
		winHash = (winHash - int64(seq[i])*lead%mod + mod) % mod
		winHash = (winHash*p.Base + int64(seq[i+l])) % mod
	}

	return out
}

// verify confirms a hash candidate by direct comparison.
func verify(window, pattern []rune) bool {
	for i := range pattern {
		if window[i] != pattern[i] {
			return false
		}
	}

	return true
}
