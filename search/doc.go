// Package search finds every occurrence of a pattern inside a symbol
// sequence using a polynomial rolling hash (Rabin–Karp) with mandatory
// verification, so results are exact for any choice of hash parameters.
//
// ✨ Key properties:
//   - all start indices, in increasing order — no false positives, no misses
//   - O(N) window hashing plus O(L) verification per hash candidate
//   - weak moduli only slow the search down; they never corrupt it
//   - zero-length or over-long patterns yield an empty result, not an error
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/symseq/search"
//
//	p := search.Params{Modulus: 4241, Base: 42}
//	idx := search.Find([]rune("aabcabc"), []rune("abc"), p)
//	// idx == [1, 4]
//
// Params are caller-supplied; validate them once with Params.Valid before
// running many searches (spr.Options does this during model construction).
package search
