// Package ngram provides ordered symbol alphabets and the lexicographically
// sorted lists of all fixed-length patterns (ngrams) over them.
//
// ✨ Key features:
//   - Alphabet: validated, ordered, immutable set of distinct symbols
//   - All / Only: every S^L pattern list via a sort-free column recurrence —
//     the longest list is assembled from repeated alphabet columns, and each
//     shorter list is derived from it by truncation, never regenerated
//   - Index: closed-form O(L) row index of a pattern within its list,
//     replacing any linear scan over S^L entries
//
// Ordering is load-bearing: pattern transition matrices index their rows by
// these lists, and Index must agree with the generated order exactly. Both
// follow the alphabet's own declared symbol order.
//
// ⚙️ Usage:
//
//	a, err := ngram.New("abc")
//	lists := a.All(3)        // lists[0] len 3, lists[1] len 9, lists[2] len 27
//	row, err := a.Index("bc") // 5, the position of "bc" in lists[1]
package ngram
