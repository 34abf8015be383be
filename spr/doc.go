// Package spr implements Symbolic Pattern Recognition: a multi-scale
// statistical model of a symbol sequence built from Pattern Transition
// Probability (PTP) matrices, with prediction, simulation and
// inter-sequence distance on top.
//
// 🚀 How it works
//
//	Build walks pattern lengths L = 1, 2, … and, per length, tabulates how
//	often each possible pattern is followed by each alphabet symbol. A
//	scale is only built while the sparsity index — distinct observed
//	patterns over S^L possible ones — stays at or above the configured
//	threshold; beyond that point the matrices are too empty to be
//	statistically useful. Each scale's found patterns prune the candidate
//	search at the next scale, which loses nothing: a length-(L+1) pattern
//	can only occur if its length-L prefix did.
//
// ✨ Key features:
//   - two-phase construction: Options in, fully-populated immutable Model
//     out — there is no partially-initialized state to misuse
//   - Predict: evenly-weighted average of the context row across all
//     retained scales; scales with zero support abstain
//   - Simulate: reproducible sampling against cumulative probabilities,
//     with a per-call memo cache
//   - Distance: L1 difference of relative-frequency blocks, zero-padded so
//     differing alphabets and scale counts compare fine
//
// ⚙️ Usage:
//
//	m, err := spr.Build("abc", "aabcabccbabcabcbaabc", spr.DefaultOptions())
//	if err != nil { ... }
//	next, probs, err := m.Predict("")
//	clone, err := m.Simulate(20)
//
// Capacity note: the build materializes every ngram list up to MaxLength
// before the sparsity loop, and a scale-L matrix has S^L rows. Bound
// MaxLength accordingly for large alphabets.
//
// Determinism: fixed Options (including Seed) ⇒ identical models,
// predictions and simulations. Build is single-threaded; scale L depends
// on scale L-1's found patterns, a genuine data dependency.
package spr
