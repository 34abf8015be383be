// Package symseq is an in-memory toolkit for Symbolic Pattern Recognition
// (SPR) over sequences drawn from a finite alphabet — multi-scale pattern
// transition models for prediction, simulation and sequence comparison.
//
// 🚀 What is symseq?
//
//	A small, deterministic library that learns, for every pattern length up
//	to a bound, the empirical distribution of the symbol following each
//	observed pattern. The per-length tables (PTP matrices) form a
//	multi-scale model of the sequence:
//		• Exact matching: Rabin–Karp rolling hash with full verification
//		• Ngram generation: sort-free lexicographic recurrence
//		• Sparsity-driven model sizing: stop once patterns get too rare
//		• Prediction: evenly-weighted vote across all retained scales
//		• Simulation: reproducible sampling from the learned transitions
//		• Distance: padded L1 comparison between two models
//
// ✨ Why choose symseq?
//
//   - Exact counts – no sketches, no silent hash collisions
//   - Deterministic – fixed hash parameters and seed ⇒ identical output
//   - Minimal API – one Build call returns a fully-populated, read-only Model
//
// Under the hood, everything is organized under five subpackages:
//
//	search/ — exact multi-occurrence substring search (rolling hash)
//	ngram/  — alphabets, lexicographic ngram lists, closed-form row index
//	ptp/    — pattern transition probability matrices and their builder
//	spr/    — the Model: build, Predict, Simulate, Distance
//	render/ — human-readable tables and charts for built models
//
// Quick taste:
//
//	m, err := spr.Build("abc", "aabcabccbabcabcbaabc", spr.DefaultOptions())
//	sym, probs, err := m.Predict("")
//
//	go get github.com/katalvlaran/symseq/spr
package symseq
