// Package ptp builds Pattern Transition Probability (PTP) matrices: for a
// fixed pattern length L, one row per possible pattern holding the exact
// counts of each symbol observed immediately after that pattern in a
// sequence, the row total, and the total-normalized relative frequencies.
//
// ✨ Key features:
//   - exact occurrence counting via symseq/search (verified rolling hash)
//   - rows indexed by the lexicographic order of symseq/ngram lists,
//     resolved in closed form per candidate
//   - optional reduced candidate set: a length-(L+1) pattern can only occur
//     if its length-L prefix did, so the found patterns of one scale prune
//     the search at the next — without ever suppressing a legitimate row
//     that is queried directly
//   - relative frequency of an unobserved row is 0.0, never a division fault
//
// Build returns both the matrix and the found length-(L+1) patterns in
// lexicographic order, ready to be the next scale's candidate set.
package ptp
