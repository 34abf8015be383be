// Package render turns built SPR structures into human-readable output:
// aligned text tables for PTP matrices and sparsity diagnostics, and an
// HTML sparsity chart.
//
// Everything here consumes already-built models and returns strings or
// writes markup; nothing in this package participates in model
// construction or control flow.
//
// ✨ Key features:
//   - Table: generic numeric block + per-column printf verbs + headers
//   - MatrixTable: a PTP matrix with counts, totals and relative
//     frequencies, optionally hiding never-observed rows
//   - SparsityReport: the Obs/Poss/SI table the build procedure evaluates
//   - SparsityChart / WriteSparsityChart: go-echarts line chart of the
//     sparsity index by scale
package render
