package render

import (
	"errors"
	"fmt"
	"strings"
)

// ErrShape indicates the data block, format list and header lists passed
// to Table disagree on dimensions.
var ErrShape = errors.New("render: table dimensions disagree")

// Table formats a numeric block as an aligned text table.
//
// Parameters:
//   - data     — the block, one inner slice per row.
//   - formats  — one printf verb per column; verbs containing 'd' render
//     the value as an integer (counts and totals are stored as float64 in
//     the block but must print without a decimal point).
//   - colHeads — one header per column.
//   - rowHeads — one header per row, printed as the leading column.
//
// Columns are right-aligned to the widest cell or header; a dashed rule
// separates the header row from the body. Returns ErrShape when any
// dimension disagrees.
func Table(data [][]float64, formats []string, colHeads, rowHeads []string) (string, error) {
	cols := len(colHeads)
	if len(formats) != cols || len(data) != len(rowHeads) {
		return "", fmt.Errorf("Table: %dx%d block, %d formats, %d row heads: %w",
			len(data), cols, len(formats), len(rowHeads), ErrShape)
	}

	cells := make([][]string, len(data))
	for r, row := range data {
		if len(row) != cols {
			return "", fmt.Errorf("Table: row %d has %d cells, want %d: %w", r, len(row), cols, ErrShape)
		}
		cells[r] = make([]string, cols)
		for c, v := range row {
			cells[r][c] = formatCell(formats[c], v)
		}
	}

	// Column widths: headers vs cells; column 0 is the row-header gutter.
	widths := make([]int, cols+1)
	for _, h := range rowHeads {
		if len(h) > widths[0] {
			widths[0] = len(h)
		}
	}
	for c, h := range colHeads {
		widths[c+1] = len(h)
	}
	for _, row := range cells {
		for c, cell := range row {
			if len(cell) > widths[c+1] {
				widths[c+1] = len(cell)
			}
		}
	}

	var b strings.Builder
	writeRow := func(head string, row []string) {
		fmt.Fprintf(&b, "%*s", widths[0], head)
		for c, cell := range row {
			fmt.Fprintf(&b, "  %*s", widths[c+1], cell)
		}
		b.WriteByte('\n')
	}

	writeRow("", colHeads)
	rule := make([]string, cols)
	for c := range rule {
		rule[c] = strings.Repeat("-", widths[c+1])
	}
	writeRow(strings.Repeat("-", widths[0]), rule)
	for r, row := range cells {
		writeRow(rowHeads[r], row)
	}

	return b.String(), nil
}

// formatCell applies a printf verb to v, downcasting for integer verbs.
func formatCell(format string, v float64) string {
	if strings.ContainsRune(format, 'd') {
		return fmt.Sprintf(format, int64(v))
	}

	return fmt.Sprintf(format, v)
}
