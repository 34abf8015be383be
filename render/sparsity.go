package render

import (
	"io"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/katalvlaran/symseq/spr"
)

// SparsityReport renders the diagnostic table of a sparsity-driven build:
// per evaluated pattern length, the observed pattern count, the possible
// count S^L, and their ratio (the sparsity index).
func SparsityReport(s spr.Sparsity) (string, error) {
	data := make([][]float64, s.Len())
	rowHeads := make([]string, s.Len())
	for i := 0; i < s.Len(); i++ {
		data[i] = []float64{float64(s.Observed[i]), float64(s.Possible[i]), s.Ratio[i]}
		rowHeads[i] = strconv.Itoa(i + 1)
	}

	return Table(data, []string{"%d", "%d", "%0.4f"}, []string{"Obs", "Poss", "SI"}, rowHeads)
}

// SparsityChart builds a line chart of the sparsity index by pattern
// length, ready to be rendered into HTML.
func SparsityChart(s spr.Sparsity) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Sparsity index",
			Subtitle: "observed/possible patterns by length",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: "pattern length",
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name:  "SI",
			Scale: opts.Bool(true),
		}),
	)

	xs := make([]string, s.Len())
	ys := make([]opts.LineData, s.Len())
	for i := 0; i < s.Len(); i++ {
		xs[i] = strconv.Itoa(i + 1)
		ys[i] = opts.LineData{Value: s.Ratio[i]}
	}
	line.SetXAxis(xs).AddSeries("SI", ys)

	return line
}

// WriteSparsityChart renders the sparsity chart as a standalone HTML
// document to w.
func WriteSparsityChart(w io.Writer, s spr.Sparsity) error {
	return SparsityChart(s).Render(w)
}
