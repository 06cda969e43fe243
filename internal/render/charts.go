package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/cheerioskun/termchart/internal/chart"
	"github.com/cheerioskun/termchart/internal/format"
)

// Histogram renders a value histogram: statistics header, scale line and one
// row per bucket. One formatter serves every label so the unit is consistent
// across the chart.
func (r *Renderer) Histogram(h *chart.Histogram) string {
	var b strings.Builder
	s := h.Summary()
	f := r.formatter(h.Precision(), s.Min, s.Max)
	r.writeStats(&b, s, f)

	widthRange := len(f.Format(s.Min))
	if w := len(f.Format(s.Max)); w > widthRange {
		widthRange = w
	}
	widthCount := digits(h.Top())
	scale := h.BarScale(r.maxBarLen(widthRange + widthCount))
	r.writeScale(&b, scale)
	for _, bc := range h.Counts() {
		label := fmt.Sprintf("%*s .. %*s",
			widthRange, f.Format(bc.Lo), widthRange, f.Format(bc.Hi))
		r.writeRow(&b, label, bc.Count, widthCount, scale)
	}
	return b.String()
}

// TimeHistogram renders a time-bucketed histogram. Bucket labels use a
// layout matched to the bucket step.
func (r *Renderer) TimeHistogram(th *chart.TimeHistogram) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Matches: %s.\n", r.accent.Render(fmt.Sprintf("%d", th.Total())))
	scale := th.BarScale(r.width)
	r.writeScale(&b, scale)
	layout := format.DateLayout(th.Step())
	widthCount := digits(th.Top())
	for _, bc := range th.Counts() {
		r.writeRow(&b, bc.Start.Format(layout), bc.Count, widthCount, scale)
	}
	return b.String()
}

// MatchBar renders per-term match counts in input order.
func (r *Renderer) MatchBar(mb *chart.MatchBar) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Matches: %s.\n", r.accent.Render(fmt.Sprintf("%d", mb.Total())))
	scale := mb.BarScale(r.width)
	r.writeScale(&b, scale)
	widthCount := digits(mb.Top())
	for _, row := range mb.Rows() {
		label := fmt.Sprintf("%-*s", mb.LabelWidth(), row.Label)
		r.writeRow(&b, label, row.Count, widthCount, scale)
	}
	return b.String()
}

// CommonTerms renders the most frequent captured terms, highest first.
func (r *Renderer) CommonTerms(ct *chart.CommonTerms) string {
	rows := ct.Top()
	if len(rows) == 0 {
		return "No data\n"
	}
	var b strings.Builder
	labelWidth := 1
	for _, row := range rows {
		if len(row.Term) > labelWidth {
			labelWidth = len(row.Term)
		}
	}
	scale := ct.BarScale(r.width)
	r.writeScale(&b, scale)
	widthCount := digits(rows[0].Count)
	for _, row := range rows {
		label := fmt.Sprintf("%*s", labelWidth, row.Term)
		r.writeRow(&b, label, row.Count, widthCount, scale)
	}
	return b.String()
}

// XYPlot renders a plot of chunk averages: highest row first, a dot wherever
// a column's average falls within the row's band.
func (r *Renderer) XYPlot(p *chart.XYPlot) string {
	var b strings.Builder
	s := p.Summary()
	f := r.formatter(p.Precision(), s.Min, s.Max)
	r.writeStats(&b, s, f)

	rows := p.Rows()
	yWidth := 1
	for _, v := range rows {
		if w := len(f.Format(v)); w > yWidth {
			yWidth = w
		}
	}
	// Top row is open-ended so the maximum always lands somewhere.
	r.writeXYRow(&b, p.Columns(), rows[len(rows)-1], math.Inf(1), yWidth, f)
	for k := len(rows) - 1; k > 0; k-- {
		r.writeXYRow(&b, p.Columns(), rows[k-1], rows[k], yWidth, f)
	}
	return b.String()
}

func (r *Renderer) writeXYRow(b *strings.Builder, cols []float64, lo, hi float64, yWidth int, f *format.ValueFormatter) {
	cells := make([]string, len(cols))
	for x, v := range cols {
		if v >= lo && v < hi {
			cells[x] = DotGlyph
		} else {
			cells[x] = " "
		}
	}
	fmt.Fprintf(b, "[%s] %s\n",
		r.label.Render(fmt.Sprintf("%*s", yWidth, f.Format(lo))),
		r.bar.Render(strings.Join(cells, "")))
}
