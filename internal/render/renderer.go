// Package render turns finished chart aggregates into terminal text. It is a
// presentation collaborator only: bucket math, statistics and unit selection
// all happen upstream, and the renderer consumes their results.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/cheerioskun/termchart/internal/chart"
	"github.com/cheerioskun/termchart/internal/format"
)

// BarGlyph is repeated to draw histogram bars.
const BarGlyph = "∎"

// DotGlyph marks data points on XY plots.
const DotGlyph = "●"

// Budget for brackets and separators around labels and counts in a row.
const extraChars = 10

// Config carries the presentation choices. Color is decided once, at
// construction, and never toggled mid-stream.
type Config struct {
	// Width is the terminal width budget in characters.
	Width int
	// Color enables ANSI styling of labels, counts and bars.
	Color bool
}

// Renderer renders charts with a fixed width budget and style set.
type Renderer struct {
	width  int
	label  lipgloss.Style
	count  lipgloss.Style
	bar    lipgloss.Style
	accent lipgloss.Style
}

// New creates a renderer from explicit configuration.
func New(cfg Config) *Renderer {
	width := cfg.Width
	if width <= 0 {
		width = 110
	}
	r := &Renderer{
		width:  width,
		label:  lipgloss.NewStyle(),
		count:  lipgloss.NewStyle(),
		bar:    lipgloss.NewStyle(),
		accent: lipgloss.NewStyle(),
	}
	if cfg.Color {
		r.label = r.label.Foreground(lipgloss.Color("4"))
		r.count = r.count.Foreground(lipgloss.Color("2"))
		r.bar = r.bar.Foreground(lipgloss.Color("1"))
		r.accent = r.accent.Foreground(lipgloss.Color("4"))
	}
	return r
}

// Width returns the configured terminal width budget.
func (r *Renderer) Width() int { return r.width }

func (r *Renderer) formatter(precision *int, min, max float64) *format.ValueFormatter {
	if precision != nil {
		return format.NewFormatter(*precision)
	}
	return format.NewRangeFormatter(min, max)
}

// writeStats renders the shared statistics header.
func (r *Renderer) writeStats(b *strings.Builder, s chart.Summary, f *format.ValueFormatter) {
	fmt.Fprintf(b, "Samples = %s; Min = %s; Max = %s\n",
		r.accent.Render(fmt.Sprintf("%d", s.Samples)),
		r.accent.Render(f.Format(s.Min)),
		r.accent.Render(f.Format(s.Max)))
	fmt.Fprintf(b, "Average = %s; Variance = %s; STD = %s\n",
		r.accent.Render(f.Format(s.Mean)),
		r.accent.Render(fmt.Sprintf("%.3f", s.Variance)),
		r.accent.Render(fmt.Sprintf("%.3f", s.StdDev)))
	fmt.Fprintf(b, "p50 = %s; p90 = %s; p95 = %s; p99 = %s\n",
		r.accent.Render(f.Format(s.P50)),
		r.accent.Render(f.Format(s.P90)),
		r.accent.Render(f.Format(s.P95)),
		r.accent.Render(f.Format(s.P99)))
}

// writeScale renders the "Each ∎ represents ..." line.
func (r *Renderer) writeScale(b *strings.Builder, scale int) {
	fmt.Fprintf(b, "Each %s represents a count of %s\n",
		r.bar.Render(BarGlyph),
		r.accent.Render(fmt.Sprintf("%d", scale)))
}

// writeRow renders one "[label] [count] bar" chart row.
func (r *Renderer) writeRow(b *strings.Builder, label string, count, countWidth, scale int) {
	fmt.Fprintf(b, "[%s] [%s] %s\n",
		r.label.Render(label),
		r.count.Render(fmt.Sprintf("%*d", countWidth, count)),
		r.bar.Render(strings.Repeat(BarGlyph, count/scale)))
}

// maxBarLen returns the glyph budget left for bars after labels and counts
// take their share. Falls back to 75 when the width budget is too tight.
func (r *Renderer) maxBarLen(fixedWidth int) int {
	if r.width < fixedWidth+extraChars {
		return 75
	}
	return r.width - fixedWidth - extraChars
}

func digits(n int) int {
	return len(fmt.Sprintf("%d", n))
}
