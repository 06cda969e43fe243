package chart

import (
	"fmt"

	"gonum.org/v1/gonum/stat"
)

// XYPlot holds data for a 2D plot where each column is the average of a chunk
// of consecutive input values and rows are evenly spaced value levels.
type XYPlot struct {
	cols      []float64
	rows      []float64
	summary   Summary
	precision *int
}

// NewXYPlot builds a plot from a materialized sample slice. `width` is the
// number of columns (capped to the input length) and `height` the number of
// rows.
func NewXYPlot(values []float64, width, height int, precision *int) (*XYPlot, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("building plot: %w", ErrNoData)
	}
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("plot dimensions must be positive, got %dx%d", width, height)
	}
	summary, err := Summarize(values)
	if err != nil {
		return nil, err
	}
	if width > len(values) {
		width = len(values)
	}

	p := &XYPlot{summary: summary, precision: precision}
	chunk := len(values) / width
	for i := 0; i < len(values); i += chunk {
		end := i + chunk
		if end > len(values) {
			end = len(values)
		}
		p.cols = append(p.cols, stat.Mean(values[i:end], nil))
	}
	step := (summary.Max - summary.Min) / float64(height)
	for y := 0; y < height; y++ {
		p.rows = append(p.rows, summary.Min+step*float64(y))
	}
	return p, nil
}

// Columns returns the per-column averages, left to right.
func (p *XYPlot) Columns() []float64 { return p.cols }

// Rows returns the row levels, bottom to top.
func (p *XYPlot) Rows() []float64 { return p.rows }

// Summary returns the statistics over the full input.
func (p *XYPlot) Summary() Summary { return p.summary }

// Precision returns the fixed display precision, or nil for human units.
func (p *XYPlot) Precision() *int { return p.precision }
