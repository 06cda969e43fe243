package chart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewXYPlotChunksAverages(t *testing.T) {
	values := []float64{1, 3, 5, 7, 9, 11}
	p, err := NewXYPlot(values, 3, 4, nil)
	require.NoError(t, err)

	// Six values over three columns: pairwise averages.
	assert.Equal(t, []float64{2, 6, 10}, p.Columns())

	rows := p.Rows()
	require.Len(t, rows, 4)
	assert.Equal(t, 1.0, rows[0])
	// Evenly spaced levels over [min, max).
	step := rows[1] - rows[0]
	for k := 1; k < len(rows); k++ {
		assert.InDelta(t, step, rows[k]-rows[k-1], 1e-12)
	}

	s := p.Summary()
	assert.Equal(t, 1.0, s.Min)
	assert.Equal(t, 11.0, s.Max)
	assert.InDelta(t, 6.0, s.Mean, 1e-12)
}

func TestNewXYPlotWidthCappedToInput(t *testing.T) {
	p, err := NewXYPlot([]float64{1, 2, 3}, 100, 5, nil)
	require.NoError(t, err)
	assert.Len(t, p.Columns(), 3)
}

func TestNewXYPlotRejectsBadInput(t *testing.T) {
	_, err := NewXYPlot(nil, 10, 10, nil)
	assert.ErrorIs(t, err, ErrNoData)

	_, err = NewXYPlot([]float64{1}, 0, 10, nil)
	assert.Error(t, err)

	_, err = NewXYPlot([]float64{1}, 10, 0, nil)
	assert.Error(t, err)
}
