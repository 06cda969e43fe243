package chart

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHistogramCountsEverySample(t *testing.T) {
	values := []float64{-2, -1.2, -1.1, -1, 2, 2.2, 2.4, 3}
	h, err := NewHistogram(values, Options{Intervals: 8})
	require.NoError(t, err)

	total := 0
	for _, bc := range h.Counts() {
		total += bc.Count
	}
	assert.Equal(t, len(values), total)
	assert.Equal(t, 0, h.Discarded())

	s := h.Summary()
	assert.Equal(t, uint64(len(values)), s.Samples)
	assert.Equal(t, -2.0, s.Min)
	assert.Equal(t, 3.0, s.Max)
}

func TestNewHistogramDeclaredBounds(t *testing.T) {
	min, max := 0.0, 10.0
	values := []float64{-5, 1, 2, 3, 15}
	h, err := NewHistogram(values, Options{Intervals: 5, Min: &min, Max: &max})
	require.NoError(t, err)

	// Out-of-bounds samples are discarded before statistics.
	assert.Equal(t, 2, h.Discarded())
	s := h.Summary()
	assert.Equal(t, uint64(3), s.Samples)
	assert.Equal(t, 1.0, s.Min)
	assert.Equal(t, 3.0, s.Max)

	// Bucket edges come from the declared bounds, not the observed ones.
	assert.Equal(t, 0.0, h.Buckets().Min())
	assert.Equal(t, 10.0, h.Buckets().Max())
}

func TestNewHistogramDiscardsNonFinite(t *testing.T) {
	values := []float64{1, math.NaN(), 2, math.Inf(1), 3}
	h, err := NewHistogram(values, Options{Intervals: 3})
	require.NoError(t, err)

	assert.Equal(t, 2, h.Discarded())
	assert.Equal(t, uint64(3), h.Summary().Samples)
}

func TestNewHistogramNoData(t *testing.T) {
	_, err := NewHistogram(nil, Options{})
	assert.ErrorIs(t, err, ErrNoData)

	min := 100.0
	_, err = NewHistogram([]float64{1, 2, 3}, Options{Min: &min})
	assert.ErrorIs(t, err, ErrNoData)
}

func TestNewHistogramIntervalsCappedToSamples(t *testing.T) {
	h, err := NewHistogram([]float64{1, 2, 3}, Options{Intervals: 20})
	require.NoError(t, err)
	assert.Equal(t, 3, h.Buckets().Len())
}

func TestNewHistogramIdenticalValues(t *testing.T) {
	h, err := NewHistogram([]float64{7, 7, 7, 7}, Options{Intervals: 10})
	require.NoError(t, err)

	counts := h.Counts()
	require.Len(t, counts, 1)
	assert.Equal(t, 4, counts[0].Count)
	assert.Equal(t, 0.0, h.Summary().Variance)
}

func TestNewHistogramLogScale(t *testing.T) {
	values := []float64{1, 10, 100, 1000}
	h, err := NewHistogram(values, Options{Intervals: 4, Scale: ScaleLog})
	require.NoError(t, err)
	assert.Equal(t, ScaleLog, h.Buckets().Scale())

	_, err = NewHistogram([]float64{0, 1, 2}, Options{Intervals: 3, Scale: ScaleLog})
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestInsertRejectsNonFinite(t *testing.T) {
	h, err := NewHistogram([]float64{1, 2, 3}, Options{Intervals: 3})
	require.NoError(t, err)

	assert.ErrorIs(t, h.Insert(math.NaN()), ErrInvalidSample)
	assert.Equal(t, uint64(3), h.Summary().Samples)
}

func TestBarScale(t *testing.T) {
	tests := []struct {
		top, width, want int
	}{
		{10, 100, 1},
		{100, 100, 1},
		{101, 100, 2},
		{250, 100, 3},
		{0, 100, 1},
		{5, 0, 5}, // width clamped to one glyph
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, barScale(tc.top, tc.width), "top=%d width=%d", tc.top, tc.width)
	}
}
