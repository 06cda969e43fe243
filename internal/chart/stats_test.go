package chart

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccumulatorSingleSample(t *testing.T) {
	var a Accumulator
	require.NoError(t, a.Push(5.0))

	assert.Equal(t, uint64(1), a.Count())
	assert.Equal(t, 5.0, a.Min())
	assert.Equal(t, 5.0, a.Max())
	assert.Equal(t, 5.0, a.Mean())
	assert.Equal(t, 0.0, a.Variance())
	assert.Equal(t, 0.0, a.StdDev())
}

func TestAccumulatorKnownValues(t *testing.T) {
	var a Accumulator
	for _, v := range []float64{1, 2, 3, 4, 5} {
		require.NoError(t, a.Push(v))
	}

	assert.Equal(t, uint64(5), a.Count())
	assert.Equal(t, 1.0, a.Min())
	assert.Equal(t, 5.0, a.Max())
	assert.InDelta(t, 3.0, a.Mean(), 1e-12)
	assert.InDelta(t, 2.0, a.Variance(), 1e-12)
	assert.InDelta(t, math.Sqrt(2), a.StdDev(), 1e-12)
}

func TestAccumulatorIdenticalValues(t *testing.T) {
	var a Accumulator
	for i := 0; i < 100; i++ {
		require.NoError(t, a.Push(42.0))
	}
	assert.Equal(t, 0.0, a.Variance())
}

func TestAccumulatorRejectsNonFinite(t *testing.T) {
	var a Accumulator
	require.NoError(t, a.Push(1.0))

	before := a.Snapshot()
	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		assert.ErrorIs(t, a.Push(v), ErrInvalidSample)
	}
	assert.Equal(t, before, a.Snapshot())
}

func TestSummarizePercentiles(t *testing.T) {
	values := make([]float64, 100)
	for i := range values {
		values[i] = float64(i) // 0..99
	}
	s, err := Summarize(values)
	require.NoError(t, err)

	assert.Equal(t, uint64(100), s.Samples)
	assert.Equal(t, 50.0, s.P50)
	assert.Equal(t, 90.0, s.P90)
	assert.Equal(t, 95.0, s.P95)
	assert.Equal(t, 99.0, s.P99)
}

func TestSummarizeEmpty(t *testing.T) {
	_, err := Summarize(nil)
	assert.ErrorIs(t, err, ErrNoData)
}

func TestSummarizeNonFinite(t *testing.T) {
	_, err := Summarize([]float64{1, math.NaN(), 3})
	assert.ErrorIs(t, err, ErrInvalidSample)
}
