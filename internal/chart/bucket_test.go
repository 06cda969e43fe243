package chart

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildBucketsLinear(t *testing.T) {
	b, err := BuildBuckets(0, 10, 5, ScaleLinear)
	require.NoError(t, err)

	assert.Equal(t, 5, b.Len())
	assert.Equal(t, 0.0, b.Min())
	assert.Equal(t, 10.0, b.Max())
	for i := 0; i < b.Len(); i++ {
		lo, hi := b.Bounds(i)
		assert.InDelta(t, 2.0, hi-lo, 1e-12)
	}
}

func TestBuildBucketsLogRatios(t *testing.T) {
	b, err := BuildBuckets(1, 1000, 3, ScaleLog)
	require.NoError(t, err)

	// Geometric spacing keeps the hi/lo ratio constant across buckets.
	lo0, hi0 := b.Bounds(0)
	for i := 1; i < b.Len(); i++ {
		lo, hi := b.Bounds(i)
		assert.InDelta(t, hi0/lo0, hi/lo, 1e-9)
	}
	assert.Equal(t, 1.0, b.Min())
	assert.Equal(t, 1000.0, b.Max())
}

func TestBuildBucketsLogRejectsNonPositiveMin(t *testing.T) {
	for _, min := range []float64{0, -1, -0.001} {
		_, err := BuildBuckets(min, 10, 4, ScaleLog)
		assert.ErrorIs(t, err, ErrInvalidRange)
	}
}

func TestBuildBucketsDegenerateRange(t *testing.T) {
	b, err := BuildBuckets(3.5, 3.5, 20, ScaleLinear)
	require.NoError(t, err)

	require.Equal(t, 1, b.Len())
	i, ok := b.Index(3.5)
	assert.True(t, ok)
	assert.Equal(t, 0, i)
	_, ok = b.Index(3.6)
	assert.False(t, ok)
}

func TestBuildBucketsRejectsBadInput(t *testing.T) {
	_, err := BuildBuckets(0, 10, 0, ScaleLinear)
	assert.Error(t, err)

	_, err = BuildBuckets(10, 0, 5, ScaleLinear)
	assert.Error(t, err)

	_, err = BuildBuckets(math.NaN(), 10, 5, ScaleLinear)
	assert.ErrorIs(t, err, ErrInvalidSample)

	_, err = BuildBuckets(0, math.Inf(1), 5, ScaleLinear)
	assert.ErrorIs(t, err, ErrInvalidSample)
}

func TestBucketSetIndex(t *testing.T) {
	b, err := BuildBuckets(0, 10, 5, ScaleLinear)
	require.NoError(t, err)

	tests := []struct {
		v    float64
		want int
		ok   bool
	}{
		{0, 0, true},
		{1.99, 0, true},
		{2, 1, true},
		{9.99, 4, true},
		{10, 4, true}, // max lands in the last bucket
		{-0.01, 0, false},
		{10.01, 0, false},
	}
	for _, tc := range tests {
		i, ok := b.Index(tc.v)
		assert.Equal(t, tc.ok, ok, "value %v", tc.v)
		if tc.ok {
			assert.Equal(t, tc.want, i, "value %v", tc.v)
		}
	}
}

func TestBucketSetIndexLog(t *testing.T) {
	b, err := BuildBuckets(1, 10000, 4, ScaleLog)
	require.NoError(t, err)

	// Each bucket covers one decade.
	for i, v := range []float64{5, 50, 500, 5000} {
		got, ok := b.Index(v)
		require.True(t, ok)
		assert.Equal(t, i, got, "value %v", v)
	}
}

func TestScaleString(t *testing.T) {
	assert.Equal(t, "linear", ScaleLinear.String())
	assert.Equal(t, "logarithmic", ScaleLog.String())
}
