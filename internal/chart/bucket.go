package chart

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// Scale selects how bucket boundaries are spaced.
type Scale int

const (
	ScaleLinear Scale = iota
	ScaleLog
)

func (s Scale) String() string {
	if s == ScaleLog {
		return "logarithmic"
	}
	return "linear"
}

var (
	// ErrInvalidRange is returned when a logarithmic bucket set is requested
	// over a range that is not strictly positive.
	ErrInvalidRange = errors.New("logarithmic scale requires a positive minimum")

	// ErrInvalidSample is returned when a NaN or infinite value is pushed.
	ErrInvalidSample = errors.New("sample is not a finite number")

	// ErrNoData is returned when an aggregate is built from zero valid samples.
	ErrNoData = errors.New("no samples to aggregate")
)

// BucketSet holds the ordered boundaries of a histogram. N+1 edges define N
// half-open intervals [edge[i], edge[i+1]); the last interval is closed on
// both ends. A BucketSet is immutable once built.
type BucketSet struct {
	edges      []float64
	scale      Scale
	degenerate bool
}

// BuildBuckets computes bucket boundaries for the given range.
//
// Linear boundaries are min + i*(max-min)/count. Logarithmic boundaries are
// geometric, min*(max/min)^(i/count), and require min > 0. The degenerate
// range min == max produces a single bucket whose edges both equal min, so
// that a stream of identical values (common for time histograms) still
// renders instead of dividing by zero.
func BuildBuckets(min, max float64, count int, scale Scale) (*BucketSet, error) {
	if count < 1 {
		return nil, fmt.Errorf("bucket count must be positive, got %d", count)
	}
	if math.IsNaN(min) || math.IsInf(min, 0) || math.IsNaN(max) || math.IsInf(max, 0) {
		return nil, ErrInvalidSample
	}
	if min > max {
		return nil, fmt.Errorf("invalid range: min %v > max %v", min, max)
	}
	if min == max {
		return &BucketSet{edges: []float64{min, min}, scale: scale, degenerate: true}, nil
	}
	if scale == ScaleLog && min <= 0 {
		return nil, fmt.Errorf("%w (min is %v)", ErrInvalidRange, min)
	}

	edges := make([]float64, count+1)
	edges[0] = min
	if scale == ScaleLog {
		ratio := max / min
		for i := 1; i < count; i++ {
			edges[i] = min * math.Pow(ratio, float64(i)/float64(count))
		}
	} else {
		span := max - min
		for i := 1; i < count; i++ {
			edges[i] = min + float64(i)*span/float64(count)
		}
	}
	// Pin the last edge so values exactly at max always classify.
	edges[count] = max
	return &BucketSet{edges: edges, scale: scale}, nil
}

// Len returns the number of intervals.
func (b *BucketSet) Len() int { return len(b.edges) - 1 }

// Min returns the lower boundary of the first bucket.
func (b *BucketSet) Min() float64 { return b.edges[0] }

// Max returns the upper boundary of the last bucket.
func (b *BucketSet) Max() float64 { return b.edges[len(b.edges)-1] }

// Scale reports the spacing mode the set was built with.
func (b *BucketSet) Scale() Scale { return b.scale }

// Bounds returns the boundaries of interval i.
func (b *BucketSet) Bounds(i int) (lo, hi float64) {
	return b.edges[i], b.edges[i+1]
}

// Index classifies a sample into a bucket: the greatest i such that
// edge[i] <= v, clamped into [0, Len()-1]. Values exactly at the maximum land
// in the last bucket. The second return value is false when v falls outside
// the range entirely.
func (b *BucketSet) Index(v float64) (int, bool) {
	if b.degenerate {
		return 0, v == b.edges[0]
	}
	if v < b.edges[0] || v > b.edges[len(b.edges)-1] {
		return 0, false
	}
	i := sort.Search(len(b.edges), func(k int) bool { return b.edges[k] > v }) - 1
	if i < 0 {
		i = 0
	}
	if last := b.Len() - 1; i > last {
		i = last
	}
	return i, true
}
