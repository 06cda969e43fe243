package chart

import (
	"fmt"
	"time"
)

// TimeBucketCount is one rendered time-histogram row.
type TimeBucketCount struct {
	Start time.Time
	Count int
}

// TimeHistogram buckets a timestamp stream over its observed time range.
// Timestamps are reduced to second offsets relative to the earliest one and
// fed through the same bucketing engine as numeric histograms, so the
// degenerate all-identical-timestamps case collapses to a single bucket
// instead of failing.
type TimeHistogram struct {
	buckets *BucketSet
	starts  []time.Time
	counts  []int
	top     int
	total   int
	min     time.Time
	max     time.Time
	step    time.Duration
}

// NewTimeHistogram buckets the given timestamps into at most `intervals`
// buckets. Returns ErrNoData for an empty input.
func NewTimeHistogram(ts []time.Time, intervals int) (*TimeHistogram, error) {
	if len(ts) == 0 {
		return nil, fmt.Errorf("building time histogram: %w", ErrNoData)
	}
	if intervals <= 0 {
		intervals = 20
	}

	min, max := ts[0], ts[0]
	for _, t := range ts[1:] {
		if t.Before(min) {
			min = t
		}
		if t.After(max) {
			max = t
		}
	}

	span := max.Sub(min)
	buckets, err := BuildBuckets(0, span.Seconds(), intervals, ScaleLinear)
	if err != nil {
		return nil, err
	}

	n := buckets.Len()
	th := &TimeHistogram{
		buckets: buckets,
		starts:  make([]time.Time, n),
		counts:  make([]int, n),
		min:     min,
		max:     max,
		step:    span / time.Duration(n),
	}
	for i := 0; i < n; i++ {
		th.starts[i] = min.Add(span / time.Duration(n) * time.Duration(i))
	}
	for _, t := range ts {
		th.add(t)
	}
	return th, nil
}

func (th *TimeHistogram) add(t time.Time) {
	if t.Before(th.min) || t.After(th.max) {
		return
	}
	slot, ok := th.buckets.Index(t.Sub(th.min).Seconds())
	if !ok {
		return
	}
	th.counts[slot]++
	th.total++
	if th.counts[slot] > th.top {
		th.top = th.counts[slot]
	}
}

// Counts returns the ordered time-bucket rows.
func (th *TimeHistogram) Counts() []TimeBucketCount {
	out := make([]TimeBucketCount, len(th.counts))
	for i := range out {
		out[i] = TimeBucketCount{Start: th.starts[i], Count: th.counts[i]}
	}
	return out
}

// Step returns the width of one bucket.
func (th *TimeHistogram) Step() time.Duration { return th.step }

// Total returns the number of bucketed timestamps.
func (th *TimeHistogram) Total() int { return th.total }

// Top returns the largest bucket count.
func (th *TimeHistogram) Top() int { return th.top }

// BarScale returns the count-per-glyph factor for a bar of at most
// maxBarWidth glyphs.
func (th *TimeHistogram) BarScale(maxBarWidth int) int {
	return barScale(th.top, maxBarWidth)
}
