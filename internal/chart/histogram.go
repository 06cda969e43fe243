package chart

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Options configures a Histogram.
type Options struct {
	// Intervals is the number of buckets to display. Defaults to 20 and is
	// capped to the number of input samples.
	Intervals int
	// Scale selects linear or logarithmic bucket spacing.
	Scale Scale
	// Min and Max, when set, declare the histogram range explicitly. Samples
	// outside the declared range are discarded before statistics.
	Min *float64
	Max *float64
	// Precision, when set, fixes the number of decimals for display and
	// bypasses the human-unit heuristics.
	Precision *int
}

// BucketCount is one rendered histogram row: an interval and its count.
type BucketCount struct {
	Lo    float64
	Hi    float64
	Count int
}

// Histogram aggregates a value stream into a bucket set plus running
// statistics. Build one with NewHistogram; it owns its BucketSet, counts and
// accumulator exclusively.
type Histogram struct {
	buckets   *BucketSet
	counts    []int
	top       int
	acc       Accumulator
	samples   []float64
	discarded int
	precision *int
}

// NewHistogram builds a histogram from a materialized sample slice.
//
// Range resolution: declared Min/Max bounds win; otherwise the range is the
// observed minimum and maximum of the input. The full slice is required up
// front precisely because bucket edges depend on that range; callers that
// want single-pass streaming must declare both bounds.
//
// Non-finite samples are discarded, as are samples outside declared bounds.
// If nothing remains, ErrNoData is returned rather than a histogram whose
// statistics would be undefined.
func NewHistogram(values []float64, opts Options) (*Histogram, error) {
	kept := make([]float64, 0, len(values))
	discarded := 0
	for _, v := range values {
		if !finite(v) {
			discarded++
			continue
		}
		if opts.Min != nil && v < *opts.Min {
			discarded++
			continue
		}
		if opts.Max != nil && v > *opts.Max {
			discarded++
			continue
		}
		kept = append(kept, v)
	}
	if len(kept) == 0 {
		return nil, fmt.Errorf("building histogram: %w", ErrNoData)
	}

	min := floats.Min(kept)
	max := floats.Max(kept)
	if opts.Min != nil {
		min = *opts.Min
	}
	if opts.Max != nil {
		max = *opts.Max
	}

	intervals := opts.Intervals
	if intervals <= 0 {
		intervals = 20
	}
	if intervals > len(kept) {
		intervals = len(kept)
	}

	buckets, err := BuildBuckets(min, max, intervals, opts.Scale)
	if err != nil {
		return nil, err
	}
	h := &Histogram{
		buckets:   buckets,
		counts:    make([]int, buckets.Len()),
		samples:   make([]float64, 0, len(kept)),
		discarded: discarded,
		precision: opts.Precision,
	}
	for _, v := range kept {
		if err := h.Insert(v); err != nil {
			return nil, err
		}
	}
	return h, nil
}

// Insert adds a single sample. Non-finite values are rejected with
// ErrInvalidSample without touching accumulated state; values outside the
// bucket range are counted as discarded and otherwise ignored.
func (h *Histogram) Insert(v float64) error {
	if !finite(v) {
		return ErrInvalidSample
	}
	slot, ok := h.buckets.Index(v)
	if !ok {
		h.discarded++
		return nil
	}
	if err := h.acc.Push(v); err != nil {
		return err
	}
	h.samples = append(h.samples, v)
	h.counts[slot]++
	if h.counts[slot] > h.top {
		h.top = h.counts[slot]
	}
	return nil
}

// Counts returns the ordered bucket rows.
func (h *Histogram) Counts() []BucketCount {
	out := make([]BucketCount, h.buckets.Len())
	for i := range out {
		lo, hi := h.buckets.Bounds(i)
		out[i] = BucketCount{Lo: lo, Hi: hi, Count: h.counts[i]}
	}
	return out
}

// Summary returns the statistics snapshot over all classified samples,
// including percentiles.
func (h *Histogram) Summary() Summary {
	s, err := Summarize(h.samples)
	if err != nil {
		// Unreachable for histograms built through NewHistogram, which
		// guarantees at least one classified sample.
		return h.acc.Snapshot()
	}
	return s
}

// Buckets exposes the underlying immutable bucket set.
func (h *Histogram) Buckets() *BucketSet { return h.buckets }

// Top returns the largest bucket count.
func (h *Histogram) Top() int { return h.top }

// Discarded returns how many input samples were rejected (non-finite or out
// of the declared range).
func (h *Histogram) Discarded() int { return h.discarded }

// Precision returns the fixed display precision, or nil for human units.
func (h *Histogram) Precision() *int { return h.precision }

// BarScale returns the count-per-glyph factor for a terminal bar of at most
// maxBarWidth glyphs: ceil(top/maxBarWidth), never below one, so the largest
// bucket exactly fills the width and no bar ever exceeds it.
func (h *Histogram) BarScale(maxBarWidth int) int {
	return barScale(h.top, maxBarWidth)
}

func barScale(top, maxBarWidth int) int {
	if maxBarWidth < 1 {
		maxBarWidth = 1
	}
	scale := (top + maxBarWidth - 1) / maxBarWidth
	if scale < 1 {
		return 1
	}
	return scale
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
