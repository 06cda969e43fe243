package chart

import (
	"math"
	"sort"
)

// Accumulator maintains running statistics over an unbounded stream of
// samples using Welford's online algorithm. The zero value is ready to use.
type Accumulator struct {
	count uint64
	min   float64
	max   float64
	mean  float64
	m2    float64
}

// Push folds a sample into the running statistics. Non-finite values are
// rejected with ErrInvalidSample and leave the accumulator unchanged; the
// caller decides whether to skip or abort.
func (a *Accumulator) Push(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return ErrInvalidSample
	}
	a.count++
	if a.count == 1 {
		a.min = v
		a.max = v
	} else {
		a.min = math.Min(a.min, v)
		a.max = math.Max(a.max, v)
	}
	delta := v - a.mean
	a.mean += delta / float64(a.count)
	a.m2 += delta * (v - a.mean)
	return nil
}

// Count returns the number of accepted samples.
func (a *Accumulator) Count() uint64 { return a.count }

// Min returns the smallest accepted sample. Undefined before the first Push.
func (a *Accumulator) Min() float64 { return a.min }

// Max returns the largest accepted sample. Undefined before the first Push.
func (a *Accumulator) Max() float64 { return a.max }

// Mean returns the running average. Undefined before the first Push.
func (a *Accumulator) Mean() float64 { return a.mean }

// Variance returns the population variance. A single sample, or a stream of
// identical samples, yields exactly zero.
func (a *Accumulator) Variance() float64 {
	if a.count == 0 {
		return 0
	}
	return a.m2 / float64(a.count)
}

// StdDev returns the population standard deviation.
func (a *Accumulator) StdDev() float64 { return math.Sqrt(a.Variance()) }

// Summary is an immutable snapshot of accumulated statistics, extended with
// percentiles when the full sample set was materialized.
type Summary struct {
	Samples  uint64
	Min      float64
	Max      float64
	Mean     float64
	Variance float64
	StdDev   float64
	P50      float64
	P90      float64
	P95      float64
	P99      float64
}

// Snapshot captures the accumulator state. Percentile fields are zero; use
// Summarize when the sample slice is available.
func (a *Accumulator) Snapshot() Summary {
	return Summary{
		Samples:  a.count,
		Min:      a.min,
		Max:      a.max,
		Mean:     a.mean,
		Variance: a.Variance(),
		StdDev:   a.StdDev(),
	}
}

// Summarize computes a full Summary, including p50/p90/p95/p99, from a
// materialized sample slice. Returns ErrNoData for an empty slice and
// ErrInvalidSample if any value is not finite.
func Summarize(values []float64) (Summary, error) {
	if len(values) == 0 {
		return Summary{}, ErrNoData
	}
	var acc Accumulator
	for _, v := range values {
		if err := acc.Push(v); err != nil {
			return Summary{}, err
		}
	}
	s := acc.Snapshot()
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)
	n := len(sorted)
	s.P50 = sorted[n/2]
	s.P90 = sorted[n*9/10]
	s.P95 = sorted[n*95/100]
	s.P99 = sorted[n*99/100]
	return s, nil
}
