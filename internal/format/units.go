// Package format turns raw magnitudes into strings fit for a terminal chart:
// human-scaled numbers with a unit chosen once per chart, and time layouts
// matched to the bucket step.
package format

import (
	"fmt"
	"math"
	"time"
)

// Unit suffixes, powers of 1000. The divisor is capped so everything above
// peta still renders as P.
var units = []string{"", " K", " M", " G", " T", " P"}

// ValueFormatter renders float64 values with a fixed decimal count, divisor
// and unit suffix. Using a single formatter for every label of a chart keeps
// the unit consistent across the whole display.
type ValueFormatter struct {
	decimals int
	divisor  int
	suffix   string
}

// NewFormatter returns a fixed-point formatter with exactly `decimals`
// fractional digits and no unit scaling. The integer part is never truncated,
// however many digits it has.
func NewFormatter(decimals int) *ValueFormatter {
	if decimals < 0 {
		decimals = 0
	}
	return &ValueFormatter{decimals: decimals}
}

// NewRangeFormatter picks decimals and unit from the span of the displayed
// range, so that the largest magnitude renders with a few significant digits.
// The same formatter must then be applied to every value shown alongside
// (axis edges, stats). Negative bounds are handled symmetrically since only
// the span magnitude matters.
func NewRangeFormatter(lo, hi float64) *ValueFormatter {
	f := &ValueFormatter{decimals: 3}
	span := math.Abs(hi - lo)
	if span == 0 {
		return f
	}
	log := int(math.Log10(span)) // truncation toward zero is intended
	if log <= 0 {
		d := -log
		if d > 8 {
			d = 8
		}
		f.decimals = d + 3
	} else {
		f.decimals = log % 3
		f.divisor = (log - 1) / 3
		if f.divisor > len(units)-1 {
			f.divisor = len(units) - 1
		}
	}
	f.suffix = units[f.divisor]
	return f
}

// Format renders a value with the formatter's decimals, divisor and suffix.
func (f *ValueFormatter) Format(v float64) string {
	scaled := v / math.Pow(1000, float64(f.divisor))
	return fmt.Sprintf("%.*f%s", f.decimals, scaled, f.suffix)
}

// DateLayout picks a time label layout from the width of one histogram
// bucket: wide steps show the date, narrow ones show fractional seconds.
func DateLayout(step time.Duration) string {
	switch secs := step / time.Second; {
	case secs > 24*3600:
		return "2006-01-02 15:04:05"
	case secs > 300:
		return "15:04:05"
	case secs > 1:
		return "15:04:05.000"
	default:
		return "15:04:05.000000"
	}
}
