package timestamp

import (
	"errors"
	"fmt"
	"time"
)

// Timestamps are assumed to start with the first digit of the line and to be
// no longer than this many bytes.
const maxTimestampLen = 28

// ErrNoTimestamp is returned when no candidate format matches a line.
var ErrNoTimestamp = errors.New("no known timestamp format matched")

// BoundParser is the parser selected for an entire run after detection. It
// remembers the byte range the timestamp occupied in the sample line and
// re-slices every subsequent line at that same range, which is what makes
// parsing cheap enough for large streams. A BoundParser never rebinds.
type BoundParser struct {
	Name  string
	start int
	end   int
	parse ParseFunc
}

// Parse extracts and parses the timestamp of a line using the bound range
// and format. An error here means the line carries no parseable timestamp at
// the expected position; callers are expected to skip such lines.
func (p *BoundParser) Parse(line string) (time.Time, error) {
	start, end := p.start, p.end
	if start > len(line) {
		start = len(line)
	}
	if end > len(line) {
		end = len(line)
	}
	return p.parse(line[start:end])
}

// Detect infers the timestamp format from a single sample line. It locates
// the first ASCII digit, then tries successively shorter windows starting
// there (longest first, so no precision digits or timezone info are lost),
// evaluating the candidate list in priority order for each window. The first
// match wins and its parser is bound.
func Detect(line string) (*BoundParser, error) {
	candidates := Candidates()
	for i := 0; i < len(line); i++ {
		if line[i] < '0' || line[i] > '9' {
			continue
		}
		max := i + maxTimestampLen
		if max > len(line) {
			max = len(line)
		}
		for j := max; j > i; j-- {
			window := line[i:j]
			for _, c := range candidates {
				if fn, ok := c.Compile(window); ok {
					return &BoundParser{Name: c.Name, start: i, end: j, parse: fn}, nil
				}
			}
		}
		break
	}
	return nil, fmt.Errorf("detecting timestamp in %q: %w", line, ErrNoTimestamp)
}

// DetectLayout binds an explicit Go time layout instead of guessing the
// format. The timestamp may sit anywhere in the line, so every window is
// scanned (still capped in length) until one parses.
func DetectLayout(line, layout string) (*BoundParser, error) {
	for i := 0; i < len(line); i++ {
		max := i + 2*maxTimestampLen
		if max > len(line) {
			max = len(line)
		}
		for j := max; j > i; j-- {
			if _, err := time.Parse(layout, line[i:j]); err == nil {
				return &BoundParser{
					Name:  "custom",
					start: i,
					end:   j,
					parse: func(s string) (time.Time, error) {
						return time.Parse(layout, s)
					},
				}, nil
			}
		}
	}
	return nil, fmt.Errorf("locating %q timestamp in %q: %w", layout, line, ErrNoTimestamp)
}

// Detector is the two-state machine guarding detection: Undetected until a
// line binds a parser, Bound for the rest of the run. The binding is owned by
// the detector and passed explicitly to every subsequent parse; there are no
// global parser caches.
type Detector struct {
	layout string
	bound  *BoundParser
}

// NewDetector creates an undetected Detector. A non-empty layout (a Go time
// layout string) bypasses format guessing entirely.
func NewDetector(layout string) *Detector {
	return &Detector{layout: layout}
}

// Bound returns the bound parser, or nil while undetected.
func (d *Detector) Bound() *BoundParser { return d.bound }

// Observe attempts the Undetected -> Bound transition using the given line.
// Once bound, further calls return the existing parser untouched. A
// detection error is fatal only for the offending line; callers may feed the
// next one.
func (d *Detector) Observe(line string) (*BoundParser, error) {
	if d.bound != nil {
		return d.bound, nil
	}
	var (
		bp  *BoundParser
		err error
	)
	if d.layout != "" {
		bp, err = DetectLayout(line, d.layout)
	} else {
		bp, err = Detect(line)
	}
	if err != nil {
		return nil, err
	}
	d.bound = bp
	return bp, nil
}
