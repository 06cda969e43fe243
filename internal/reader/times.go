package reader

import (
	"bufio"
	"fmt"
	"regexp"
	"time"

	"github.com/spf13/afero"

	"github.com/cheerioskun/termchart/internal/timestamp"
	"github.com/cheerioskun/termchart/internal/utils"
)

// TimeReader extracts timestamps from input lines. The format is inferred
// from the first line that carries a recognizable timestamp and then frozen
// for the rest of the stream; re-running detection per line would dominate
// the cost on large logs, and a single log source is assumed to use one
// format throughout.
type TimeReader struct {
	fs        afero.Fs
	regex     *regexp.Regexp
	layout    string
	duration  time.Duration
	earlyStop bool
}

// NewTimeReader creates a reader over the given filesystem.
func NewTimeReader(fs afero.Fs) *TimeReader {
	return &TimeReader{fs: fs}
}

// SetRegex installs a filter: only lines matching it contribute timestamps.
func (r *TimeReader) SetRegex(re *regexp.Regexp) {
	r.regex = re
}

// SetLayout supplies an explicit Go time layout, bypassing format detection.
func (r *TimeReader) SetLayout(layout string) {
	r.layout = layout
}

// SetDuration caps the collected interval: only timestamps within `d` of the
// earliest one are kept. With earlyStop, input is assumed monotonic and
// reading stops at the first timestamp beyond the cap.
func (r *TimeReader) SetDuration(d time.Duration, earlyStop bool) {
	r.duration = d
	r.earlyStop = earlyStop
}

// Read collects all timestamps from the input. The path "-" means stdin.
//
// Lines without a parseable timestamp are skipped, both before and after the
// format is bound. If the stream ends with no format ever detected, that is
// a detection failure, not an empty result.
func (r *TimeReader) Read(path string) ([]time.Time, error) {
	in, err := openInput(r.fs, path)
	if err != nil {
		return nil, err
	}
	defer in.Close()

	detector := timestamp.NewDetector(r.layout)
	var (
		ts      []time.Time
		cut     time.Time
		haveCut bool
	)
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := scanner.Text()
		parser := detector.Bound()
		if parser == nil {
			parser, err = detector.Observe(line)
			if err != nil {
				utils.Debug("skipping line without usable timestamp: %v", err)
				continue
			}
			utils.Debug("bound timestamp format %q", parser.Name)
		}
		t, err := parser.Parse(line)
		if err != nil {
			continue
		}
		if haveCut && t.After(cut) {
			break
		}
		if r.regex != nil && !r.regex.MatchString(line) {
			continue
		}
		ts = append(ts, t)
		if r.earlyStop && r.duration > 0 && !haveCut {
			cut = t.Add(r.duration)
			haveCut = true
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if detector.Bound() == nil {
		return nil, fmt.Errorf("reading %s: %w", path, timestamp.ErrNoTimestamp)
	}
	if r.duration > 0 && !haveCut {
		ts = capDuration(ts, r.duration)
	}
	return ts, nil
}

// capDuration drops timestamps farther than `d` from the earliest one. Used
// when early-stop is off, since unsorted input may place the minimum
// anywhere.
func capDuration(ts []time.Time, d time.Duration) []time.Time {
	if len(ts) == 0 {
		return ts
	}
	min := ts[0]
	for _, t := range ts[1:] {
		if t.Before(min) {
			min = t
		}
	}
	limit := min.Add(d)
	kept := ts[:0]
	for _, t := range ts {
		if !t.After(limit) {
			kept = append(kept, t)
		}
	}
	return kept
}
