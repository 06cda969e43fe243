// Package reader feeds the chart engine: it pulls lines from files (or
// stdin), extracts numeric or temporal samples and applies read-time filters.
// The chart packages never see raw input lines.
package reader

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/spf13/afero"

	"github.com/cheerioskun/termchart/internal/chart"
	"github.com/cheerioskun/termchart/internal/utils"
)

// ValueReader extracts float64 samples from input lines. Without a regex,
// each line must parse as a float; with one, the capture group named "value"
// is used, falling back to the first capture group.
type ValueReader struct {
	fs    afero.Fs
	regex *regexp.Regexp
	min   *float64
	max   *float64
}

// NewValueReader creates a reader over the given filesystem.
func NewValueReader(fs afero.Fs) *ValueReader {
	return &ValueReader{fs: fs}
}

// SetRegex installs a capture regex for extracting values from lines.
func (r *ValueReader) SetRegex(re *regexp.Regexp) {
	r.regex = re
}

// SetRange filters out values below min or above max at read time. Either
// bound may be nil.
func (r *ValueReader) SetRange(min, max *float64) {
	r.min = min
	r.max = max
}

// Read collects all values from the input. The path "-" means stdin.
// Lines that yield no parseable value are logged at debug level and skipped.
func (r *ValueReader) Read(path string) ([]float64, error) {
	in, err := r.open(path)
	if err != nil {
		return nil, err
	}
	defer in.Close()

	var values []float64
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := scanner.Text()
		v, ok := r.extract(line)
		if !ok {
			continue
		}
		if r.min != nil && v < *r.min {
			continue
		}
		if r.max != nil && v > *r.max {
			continue
		}
		values = append(values, v)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return values, nil
}

// ReadMatches counts, per term, the lines containing it. A line containing
// several terms counts once for each.
func (r *ValueReader) ReadMatches(path string, terms []string) (*chart.MatchBar, error) {
	in, err := r.open(path)
	if err != nil {
		return nil, err
	}
	defer in.Close()

	rows := make([]chart.MatchBarRow, len(terms))
	for i, term := range terms {
		rows[i] = chart.MatchBarRow{Label: term}
	}
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := scanner.Text()
		for i := range rows {
			rows[i].IncIfMatches(line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return chart.NewMatchBar(rows), nil
}

// ReadTerms tallies the captured term of each line. The reader's regex must
// be set; the capture group named "value" is preferred, then group 1.
func (r *ValueReader) ReadTerms(path string, limit int) (*chart.CommonTerms, error) {
	if r.regex == nil {
		return nil, fmt.Errorf("reading terms from %s: a capture regex is required", path)
	}
	in, err := r.open(path)
	if err != nil {
		return nil, err
	}
	defer in.Close()

	terms := chart.NewCommonTerms(limit)
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if term, ok := r.capture(scanner.Text()); ok {
			terms.Observe(term)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return terms, nil
}

func (r *ValueReader) extract(line string) (float64, bool) {
	if r.regex == nil {
		return r.parseFloat(strings.TrimSpace(line))
	}
	token, ok := r.capture(line)
	if !ok {
		utils.Debug("regex does not match %q", line)
		return 0, false
	}
	return r.parseFloat(token)
}

func (r *ValueReader) capture(line string) (string, bool) {
	m := r.regex.FindStringSubmatch(line)
	if m == nil {
		return "", false
	}
	if i := r.regex.SubexpIndex("value"); i >= 0 && i < len(m) {
		return m[i], true
	}
	if len(m) > 1 {
		return m[1], true
	}
	return "", false
}

func (r *ValueReader) parseFloat(s string) (float64, bool) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		utils.Debug("cannot parse float at %q: %v", s, err)
		return 0, false
	}
	return v, true
}

func (r *ValueReader) open(path string) (io.ReadCloser, error) {
	return openInput(r.fs, path)
}

// openInput resolves a path to a reader, treating "-" as stdin.
func openInput(fs afero.Fs, path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	return f, nil
}
