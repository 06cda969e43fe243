package chart

import "strings"

// MatchBarRow counts the lines that contain one fixed term.
type MatchBarRow struct {
	Label string
	Count int
}

// IncIfMatches bumps the count when the line contains the row's term.
func (r *MatchBarRow) IncIfMatches(line string) {
	if strings.Contains(line, r.Label) {
		r.Count++
	}
}

// MatchBar is a bar chart of per-term match counts, in the order the terms
// were given.
type MatchBar struct {
	rows        []MatchBarRow
	topCount    int
	topLabelLen int
}

// NewMatchBar assembles the chart from populated rows.
func NewMatchBar(rows []MatchBarRow) *MatchBar {
	mb := &MatchBar{rows: rows}
	for _, r := range rows {
		if len(r.Label) > mb.topLabelLen {
			mb.topLabelLen = len(r.Label)
		}
		if r.Count > mb.topCount {
			mb.topCount = r.Count
		}
	}
	return mb
}

// Rows returns the chart rows in input order.
func (mb *MatchBar) Rows() []MatchBarRow { return mb.rows }

// Total returns the sum of all row counts.
func (mb *MatchBar) Total() int {
	total := 0
	for _, r := range mb.rows {
		total += r.Count
	}
	return total
}

// Top returns the largest row count.
func (mb *MatchBar) Top() int { return mb.topCount }

// LabelWidth returns the length of the longest label.
func (mb *MatchBar) LabelWidth() int { return mb.topLabelLen }

// BarScale returns the count-per-glyph factor for a bar of at most
// maxBarWidth glyphs.
func (mb *MatchBar) BarScale(maxBarWidth int) int {
	return barScale(mb.topCount, maxBarWidth)
}
