package chart

import "sort"

// TermCount is one row of a common-terms chart.
type TermCount struct {
	Term  string
	Count int
}

// CommonTerms tallies the frequency of observed terms and reports the most
// common ones. Create it empty and feed it with Observe.
type CommonTerms struct {
	terms map[string]int
	limit int
}

// NewCommonTerms creates an empty tally. `limit` is the number of rows to
// report.
func NewCommonTerms(limit int) *CommonTerms {
	return &CommonTerms{terms: make(map[string]int), limit: limit}
}

// Observe records one occurrence of a term.
func (ct *CommonTerms) Observe(term string) {
	ct.terms[term]++
}

// Len returns the number of distinct terms seen.
func (ct *CommonTerms) Len() int { return len(ct.terms) }

// Count returns the tally for one term.
func (ct *CommonTerms) Count(term string) int { return ct.terms[term] }

// Top returns up to `limit` rows ordered by descending count. Ties are broken
// alphabetically so output is stable.
func (ct *CommonTerms) Top() []TermCount {
	rows := make([]TermCount, 0, len(ct.terms))
	for term, count := range ct.terms {
		rows = append(rows, TermCount{Term: term, Count: count})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Count != rows[j].Count {
			return rows[i].Count > rows[j].Count
		}
		return rows[i].Term < rows[j].Term
	})
	if ct.limit > 0 && ct.limit < len(rows) {
		rows = rows[:ct.limit]
	}
	return rows
}

// BarScale returns the count-per-glyph factor for a bar of at most
// maxBarWidth glyphs.
func (ct *CommonTerms) BarScale(maxBarWidth int) int {
	return barScale(ct.Max(), maxBarWidth)
}

// Max returns the highest tally across all terms.
func (ct *CommonTerms) Max() int {
	top := 0
	for _, c := range ct.terms {
		if c > top {
			top = c
		}
	}
	return top
}
