package chart

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchBarRowIncIfMatches(t *testing.T) {
	row := MatchBarRow{Label: "ERROR"}
	row.IncIfMatches("2021-04-15 ERROR something broke")
	row.IncIfMatches("2021-04-15 INFO all good")
	row.IncIfMatches("ERROR again")
	assert.Equal(t, 2, row.Count)
}

func TestMatchBarAggregates(t *testing.T) {
	mb := NewMatchBar([]MatchBarRow{
		{Label: "ERROR", Count: 7},
		{Label: "WARNING", Count: 12},
		{Label: "INFO", Count: 3},
	})

	assert.Equal(t, 22, mb.Total())
	assert.Equal(t, 12, mb.Top())
	assert.Equal(t, len("WARNING"), mb.LabelWidth())
	assert.Equal(t, 1, mb.BarScale(100))

	// Rows keep their input order.
	rows := mb.Rows()
	assert.Equal(t, "ERROR", rows[0].Label)
	assert.Equal(t, "INFO", rows[2].Label)
}

func TestMatchBarEmpty(t *testing.T) {
	mb := NewMatchBar(nil)
	assert.Equal(t, 0, mb.Total())
	assert.Equal(t, 0, mb.Top())
	assert.Empty(t, mb.Rows())
}
