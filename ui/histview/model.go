package histview

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/cheerioskun/termchart/internal/chart"
	"github.com/cheerioskun/termchart/internal/render"
)

// Model is an interactive histogram explorer: the sample slice is fixed, the
// bucketing is not. Keys adjust the interval count and toggle the scale and
// the chart is rebuilt in place.
type Model struct {
	values    []float64
	intervals int
	scale     chart.Scale
	precision *int
	min       *float64
	max       *float64

	viewport viewport.Model
	width    int
	height   int
	ready    bool
	quitting bool

	status string
}

// Options carries the initial chart configuration into the explorer.
type Options struct {
	Intervals int
	Scale     chart.Scale
	Precision *int
	Min       *float64
	Max       *float64
}

// NewModel creates an explorer over a fixed sample slice.
func NewModel(values []float64, opts Options) *Model {
	intervals := opts.Intervals
	if intervals < 1 {
		intervals = 20
	}
	return &Model{
		values:    values,
		intervals: intervals,
		scale:     opts.Scale,
		precision: opts.Precision,
		min:       opts.Min,
		max:       opts.Max,
		status:    "Ready",
	}
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-chromeHeight)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - chromeHeight
		}
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			m.quitting = true
			return m, tea.Quit

		case "+", "=":
			if m.intervals+5 <= len(m.values) {
				m.intervals += 5
				m.status = fmt.Sprintf("%d intervals", m.intervals)
				m.refresh()
			}
			return m, nil

		case "-", "_":
			if m.intervals > 5 {
				m.intervals -= 5
				m.status = fmt.Sprintf("%d intervals", m.intervals)
				m.refresh()
			}
			return m, nil

		case "l":
			m.toggleScale()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// toggleScale flips between linear and logarithmic bucketing. Log bucketing
// needs a strictly positive range, so a failed switch reverts and reports.
func (m *Model) toggleScale() {
	prev := m.scale
	if m.scale == chart.ScaleLog {
		m.scale = chart.ScaleLinear
	} else {
		m.scale = chart.ScaleLog
	}
	if err := m.refresh(); err != nil {
		m.scale = prev
		if errors.Is(err, chart.ErrInvalidRange) {
			m.status = "Log scale needs a positive minimum"
		} else {
			m.status = err.Error()
		}
		m.refresh()
		return
	}
	if m.scale == chart.ScaleLog {
		m.status = "Log scale"
	} else {
		m.status = "Linear scale"
	}
}

// refresh rebuilds the histogram with the current settings and loads its
// rendering into the viewport.
func (m *Model) refresh() error {
	if !m.ready {
		return nil
	}
	h, err := chart.NewHistogram(m.values, chart.Options{
		Intervals: m.intervals,
		Scale:     m.scale,
		Precision: m.precision,
		Min:       m.min,
		Max:       m.max,
	})
	if err != nil {
		return err
	}
	r := render.New(render.Config{Width: m.width - 2, Color: true})
	m.viewport.SetContent(r.Histogram(h))
	return nil
}
