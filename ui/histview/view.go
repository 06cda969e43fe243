package histview

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// chromeHeight is the rows taken by the title, status and help lines.
const chromeHeight = 3

var (
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("111"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// View implements tea.Model
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Loading...\n"
	}

	title := titleStyle.Render(fmt.Sprintf("Histogram of %d samples", len(m.values)))
	status := statusStyle.Render(m.status)
	help := helpStyle.Render("+/- intervals | l log scale | q quit")
	return fmt.Sprintf("%s  %s\n%s\n%s", title, status, m.viewport.View(), help)
}
