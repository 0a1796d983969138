package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/lagcalc/internal/ui"
)

// Style variables for the plot viewer.
// Initialized from the ui theme system via initTUIStyles().
var (
	panelStyle  lipgloss.Style
	headerStyle lipgloss.Style
	titleStyle  lipgloss.Style
	labelStyle  lipgloss.Style
	rangeStyle  lipgloss.Style
	errorStyle  lipgloss.Style
	footerStyle lipgloss.Style
)

func init() {
	initTUIStyles()
}

// initTUIStyles rebuilds all viewer styles from the current ui theme.
// Called at package init and again before every viewer run, after InitTheme.
func initTUIStyles() {
	t := ui.GetCurrentTUITheme()

	panelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Foreground(t.Text)

	headerStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Accent).
		Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Accent)

	labelStyle = lipgloss.NewStyle().
		Foreground(t.Curve)

	rangeStyle = lipgloss.NewStyle().
		Foreground(t.Dim)

	errorStyle = lipgloss.NewStyle().
		Foreground(t.Curve).
		Bold(true)

	footerStyle = lipgloss.NewStyle().
		Padding(0, 1)
}
