package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/lagcalc/internal/format"
)

// HeaderModel renders the top bar: title, formula and visible x range.
type HeaderModel struct {
	label  string
	lo, hi float64
	width  int
}

// NewHeaderModel creates a header for the formula label.
func NewHeaderModel(label string) HeaderModel {
	return HeaderModel{label: label}
}

// SetRange updates the visible x range.
func (h *HeaderModel) SetRange(lo, hi float64) {
	h.lo, h.hi = lo, hi
}

// SetWidth updates the available width.
func (h *HeaderModel) SetWidth(w int) {
	h.width = w
}

// View renders the header.
func (h HeaderModel) View() string {
	title := titleStyle.Render("lagcalc")
	pipe := rangeStyle.Render(" | ")
	left := title + pipe + labelStyle.Render(h.label)

	right := rangeStyle.Render(fmt.Sprintf("x in [%s, %s]", format.Decimal(h.lo), format.Decimal(h.hi)))

	innerWidth := max(h.width-2, 0)
	gap := max(innerWidth-lipgloss.Width(left)-lipgloss.Width(right), 1)

	return headerStyle.Width(h.width).Render(left + spaces(gap) + right)
}

// spaces returns a string of n space characters.
func spaces(n int) string {
	if n <= 0 {
		return ""
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}
