// Package tui implements the interactive plot viewer: a full-screen
// bubbletea program showing one interpolant until the user closes it.
package tui

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	apperrors "github.com/agbru/lagcalc/internal/errors"
	"github.com/agbru/lagcalc/internal/plot"
	"github.com/agbru/lagcalc/internal/ui"
)

// View navigation steps.
const (
	zoomFactor  = 0.8
	panFraction = 0.1
)

// Layout constants for the viewer.
const (
	headerHeight = 1
	footerHeight = 1
	// chartChrome is the panel border plus the chart's axis, x labels and legend.
	chartChrome = 2 + 3
	minRows     = 4
	minWidth    = 20
)

// Model is the bubbletea model of the plot viewer.
type Model struct {
	ctx     context.Context
	req     plot.Request
	samples int

	homeLo, homeHi float64
	lo, hi         float64
	series         []plot.Series
	err            error

	header HeaderModel
	keymap KeyMap
	help   help.Model

	width, height int
}

// NewModel creates a viewer model for req. Sampling honors ctx.
func NewModel(ctx context.Context, req plot.Request, samples int) Model {
	lo, hi := plot.Domain(req)
	m := Model{
		ctx:     ctx,
		req:     req,
		samples: samples,
		homeLo:  lo,
		homeHi:  hi,
		header:  NewHeaderModel(req.Label),
		keymap:  DefaultKeyMap(),
		help:    help.New(),
	}
	m.setRange(lo, hi)
	return m
}

// Range returns the visible x range.
func (m Model) Range() (lo, hi float64) { return m.lo, m.hi }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd { return nil }

// Update handles key presses and resizes.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.header.SetWidth(msg.Width)
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	span := m.hi - m.lo
	mid := (m.lo + m.hi) / 2
	switch {
	case key.Matches(msg, m.keymap.Close):
		return m, tea.Quit
	case key.Matches(msg, m.keymap.ZoomIn):
		m.setRange(mid-span*zoomFactor/2, mid+span*zoomFactor/2)
	case key.Matches(msg, m.keymap.ZoomOut):
		m.setRange(mid-span/zoomFactor/2, mid+span/zoomFactor/2)
	case key.Matches(msg, m.keymap.PanLeft):
		m.setRange(m.lo-span*panFraction, m.hi-span*panFraction)
	case key.Matches(msg, m.keymap.PanRight):
		m.setRange(m.lo+span*panFraction, m.hi+span*panFraction)
	case key.Matches(msg, m.keymap.Reset):
		m.setRange(m.homeLo, m.homeHi)
	}
	return m, nil
}

// setRange resamples the curves over [lo, hi].
func (m *Model) setRange(lo, hi float64) {
	m.lo, m.hi = lo, hi
	m.header.SetRange(lo, hi)
	m.series, m.err = plot.Sample(m.ctx, m.req, lo, hi, m.samples)
}

// View renders the header, the chart panel and the key help footer.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	var body string
	if m.err != nil {
		body = errorStyle.Render("cannot plot: " + m.err.Error())
	} else {
		chart := plot.Chart{
			Width:  max(m.width-4, minWidth),
			Height: max(m.height-headerHeight-footerHeight-chartChrome, minRows),
			Theme:  ui.GetCurrentTUITheme(),
		}
		body = strings.Join(chart.Draw(m.req, m.series, m.lo, m.hi), "\n")
	}
	panel := panelStyle.Width(max(m.width-2, 0)).Render(body)
	footer := footerStyle.Render(m.help.View(m.keymap))

	return lipgloss.JoinVertical(lipgloss.Left, m.header.View(), panel, footer)
}

// Viewer is a plot.Renderer that opens the plot in a full-screen program
// and returns when the user closes it.
type Viewer struct {
	in      io.Reader
	out     io.Writer
	samples int
}

// NewViewer creates a viewer reading keys from in and drawing to out.
func NewViewer(in io.Reader, out io.Writer, samples int) *Viewer {
	if samples < 2 {
		samples = plot.DefaultSamples
	}
	return &Viewer{in: in, out: out, samples: samples}
}

// Render implements plot.Renderer. Cancellation of ctx closes the viewer
// and is not reported as an error.
func (v *Viewer) Render(ctx context.Context, req plot.Request) error {
	// Rebuild styles from the current ui theme (set by app via InitTheme).
	initTUIStyles()

	p := tea.NewProgram(
		NewModel(ctx, req, v.samples),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
		tea.WithInput(v.in),
		tea.WithOutput(v.out),
	)
	_, err := p.Run()
	if err == nil || errors.Is(err, tea.ErrProgramKilled) || apperrors.IsContextError(err) {
		return nil
	}
	return apperrors.WrapError(err, "plot viewer")
}
