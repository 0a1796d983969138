package plot

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/lagcalc/internal/format"
	"github.com/agbru/lagcalc/internal/ui"
)

// Chart lays out a braille plot with a y-axis, an x range and a legend.
type Chart struct {
	// Width is the total width in cells, axis labels included.
	Width int
	// Height is the number of plot rows.
	Height int
	Theme  ui.TUITheme
}

const minPlotWidth = 8

// YRange returns the vertical range covering the interpolant samples and
// the scatter points. Overlays are clipped to it rather than stretching it.
func YRange(req Request, series []Series) (lo, hi float64) {
	var vs []float64
	for _, s := range series {
		if s.Layer == LayerCurve {
			vs = append(vs, s.Ys...)
		}
	}
	for _, p := range req.Points {
		vs = append(vs, p.Y)
	}
	lo, hi, ok := finiteRange(vs)
	if !ok {
		return -1, 1
	}
	if lo == hi {
		lo, hi = lo-1, hi+1
	}
	return lo, hi
}

// Draw renders the series and the points of req over [xlo, xhi].
func (c Chart) Draw(req Request, series []Series, xlo, xhi float64) []string {
	ylo, yhi := YRange(req, series)
	rows := max(c.Height, 1)

	labels := make([]string, rows)
	labels[0] = format.Decimal(yhi)
	labels[rows-1] = format.Decimal(ylo)
	if rows > 2 {
		t := float64(rows/2) / float64(rows-1)
		labels[rows/2] = format.Decimal(yhi*(1-t) + ylo*t)
	}
	labelWidth := 0
	for _, l := range labels {
		labelWidth = max(labelWidth, len(l))
	}
	plotWidth := max(c.Width-labelWidth-1, minPlotWidth)

	canvas := NewCanvas(plotWidth, rows)
	dotCols, dotRows := canvas.DotSize()
	toDot := func(x, y float64) (int, int) {
		return scale(x, xlo, xhi, dotCols), dotRows - 1 - scale(y, ylo, yhi, dotRows)
	}
	inRange := func(y float64) bool {
		return !math.IsNaN(y) && y >= ylo && y <= yhi
	}

	// Lower layers first; Set keeps the highest layer per cell anyway.
	for _, layer := range []Layer{LayerOverlay, LayerCurve} {
		for _, s := range series {
			if s.Layer != layer {
				continue
			}
			prevOK := false
			var pc, pr int
			for i, x := range s.Xs {
				y := s.Ys[i]
				if !inRange(y) {
					prevOK = false
					continue
				}
				dc, dr := toDot(x, y)
				if prevOK {
					canvas.Line(pc, pr, dc, dr, layer)
				} else {
					canvas.Set(dc, dr, layer)
				}
				pc, pr, prevOK = dc, dr, true
			}
		}
	}
	for _, p := range req.Points {
		if p.X < xlo || p.X > xhi || !inRange(p.Y) {
			continue
		}
		dc, dr := toDot(p.X, p.Y)
		for _, d := range [][2]int{{0, 0}, {1, 0}, {0, 1}, {1, 1}, {-1, 0}, {0, -1}} {
			canvas.Set(dc+d[0], dr+d[1], LayerPoints)
		}
	}

	styles := c.layerStyles()
	axis := lipgloss.NewStyle().Foreground(c.Theme.Axis)

	out := make([]string, 0, rows+3)
	for r := 0; r < rows; r++ {
		tick := "│"
		if labels[r] != "" {
			tick = "┤"
		}
		gutter := axis.Render(strings.Repeat(" ", labelWidth-len(labels[r])) + labels[r] + tick)
		out = append(out, gutter+c.renderRow(canvas, r, plotWidth, styles))
	}
	out = append(out, axis.Render(strings.Repeat(" ", labelWidth)+"└"+strings.Repeat("─", plotWidth)))

	left, right := format.Decimal(xlo), format.Decimal(xhi)
	gap := max(plotWidth-len(left)-len(right), 1)
	out = append(out, axis.Render(strings.Repeat(" ", labelWidth+1)+left+strings.Repeat(" ", gap)+right))
	out = append(out, c.legend(series, len(req.Points) > 0, styles))
	return out
}

func (c Chart) layerStyles() map[Layer]lipgloss.Style {
	return map[Layer]lipgloss.Style{
		LayerOverlay: lipgloss.NewStyle().Foreground(c.Theme.Overlay),
		LayerCurve:   lipgloss.NewStyle().Foreground(c.Theme.Curve),
		LayerPoints:  lipgloss.NewStyle().Foreground(c.Theme.Points).Bold(true),
	}
}

// renderRow colors runs of cells sharing a layer.
func (c Chart) renderRow(canvas *Canvas, row, width int, styles map[Layer]lipgloss.Style) string {
	var b strings.Builder
	var run []rune
	var runLayer Layer
	flush := func() {
		if len(run) == 0 {
			return
		}
		if st, ok := styles[runLayer]; ok {
			b.WriteString(st.Render(string(run)))
		} else {
			b.WriteString(string(run))
		}
		run = run[:0]
	}
	for col := 0; col < width; col++ {
		ch, layer := canvas.Cell(row, col)
		if layer != runLayer {
			flush()
			runLayer = layer
		}
		run = append(run, ch)
	}
	flush()
	return b.String()
}

func (c Chart) legend(series []Series, hasPoints bool, styles map[Layer]lipgloss.Style) string {
	var parts []string
	for _, s := range series {
		parts = append(parts, styles[s.Layer].Render("━")+" "+s.Name)
	}
	if hasPoints {
		parts = append(parts, styles[LayerPoints].Render("●")+" points")
	}
	return " " + strings.Join(parts, "   ")
}
