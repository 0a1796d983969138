package plot

import (
	"context"
	"fmt"
	"io"

	"github.com/agbru/lagcalc/internal/ui"
)

// Text chart defaults.
const (
	DefaultWidth  = 72
	DefaultHeight = 16
)

// TextRenderer writes a braille chart to a console stream.
type TextRenderer struct {
	out     io.Writer
	width   int
	height  int
	samples int
}

// TextOption configures a TextRenderer.
type TextOption func(*TextRenderer)

// WithSize sets the chart width in cells and height in rows. Non-positive
// values keep the defaults.
func WithSize(width, height int) TextOption {
	return func(r *TextRenderer) {
		if width > 0 {
			r.width = width
		}
		if height > 0 {
			r.height = height
		}
	}
}

// WithSamples sets the number of samples per curve.
func WithSamples(n int) TextOption {
	return func(r *TextRenderer) {
		if n > 0 {
			r.samples = n
		}
	}
}

// NewTextRenderer creates a renderer writing to out.
func NewTextRenderer(out io.Writer, opts ...TextOption) *TextRenderer {
	r := &TextRenderer{out: out, width: DefaultWidth, height: DefaultHeight, samples: DefaultSamples}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render samples req and prints the chart.
func (r *TextRenderer) Render(ctx context.Context, req Request) error {
	lo, hi := Domain(req)
	series, err := Sample(ctx, req, lo, hi, r.samples)
	if err != nil {
		return err
	}
	chart := Chart{Width: r.width, Height: r.height, Theme: ui.GetCurrentTUITheme()}
	for _, line := range chart.Draw(req, series, lo, hi) {
		if _, err := fmt.Fprintln(r.out, line); err != nil {
			return err
		}
	}
	return nil
}
