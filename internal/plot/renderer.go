// Package plot turns an interpolation result into a picture. It defines the
// render sink contract used by the session and a terminal text renderer
// drawing braille-dot charts.
package plot

import (
	"context"

	"github.com/agbru/lagcalc/internal/overlay"
	"github.com/agbru/lagcalc/internal/points"
	"github.com/agbru/lagcalc/internal/poly"
)

//go:generate mockgen -destination=mocks/mock_renderer.go -package=mocks github.com/agbru/lagcalc/internal/plot Renderer

// Request carries everything a sink needs to draw one interpolant.
type Request struct {
	Coefficients poly.Polynomial
	// Label is the formatted formula shown in the legend.
	Label string
	// XMin and XMax bound the plotted domain.
	XMin, XMax float64
	// Overlay is the reference curve to draw, or overlay.None.
	Overlay overlay.ID
	Points  []points.Point
}

// Renderer draws a Request. Render blocks until the picture is complete or,
// for interactive sinks, until the user dismisses it.
type Renderer interface {
	Render(ctx context.Context, req Request) error
}

// RendererFunc adapts a function to the Renderer interface.
type RendererFunc func(ctx context.Context, req Request) error

// Render calls f(ctx, req).
func (f RendererFunc) Render(ctx context.Context, req Request) error { return f(ctx, req) }

// NullRenderer discards every request.
type NullRenderer struct{}

// Render implements Renderer.
func (NullRenderer) Render(context.Context, Request) error { return nil }
