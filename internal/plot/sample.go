package plot

import (
	"context"
	"math"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"

	"github.com/agbru/lagcalc/internal/overlay"
)

// DefaultSamples is the number of abscissas evaluated per curve.
const DefaultSamples = 1000

// Layer orders what is drawn on top when series share a cell.
type Layer int

const (
	LayerOverlay Layer = iota + 1
	LayerCurve
	LayerPoints
)

// Series is a sampled curve.
type Series struct {
	Name  string
	Layer Layer
	Xs    []float64
	Ys    []float64
}

// ctxCheckEvery bounds how many evaluations run between context checks.
const ctxCheckEvery = 256

// Domain returns the plotted x range for req. A degenerate range is widened
// by one unit on each side.
func Domain(req Request) (lo, hi float64) {
	lo, hi = req.XMin, req.XMax
	if lo > hi {
		lo, hi = hi, lo
	}
	if lo == hi {
		lo, hi = lo-1, hi+1
	}
	return lo, hi
}

// Sample evaluates the interpolant and, when one is selected, the overlay at
// n evenly spaced abscissas over [lo, hi]. Curves are sampled concurrently.
// The interpolant is always the first series returned.
func Sample(ctx context.Context, req Request, lo, hi float64, n int) ([]Series, error) {
	if n < 2 {
		n = 2
	}
	xs := floats.Span(make([]float64, n), lo, hi)

	curve := Series{Name: req.Label, Layer: LayerCurve, Xs: xs, Ys: make([]float64, n)}
	var ref *Series
	var refFunc func(float64) float64
	if req.Overlay != overlay.None {
		o, err := overlay.Lookup(req.Overlay)
		if err != nil {
			return nil, err
		}
		ref = &Series{Name: o.String(), Layer: LayerOverlay, Xs: xs, Ys: make([]float64, n)}
		refFunc = o.Eval
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return fill(gctx, curve.Ys, xs, req.Coefficients.At)
	})
	if ref != nil {
		g.Go(func() error {
			return fill(gctx, ref.Ys, xs, refFunc)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	series := []Series{curve}
	if ref != nil {
		series = append(series, *ref)
	}
	return series, nil
}

func fill(ctx context.Context, dst, xs []float64, f func(float64) float64) error {
	for i, x := range xs {
		if i%ctxCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		dst[i] = f(x)
	}
	return nil
}

// finiteRange returns the min and max of the finite values in vs and
// whether any were found.
func finiteRange(vs []float64) (lo, hi float64, ok bool) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
		ok = true
	}
	return lo, hi, ok
}
