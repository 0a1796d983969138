// Package overlay is the fixed catalog of reference curves that can be
// plotted next to an interpolant for visual comparison.
package overlay

import (
	"fmt"
	"math"

	apperrors "github.com/agbru/lagcalc/internal/errors"
)

// ID selects an overlay. None (0) means no overlay and is not a catalog
// entry; valid entries are 1..Count.
type ID int

// None is the "no overlay" sentinel.
const None ID = 0

// Catalog ids.
const (
	Linear ID = iota + 1
	Quadratic
	Cubic
	Sinusoid
	Exponential
)

// Count is the number of catalog entries.
const Count = int(Exponential)

// Overlay is a labeled closed-form reference function.
type Overlay struct {
	ID    ID
	Name  string
	Label string
	Func  func(x float64) float64
}

// catalog is indexed by ID-1.
var catalog = [Count]Overlay{
	{ID: Linear, Name: "linear", Label: "y = x", Func: func(x float64) float64 { return x }},
	{ID: Quadratic, Name: "quadratic", Label: "y = x^2", Func: func(x float64) float64 { return x * x }},
	{ID: Cubic, Name: "cubic", Label: "y = x^3", Func: func(x float64) float64 { return x * x * x }},
	{ID: Sinusoid, Name: "sinusoid", Label: "y = sin(x)", Func: math.Sin},
	{ID: Exponential, Name: "exponential", Label: "y = e^x", Func: math.Exp},
}

// Lookup returns the catalog entry for id. None and out-of-range ids fail
// with apperrors.ErrUnknownOverlay.
func Lookup(id ID) (Overlay, error) {
	if id < Linear || int(id) > Count {
		return Overlay{}, fmt.Errorf("%w: %d", apperrors.ErrUnknownOverlay, int(id))
	}
	return catalog[id-1], nil
}

// Valid reports whether id can be selected: None or a catalog entry.
func Valid(id ID) bool {
	return id >= None && int(id) <= Count
}

// All returns the catalog entries in id order.
func All() []Overlay {
	out := make([]Overlay, Count)
	copy(out, catalog[:])
	return out
}

// Eval evaluates the overlay at x.
func (o Overlay) Eval(x float64) float64 { return o.Func(x) }

func (o Overlay) String() string {
	return fmt.Sprintf("%d %s (%s)", int(o.ID), o.Name, o.Label)
}
