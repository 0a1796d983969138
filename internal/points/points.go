// Package points holds the ordered collection of sample points a session
// interpolates through.
package points

import (
	"gonum.org/v1/gonum/floats"

	apperrors "github.com/agbru/lagcalc/internal/errors"
)

// Point is a sample in the plane. Points used for interpolation must have
// pairwise distinct X values.
type Point struct {
	X float64
	Y float64
}

// Set is an ordered sequence of points. Insertion order is preserved and
// duplicates are accepted; a duplicate X only fails later, when an
// interpolant is built.
//
// The zero value is an empty set ready for use.
type Set struct {
	items []Point
}

// Add appends a point to the end of the set.
func (s *Set) Add(p Point) {
	s.items = append(s.items, p)
}

// Clear removes every point.
func (s *Set) Clear() {
	s.items = nil
}

// Len returns the number of points.
func (s *Set) Len() int { return len(s.items) }

// All returns a copy of the points in insertion order.
func (s *Set) All() []Point {
	if len(s.items) == 0 {
		return nil
	}
	out := make([]Point, len(s.items))
	copy(out, s.items)
	return out
}

// Xs returns the X coordinates in insertion order.
func (s *Set) Xs() []float64 {
	return Xs(s.items)
}

// Bounds returns the minimum and maximum X of the set.
// It fails with apperrors.ErrEmptyPointSet when the set has no points.
func (s *Set) Bounds() (lo, hi float64, err error) {
	return Bounds(s.items)
}

// Xs extracts the X coordinates of pts.
func Xs(pts []Point) []float64 {
	xs := make([]float64, len(pts))
	for i, p := range pts {
		xs[i] = p.X
	}
	return xs
}

// Bounds returns the minimum and maximum X of pts.
func Bounds(pts []Point) (lo, hi float64, err error) {
	if len(pts) == 0 {
		return 0, 0, apperrors.ErrEmptyPointSet
	}
	xs := Xs(pts)
	return floats.Min(xs), floats.Max(xs), nil
}
