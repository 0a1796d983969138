// Package lagrange builds the interpolation polynomial through a point set
// by summing weighted Lagrange basis polynomials.
//
// Each basis polynomial is grown one linear factor at a time with
// poly.MultiplyByLinear, starting from the empty polynomial, so the cost of
// every step is proportional to the current degree.
package lagrange

import (
	"fmt"

	apperrors "github.com/agbru/lagcalc/internal/errors"
	"github.com/agbru/lagcalc/internal/points"
	"github.com/agbru/lagcalc/internal/poly"
)

// MinPoints is the smallest point count an interpolant can be built from.
const MinPoints = 2

// BasisPolynomial returns L_i(x) = Π_{j≠i} (x - x_j)/(x_i - x_j).
//
// Factors are folded in index order 0..n-1, skipping i. A repeated x-value
// makes a denominator zero and yields apperrors.ErrDegenerateInput.
func BasisPolynomial(pts []points.Point, i int) (poly.Polynomial, error) {
	if i < 0 || i >= len(pts) {
		return nil, fmt.Errorf("lagrange: basis index %d out of range [0, %d)", i, len(pts))
	}
	xi := pts[i].X

	var basis poly.Polynomial
	for j := range pts {
		if j == i {
			continue
		}
		xj := pts[j].X
		denom := xi - xj
		if denom == 0 {
			return nil, apperrors.WrapError(apperrors.ErrDegenerateInput, "points %d and %d", i, j)
		}
		basis = poly.MultiplyByLinear(basis, 1/denom, -xj/denom)
	}
	return basis, nil
}

// Build returns the interpolant through pts: Σ y_i·L_i(x).
//
// The result has exactly len(pts) coefficients. Callers are expected to
// check len(pts) >= MinPoints first; a shorter input yields a
// PreconditionError. Duplicate x-values yield apperrors.ErrDegenerateInput
// and overflowing coefficients yield apperrors.ErrNonFiniteResult, so the
// returned polynomial never contains NaN or Inf.
func Build(pts []points.Point) (poly.Polynomial, error) {
	if len(pts) < MinPoints {
		return nil, &apperrors.PreconditionError{
			Command: "c",
			Reason:  fmt.Sprintf("need at least %d points, have %d", MinPoints, len(pts)),
		}
	}

	first, err := BasisPolynomial(pts, 0)
	if err != nil {
		return nil, err
	}
	result := poly.ScaleVector(first, pts[0].Y)

	for i := 1; i < len(pts); i++ {
		basis, err := BasisPolynomial(pts, i)
		if err != nil {
			return nil, err
		}
		result = poly.AddVectors(result, poly.ScaleVector(basis, pts[i].Y))
	}

	if !result.IsFinite() {
		return nil, apperrors.ErrNonFiniteResult
	}
	return result, nil
}
