package poly

import (
	"math"

	apperrors "github.com/agbru/lagcalc/internal/errors"
)

// Evaluate computes p(x) with Horner's rule. It fails with
// apperrors.ErrNoPolynomial when p is empty and with
// apperrors.ErrValueOutOfRange when the result is not finite.
func Evaluate(p Polynomial, x float64) (float64, error) {
	if len(p) == 0 {
		return 0, apperrors.ErrNoPolynomial
	}
	y := p.At(x)
	if math.IsNaN(y) || math.IsInf(y, 0) {
		return 0, apperrors.ErrValueOutOfRange
	}
	return y, nil
}

// At evaluates a non-empty polynomial without the emptiness check. The
// empty polynomial evaluates to 0.
func (p Polynomial) At(x float64) float64 {
	var y float64
	for _, c := range p {
		y = y*x + c
	}
	return y
}

// IsFinite reports whether every coefficient is a finite number.
func (p Polynomial) IsFinite() bool {
	for _, c := range p {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}
