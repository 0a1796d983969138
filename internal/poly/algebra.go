package poly

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Polynomial is a coefficient vector, highest degree first.
type Polynomial []float64

// Degree returns len(p)-1, or -1 for the empty polynomial.
func (p Polynomial) Degree() int { return len(p) - 1 }

// Clone returns an independent copy of p.
func (p Polynomial) Clone() Polynomial {
	if p == nil {
		return nil
	}
	out := make(Polynomial, len(p))
	copy(out, p)
	return out
}

// AddVectors returns the element-wise sum a+b. Both vectors must have the
// same length; a mismatch is a programming error and panics.
func AddVectors(a, b Polynomial) Polynomial {
	if len(a) != len(b) {
		panic(fmt.Sprintf("poly: AddVectors length mismatch (%d != %d)", len(a), len(b)))
	}
	return floats.AddTo(make(Polynomial, len(a)), a, b)
}

// ScaleVector returns a copy of a with every coefficient multiplied by k.
func ScaleVector(a Polynomial, k float64) Polynomial {
	return floats.ScaleTo(make(Polynomial, len(a)), k, a)
}

// MultiplyByLinear returns p·(a·x + b), one coefficient longer than p.
//
// The empty polynomial acts as the multiplicative identity, so the first
// factor yields exactly [a, b]. Otherwise the product is built by shifting
// and adding: p·a with a trailing zero (one degree higher) plus p·b with a
// leading zero. p is not modified.
func MultiplyByLinear(p Polynomial, a, b float64) Polynomial {
	if len(p) == 0 {
		return Polynomial{a, b}
	}
	n := len(p) + 1

	shifted := make(Polynomial, n)
	floats.ScaleTo(shifted[:n-1], a, p)

	carried := make(Polynomial, n)
	floats.ScaleTo(carried[1:], b, p)

	return AddVectors(shifted, carried)
}
