// Package poly implements the coefficient-vector algebra behind the
// interpolant: element-wise addition, scaling, multiplication by a linear
// factor, Horner evaluation and the human-readable formula.
//
// A Polynomial stores its highest-degree coefficient first, so [2, -3] is
// 2x - 3. The empty polynomial means "nothing computed yet" and is also the
// identity that MultiplyByLinear folds from.
package poly
