// Package gradcheck approximates derivatives with central finite
// differences, for checking autodiff output against a slower but
// rule-free estimate.
//
// Central differences carry O(h²) truncation error plus rounding error, so
// agreement is expected near 1e-6 relative, not machine precision; use the
// engine's own pullbacks when exactness matters.
package gradcheck

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// defaultStep is the half-width of the central difference, scaled up with
// the magnitude of the evaluation point.
const defaultStep = 1e-6

func step(x float64) float64 {
	return defaultStep * math.Max(1, math.Abs(x))
}

// Derivative approximates f'(x) as (f(x+h) - f(x-h)) / 2h.
func Derivative(f func(float64) float64, x float64) float64 {
	h := step(x)
	return (f(x+h) - f(x-h)) / (2 * h)
}

// Gradient approximates ∇f at x, one central difference per coordinate.
// x is not modified.
func Gradient(f func([]float64) float64, x []float64) []float64 {
	grad := make([]float64, len(x))
	pt := make([]float64, len(x))
	copy(pt, x)
	for i := range x {
		h := step(x[i])
		pt[i] = x[i] + h
		fp := f(pt)
		pt[i] = x[i] - h
		fm := f(pt)
		pt[i] = x[i]
		grad[i] = (fp - fm) / (2 * h)
	}
	return grad
}

// ComplexDerivative approximates f'(z) for a holomorphic f by a central
// difference along the real axis; holomorphy makes the direction
// irrelevant.
func ComplexDerivative(f func(complex128) complex128, z complex128) complex128 {
	h := step(cmplxMag(z))
	hz := complex(h, 0)
	return (f(z+hz) - f(z-hz)) / (2 * hz)
}

func cmplxMag(z complex128) float64 {
	return math.Hypot(real(z), imag(z))
}

// Close reports whether got and want agree within tol, absolutely or
// relatively, whichever is looser.
func Close(got, want, tol float64) bool {
	return scalar.EqualWithinAbsOrRel(got, want, tol, tol)
}
