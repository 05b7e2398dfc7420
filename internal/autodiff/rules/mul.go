package rules

import "github.com/cotangent-ml/cotangent/internal/value"

// Mul: y = a * b.
//
// Backward pass:
//   - ∂y/∂a = b, so the a cotangent is t * b
//   - ∂y/∂b = a, so the b cotangent is t * a
//
// These are exact: pullback(t) = (b*t, a*t) with no approximation.
func init() {
	df := func(a, b, _ float64) (float64, float64) { return b, a }

	register(OpMul, value.Real, realBinary(
		func(a, b float64) float64 { return a * b }, df))
	register(OpMul, value.Complex, complexBinary(
		func(a, b complex128) complex128 { return a * b },
		func(a, b, _ complex128) (complex128, complex128) { return b, a }))
	register(OpMul, value.Vector, vectorBinary(
		func(a, b float64) float64 { return a * b }, df))
}
