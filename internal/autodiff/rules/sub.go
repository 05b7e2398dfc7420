package rules

import "github.com/cotangent-ml/cotangent/internal/value"

// Sub: y = a - b.
//
// Backward pass:
//   - ∂y/∂a = 1, ∂y/∂b = -1
//   - pullback(t) = (t, -t)
func init() {
	df := func(_, _, _ float64) (float64, float64) { return 1, -1 }

	register(OpSub, value.Real, realBinary(
		func(a, b float64) float64 { return a - b }, df))
	register(OpSub, value.Complex, complexBinary(
		func(a, b complex128) complex128 { return a - b },
		func(_, _, _ complex128) (complex128, complex128) { return 1, -1 }))
	register(OpSub, value.Vector, vectorBinary(
		func(a, b float64) float64 { return a - b }, df))
}
