package rules

import "github.com/cotangent-ml/cotangent/internal/value"

// Add: y = a + b.
//
// Backward pass:
//   - ∂y/∂a = 1, ∂y/∂b = 1
//   - pullback(t) = (t, t)
//
// Defined for real and complex scalars and elementwise over vectors of
// matching length.
func init() {
	df := func(_, _, _ float64) (float64, float64) { return 1, 1 }

	register(OpAdd, value.Real, realBinary(
		func(a, b float64) float64 { return a + b }, df))
	register(OpAdd, value.Complex, complexBinary(
		func(a, b complex128) complex128 { return a + b },
		func(_, _, _ complex128) (complex128, complex128) { return 1, 1 }))
	register(OpAdd, value.Vector, vectorBinary(
		func(a, b float64) float64 { return a + b }, df))
}
