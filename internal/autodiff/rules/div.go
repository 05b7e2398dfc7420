package rules

import "github.com/cotangent-ml/cotangent/internal/value"

// Div: y = a / b.
//
// Backward pass:
//   - ∂y/∂a = 1/b, so the a cotangent is t / b
//   - ∂y/∂b = -a/b², so the b cotangent is -t * a / b²
func init() {
	df := func(a, b, _ float64) (float64, float64) { return 1 / b, -a / (b * b) }

	register(OpDiv, value.Real, realBinary(
		func(a, b float64) float64 { return a / b }, df))
	register(OpDiv, value.Complex, complexBinary(
		func(a, b complex128) complex128 { return a / b },
		func(a, b, _ complex128) (complex128, complex128) { return 1 / b, -a / (b * b) }))
	register(OpDiv, value.Vector, vectorBinary(
		func(a, b float64) float64 { return a / b }, df))
}
