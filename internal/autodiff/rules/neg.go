package rules

import "github.com/cotangent-ml/cotangent/internal/value"

// Neg: y = -x.
//
// Backward pass:
//   - ∂y/∂x = -1
//   - pullback(t) = (-t,)
func init() {
	register(OpNeg, value.Real, realUnary(
		func(x float64) float64 { return -x },
		func(_, _ float64) float64 { return -1 }))
	register(OpNeg, value.Complex, complexUnary(
		func(z complex128) complex128 { return -z },
		func(_, _ complex128) complex128 { return -1 }))
	register(OpNeg, value.Vector, vectorUnary(
		func(x float64) float64 { return -x },
		func(_, _ float64) float64 { return -1 }))
}
