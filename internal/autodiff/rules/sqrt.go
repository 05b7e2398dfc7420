package rules

import (
	"math"
	"math/cmplx"

	"github.com/cotangent-ml/cotangent/internal/value"
)

// Sqrt: y = √x.
//
// Backward pass:
//   - d(√x)/dx = 1/(2√x) = 1/(2y)
//   - input cotangent = t / (2y)
func init() {
	df := func(_, y float64) float64 { return 1 / (2 * y) }

	register(OpSqrt, value.Real, realUnary(math.Sqrt, df))
	register(OpSqrt, value.Complex, complexUnary(cmplx.Sqrt,
		func(_, y complex128) complex128 { return 1 / (2 * y) }))
	register(OpSqrt, value.Vector, vectorUnary(math.Sqrt, df))
}
