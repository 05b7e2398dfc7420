package rules

import (
	"math"
	"math/cmplx"

	"github.com/cotangent-ml/cotangent/internal/value"
)

// Sin: y = sin(x).
//
// Backward pass:
//   - d(sin(x))/dx = cos(x)
//   - input cotangent = t * cos(x)
//
// sin is entire, so the complex rule is the same formula.
func init() {
	df := func(x, _ float64) float64 { return math.Cos(x) }

	register(OpSin, value.Real, realUnary(math.Sin, df))
	register(OpSin, value.Complex, complexUnary(cmplx.Sin,
		func(z, _ complex128) complex128 { return cmplx.Cos(z) }))
	register(OpSin, value.Vector, vectorUnary(math.Sin, df))
}
