package rules

import (
	"math"
	"math/cmplx"

	"github.com/cotangent-ml/cotangent/internal/value"
)

// Cos: y = cos(x).
//
// Backward pass:
//   - d(cos(x))/dx = -sin(x)
//   - input cotangent = -t * sin(x)
func init() {
	df := func(x, _ float64) float64 { return -math.Sin(x) }

	register(OpCos, value.Real, realUnary(math.Cos, df))
	register(OpCos, value.Complex, complexUnary(cmplx.Cos,
		func(z, _ complex128) complex128 { return -cmplx.Sin(z) }))
	register(OpCos, value.Vector, vectorUnary(math.Cos, df))
}
