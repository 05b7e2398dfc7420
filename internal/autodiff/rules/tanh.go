package rules

import (
	"math"
	"math/cmplx"

	"github.com/cotangent-ml/cotangent/internal/value"
)

// Tanh: y = tanh(x).
//
// Backward pass:
//   - d(tanh(x))/dx = 1 - tanh²(x) = 1 - y²
//   - input cotangent = t * (1 - y²)
func init() {
	df := func(_, y float64) float64 { return 1 - y*y }

	register(OpTanh, value.Real, realUnary(math.Tanh, df))
	register(OpTanh, value.Complex, complexUnary(cmplx.Tanh,
		func(_, y complex128) complex128 { return 1 - y*y }))
	register(OpTanh, value.Vector, vectorUnary(math.Tanh, df))
}
