package rules

import (
	"math"
	"math/cmplx"

	"github.com/cotangent-ml/cotangent/internal/value"
)

// Tan: y = tan(x).
//
// Backward pass:
//   - d(tan(x))/dx = 1 + tan²(x) = 1 + y²
//   - input cotangent = t * (1 + y²)
//
// Using the output avoids a second cosine evaluation.
func init() {
	df := func(_, y float64) float64 { return 1 + y*y }

	register(OpTan, value.Real, realUnary(math.Tan, df))
	register(OpTan, value.Complex, complexUnary(cmplx.Tan,
		func(_, y complex128) complex128 { return 1 + y*y }))
	register(OpTan, value.Vector, vectorUnary(math.Tan, df))
}
