package rules

import (
	"math"
	"math/cmplx"

	"github.com/cotangent-ml/cotangent/internal/value"
)

// Exp: y = exp(x).
//
// Backward pass:
//   - d(exp(x))/dx = exp(x) = y, so the input cotangent is t * y
//
// exp is entire, so the complex rule is algebraically identical.
func init() {
	df := func(_, y float64) float64 { return y }

	register(OpExp, value.Real, realUnary(math.Exp, df))
	register(OpExp, value.Complex, complexUnary(cmplx.Exp,
		func(_, y complex128) complex128 { return y }))
	register(OpExp, value.Vector, vectorUnary(math.Exp, df))
}
