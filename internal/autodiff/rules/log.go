package rules

import (
	"math"
	"math/cmplx"

	"github.com/cotangent-ml/cotangent/internal/value"
)

// Log: y = log(x), natural logarithm.
//
// Backward pass:
//   - d(log(x))/dx = 1/x
//   - input cotangent = t / x
//
// The complex rule uses the principal branch.
func init() {
	df := func(x, _ float64) float64 { return 1 / x }

	register(OpLog, value.Real, realUnary(math.Log, df))
	register(OpLog, value.Complex, complexUnary(cmplx.Log,
		func(z, _ complex128) complex128 { return 1 / z }))
	register(OpLog, value.Vector, vectorUnary(math.Log, df))
}
