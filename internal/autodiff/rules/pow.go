package rules

import (
	"math"

	"github.com/cotangent-ml/cotangent/internal/value"
)

// Pow: y = a^b, real scalars or elementwise vectors, defined for positive
// base.
//
// Backward pass:
//   - ∂y/∂a = b * a^(b-1)
//   - ∂y/∂b = a^b * ln(a) = y * ln(a)
//
// There is no complex rule: a^b needs a branch choice for log(a) that the
// engine does not make, so complex operands surface ErrUnsupportedOperation.
func init() {
	register(OpPow, value.Real, realBinary(math.Pow,
		func(a, b, y float64) (float64, float64) {
			return b * math.Pow(a, b-1), y * math.Log(a)
		}))
	register(OpPow, value.Vector, vectorBinary(math.Pow,
		func(a, b, y float64) (float64, float64) {
			return b * math.Pow(a, b-1), y * math.Log(a)
		}))
}
