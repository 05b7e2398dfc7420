package rules

import (
	"gonum.org/v1/gonum/floats"

	"github.com/cotangent-ml/cotangent/internal/value"
)

// Sum reduces a vector to the sum of its entries: y = Σ v[i].
//
// Backward pass:
//   - ∂y/∂v[i] = 1 for every i
//   - at scalar seed t the input cotangent is the constant vector
//     [t, t, …, t] of the input's length
func init() {
	register(OpSum, value.Vector, Rule{
		Arity: 1,
		Forward: func(operands []value.Value) (value.Value, Pullback, error) {
			xv := operands[0].Vector()
			out := value.FromReal(floats.Sum(xv))
			n := len(xv)
			pb := func(t value.Value) ([]value.Value, error) {
				if err := checkCotangent(t, out); err != nil {
					return nil, err
				}
				grad := make([]float64, n)
				for i := range grad {
					grad[i] = t.Real()
				}
				return []value.Value{value.FromVector(grad)}, nil
			}
			return out, pb, nil
		},
	})
}
