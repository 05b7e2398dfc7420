package rules

import (
	"gonum.org/v1/gonum/floats"

	"github.com/cotangent-ml/cotangent/internal/value"
)

// Dot: y = Σ a[i] * b[i], two vectors of matching length to a real scalar.
//
// Backward pass:
//   - ∂y/∂a = b and ∂y/∂b = a
//   - at scalar seed t the cotangents are (t*b, t*a) elementwise
func init() {
	register(OpDot, value.Vector, Rule{
		Arity: 2,
		Forward: func(operands []value.Value) (value.Value, Pullback, error) {
			av, bv := operands[0].Vector(), operands[1].Vector()
			out := value.FromReal(floats.Dot(av, bv))
			pb := func(t value.Value) ([]value.Value, error) {
				if err := checkCotangent(t, out); err != nil {
					return nil, err
				}
				ga := make([]float64, len(bv))
				gb := make([]float64, len(av))
				floats.AddScaled(ga, t.Real(), bv)
				floats.AddScaled(gb, t.Real(), av)
				return []value.Value{value.FromVector(ga), value.FromVector(gb)}, nil
			}
			return out, pb, nil
		},
	})
}
