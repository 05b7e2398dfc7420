package value

import "github.com/pkg/errors"

// Promote applies ordinary arithmetic promotion to a pair of operands and
// returns them widened to their common kind:
//
//   - Real with Real stays Real.
//   - Real with Complex (either order) widens the real side to Complex.
//   - Vector with Vector of the same length stays Vector.
//
// A vector mixed with a scalar, or two vectors of different lengths, cannot
// be promoted and fails with ErrShapeMismatch: the elementwise operations
// here are defined only for matching lengths, and scalar broadcasting is
// deliberately not part of the model.
func Promote(a, b Value) (Value, Value, Kind, error) {
	switch {
	case a.kind == Vector && b.kind == Vector:
		if len(a.vec) != len(b.vec) {
			return Value{}, Value{}, 0, errors.Wrapf(ErrShapeMismatch,
				"Promote: %s and %s", describe(a), describe(b))
		}
		return a, b, Vector, nil

	case a.kind == Vector || b.kind == Vector:
		return Value{}, Value{}, 0, errors.Wrapf(ErrShapeMismatch,
			"Promote: %s and %s", describe(a), describe(b))

	case a.kind == Complex || b.kind == Complex:
		return Value{kind: Complex, scalar: a.scalar},
			Value{kind: Complex, scalar: b.scalar}, Complex, nil

	default:
		return a, b, Real, nil
	}
}
