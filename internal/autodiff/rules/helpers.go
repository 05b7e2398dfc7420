package rules

import (
	"github.com/pkg/errors"

	"github.com/cotangent-ml/cotangent/internal/value"
)

// checkCotangent rejects a cotangent shaped differently from the output it
// is attached to. Never silently truncated or padded.
func checkCotangent(t, out value.Value) error {
	if !value.SameShape(t, out) {
		return errors.Wrapf(value.ErrShapeMismatch,
			"pullback: %s cotangent for %s output", t.Kind(), out.Kind())
	}
	return nil
}

// realUnary builds the Real rule for y = f(x) with derivative df(x, y).
// df receives both the input and the already-computed output so rules like
// exp can reuse the forward result.
func realUnary(f func(float64) float64, df func(x, y float64) float64) Rule {
	return Rule{
		Arity: 1,
		Forward: func(operands []value.Value) (value.Value, Pullback, error) {
			x := operands[0].Real()
			y := f(x)
			out := value.FromReal(y)
			pb := func(t value.Value) ([]value.Value, error) {
				if err := checkCotangent(t, out); err != nil {
					return nil, err
				}
				return []value.Value{value.FromReal(df(x, y) * t.Real())}, nil
			}
			return out, pb, nil
		},
	}
}

// complexUnary builds the Complex rule for a holomorphic y = f(z).
func complexUnary(f func(complex128) complex128, df func(z, y complex128) complex128) Rule {
	return Rule{
		Arity: 1,
		Forward: func(operands []value.Value) (value.Value, Pullback, error) {
			z := operands[0].Complex()
			y := f(z)
			out := value.FromComplex(y)
			pb := func(t value.Value) ([]value.Value, error) {
				if err := checkCotangent(t, out); err != nil {
					return nil, err
				}
				return []value.Value{value.FromComplex(df(z, y) * t.Complex())}, nil
			}
			return out, pb, nil
		},
	}
}

// vectorUnary builds the elementwise Vector rule for y = f(x).
func vectorUnary(f func(float64) float64, df func(x, y float64) float64) Rule {
	return Rule{
		Arity: 1,
		Forward: func(operands []value.Value) (value.Value, Pullback, error) {
			xv := operands[0].Vector()
			yv := make([]float64, len(xv))
			for i, x := range xv {
				yv[i] = f(x)
			}
			out := value.FromVector(yv)
			pb := func(t value.Value) ([]value.Value, error) {
				if err := checkCotangent(t, out); err != nil {
					return nil, err
				}
				tv := t.Vector()
				grad := make([]float64, len(xv))
				for i := range grad {
					grad[i] = df(xv[i], yv[i]) * tv[i]
				}
				return []value.Value{value.FromVector(grad)}, nil
			}
			return out, pb, nil
		},
	}
}

// realBinary builds the Real rule for y = f(a, b) with partial derivatives
// df(a, b, y) = (∂y/∂a, ∂y/∂b).
func realBinary(f func(a, b float64) float64, df func(a, b, y float64) (float64, float64)) Rule {
	return Rule{
		Arity: 2,
		Forward: func(operands []value.Value) (value.Value, Pullback, error) {
			a, b := operands[0].Real(), operands[1].Real()
			y := f(a, b)
			out := value.FromReal(y)
			pb := func(t value.Value) ([]value.Value, error) {
				if err := checkCotangent(t, out); err != nil {
					return nil, err
				}
				da, db := df(a, b, y)
				tv := t.Real()
				return []value.Value{value.FromReal(da * tv), value.FromReal(db * tv)}, nil
			}
			return out, pb, nil
		},
	}
}

// complexBinary builds the Complex rule for y = f(a, b).
func complexBinary(f func(a, b complex128) complex128, df func(a, b, y complex128) (complex128, complex128)) Rule {
	return Rule{
		Arity: 2,
		Forward: func(operands []value.Value) (value.Value, Pullback, error) {
			a, b := operands[0].Complex(), operands[1].Complex()
			y := f(a, b)
			out := value.FromComplex(y)
			pb := func(t value.Value) ([]value.Value, error) {
				if err := checkCotangent(t, out); err != nil {
					return nil, err
				}
				da, db := df(a, b, y)
				tv := t.Complex()
				return []value.Value{value.FromComplex(da * tv), value.FromComplex(db * tv)}, nil
			}
			return out, pb, nil
		},
	}
}

// vectorBinary builds the elementwise Vector rule for y = f(a, b).
// Operand lengths already match; Promote enforced that before lookup.
func vectorBinary(f func(a, b float64) float64, df func(a, b, y float64) (float64, float64)) Rule {
	return Rule{
		Arity: 2,
		Forward: func(operands []value.Value) (value.Value, Pullback, error) {
			av, bv := operands[0].Vector(), operands[1].Vector()
			yv := make([]float64, len(av))
			for i := range yv {
				yv[i] = f(av[i], bv[i])
			}
			out := value.FromVector(yv)
			pb := func(t value.Value) ([]value.Value, error) {
				if err := checkCotangent(t, out); err != nil {
					return nil, err
				}
				tv := t.Vector()
				ga := make([]float64, len(av))
				gb := make([]float64, len(av))
				for i := range tv {
					da, db := df(av[i], bv[i], yv[i])
					ga[i] = da * tv[i]
					gb[i] = db * tv[i]
				}
				return []value.Value{value.FromVector(ga), value.FromVector(gb)}, nil
			}
			return out, pb, nil
		},
	}
}
