package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cotangent-ml/cotangent/internal/autodiff/rules"
	"github.com/cotangent-ml/cotangent/internal/value"
)

// TestApply_MulPullbackExact tests that the multiplication pullback is
// exactly (b*t, a*t), not an approximation, over sampled operands.
func TestApply_MulPullbackExact(t *testing.T) {
	samples := []struct{ a, b, t float64 }{
		{2, 3, 1},
		{-1.5, 0.25, 4},
		{1e-9, 7e3, -2.5},
		{0, 42, 13},
	}

	for _, s := range samples {
		out, pullback, err := rules.Apply(rules.OpMul, value.FromReal(s.a), value.FromReal(s.b))
		require.NoError(t, err)
		assert.Equal(t, s.a*s.b, out.Real())

		grads, err := pullback(value.FromReal(s.t))
		require.NoError(t, err)
		require.Len(t, grads, 2)
		assert.Equal(t, s.b*s.t, grads[0].Real(), "a cotangent")
		assert.Equal(t, s.a*s.t, grads[1].Real(), "b cotangent")
	}
}

// TestApply_DivPullbackExact tests pullback(t) = (t/b, -t*a/b²) exactly.
func TestApply_DivPullbackExact(t *testing.T) {
	samples := []struct{ a, b, t float64 }{
		{1, 2, 1},
		{-3, 0.5, 2},
		{7, -4, -0.125},
	}

	for _, s := range samples {
		out, pullback, err := rules.Apply(rules.OpDiv, value.FromReal(s.a), value.FromReal(s.b))
		require.NoError(t, err)
		assert.Equal(t, s.a/s.b, out.Real())

		grads, err := pullback(value.FromReal(s.t))
		require.NoError(t, err)
		require.Len(t, grads, 2)
		assert.Equal(t, s.t/s.b, grads[0].Real(), "a cotangent")
		assert.Equal(t, -s.t*s.a/(s.b*s.b), grads[1].Real(), "b cotangent")
	}
}

// TestApply_AddPullback tests pullback(t) = (t, t).
func TestApply_AddPullback(t *testing.T) {
	_, pullback, err := rules.Apply(rules.OpAdd, value.FromReal(1.5), value.FromReal(-2))
	require.NoError(t, err)

	grads, err := pullback(value.FromReal(3.25))
	require.NoError(t, err)
	require.Len(t, grads, 2)
	assert.Equal(t, 3.25, grads[0].Real())
	assert.Equal(t, 3.25, grads[1].Real())
}

// TestApply_SumPullback tests that the sum pullback at scalar seed t is the
// constant vector [t, t, …, t] of the input's length.
func TestApply_SumPullback(t *testing.T) {
	v := []float64{1, 2, 3, 4, 5}

	out, pullback, err := rules.Apply(rules.OpSum, value.FromVector(v))
	require.NoError(t, err)
	assert.Equal(t, 15.0, out.Real())

	grads, err := pullback(value.FromReal(2.5))
	require.NoError(t, err)
	require.Len(t, grads, 1)

	grad := grads[0].Vector()
	require.Len(t, grad, len(v))
	for i := range grad {
		assert.Equal(t, 2.5, grad[i], "entry %d", i)
	}
}

// TestApply_ElementwiseMulPullback tests pullback(t) = (t .* b, t .* a).
func TestApply_ElementwiseMulPullback(t *testing.T) {
	av := []float64{1, -2, 0.5}
	bv := []float64{4, 3, -8}
	tv := []float64{2, 0.5, 1}

	out, pullback, err := rules.Apply(rules.OpMul, value.FromVector(av), value.FromVector(bv))
	require.NoError(t, err)
	assert.Equal(t, []float64{4, -6, -4}, out.Vector())

	grads, err := pullback(value.FromVector(tv))
	require.NoError(t, err)
	require.Len(t, grads, 2)
	assert.Equal(t, []float64{8, 1.5, -8}, grads[0].Vector(), "t .* b")
	assert.Equal(t, []float64{2, -1, 0.5}, grads[1].Vector(), "t .* a")
}

// TestApply_PromotesRealToComplex tests mixed-kind promotion.
func TestApply_PromotesRealToComplex(t *testing.T) {
	out, pullback, err := rules.Apply(rules.OpMul, value.FromReal(2), value.FromComplex(complex(0, 1)))
	require.NoError(t, err)
	require.Equal(t, value.Complex, out.Kind())
	assert.Equal(t, complex(0, 2), out.Complex())

	grads, err := pullback(value.FromComplex(1))
	require.NoError(t, err)
	assert.Equal(t, complex(0, 1), grads[0].Complex())
	assert.Equal(t, complex(2, 0), grads[1].Complex())
}

// TestApply_UnsupportedOperation tests the error path for an unregistered
// operation name: no usable pullback may come back.
func TestApply_UnsupportedOperation(t *testing.T) {
	_, pullback, err := rules.Apply(rules.Op("frobnicate"), value.FromReal(1), value.FromReal(2))
	require.ErrorIs(t, err, rules.ErrUnsupportedOperation)
	assert.Nil(t, pullback)
}

// TestApply_UnsupportedKind tests a real operation invoked on a kind it has
// no rule for.
func TestApply_UnsupportedKind(t *testing.T) {
	// pow has no complex rule.
	_, _, err := rules.Apply(rules.OpPow, value.FromComplex(complex(1, 1)), value.FromComplex(2))
	require.ErrorIs(t, err, rules.ErrUnsupportedOperation)

	// sum is vector-only.
	_, _, err = rules.Apply(rules.OpSum, value.FromReal(3))
	require.ErrorIs(t, err, rules.ErrUnsupportedOperation)
}

// TestApply_ArityMismatch tests wrong operand counts.
func TestApply_ArityMismatch(t *testing.T) {
	_, _, err := rules.Apply(rules.OpSin, value.FromReal(1), value.FromReal(2))
	require.ErrorIs(t, err, rules.ErrUnsupportedOperation)

	_, _, err = rules.Apply(rules.OpMul, value.FromReal(1))
	require.ErrorIs(t, err, rules.ErrUnsupportedOperation)

	_, _, err = rules.Apply(rules.OpMul)
	require.ErrorIs(t, err, rules.ErrUnsupportedOperation)
}

// TestApply_ShapeMismatch tests unpromotable operand combinations.
func TestApply_ShapeMismatch(t *testing.T) {
	_, _, err := rules.Apply(rules.OpMul, value.FromVector([]float64{1, 2}), value.FromReal(3))
	require.ErrorIs(t, err, value.ErrShapeMismatch)

	_, _, err = rules.Apply(rules.OpAdd, value.FromVector([]float64{1, 2}), value.FromVector([]float64{1, 2, 3}))
	require.ErrorIs(t, err, value.ErrShapeMismatch)
}

// TestPullback_RejectsWrongCotangentShape tests that a pullback refuses a
// cotangent shaped differently from its output.
func TestPullback_RejectsWrongCotangentShape(t *testing.T) {
	_, pullback, err := rules.Apply(rules.OpSin, value.FromReal(0.5))
	require.NoError(t, err)

	_, err = pullback(value.FromVector([]float64{1}))
	require.ErrorIs(t, err, value.ErrShapeMismatch)
}

// TestPullback_SnapshotsOperands tests that each invocation's pullback
// keeps its own operand values: applying the same operation at a new point
// must not disturb pullbacks created earlier.
func TestPullback_SnapshotsOperands(t *testing.T) {
	_, first, err := rules.Apply(rules.OpMul, value.FromReal(2), value.FromReal(3))
	require.NoError(t, err)
	_, second, err := rules.Apply(rules.OpMul, value.FromReal(10), value.FromReal(20))
	require.NoError(t, err)

	grads, err := first(value.FromReal(1))
	require.NoError(t, err)
	assert.Equal(t, 3.0, grads[0].Real())
	assert.Equal(t, 2.0, grads[1].Real())

	grads, err = second(value.FromReal(1))
	require.NoError(t, err)
	assert.Equal(t, 20.0, grads[0].Real())
	assert.Equal(t, 10.0, grads[1].Real())
}

// TestLookup_Coverage tests the advertised (op, kind) coverage table.
func TestLookup_Coverage(t *testing.T) {
	scalarOps := []rules.Op{
		rules.OpAdd, rules.OpSub, rules.OpMul, rules.OpDiv,
		rules.OpNeg, rules.OpSin, rules.OpCos, rules.OpTan,
		rules.OpExp, rules.OpLog, rules.OpSqrt, rules.OpTanh,
	}
	for _, op := range scalarOps {
		_, ok := rules.Lookup(op, value.Real)
		assert.True(t, ok, "%s on Real", op)
		_, ok = rules.Lookup(op, value.Complex)
		assert.True(t, ok, "%s on Complex", op)
		_, ok = rules.Lookup(op, value.Vector)
		assert.True(t, ok, "%s on Vector", op)
	}

	_, ok := rules.Lookup(rules.OpPow, value.Complex)
	assert.False(t, ok, "pow must have no complex rule")
	_, ok = rules.Lookup(rules.OpSum, value.Real)
	assert.False(t, ok, "sum is vector-only")
	_, ok = rules.Lookup(rules.OpDot, value.Real)
	assert.False(t, ok, "dot is vector-only")
}
