package gradcheck_test

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cotangent-ml/cotangent/internal/gradcheck"
)

// TestDerivative tests central differences against known derivatives.
func TestDerivative(t *testing.T) {
	got := gradcheck.Derivative(math.Sin, 0.3)
	assert.InDelta(t, math.Cos(0.3), got, 1e-8)

	got = gradcheck.Derivative(func(x float64) float64 { return x * x * x }, 2)
	assert.InDelta(t, 12, got, 1e-6)

	// Step scaling keeps large arguments usable.
	got = gradcheck.Derivative(func(x float64) float64 { return x * x }, 1e6)
	assert.InDelta(t, 2e6, got, 1)
}

// TestGradient tests the coordinate-wise gradient and that the evaluation
// point is left untouched.
func TestGradient(t *testing.T) {
	x := []float64{1, 2, 3}
	grad := gradcheck.Gradient(func(v []float64) float64 {
		return v[0]*v[1] + v[2]*v[2]
	}, x)

	assert.InDelta(t, 2, grad[0], 1e-6)
	assert.InDelta(t, 1, grad[1], 1e-6)
	assert.InDelta(t, 6, grad[2], 1e-6)
	assert.Equal(t, []float64{1, 2, 3}, x)
}

// TestComplexDerivative tests a holomorphic derivative estimate.
func TestComplexDerivative(t *testing.T) {
	z := complex(0.5, -0.25)
	got := gradcheck.ComplexDerivative(cmplx.Exp, z)
	assert.Less(t, cmplx.Abs(got-cmplx.Exp(z)), 1e-7)
}

// TestClose tests the combined absolute/relative tolerance.
func TestClose(t *testing.T) {
	assert.True(t, gradcheck.Close(1.0000001, 1, 1e-5))
	assert.False(t, gradcheck.Close(1.1, 1, 1e-5))
	assert.True(t, gradcheck.Close(1e-12, 0, 1e-5), "absolute tolerance near zero")
}
