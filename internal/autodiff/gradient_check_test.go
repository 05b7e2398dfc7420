package autodiff_test

import (
	"math"
	"testing"

	"github.com/cotangent-ml/cotangent/internal/autodiff"
	"github.com/cotangent-ml/cotangent/internal/autodiff/rules"
	"github.com/cotangent-ml/cotangent/internal/gradcheck"
	"github.com/cotangent-ml/cotangent/internal/value"
)

// TestNumerical_FanOut checks the fan-out case z = g(x, f(x)) against a
// finite-difference estimate: with f = sin and g = mul, x reaches z
// directly and through y = sin(x), and both contributions must be summed.
func TestNumerical_FanOut(t *testing.T) {
	const x0 = 0.7

	tape := autodiff.NewTape()
	x := tape.Input(value.FromReal(x0))
	y := record(t, tape, rules.OpSin, x)
	z := record(t, tape, rules.OpMul, x, y)

	grads, err := tape.Grad(z, x)
	if err != nil {
		t.Fatalf("Grad: %v", err)
	}

	numerical := gradcheck.Derivative(func(v float64) float64 { return v * math.Sin(v) }, x0)
	if got := grads[0].Real(); !gradcheck.Close(got, numerical, 1e-5) {
		t.Errorf("autodiff grad %.12g differs from numerical grad %.12g", got, numerical)
	}
}

// TestNumerical_Polynomial checks f(x) = x³ - 2x² + x built from pow, mul,
// sub and add primitives.
func TestNumerical_Polynomial(t *testing.T) {
	const x0 = 2.0

	tape := autodiff.NewTape()
	x := tape.Input(value.FromReal(x0))
	three := tape.Input(value.FromReal(3))
	two := tape.Input(value.FromReal(2))

	cube := record(t, tape, rules.OpPow, x, three)
	sq := record(t, tape, rules.OpMul, x, x)
	twoSq := record(t, tape, rules.OpMul, two, sq)
	diff := record(t, tape, rules.OpSub, cube, twoSq)
	f := record(t, tape, rules.OpAdd, diff, x)

	grads, err := tape.Grad(f, x)
	if err != nil {
		t.Fatalf("Grad: %v", err)
	}

	// f'(x) = 3x² - 4x + 1 = 5 at x = 2.
	if got := grads[0].Real(); math.Abs(got-5) > 1e-10 {
		t.Errorf("f'(2) = %.12g, want 5", got)
	}

	numerical := gradcheck.Derivative(func(v float64) float64 { return v*v*v - 2*v*v + v }, x0)
	if got := grads[0].Real(); !gradcheck.Close(got, numerical, 1e-4) {
		t.Errorf("autodiff grad %.12g differs from numerical grad %.12g", got, numerical)
	}
}

// TestNumerical_VectorDot checks the dot-product gradient against a
// coordinate-wise finite-difference gradient.
func TestNumerical_VectorDot(t *testing.T) {
	av := []float64{0.5, -1.5, 2}
	bv := []float64{3, 0.25, -1}

	tape := autodiff.NewTape()
	a := tape.Input(value.FromVector(av))
	b := tape.Input(value.FromVector(bv))
	d := record(t, tape, rules.OpDot, a, b)

	grads, err := tape.Grad(d, a)
	if err != nil {
		t.Fatalf("Grad: %v", err)
	}

	numerical := gradcheck.Gradient(func(v []float64) float64 {
		var s float64
		for i := range v {
			s += v[i] * bv[i]
		}
		return s
	}, av)

	got := grads[0].Vector()
	for i := range got {
		if !gradcheck.Close(got[i], numerical[i], 1e-5) {
			t.Errorf("grad[%d] = %.12g, numerical %.12g", i, got[i], numerical[i])
		}
	}
}
