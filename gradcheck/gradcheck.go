// Copyright 2025 The Cotangent Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package gradcheck approximates derivatives with central finite
// differences, for validating autodiff results against a rule-free
// estimate. Expect agreement near 1e-6 relative, not machine precision.
package gradcheck

import "github.com/cotangent-ml/cotangent/internal/gradcheck"

// Derivative approximates f'(x) with a central difference.
func Derivative(f func(float64) float64, x float64) float64 {
	return gradcheck.Derivative(f, x)
}

// Gradient approximates ∇f at x, one central difference per coordinate.
func Gradient(f func([]float64) float64, x []float64) []float64 {
	return gradcheck.Gradient(f, x)
}

// ComplexDerivative approximates f'(z) for a holomorphic f.
func ComplexDerivative(f func(complex128) complex128, z complex128) complex128 {
	return gradcheck.ComplexDerivative(f, z)
}

// Close reports whether got and want agree within tol, absolutely or
// relatively, whichever is looser.
func Close(got, want, tol float64) bool {
	return gradcheck.Close(got, want, tol)
}
