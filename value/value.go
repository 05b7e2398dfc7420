// Copyright 2025 The Cotangent Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package value

import "github.com/cotangent-ml/cotangent/internal/value"

// Value is a tagged union over the three numeric variants the engine
// supports: real scalar, complex scalar, fixed-length real vector.
// Values are immutable; vector contents are copied on construction and on
// read.
type Value = value.Value

// Kind identifies which variant a Value holds.
type Kind = value.Kind

// The closed set of value variants.
const (
	Real    = value.Real
	Complex = value.Complex
	Vector  = value.Vector
)

// ErrShapeMismatch reports operands whose kinds or lengths cannot be
// combined.
var ErrShapeMismatch = value.ErrShapeMismatch

// FromReal returns a real scalar Value.
func FromReal(x float64) Value {
	return value.FromReal(x)
}

// FromComplex returns a complex scalar Value.
func FromComplex(z complex128) Value {
	return value.FromComplex(z)
}

// FromVector returns a vector Value holding a copy of v.
func FromVector(v []float64) Value {
	return value.FromVector(v)
}

// Zero returns the additive identity shaped like v.
func Zero(like Value) Value {
	return value.Zero(like)
}

// One returns the multiplicative-identity seed shaped like v: 1 for either
// scalar variant, the all-ones vector for a vector.
func One(like Value) Value {
	return value.One(like)
}

// Add returns a + b for two values of identical shape.
func Add(a, b Value) (Value, error) {
	return value.Add(a, b)
}

// SameShape reports whether a and b share kind and, for vectors, length.
func SameShape(a, b Value) bool {
	return value.SameShape(a, b)
}
