// Package value defines the numeric values the autodiff engine is
// polymorphic over: real scalars, complex scalars, and fixed-length real
// vectors.
//
// A Value is immutable once constructed. Vector contents are copied both on
// construction and on read, so a Value can never alias a caller's slice;
// pullback closures rely on this to capture true snapshots of their
// operands.
package value

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
)

// Value is a tagged union over the three supported variants.
// The zero Value is the real scalar 0.
type Value struct {
	kind   Kind
	scalar complex128 // Real and Complex payload (imag is 0 for Real)
	vec    []float64  // Vector payload; never shared with callers
}

// FromReal returns a real scalar Value.
func FromReal(x float64) Value {
	return Value{kind: Real, scalar: complex(x, 0)}
}

// FromComplex returns a complex scalar Value.
func FromComplex(z complex128) Value {
	return Value{kind: Complex, scalar: z}
}

// FromVector returns a vector Value holding a copy of v.
// Mutating v afterwards does not affect the returned Value.
func FromVector(v []float64) Value {
	cp := make([]float64, len(v))
	copy(cp, v)
	return Value{kind: Vector, vec: cp}
}

// Kind returns which variant the Value holds.
func (v Value) Kind() Kind {
	return v.kind
}

// Real returns the real scalar payload.
// It panics if the Value is not a real scalar; calling it on the wrong
// variant is a programming error, not a runtime condition.
func (v Value) Real() float64 {
	if v.kind != Real {
		panic(fmt.Sprintf("value: Real() on %s value", v.kind))
	}
	return real(v.scalar)
}

// Complex returns the complex scalar payload.
// It panics if the Value is not a complex scalar.
func (v Value) Complex() complex128 {
	if v.kind != Complex {
		panic(fmt.Sprintf("value: Complex() on %s value", v.kind))
	}
	return v.scalar
}

// AsComplex returns the scalar payload of either scalar variant, widening
// a real to complex. It panics on a vector.
func (v Value) AsComplex() complex128 {
	if v.kind == Vector {
		panic("value: AsComplex() on Vector value")
	}
	return v.scalar
}

// Vector returns a copy of the vector payload.
// It panics if the Value is not a vector.
func (v Value) Vector() []float64 {
	if v.kind != Vector {
		panic(fmt.Sprintf("value: Vector() on %s value", v.kind))
	}
	cp := make([]float64, len(v.vec))
	copy(cp, v.vec)
	return cp
}

// Len returns the vector length, or 1 for either scalar variant.
func (v Value) Len() int {
	if v.kind == Vector {
		return len(v.vec)
	}
	return 1
}

// SameShape reports whether a and b have the same kind and, for vectors,
// the same length. Cotangents must always share the shape of the quantity
// they are attached to.
func SameShape(a, b Value) bool {
	if a.kind != b.kind {
		return false
	}
	return a.kind != Vector || len(a.vec) == len(b.vec)
}

// Zero returns the additive identity shaped like v.
func Zero(like Value) Value {
	switch like.kind {
	case Vector:
		return Value{kind: Vector, vec: make([]float64, len(like.vec))}
	case Complex:
		return Value{kind: Complex}
	default:
		return Value{}
	}
}

// One returns the multiplicative-identity seed shaped like v: the scalar 1
// for either scalar variant, or the all-ones vector for a vector.
func One(like Value) Value {
	switch like.kind {
	case Vector:
		ones := make([]float64, len(like.vec))
		for i := range ones {
			ones[i] = 1
		}
		return Value{kind: Vector, vec: ones}
	case Complex:
		return Value{kind: Complex, scalar: 1}
	default:
		return FromReal(1)
	}
}

// Add returns a + b for two values of identical shape. It is the
// accumulation primitive for fan-out: cotangent contributions arriving
// along different paths are summed with it, never overwritten.
func Add(a, b Value) (Value, error) {
	if !SameShape(a, b) {
		return Value{}, errors.Wrapf(ErrShapeMismatch, "Add: cannot accumulate %s into %s", describe(b), describe(a))
	}
	switch a.kind {
	case Vector:
		sum := make([]float64, len(a.vec))
		floats.AddTo(sum, a.vec, b.vec)
		return Value{kind: Vector, vec: sum}, nil
	default:
		return Value{kind: a.kind, scalar: a.scalar + b.scalar}, nil
	}
}

// String renders the value for logs and error messages.
func (v Value) String() string {
	switch v.kind {
	case Real:
		return fmt.Sprintf("%g", real(v.scalar))
	case Complex:
		return fmt.Sprintf("%g", v.scalar)
	case Vector:
		parts := make([]string, len(v.vec))
		for i, x := range v.vec {
			parts[i] = fmt.Sprintf("%g", x)
		}
		return "[" + strings.Join(parts, " ") + "]"
	default:
		return "Unknown"
	}
}

// describe names a value's shape for error messages ("Vector[3]", "Real").
func describe(v Value) string {
	if v.kind == Vector {
		return fmt.Sprintf("Vector[%d]", len(v.vec))
	}
	return v.kind.String()
}
