// Copyright 2025 The Cotangent Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package value defines the numeric values the autodiff engine is
// polymorphic over.
//
// Three variants exist: Real (float64), Complex (complex128), and Vector
// (a fixed-length []float64). Binary operations promote a real scalar
// combined with a complex scalar to complex, exactly as ordinary
// arithmetic does; a vector combined with a scalar, or two vectors of
// different lengths, cannot be promoted and fail with ErrShapeMismatch.
//
// Values are immutable snapshots: constructing a vector Value copies the
// slice, and reading it back copies again, so no Value ever aliases caller
// memory. The engine's pullbacks depend on this to capture the exact
// operand values of their invocation.
package value
