// Copyright 2025 The Cotangent Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides reverse-mode automatic differentiation built on
// an explicit pullback tape.
//
// A Tape records primitive operations during the forward pass; every Record
// call appends the invocation's pullback (the linear map from output
// cotangent to input cotangents at those exact operand values). Backward
// folds a seed cotangent through the recorded pullbacks in reverse,
// summing contributions where a quantity fans out. Grad is the common
// shortcut seeding with 1.
//
// Example:
//
//	import (
//	    "github.com/cotangent-ml/cotangent/autodiff"
//	    "github.com/cotangent-ml/cotangent/value"
//	)
//
//	func main() {
//	    tape := autodiff.NewTape()
//	    x := tape.Input(value.FromReal(0.1))
//	    y, _ := tape.Record(autodiff.OpSin, x)
//	    grads, _ := tape.Grad(y, x)
//	    fmt.Println(grads[0]) // cos(0.1)
//	}
package autodiff

import (
	"github.com/cotangent-ml/cotangent/internal/autodiff"
	"github.com/cotangent-ml/cotangent/internal/autodiff/rules"
	"github.com/cotangent-ml/cotangent/internal/value"
)

// Tape records one forward pass and serves exactly one reverse pass.
type Tape = autodiff.Tape

// Node is one quantity on a tape; its identity keys cotangent accumulation.
type Node = autodiff.Node

// Op names a primitive operation.
type Op = rules.Op

// Pullback maps an output cotangent to the tuple of input cotangents for
// one specific invocation of a primitive operation.
type Pullback = rules.Pullback

// The supported primitive set.
const (
	OpAdd  = rules.OpAdd
	OpSub  = rules.OpSub
	OpMul  = rules.OpMul
	OpDiv  = rules.OpDiv
	OpPow  = rules.OpPow
	OpNeg  = rules.OpNeg
	OpSin  = rules.OpSin
	OpCos  = rules.OpCos
	OpTan  = rules.OpTan
	OpExp  = rules.OpExp
	OpLog  = rules.OpLog
	OpSqrt = rules.OpSqrt
	OpTanh = rules.OpTanh
	OpSum  = rules.OpSum
	OpDot  = rules.OpDot
)

// Error taxonomy. All three are unrecoverable usage errors; match with
// errors.Is through any wrapping.
var (
	ErrUnsupportedOperation = autodiff.ErrUnsupportedOperation
	ErrShapeMismatch        = autodiff.ErrShapeMismatch
	ErrTapeConsistency      = autodiff.ErrTapeConsistency
)

// NewTape creates an empty tape. Use one tape per differentiation request
// and per goroutine; tapes share no state.
func NewTape() *Tape {
	return autodiff.NewTape()
}

// Apply evaluates op on the operands and returns the result together with
// the invocation's pullback, without recording anywhere. It is the tapeless
// building block for clients that keep their own pullback sequence.
func Apply(op Op, operands ...value.Value) (value.Value, Pullback, error) {
	return rules.Apply(op, operands...)
}
