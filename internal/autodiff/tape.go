// Package autodiff implements reverse-mode automatic differentiation over
// scalar and low-dimensional vector values using an explicit pullback tape.
//
// A Tape records one forward pass: each Record call evaluates a primitive
// operation, appends the invocation's pullback to the tape, and returns the
// result as a Node. Backward then folds a seed cotangent through the
// recorded pullbacks in reverse order, summing contributions wherever a
// node fans out into several downstream operations.
//
// There is no hidden global tape. A tape serves exactly one
// forward/backward pair and is discarded afterwards; tapes share no state,
// so independent differentiation requests may run concurrently as long as
// each goroutine keeps its own tape.
//
// Usage:
//
//	tape := autodiff.NewTape()
//	x := tape.Input(value.FromReal(0.1))
//	y, _ := tape.Record(rules.OpSin, x)
//	grads, _ := tape.Grad(y, x) // dy/dx = cos(0.1)
package autodiff

import (
	"github.com/pkg/errors"
	"k8s.io/klog/v2"

	"github.com/cotangent-ml/cotangent/internal/autodiff/rules"
	"github.com/cotangent-ml/cotangent/internal/value"
)

// Node is one quantity on a tape: an input supplied by the client or the
// result of a recorded operation. Its identity (the pointer) is what the
// reverse pass keys cotangent accumulation on, so a value used by several
// downstream operations must be fed to them as the same Node.
type Node struct {
	tape  *Tape
	id    int
	value value.Value
}

// Value returns the quantity this node carries.
func (n *Node) Value() value.Value {
	return n.value
}

// entry is one recorded invocation: the operation, the operand nodes, the
// result node, and the pullback closed over that invocation's operands.
type entry struct {
	op       rules.Op
	inputs   []*Node
	output   *Node
	pullback rules.Pullback
}

// Tape is an append-only record of pullbacks in execution order, consumed
// exactly once, in reverse, by Backward.
type Tape struct {
	entries []entry
	nextID  int
}

// NewTape creates an empty tape.
func NewTape() *Tape {
	return &Tape{
		entries: make([]entry, 0, 64), // pre-allocate for common case
	}
}

// Input introduces a leaf quantity: a differentiation input or a constant.
// Inputs record nothing on the tape.
func (t *Tape) Input(v value.Value) *Node {
	return t.newNode(v)
}

func (t *Tape) newNode(v value.Value) *Node {
	n := &Node{tape: t, id: t.nextID, value: v}
	t.nextID++
	return n
}

// Record evaluates op on the operand nodes, appends the invocation's
// pullback to the tape, and returns the result node.
//
// An operation with no rule for the operand kinds fails with
// ErrUnsupportedOperation; operands that cannot be promoted to a common
// shape fail with ErrShapeMismatch. Both are usage errors with no recovery.
func (t *Tape) Record(op rules.Op, operands ...*Node) (*Node, error) {
	vals := make([]value.Value, len(operands))
	for i, n := range operands {
		if n == nil {
			return nil, errors.Wrapf(ErrTapeConsistency, "%s: operand %d is nil", op, i)
		}
		if n.tape != t {
			return nil, errors.Wrapf(ErrTapeConsistency, "%s: operand %d belongs to a different tape", op, i)
		}
		vals[i] = n.value
	}

	result, pullback, err := rules.Apply(op, vals...)
	if err != nil {
		return nil, err
	}

	out := t.newNode(result)
	inputs := make([]*Node, len(operands))
	copy(inputs, operands)
	t.entries = append(t.entries, entry{op: op, inputs: inputs, output: out, pullback: pullback})

	if klog.V(2).Enabled() {
		klog.Infof("tape: entry %d: #%d = %s -> %s", len(t.entries)-1, out.id, op, result)
	}
	return out, nil
}

// NumOps returns the number of recorded operations.
func (t *Tape) NumOps() int {
	return len(t.entries)
}
