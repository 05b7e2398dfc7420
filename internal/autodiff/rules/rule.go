// Package rules defines the pullback rule for every primitive operation the
// engine can record, one rule per (operation, value kind) pair.
//
// Each rule's forward function evaluates the operation and returns, next to
// the result, a Pullback: the linear map taking an output cotangent to one
// input cotangent per operand, at exactly the operand values of that
// invocation. Pullbacks capture immutable snapshots of their operands, so a
// later invocation of the same operation at different values produces an
// independent pullback.
//
// Rules live in a static registration table keyed by operation and kind.
// Looking up a pair with no registered rule is a usage error surfaced as
// ErrUnsupportedOperation, never a silent zero derivative.
package rules

import (
	"errors"

	pkgerrors "github.com/pkg/errors"

	"github.com/cotangent-ml/cotangent/internal/value"
)

// ErrUnsupportedOperation reports a primitive with no registered pullback
// rule for the operand kind it was invoked with.
var ErrUnsupportedOperation = errors.New("unsupported operation")

// Op names a primitive operation.
type Op string

// The supported primitive set.
const (
	OpAdd  Op = "add"
	OpSub  Op = "sub"
	OpMul  Op = "mul"
	OpDiv  Op = "div"
	OpPow  Op = "pow"
	OpNeg  Op = "neg"
	OpSin  Op = "sin"
	OpCos  Op = "cos"
	OpTan  Op = "tan"
	OpExp  Op = "exp"
	OpLog  Op = "log"
	OpSqrt Op = "sqrt"
	OpTanh Op = "tanh"
	OpSum  Op = "sum"
	OpDot  Op = "dot"
)

// Pullback maps an output cotangent to the tuple of input cotangents, one
// per operand, for one specific invocation of a primitive operation.
type Pullback func(cotangent value.Value) ([]value.Value, error)

// Rule evaluates one primitive operation for one value kind.
type Rule struct {
	// Arity is the number of operands the rule consumes (1 or 2).
	Arity int

	// Forward computes the result and the invocation's pullback.
	// Operands have already been promoted to the rule's kind.
	Forward func(operands []value.Value) (value.Value, Pullback, error)
}

type key struct {
	op   Op
	kind value.Kind
}

var registry = map[key]Rule{}

// register installs a rule at package init time.
// Registering the same (op, kind) twice is a programming error.
func register(op Op, kind value.Kind, r Rule) {
	k := key{op: op, kind: kind}
	if _, dup := registry[k]; dup {
		panic("rules: duplicate registration for " + string(op) + " on " + kind.String())
	}
	registry[k] = r
}

// Lookup returns the rule for (op, kind), if one is registered.
func Lookup(op Op, kind value.Kind) (Rule, bool) {
	r, ok := registry[key{op: op, kind: kind}]
	return r, ok
}

// Apply evaluates op on the operands and returns the result together with
// the invocation's pullback. Binary operands are promoted first (real with
// complex widens to complex; a vector mixed with a scalar, or vectors of
// different lengths, fail with ErrShapeMismatch).
func Apply(op Op, operands ...value.Value) (value.Value, Pullback, error) {
	var kind value.Kind
	args := operands

	switch len(operands) {
	case 1:
		kind = operands[0].Kind()
	case 2:
		a, b, k, err := value.Promote(operands[0], operands[1])
		if err != nil {
			return value.Value{}, nil, pkgerrors.Wrapf(err, "%s", op)
		}
		kind = k
		args = []value.Value{a, b}
	default:
		return value.Value{}, nil, pkgerrors.Wrapf(ErrUnsupportedOperation,
			"%s: %d operands (primitives take 1 or 2)", op, len(operands))
	}

	rule, ok := Lookup(op, kind)
	if !ok {
		return value.Value{}, nil, pkgerrors.Wrapf(ErrUnsupportedOperation,
			"%s on %s operands", op, kind)
	}
	if rule.Arity != len(args) {
		return value.Value{}, nil, pkgerrors.Wrapf(ErrUnsupportedOperation,
			"%s: expects %d operands, got %d", op, rule.Arity, len(args))
	}
	return rule.Forward(args)
}
