package autodiff

import (
	"github.com/pkg/errors"
	"k8s.io/klog/v2"

	"github.com/cotangent-ml/cotangent/internal/value"
)

// Backward folds the seed cotangent backward through the tape from output
// and returns the accumulated cotangent for every node the output depends
// on, keyed by node.
//
// Algorithm:
//  1. Seed the output node's cotangent.
//  2. Walk the entries strictly last-to-first.
//  3. Feed each entry's accumulated output cotangent into its pullback.
//  4. Add each resulting operand cotangent into the running total for that
//     operand; fan-out sums, it never overwrites.
//
// Entries whose output has no accumulated cotangent are skipped: nothing
// downstream of them reads their result. Tape order is execution order, so
// by the time the walk reaches an entry every consumer of its output has
// already contributed.
//
// The seed must share the recorded output's kind and shape; anything else
// fails with ErrTapeConsistency.
func (t *Tape) Backward(output *Node, seed value.Value) (map[*Node]value.Value, error) {
	if output == nil || output.tape != t {
		return nil, errors.Wrap(ErrTapeConsistency, "Backward: output node does not belong to this tape")
	}
	if !value.SameShape(seed, output.value) {
		return nil, errors.Wrapf(ErrTapeConsistency,
			"Backward: %s seed for %s output", seed.Kind(), output.value.Kind())
	}

	if klog.V(2).Enabled() {
		klog.Infof("tape: backward over %d entries from #%d", len(t.entries), output.id)
	}

	grads := make(map[*Node]value.Value, len(t.entries)+1)
	grads[output] = seed

	for i := len(t.entries) - 1; i >= 0; i-- {
		e := &t.entries[i]
		g, ok := grads[e.output]
		if !ok {
			continue // dead branch, nothing downstream reads it
		}
		inputGrads, err := e.pullback(g)
		if err != nil {
			return nil, errors.Wrapf(err, "%s (tape entry %d)", e.op, i)
		}
		for j, in := range e.inputs {
			cur, ok := grads[in]
			if !ok {
				grads[in] = inputGrads[j]
				continue
			}
			sum, err := value.Add(cur, inputGrads[j])
			if err != nil {
				return nil, errors.Wrapf(err, "%s (tape entry %d): accumulating operand %d", e.op, i, j)
			}
			grads[in] = sum
		}
	}
	return grads, nil
}

// Grad runs Backward with the multiplicative-identity seed (1, or the
// all-ones vector for a vector output) and returns the cotangent for each
// requested input, in order. Inputs the output does not depend on get a
// zero cotangent of their own shape.
func (t *Tape) Grad(output *Node, inputs ...*Node) ([]value.Value, error) {
	if output == nil || output.tape != t {
		return nil, errors.Wrap(ErrTapeConsistency, "Grad: output node does not belong to this tape")
	}
	grads, err := t.Backward(output, value.One(output.value))
	if err != nil {
		return nil, err
	}

	out := make([]value.Value, len(inputs))
	for i, in := range inputs {
		if in == nil || in.tape != t {
			return nil, errors.Wrapf(ErrTapeConsistency, "Grad: input %d does not belong to this tape", i)
		}
		if g, ok := grads[in]; ok {
			out[i] = g
		} else {
			out[i] = value.Zero(in.value)
		}
	}
	return out, nil
}
