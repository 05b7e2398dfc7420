package autodiff

import (
	"errors"

	"github.com/cotangent-ml/cotangent/internal/autodiff/rules"
	"github.com/cotangent-ml/cotangent/internal/value"
)

// ErrTapeConsistency reports a reverse pass whose arguments do not fit the
// tape: a seed cotangent shaped differently from the recorded output, or a
// node that belongs to a different tape. Surfaced immediately, never
// silently truncated or padded.
var ErrTapeConsistency = errors.New("tape consistency")

// The rest of the error taxonomy originates in the packages that detect it;
// re-exported here so clients can match without importing them.
var (
	ErrUnsupportedOperation = rules.ErrUnsupportedOperation
	ErrShapeMismatch        = value.ErrShapeMismatch
)
