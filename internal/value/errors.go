package value

import "errors"

// ErrShapeMismatch reports operands whose kinds or lengths cannot be
// combined: a vector mixed with a scalar in an elementwise operation, or
// two vectors of different lengths. There is no recovery; the caller built
// an ill-shaped computation.
var ErrShapeMismatch = errors.New("shape mismatch")
