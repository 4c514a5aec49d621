package gm

import "errors"

// ErrDimensionMismatch is returned by Matrix operations whose operands
// have incompatible row or column counts.
var ErrDimensionMismatch = errors.New("matrix dimension mismatch")

// ErrDegenerateVector is returned when a zero length vector would have to be
// divided by its own length.
var ErrDegenerateVector = errors.New("degenerate vector")
