package shape

import "errors"

// ErrInvalidInput is returned if a polygon does not have enough vertices
// for the requested operation.
var ErrInvalidInput = errors.New("invalid input")
