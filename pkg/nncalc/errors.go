package nncalc

import (
	"errors"
	"fmt"
)

// ErrNotAllowed is returned in strict mode when an operation is invoked
// while its gate is closed.
var ErrNotAllowed = errors.New("operation not allowed by current gates")

// ErrUnknownOp is returned by Apply for an Op outside the defined set.
var ErrUnknownOp = errors.New("unknown operation")

// OpError records the operation that failed and why.
type OpError struct {
	Op  Op
	Err error
}

// Error implements the error interface.
func (e *OpError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error for use with errors.Is and errors.As.
func (e *OpError) Unwrap() error {
	return e.Err
}
