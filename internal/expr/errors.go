package expr

import (
	"errors"
	"fmt"
)

// Common errors. All of them mark contract violations at the point of the
// offending call; the engine never retries or recovers internally.
var (
	ErrUnsupportedType  = errors.New("unsupported type for expression coercion")
	ErrShapeMismatch    = errors.New("tensor shapes do not match")
	ErrInvalidOperation = errors.New("operation not defined for these operands")
	ErrEmptyTensor      = errors.New("tensor must hold at least one element")
)

// ShapeError reports the two shapes an elementwise or contracting operation
// could not reconcile.
type ShapeError struct {
	Op    string // Operation that failed (e.g. "add", "inner")
	Left  Shape  // Shape of the left operand
	Right Shape  // Shape of the right operand
}

// Error implements the error interface.
func (e *ShapeError) Error() string {
	return fmt.Sprintf("%s: shapes %v and %v are incompatible", e.Op, e.Left, e.Right)
}

// Unwrap lets errors.Is classify a ShapeError as an ErrShapeMismatch.
func (e *ShapeError) Unwrap() error {
	return ErrShapeMismatch
}
