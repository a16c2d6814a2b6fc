// SPDX-License-Identifier: MIT
// Package array: sentinel error set.
// All operations return these sentinels (optionally wrapped with an operation
// tag) and tests match them via errors.Is. Occlusion is data, not an error:
// no sentinel here is ever returned because a row is occluded.

package array

import (
	"errors"
	"fmt"
)

var (
	// ErrNilOperand indicates that a nil expression or storage was passed.
	ErrNilOperand = errors.New("array: nil operand")

	// ErrInvalidRows is returned when a requested row (or replication) count is invalid.
	ErrInvalidRows = errors.New("array: invalid row count")

	// ErrBadShape indicates buffers whose lengths do not match the declared shape,
	// or an operand with too few columns for the operation.
	ErrBadShape = errors.New("array: invalid shape")

	// ErrBadStride indicates a view row stride smaller than the column count.
	ErrBadStride = errors.New("array: invalid row stride")

	// ErrEmptyOperand indicates an operand with zero rows where data is required.
	ErrEmptyOperand = errors.New("array: operand has no rows")

	// ErrRowMismatch indicates operands (or source/destination) with different row counts.
	ErrRowMismatch = errors.New("array: row count mismatch")

	// ErrColumnRange indicates a block whose column range exceeds its source width.
	ErrColumnRange = errors.New("array: column range out of bounds")

	// ErrOutOfRange indicates a row or column index outside valid bounds.
	ErrOutOfRange = errors.New("array: index out of range")

	// ErrNearZeroDivisor is returned by Div when |divisor| is below machine epsilon.
	ErrNearZeroDivisor = errors.New("array: divisor too close to zero")

	// ErrBadAxis indicates an invalid Euler axis sequence.
	ErrBadAxis = errors.New("array: invalid axis sequence")

	// ErrNotScalar is returned by Float when the expression is not 1×1.
	ErrNotScalar = errors.New("array: expression is not a scalar")

	// ErrReadOnly is returned when writing through a block whose source cannot store residuals.
	ErrReadOnly = errors.New("array: block source is read-only")
)

// arrayErrorf wraps err with an operation tag, preserving the sentinel for errors.Is.
func arrayErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
