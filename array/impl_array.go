// SPDX-License-Identifier: MIT

// Package array - Array storage (row-major, owning) & safe accessors.
//
// Purpose:
//   - Own a row-major value buffer (rows×C) and a residual column (rows).
//   - Keep the zero-invariant: every row with a negative residual holds zeros.
//   - Serve as the default destination of Assign (resized to the source rows).
//
// AI-Hints:
//   - Values()/Residuals() expose the backing buffers for bulk export; do not
//     write non-zero values into occluded rows through them.
//   - Use SetRow for sample-by-sample ingestion; it zeroes occluded rows.
//
// Complexity quicksheet:
//   - New: O(r*C) zero-init; Row/Residual: O(1); Clone: O(r*C).

package array

import (
	"fmt"
)

// Operation name constants for unified error wrapping.
const (
	opNew         = "New"
	opFromValues  = "FromValues"
	opFromData    = "FromData"
	opMaterialize = "Materialize"
	opAt          = "At"
	opSetRow      = "SetRow"
)

// Array is an owning time-series array with C columns.
//   - values holds rows*C elements in row-major order (offset = i*C + j).
//   - residuals holds one validity residual per row.
type Array[C Width] struct {
	rows      int
	values    []float64
	residuals []float64
}

// Scalar is a one-column array.
type Scalar = Array[W1]

// Vector is a three-column array.
type Vector = Array[W3]

// Trajectory is a three-column array of 3D points over time.
type Trajectory = Vector

// Compile-time assertions for interface conformance.
var (
	_ Storage[W3]  = (*Array[W3])(nil)
	_ fmt.Stringer = (*Array[W3])(nil)
)

// New creates an array of the given row count with zero values and valid
// (zero) residuals. rows == 0 yields an empty array.
//
// Errors: ErrInvalidRows when rows < 0.
// Complexity: O(rows*C).
func New[C Width](rows int) (*Array[C], error) {
	if rows < 0 {
		return nil, arrayErrorf(opNew, ErrInvalidRows)
	}

	return newArray[C](rows), nil
}

// newArray allocates without validation; rows must be >= 0.
func newArray[C Width](rows int) *Array[C] {
	return &Array[C]{
		rows:      rows,
		values:    make([]float64, rows*ColsOf[C]()),
		residuals: make([]float64, rows),
	}
}

// FromValues copies a flat row-major buffer into a new array whose
// residuals are all valid (zero).
//
// Errors: ErrBadShape when len(values) is not a multiple of C.
// Complexity: O(len(values)).
func FromValues[C Width](values []float64) (*Array[C], error) {
	a, err := fromBuffers[C](values, nil)
	if err != nil {
		return nil, arrayErrorf(opFromValues, err)
	}

	return a, nil
}

// FromData copies flat row-major values and their residuals into a new array.
// MAIN DESCRIPTION:
//   - Ingestion point for collaborators holding pre-extracted buffers.
//
// Implementation:
//   - Stage 1: validate len(values) == rows*C and len(residuals) == rows.
//   - Stage 2: copy both buffers.
//   - Stage 3: zero every value row whose residual is negative.
//
// Behavior highlights:
//   - Residual values are kept verbatim (e.g. reconstruction errors >= 0).
//   - The zero-invariant holds on return even if the producer left
//     garbage on occluded rows.
//
// Errors:
//   - ErrBadShape (buffer lengths disagree with C).
//
// Complexity:
//   - Time O(rows*C), Space O(rows*C).
func FromData[C Width](values, residuals []float64) (*Array[C], error) {
	if residuals == nil {
		residuals = []float64{}
	}
	a, err := fromBuffers[C](values, residuals)
	if err != nil {
		return nil, arrayErrorf(opFromData, err)
	}

	return a, nil
}

// fromBuffers implements FromValues (residuals == nil) and FromData.
func fromBuffers[C Width](values, residuals []float64) (*Array[C], error) {
	rows, err := validateBuffers(values, residuals, ColsOf[C]())
	if err != nil {
		return nil, err
	}
	a := newArray[C](rows)
	copy(a.values, values)
	if residuals != nil {
		copy(a.residuals, residuals)
	}
	a.enforceZeros()

	return a, nil
}

// Materialize evaluates any expression into a new owning array via Assign.
// Complexity: O(rows*C).
func Materialize[C Width](x Xpr[C]) (*Array[C], error) {
	if x == nil {
		return nil, arrayErrorf(opMaterialize, ErrNilOperand)
	}
	a := newArray[C](0)
	if err := Assign[C](a, x); err != nil {
		return nil, arrayErrorf(opMaterialize, err)
	}

	return a, nil
}

// Rows returns the number of samples. Complexity: O(1).
func (a *Array[C]) Rows() int { return a.rows }

// Cols returns C. Complexity: O(1).
func (a *Array[C]) Cols() int { return ColsOf[C]() }

// Shape carries the column type for Xpr conformance.
func (a *Array[C]) Shape() C {
	var c C

	return c
}

// Processing reports ProcessingNone: stored data is always final.
func (a *Array[C]) Processing() Processing { return ProcessingNone }

// Row returns the i-th value row, aliasing the backing buffer.
// Complexity: O(1).
func (a *Array[C]) Row(i int) []float64 {
	c := ColsOf[C]()
	off := i * c

	return a.values[off : off+c : off+c]
}

// Residual returns the residual of row i. Complexity: O(1).
func (a *Array[C]) Residual(i int) float64 { return a.residuals[i] }

// SetResidual stores the residual of row i without touching its values.
// Callers writing a negative residual must zero the row themselves (Assign does).
func (a *Array[C]) SetResidual(i int, r float64) { a.residuals[i] = r }

// Values returns the row-major backing value buffer (len == Rows()*Cols()).
func (a *Array[C]) Values() []float64 { return a.values }

// Residuals returns the backing residual column (len == Rows()).
func (a *Array[C]) Residuals() []float64 { return a.residuals }

// At returns the value at (row, col) or ErrOutOfRange.
// Complexity: O(1).
func (a *Array[C]) At(row, col int) (float64, error) {
	c := ColsOf[C]()
	if row < 0 || row >= a.rows || col < 0 || col >= c {
		return 0, fmt.Errorf("Array.%s(%d,%d): %w", opAt, row, col, ErrOutOfRange)
	}

	return a.values[row*c+col], nil
}

// SetRow writes one sample. A negative residual stores Invalid-marked zeros
// regardless of values; a valid residual is stored verbatim.
//
// Errors: ErrOutOfRange (row), ErrBadShape (len(values) != C).
// Complexity: O(C).
func (a *Array[C]) SetRow(i int, values []float64, residual float64) error {
	if i < 0 || i >= a.rows {
		return fmt.Errorf("Array.%s(%d): %w", opSetRow, i, ErrOutOfRange)
	}

	return setRow(a, i, values, residual)
}

// SetZeroResiduals marks every row valid (residual 0).
// Occluded rows already hold zeros, so they become valid zero samples.
func (a *Array[C]) SetZeroResiduals() { clear(a.residuals) }

// IsValid reports whether the array holds any sample.
func (a *Array[C]) IsValid() bool { return a.rows != 0 }

// IsOccluded reports whether the array is empty or every row is occluded.
func (a *Array[C]) IsOccluded() bool { return isOccluded(a) }

// Clone returns a deep copy. Complexity: O(rows*C).
func (a *Array[C]) Clone() *Array[C] {
	cp := newArray[C](a.rows)
	copy(cp.values, a.values)
	copy(cp.residuals, a.residuals)

	return cp
}

// String renders one line per row: values then residual.
func (a *Array[C]) String() string { return formatData(a) }

// resize reallocates to rows samples; content is discarded.
func (a *Array[C]) resize(rows int) {
	a.rows = rows
	a.values = make([]float64, rows*ColsOf[C]())
	a.residuals = make([]float64, rows)
}

// enforceZeros zeroes every row whose residual is negative.
func (a *Array[C]) enforceZeros() {
	for i := 0; i < a.rows; i++ {
		if a.residuals[i] < 0 {
			clear(a.Row(i))
		}
	}
}

// X returns the first column as a block.
func (a *Array[C]) X() (*BlockOp[W1], error) { return Block[W1](a, 0) }

// Y returns the second column as a block.
func (a *Array[C]) Y() (*BlockOp[W1], error) { return Block[W1](a, 1) }

// Z returns the third column as a block.
func (a *Array[C]) Z() (*BlockOp[W1], error) { return Block[W1](a, 2) }

// U returns columns [0,3) as a block.
func (a *Array[C]) U() (*BlockOp[W3], error) { return Block[W3](a, 0) }

// V returns columns [3,6) as a block.
func (a *Array[C]) V() (*BlockOp[W3], error) { return Block[W3](a, 3) }

// W returns columns [6,9) as a block.
func (a *Array[C]) W() (*BlockOp[W3], error) { return Block[W3](a, 6) }

// O returns columns [9,12) as a block.
func (a *Array[C]) O() (*BlockOp[W3], error) { return Block[W3](a, 9) }
