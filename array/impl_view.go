// SPDX-License-Identifier: MIT

// Package array - View: non-owning, strided window over caller buffers.
//
// Purpose:
//   - Let collaborators (decoders, exporters) expose their own buffers as
//     arrays without copying: row i starts at values[i*stride].
//   - The zero value is the empty view ("no data yet").
//
// Lifetime:
//   - A View is a borrow. The caller's buffers must outlive it, and the view
//     must outlive every block or operation reading from it.
//   - Views are never resized; Assign into a view requires equal row counts.

package array

import "fmt"

const (
	opNewView = "NewView"
)

// View is a non-owning C-column array over caller-supplied buffers.
type View[C Width] struct {
	rows      int
	stride    int       // distance between row starts in values (>= C)
	values    []float64 // borrowed; row i is values[i*stride : i*stride+C]
	residuals []float64 // borrowed; one residual per row
}

var _ Storage[W12] = (*View[W12])(nil)

// NewView wraps caller buffers as a rows×C array.
// MAIN DESCRIPTION:
//   - Borrow values (row stride = stride) and residuals without copying.
//
// Implementation:
//   - Stage 1: validate rows >= 0 and stride >= C.
//   - Stage 2: validate len(values) >= (rows-1)*stride + C and
//     len(residuals) >= rows (rows == 0 accepts nil buffers).
//
// Behavior highlights:
//   - Writes through the view (Assign, SetRow, block writes) land in the
//     caller's buffers.
//   - The buffers are not sanitized: producers must already honor the
//     zero-invariant for occluded rows.
//
// Errors:
//   - ErrInvalidRows, ErrBadStride, ErrBadShape.
//
// Complexity:
//   - Time O(1), Space O(1).
func NewView[C Width](rows int, values []float64, stride int, residuals []float64) (*View[C], error) {
	c := ColsOf[C]()
	if rows < 0 {
		return nil, arrayErrorf(opNewView, ErrInvalidRows)
	}
	if stride < c {
		return nil, arrayErrorf(opNewView, ErrBadStride)
	}
	if rows > 0 && (len(values) < (rows-1)*stride+c || len(residuals) < rows) {
		return nil, arrayErrorf(opNewView, ErrBadShape)
	}

	return &View[C]{rows: rows, stride: stride, values: values, residuals: residuals}, nil
}

// Rows returns the number of samples. Complexity: O(1).
func (v *View[C]) Rows() int { return v.rows }

// Cols returns C. Complexity: O(1).
func (v *View[C]) Cols() int { return ColsOf[C]() }

// Stride returns the row stride of the value buffer.
func (v *View[C]) Stride() int { return v.stride }

// Shape carries the column type for Xpr conformance.
func (v *View[C]) Shape() C {
	var c C

	return c
}

// Processing reports ProcessingNone.
func (v *View[C]) Processing() Processing { return ProcessingNone }

// Row returns the i-th value row, aliasing the caller buffer.
func (v *View[C]) Row(i int) []float64 {
	c := ColsOf[C]()
	off := i * v.stride

	return v.values[off : off+c : off+c]
}

// Residual returns the residual of row i.
func (v *View[C]) Residual(i int) float64 { return v.residuals[i] }

// SetResidual stores the residual of row i in the caller buffer.
func (v *View[C]) SetResidual(i int, r float64) { v.residuals[i] = r }

// Values returns the borrowed value buffer (see Stride for its layout).
func (v *View[C]) Values() []float64 { return v.values }

// Residuals returns the borrowed residual buffer.
func (v *View[C]) Residuals() []float64 { return v.residuals }

// SetRow writes one sample through the view; see Array.SetRow.
func (v *View[C]) SetRow(i int, values []float64, residual float64) error {
	if i < 0 || i >= v.rows {
		return fmt.Errorf("View.%s(%d): %w", opSetRow, i, ErrOutOfRange)
	}

	return setRow(v, i, values, residual)
}

// IsValid reports whether the view holds any sample.
func (v *View[C]) IsValid() bool { return v.rows != 0 && v.values != nil }

// IsOccluded reports whether the view is empty or every row is occluded.
func (v *View[C]) IsOccluded() bool { return isOccluded(v) }

// String renders one line per row: values then residual.
func (v *View[C]) String() string { return formatData(v) }

// X returns the first column as a block.
func (v *View[C]) X() (*BlockOp[W1], error) { return Block[W1](v, 0) }

// Y returns the second column as a block.
func (v *View[C]) Y() (*BlockOp[W1], error) { return Block[W1](v, 1) }

// Z returns the third column as a block.
func (v *View[C]) Z() (*BlockOp[W1], error) { return Block[W1](v, 2) }

// U returns columns [0,3) as a block.
func (v *View[C]) U() (*BlockOp[W3], error) { return Block[W3](v, 0) }

// V returns columns [3,6) as a block.
func (v *View[C]) V() (*BlockOp[W3], error) { return Block[W3](v, 3) }

// W returns columns [6,9) as a block.
func (v *View[C]) W() (*BlockOp[W3], error) { return Block[W3](v, 6) }

// O returns columns [9,12) as a block.
func (v *View[C]) O() (*BlockOp[W3], error) { return Block[W3](v, 9) }
