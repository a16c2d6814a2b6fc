// SPDX-License-Identifier: MIT

// Package array - Result: the owned output of an operation.
//
// Every operation evaluates eagerly into a Result that records the
// operation's Processing tag. Values may be dirty on rows the residual marks
// invalid; Assign, Materialize and Export finalize them. A Result can feed
// further operations directly: every operation reads validity from the
// residual column, never from the values.

package array

// Result is an evaluated C-column expression plus its Processing tag.
type Result[C Width] struct {
	rows       int
	values     []float64
	residuals  []float64
	processing Processing
}

var _ Storage[W1] = (*Result[W1])(nil)

// newResult allocates a zeroed rows×C result with the given tag.
func newResult[C Width](rows int, p Processing) *Result[C] {
	return &Result[C]{
		rows:       rows,
		values:     make([]float64, rows*ColsOf[C]()),
		residuals:  make([]float64, rows),
		processing: p,
	}
}

// Rows returns the number of samples.
func (r *Result[C]) Rows() int { return r.rows }

// Cols returns C.
func (r *Result[C]) Cols() int { return ColsOf[C]() }

// Shape carries the column type for Xpr conformance.
func (r *Result[C]) Shape() C {
	var c C

	return c
}

// Processing reports the tag of the operation that produced r.
func (r *Result[C]) Processing() Processing { return r.processing }

// Row returns the i-th raw value row.
func (r *Result[C]) Row(i int) []float64 {
	c := ColsOf[C]()
	off := i * c

	return r.values[off : off+c : off+c]
}

// Residual returns the raw residual of row i.
func (r *Result[C]) Residual(i int) float64 { return r.residuals[i] }

// SetResidual stores the residual of row i.
func (r *Result[C]) SetResidual(i int, v float64) { r.residuals[i] = v }

// Values returns the raw row-major value buffer (not finalized).
func (r *Result[C]) Values() []float64 { return r.values }

// Residuals returns the raw residual column.
func (r *Result[C]) Residuals() []float64 { return r.residuals }

// String renders the raw rows.
func (r *Result[C]) String() string { return formatData(r) }

// X returns the first column as a block.
func (r *Result[C]) X() (*BlockOp[W1], error) { return Block[W1](r, 0) }

// Y returns the second column as a block.
func (r *Result[C]) Y() (*BlockOp[W1], error) { return Block[W1](r, 1) }

// Z returns the third column as a block.
func (r *Result[C]) Z() (*BlockOp[W1], error) { return Block[W1](r, 2) }

// U returns columns [0,3) as a block.
func (r *Result[C]) U() (*BlockOp[W3], error) { return Block[W3](r, 0) }

// V returns columns [3,6) as a block.
func (r *Result[C]) V() (*BlockOp[W3], error) { return Block[W3](r, 3) }

// W returns columns [6,9) as a block.
func (r *Result[C]) W() (*BlockOp[W3], error) { return Block[W3](r, 6) }

// O returns columns [9,12) as a block.
func (r *Result[C]) O() (*BlockOp[W3], error) { return Block[W3](r, 9) }
