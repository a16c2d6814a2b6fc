// SPDX-License-Identifier: MIT

// Package array - BlockOp: a column slice sharing its source storage.
//
// Purpose:
//   - Expose columns [index, index+B) of any Data without copying.
//   - Share the source residual column (not an independent copy).
//   - Support writes into the slice with AND-validity semantics.
//
// AI-Hints:
//   - As an expression, a block passes its source's Processing tag through,
//     so a block of a dirty Result is still cleaned by Assign.
//   - Blocks of blocks are flattened onto the original source.

package array

const (
	opBlock       = "Block"
	opBlockAssign = "BlockOp.Assign"
)

// BlockOp is a B-column window over another array-like value.
type BlockOp[B Width] struct {
	src   Data
	index int
}

var _ Xpr[W3] = (*BlockOp[W3])(nil)

// Block returns columns [index, index+B) of src as a shared window.
// MAIN DESCRIPTION:
//   - Column slicing for expressions and for in-place writes.
//
// Implementation:
//   - Stage 1: reject nil sources.
//   - Stage 2: flatten blocks of blocks (offsets add up).
//   - Stage 3: check 0 <= index and index+B <= src.Cols().
//
// Errors:
//   - ErrNilOperand, ErrColumnRange.
//
// Complexity:
//   - Time O(1), Space O(1).
func Block[B Width](src Data, index int) (*BlockOp[B], error) {
	if src == nil {
		return nil, arrayErrorf(opBlock, ErrNilOperand)
	}
	if index < 0 || index+ColsOf[B]() > src.Cols() {
		return nil, arrayErrorf(opBlock, ErrColumnRange)
	}

	return newBlock[B](src, index), nil
}

// newBlock builds a block without range checks; callers guarantee the range.
func newBlock[B Width](src Data, index int) *BlockOp[B] {
	if f, ok := src.(flattener); ok {
		src, index = f.base(index)
	}

	return &BlockOp[B]{src: src, index: index}
}

// flattener lets nested blocks resolve to their root storage.
type flattener interface {
	base(index int) (Data, int)
}

// base maps an offset relative to b onto b's source.
func (b *BlockOp[B]) base(index int) (Data, int) { return b.src, b.index + index }

// Rows returns the source row count.
func (b *BlockOp[B]) Rows() int { return b.src.Rows() }

// Cols returns B.
func (b *BlockOp[B]) Cols() int { return ColsOf[B]() }

// Index returns the first source column covered by the block.
func (b *BlockOp[B]) Index() int { return b.index }

// Shape carries the column type for Xpr conformance.
func (b *BlockOp[B]) Shape() B {
	var c B

	return c
}

// Processing passes the source tag through.
func (b *BlockOp[B]) Processing() Processing { return b.src.Processing() }

// Row returns the block part of source row i (shared storage).
func (b *BlockOp[B]) Row(i int) []float64 {
	end := b.index + ColsOf[B]()

	return b.src.Row(i)[b.index:end:end]
}

// Residual returns the shared residual of row i.
func (b *BlockOp[B]) Residual(i int) float64 { return b.src.Residual(i) }

// Assign writes src into the block.
// MAIN DESCRIPTION:
//   - Block-to-block (or any B-column expression) write with AND validity.
//
// Implementation:
//   - Stage 1: require a writable source and equal, non-zero row counts.
//   - Stage 2: per row, compute ok = (block valid) AND (src valid) BEFORE
//     writing anything.
//   - Stage 3: ok → copy src values into the block, residual Valid (0);
//     !ok → zero the whole underlying row, residual Invalid (-1).
//
// Behavior highlights:
//   - Writing can only invalidate, never resurrect, a destination row.
//   - The residual is shared by every column of the source, so an invalid
//     row is zeroed across all of them to keep the zero-invariant.
//   - Overlapping blocks of the same row are safe (copy is memmove).
//
// Errors:
//   - ErrReadOnly, ErrNilOperand, ErrEmptyOperand, ErrRowMismatch.
//
// Complexity:
//   - Time O(rows*cols(source)), Space O(1).
func (b *BlockOp[B]) Assign(src Xpr[B]) error {
	sink, ok := b.src.(residualSetter)
	if !ok {
		return arrayErrorf(opBlockAssign, ErrReadOnly)
	}
	if err := validatePair(b, src); err != nil {
		return arrayErrorf(opBlockAssign, err)
	}

	rows := b.Rows()
	for i := 0; i < rows; i++ {
		if b.Residual(i) >= 0 && src.Residual(i) >= 0 {
			copy(b.Row(i), src.Row(i))
			sink.SetResidual(i, Valid)
			continue
		}
		clear(b.src.Row(i))
		sink.SetResidual(i, Invalid)
	}

	return nil
}

// String renders the block rows.
func (b *BlockOp[B]) String() string { return formatData(b) }
