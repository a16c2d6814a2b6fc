// SPDX-License-Identifier: MIT

// Package array - Motion: a rigid transform per sample.
//
// Layout (fixed, serializers must reproduce it):
//
//	col  0..2   u  first orientation basis vector
//	col  3..5   v  second orientation basis vector
//	col  6..8   w  third orientation basis vector
//	col  9..11  o  origin / position
//
// The orientation is the column-major 3×3 matrix R = [u v w], so
// R(r,c) = row[c*3+r] and a point p maps to R·p + o.

package array

const (
	opNewMotion  = "NewMotion"
	opJoinMotion = "JoinMotion"
	opMotionFrom = "MotionFrom"
)

// Motion is an owning 12-column array of rigid transforms.
type Motion struct {
	Array[W12]
}

var _ Storage[W12] = (*Motion)(nil)

// NewMotion creates a motion of the given row count (zero values, valid residuals).
//
// Errors: ErrInvalidRows when rows < 0.
func NewMotion(rows int) (*Motion, error) {
	if rows < 0 {
		return nil, arrayErrorf(opNewMotion, ErrInvalidRows)
	}

	return &Motion{Array: *newArray[W12](rows)}, nil
}

// MotionFromData copies flat [u v w o] rows and their residuals; see FromData.
func MotionFromData(values, residuals []float64) (*Motion, error) {
	a, err := FromData[W12](values, residuals)
	if err != nil {
		return nil, err
	}

	return &Motion{Array: *a}, nil
}

// MotionFrom evaluates any 12-column expression into a new motion via Assign.
func MotionFrom(x Xpr[W12]) (*Motion, error) {
	a, err := Materialize(x)
	if err != nil {
		return nil, arrayErrorf(opMotionFrom, err)
	}

	return &Motion{Array: *a}, nil
}

// JoinMotion builds a motion from four 3-column expressions joined row by row.
// MAIN DESCRIPTION:
//   - row i = [u_i v_i w_i o_i] when all four inputs are valid at i.
//
// Implementation:
//   - Stage 1: validate all four operands (non-empty, equal rows).
//   - Stage 2: per row, AND the four validities; copy the 12 values and set
//     Valid, or zero the row and set Invalid.
//
// Behavior highlights:
//   - Inputs may be dirty results (e.g. Cross of occluded markers): values
//     of invalid rows are never read into the motion.
//
// Errors:
//   - ErrNilOperand, ErrEmptyOperand, ErrRowMismatch.
//
// Complexity:
//   - Time O(rows), Space O(rows*12).
func JoinMotion(u, v, w, o Xpr[W3]) (*Motion, error) {
	parts := [4]Xpr[W3]{u, v, w, o}
	for k := 1; k < len(parts); k++ {
		if err := validatePair(parts[0], parts[k]); err != nil {
			return nil, arrayErrorf(opJoinMotion, err)
		}
	}
	rows := u.Rows()
	m := &Motion{Array: *newArray[W12](rows)}

	var i, k int
	var ok bool
	for i = 0; i < rows; i++ {
		ok = true
		for k = 0; k < len(parts); k++ {
			ok = ok && parts[k].Residual(i) >= 0
		}
		m.residuals[i] = maskValue(ok)
		if !ok {
			continue // row already zero
		}
		dst := m.Row(i)
		for k = 0; k < len(parts); k++ {
			copy(dst[k*3:k*3+3], parts[k].Row(i))
		}
	}

	return m, nil
}

// Clone returns a deep copy of the motion.
func (m *Motion) Clone() *Motion {
	return &Motion{Array: *m.Array.Clone()}
}

// U returns the first orientation vector block (columns [0,3)).
func (m *Motion) U() *BlockOp[W3] { return newBlock[W3](m, 0) }

// V returns the second orientation vector block (columns [3,6)).
func (m *Motion) V() *BlockOp[W3] { return newBlock[W3](m, 3) }

// W returns the third orientation vector block (columns [6,9)).
func (m *Motion) W() *BlockOp[W3] { return newBlock[W3](m, 6) }

// O returns the position block (columns [9,12)).
func (m *Motion) O() *BlockOp[W3] { return newBlock[W3](m, 9) }

// Orientations returns the 3×3 orientation block (columns [0,9)).
func (m *Motion) Orientations() *BlockOp[W9] { return newBlock[W9](m, 0) }

// Positions returns the position block (columns [9,12)).
func (m *Motion) Positions() *BlockOp[W3] { return newBlock[W3](m, 9) }
