// SPDX-License-Identifier: MIT
// Package: array
//
// Purpose:
//   - Binary operations with AND-validity: Sub, Add, Cross, Transform.
//   - Result residual (per row) = mask(a valid AND b valid); tag Full.
//
// Determinism & Performance:
//   - Fixed row order; operands read once per row.
//   - Dirty rows (either operand invalid) are still computed; Assign zeroes them.

package array

const (
	opSub       = "Sub"
	opAdd       = "Add"
	opCross     = "Cross"
	opTransform = "Transform"
)

// rowKernel computes one output row from the two operand rows.
type rowKernel func(dst, a, b []float64)

// binary evaluates k over every row pair of a and b into a Full result.
// The caller guarantees validatePair(a, b) == nil.
func binary[C Width](a, b Data, k rowKernel) *Result[C] {
	rows := a.Rows()
	out := newResult[C](rows, ProcessingFull)
	for i := 0; i < rows; i++ {
		k(out.Row(i), a.Row(i), b.Row(i))
		out.residuals[i] = maskValue(a.Residual(i) >= 0 && b.Residual(i) >= 0)
	}

	return out
}

// Sub returns a − b elementwise.
//
// Errors: ErrNilOperand, ErrEmptyOperand, ErrRowMismatch.
// Complexity: O(rows*C).
func Sub[C Width](a, b Xpr[C]) (*Result[C], error) {
	return addSub(opSub, a, b, -1.0)
}

// Add returns a + b elementwise.
//
// Errors: ErrNilOperand, ErrEmptyOperand, ErrRowMismatch.
// Complexity: O(rows*C).
func Add[C Width](a, b Xpr[C]) (*Result[C], error) {
	return addSub(opAdd, a, b, 1.0)
}

// addSub computes out = a + sign*b for sign ∈ {+1, -1}.
func addSub[C Width](tag string, a, b Xpr[C], sign float64) (*Result[C], error) {
	if err := validatePair(a, b); err != nil {
		return nil, arrayErrorf(tag, err)
	}

	return binary[C](a, b, func(dst, x, y []float64) {
		for j := range dst {
			dst[j] = x[j] + sign*y[j]
		}
	}), nil
}

// Cross returns the per-row cross product a × b of two 3-column expressions.
//
// Errors: ErrNilOperand, ErrEmptyOperand, ErrRowMismatch.
// Complexity: O(rows).
func Cross(a, b Xpr[W3]) (*Result[W3], error) {
	if err := validatePair(a, b); err != nil {
		return nil, arrayErrorf(opCross, err)
	}

	return binary[W3](a, b, cross3), nil
}

// cross3 writes x × y into dst (all length 3).
func cross3(dst, x, y []float64) {
	dst[0] = x[1]*y[2] - x[2]*y[1]
	dst[1] = x[2]*y[0] - x[0]*y[2]
	dst[2] = x[0]*y[1] - x[1]*y[0]
}

// Transform composes two motions per row: a ∘ b.
// MAIN DESCRIPTION:
//   - Express b (given in the frame of a) in a's parent frame.
//
// Implementation:
//   - R = Ra·Rb (each of u, v, w of b rotated by Ra).
//   - o = Ra·ob + oa.
//
// Behavior highlights:
//   - Residual = mask(a valid AND b valid); tag Full.
//   - Inverse(a) then Transform(inv, a) yields identity on valid rows.
//
// Errors:
//   - ErrNilOperand, ErrEmptyOperand, ErrRowMismatch.
//
// Complexity:
//   - Time O(rows), Space O(rows*12).
func Transform(a, b Xpr[W12]) (*Result[W12], error) {
	if err := validatePair(a, b); err != nil {
		return nil, arrayErrorf(opTransform, err)
	}

	return binary[W12](a, b, compose), nil
}

// compose writes x ∘ y into dst (all length 12, layout [u v w o]).
func compose(dst, x, y []float64) {
	for k := 0; k < 4; k++ {
		rotate(dst[k*3:k*3+3], x, y[k*3:k*3+3])
	}
	dst[9] += x[9]
	dst[10] += x[10]
	dst[11] += x[11]
}

// rotate writes R·p into dst, where R is the column-major orientation
// stored in m[0:9] (columns u, v, w).
func rotate(dst, m, p []float64) {
	x, y, z := p[0], p[1], p[2]
	dst[0] = m[0]*x + m[3]*y + m[6]*z
	dst[1] = m[1]*x + m[4]*y + m[7]*z
	dst[2] = m[2]*x + m[5]*y + m[8]*z
}
