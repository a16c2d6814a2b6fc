// SPDX-License-Identifier: MIT
// Package: array
//
// Purpose:
//   - Single source of truth for operand preconditions (nil, empty, row match).
//   - Return plain sentinels; callers wrap with their operation tag.
//
// Determinism & Performance:
//   - All checks are O(1) and allocate nothing.

package array

// validateOperand ensures x is non-nil and has at least one row.
//
// Errors: ErrNilOperand, ErrEmptyOperand.
// Complexity: O(1).
func validateOperand(x Data) error {
	if x == nil {
		return ErrNilOperand
	}
	if x.Rows() <= 0 {
		return ErrEmptyOperand
	}

	return nil
}

// validatePair – Composite: Operand(a) → Operand(b) → equal row counts.
//
// Errors: ErrNilOperand, ErrEmptyOperand, ErrRowMismatch.
// Complexity: O(1).
func validatePair(a, b Data) error {
	if err := validateOperand(a); err != nil {
		return err
	}
	if err := validateOperand(b); err != nil {
		return err
	}
	if a.Rows() != b.Rows() {
		return ErrRowMismatch
	}

	return nil
}

// validateBuffers checks that flat row-major values and residuals describe
// rows×cols samples. A nil residual slice is accepted (all valid).
//
// Errors: ErrBadShape.
// Complexity: O(1).
func validateBuffers(values, residuals []float64, cols int) (int, error) {
	if len(values)%cols != 0 {
		return 0, ErrBadShape
	}
	rows := len(values) / cols
	if residuals != nil && len(residuals) != rows {
		return 0, ErrBadShape
	}

	return rows, nil
}

// validateAxes checks an Euler axis sequence: each index in {0,1,2} and no
// two consecutive axes equal.
//
// Errors: ErrBadAxis.
// Complexity: O(1).
func validateAxes(a0, a1, a2 int) error {
	for _, a := range [3]int{a0, a1, a2} {
		if a < 0 || a > 2 {
			return ErrBadAxis
		}
	}
	if a0 == a1 || a1 == a2 {
		return ErrBadAxis
	}

	return nil
}
