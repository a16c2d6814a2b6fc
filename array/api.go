// SPDX-License-Identifier: MIT
// Package array - public helpers shared by every array-like value.
//
// Purpose:
//   - Scalar conversion (Float) for 1×1 aggregates such as a Mean of a Scalar.
//   - Must for expression chains whose preconditions are known to hold.
//   - Small shared helpers (row writes, occlusion test, formatting).

package array

import (
	"fmt"
	"strings"
)

const (
	opFloat = "Float"
)

// Float converts a 1×1 expression to a plain number: its value when the
// residual is valid, 0 otherwise.
//
// Errors: ErrNilOperand, ErrNotScalar (shape other than 1×1).
// Complexity: O(1).
func Float(x Data) (float64, error) {
	if x == nil {
		return 0, arrayErrorf(opFloat, ErrNilOperand)
	}
	if x.Rows() != 1 || x.Cols() != 1 {
		return 0, arrayErrorf(opFloat, ErrNotScalar)
	}
	if x.Residual(0) < 0 {
		return 0, nil
	}

	return x.Row(0)[0], nil
}

// Must returns v or panics with err.
// Shape and cardinality violations are programmer errors; Must turns them
// into the fatal failure they are when chaining operations:
//
//	d := array.Must(array.Norm(array.Must(array.Sub(a, b))))
func Must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}

	return v
}

// rowWriter is storage that supports sample writes.
type rowWriter interface {
	Data
	residualSetter
}

// setRow writes one sample into s, honoring the zero-invariant.
func setRow(s rowWriter, i int, values []float64, residual float64) error {
	if len(values) != s.Cols() {
		return fmt.Errorf("%s(%d): %w", opSetRow, i, ErrBadShape)
	}
	dst := s.Row(i)
	if residual < 0 {
		clear(dst)
	} else {
		copy(dst, values)
	}
	s.SetResidual(i, residual)

	return nil
}

// isOccluded reports whether d is empty or every residual is negative.
func isOccluded(d Data) bool {
	rows := d.Rows()
	for i := 0; i < rows; i++ {
		if d.Residual(i) >= 0 {
			return false
		}
	}

	return true
}

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]"
	_fmtSep      = ", "
	_fmtResidual = " | "
)

// formatData renders d one row per line: "[v0, v1, ...] | residual".
// Not for hot paths.
func formatData(d Data) string {
	var b strings.Builder
	rows := d.Rows()
	for i := 0; i < rows; i++ {
		b.WriteString(_fmtRowOpen)
		for j, v := range d.Row(i) {
			if j > 0 {
				b.WriteString(_fmtSep)
			}
			fmt.Fprintf(&b, "%g", v)
		}
		b.WriteString(_fmtRowClose)
		b.WriteString(_fmtResidual)
		fmt.Fprintf(&b, "%g\n", d.Residual(i))
	}

	return b.String()
}
