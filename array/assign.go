// SPDX-License-Identifier: MIT

// Package array - Assign: the materialization engine.
//
// Purpose:
//   - The only place an expression is finalized into storage.
//   - Dispatch purely on the source's Processing tag:
//
//	None        values, residuals copied verbatim
//	ValuesOnly  residual = mask(src residual >= 0); zero values where < 0
//	Full        residual copied verbatim;           zero values where < 0
//
// Determinism & Performance:
//   - Single i-loop over rows; one copy or clear per row.
//   - Column counts are equal by construction (both sides share C).

package array

const (
	opAssign = "Assign"
	opExport = "Export"
)

// Assign finalizes src into dst.
// MAIN DESCRIPTION:
//   - Materialize an expression (or copy storage) into owned or viewed storage.
//
// Implementation:
//   - Stage 1: reject nil operands.
//   - Stage 2: match row counts: owning storage is resized to src.Rows();
//     views (not resizable) must already match.
//   - Stage 3: per row, finalize residual and values by src.Processing().
//
// Behavior highlights:
//   - After Assign, every dst row with a negative residual holds zeros.
//   - Residuals of None sources (stored data) are preserved verbatim.
//
// Errors:
//   - ErrNilOperand, ErrRowMismatch (non-resizable dst).
//
// Complexity:
//   - Time O(rows*C), Space O(rows*C) when dst is resized.
//
// AI-Hints:
//   - Assigning a Result many times is cheap; the Result is never mutated.
func Assign[C Width](dst Storage[C], src Xpr[C]) error {
	if dst == nil || src == nil {
		return arrayErrorf(opAssign, ErrNilOperand)
	}
	rows := src.Rows()
	if dst.Rows() != rows {
		rs, ok := dst.(resizer)
		if !ok {
			return arrayErrorf(opAssign, ErrRowMismatch)
		}
		rs.resize(rows)
	}

	p := src.Processing()
	for i := 0; i < rows; i++ {
		dst.SetResidual(i, finalizeRow(p, dst.Row(i), src.Row(i), src.Residual(i)))
	}

	return nil
}

// finalizeRow writes the finalized values of one source row into dst and
// returns the finalized residual.
func finalizeRow(p Processing, dst, src []float64, residual float64) float64 {
	switch p {
	case ProcessingValuesOnly:
		residual = maskValue(residual >= 0)
	case ProcessingNone:
		copy(dst, src)
		return residual
	}
	if residual < 0 {
		clear(dst)
	} else {
		copy(dst, src)
	}

	return residual
}

// Export copies any expression into fresh contiguous buffers, finalized the
// same way Assign would: values (row-major, rows*cols) and residuals (rows).
// Use it to hand data to serializers without keeping an Array around.
//
// Errors: ErrNilOperand.
// Complexity: O(rows*cols).
func Export(x Data) (values, residuals []float64, err error) {
	if x == nil {
		return nil, nil, arrayErrorf(opExport, ErrNilOperand)
	}
	rows, cols := x.Rows(), x.Cols()
	values = make([]float64, rows*cols)
	residuals = make([]float64, rows)
	p := x.Processing()
	for i := 0; i < rows; i++ {
		residuals[i] = finalizeRow(p, values[i*cols:(i+1)*cols], x.Row(i), x.Residual(i))
	}

	return values, residuals, nil
}
