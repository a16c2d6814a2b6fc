// SPDX-License-Identifier: MIT
// Package: array
//
// Purpose:
//   - Unary operations: Norm, Mean, Scale, Div, Normalized, Replicate.
//   - Each evaluates eagerly into a Result tagged per its validity contract.
//
// Exposed API:
//   - Norm(x)          -> rows×1, ValuesOnly (row Euclidean norm)
//   - Mean(x)          -> 1×C,    Full       (column mean over valid rows)
//   - Scale(x, s)      -> rows×C, ValuesOnly (s·x)
//   - Div(x, s)        -> rows×C, ValuesOnly (x/s, |s| >= eps)
//   - Normalized(x)    -> rows×C, ValuesOnly (x/‖x‖, guarded)
//   - Replicate(x, n)  -> n·rows×C, None     (vertical tiling)
//
// Determinism & Performance:
//   - Fixed i→j traversal; one output allocation per call.
//   - Operands are never mutated.

package array

import "math"

const (
	opNorm       = "Norm"
	opMean       = "Mean"
	opScale      = "Scale"
	opDiv        = "Div"
	opNormalized = "Normalized"
	opReplicate  = "Replicate"
)

// sumSquares returns Σ v[j]².
func sumSquares(row []float64) float64 {
	var s float64
	for _, v := range row {
		s += v * v
	}

	return s
}

// Norm computes the per-row Euclidean norm of x.
// Residuals pass through; values of occluded rows are whatever the operand
// holds there (zero for storage) and are masked on assignment.
//
// Errors: ErrNilOperand, ErrEmptyOperand.
// Complexity: O(rows*C).
func Norm[C Width](x Xpr[C]) (*Result[W1], error) {
	if err := validateOperand(x); err != nil {
		return nil, arrayErrorf(opNorm, err)
	}
	rows := x.Rows()
	out := newResult[W1](rows, ProcessingValuesOnly)
	for i := 0; i < rows; i++ {
		out.values[i] = math.Sqrt(sumSquares(x.Row(i)))
		out.residuals[i] = x.Residual(i)
	}

	return out, nil
}

// Mean computes the occlusion-aware column mean of x as a single row.
// MAIN DESCRIPTION:
//   - mean[j] = Σ_{valid i} x[i,j] / count(valid), with divisor 1 when no
//     row is valid (the result is then 0).
//
// Implementation:
//   - Stage 1: validate x.
//   - Stage 2: accumulate valid rows column-wise, counting them.
//   - Stage 3: divide by max(count, 1); residual = mask(count > 0).
//
// Behavior highlights:
//   - Invalid rows contribute nothing even if their values are dirty.
//   - All-occluded input → value 0, residual Invalid.
//
// Errors:
//   - ErrNilOperand, ErrEmptyOperand.
//
// Complexity:
//   - Time O(rows*C), Space O(C).
func Mean[C Width](x Xpr[C]) (*Result[C], error) {
	if err := validateOperand(x); err != nil {
		return nil, arrayErrorf(opMean, err)
	}
	rows := x.Rows()
	out := newResult[C](1, ProcessingFull)
	sum := out.values

	var i, j, count int
	var v float64
	for i = 0; i < rows; i++ {
		if x.Residual(i) < 0 {
			continue
		}
		count++
		for j, v = range x.Row(i) {
			sum[j] += v
		}
	}
	div := 1.0
	if count > 0 {
		div = float64(count)
	}
	for j = range sum {
		sum[j] /= div
	}
	out.residuals[0] = maskValue(count > 0)

	return out, nil
}

// Scale multiplies every value of x by s; residuals pass through.
//
// Errors: ErrNilOperand, ErrEmptyOperand.
// Complexity: O(rows*C).
func Scale[C Width](x Xpr[C], s float64) (*Result[C], error) {
	out, err := scale(x, s)
	if err != nil {
		return nil, arrayErrorf(opScale, err)
	}

	return out, nil
}

// Div divides every value of x by s; residuals pass through.
//
// Errors: ErrNearZeroDivisor when |s| < machine epsilon, plus Scale's errors.
// Complexity: O(rows*C).
func Div[C Width](x Xpr[C], s float64) (*Result[C], error) {
	if math.Abs(s) < epsilon {
		return nil, arrayErrorf(opDiv, ErrNearZeroDivisor)
	}
	out, err := scale(x, 1.0/s)
	if err != nil {
		return nil, arrayErrorf(opDiv, err)
	}

	return out, nil
}

// scale implements Scale and Div.
func scale[C Width](x Xpr[C], s float64) (*Result[C], error) {
	if err := validateOperand(x); err != nil {
		return nil, err
	}
	rows := x.Rows()
	out := newResult[C](rows, ProcessingValuesOnly)
	for i := 0; i < rows; i++ {
		dst := out.Row(i)
		for j, v := range x.Row(i) {
			dst[j] = s * v
		}
		out.residuals[i] = x.Residual(i)
	}

	return out, nil
}

// Normalized divides every row of x by its Euclidean norm.
// Rows whose squared norm is below machine epsilon are divided by 1, so a
// zero-length row stays zero instead of becoming NaN.
//
// Errors: ErrNilOperand, ErrEmptyOperand.
// Complexity: O(rows*C).
func Normalized[C Width](x Xpr[C]) (*Result[C], error) {
	if err := validateOperand(x); err != nil {
		return nil, arrayErrorf(opNormalized, err)
	}
	rows := x.Rows()
	out := newResult[C](rows, ProcessingValuesOnly)
	var sq, div float64
	for i := 0; i < rows; i++ {
		src := x.Row(i)
		sq = sumSquares(src)
		div = 1.0
		if sq >= epsilon {
			div = math.Sqrt(sq)
		}
		dst := out.Row(i)
		for j, v := range src {
			dst[j] = v / div
		}
		out.residuals[i] = x.Residual(i)
	}

	return out, nil
}

// Replicate tiles x vertically n times: row k*rows+i equals row i of x.
// MAIN DESCRIPTION:
//   - Broadcast a (typically single-row) expression to a longer series,
//     e.g. a static calibration pose over every frame.
//
// Implementation:
//   - Stage 1: validate x and n >= 1.
//   - Stage 2: copy each source row n times; residuals copied verbatim.
//
// Behavior highlights:
//   - Tagged None: the output is already final, so rows whose residual is
//     negative are written as zeros (dirty operands are cleaned here).
//   - Tiling never invents validity.
//
// Errors:
//   - ErrNilOperand, ErrEmptyOperand, ErrInvalidRows (n < 1).
//
// Complexity:
//   - Time O(n*rows*C), Space O(n*rows*C).
func Replicate[C Width](x Xpr[C], n int) (*Result[C], error) {
	if err := validateOperand(x); err != nil {
		return nil, arrayErrorf(opReplicate, err)
	}
	if n < 1 {
		return nil, arrayErrorf(opReplicate, ErrInvalidRows)
	}
	rows := x.Rows()
	out := newResult[C](rows*n, ProcessingNone)
	var i, k int
	var r float64
	for i = 0; i < rows; i++ {
		src := x.Row(i)
		r = x.Residual(i)
		for k = 0; k < n; k++ {
			dst := k*rows + i
			out.residuals[dst] = r
			if r >= 0 {
				copy(out.Row(dst), src)
			}
		}
	}

	return out, nil
}
