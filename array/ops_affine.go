// SPDX-License-Identifier: MIT
// Package: array
//
// Purpose:
//   - Per-row operations on the 3×3 orientation (and 3×1 position) of motions:
//     Inverse and EulerAngles.
//   - Both pass residuals through and are tagged ValuesOnly.
//
// Conventions:
//   - Orientation R is column-major in columns 0..8: R(r,c) = row[c*3+r].
//   - Axis indices: 0 = X, 1 = Y, 2 = Z.

package array

import "math"

const (
	opInverse     = "Inverse"
	opEulerAngles = "EulerAngles"
)

// Inverse returns the per-row inverse of rigid transforms: Rᵀ and −Rᵀ·o.
// The orientation is assumed orthonormal; no general 3×3 inversion happens.
//
// Errors: ErrNilOperand, ErrEmptyOperand.
// Complexity: O(rows).
func Inverse(x Xpr[W12]) (*Result[W12], error) {
	if err := validateOperand(x); err != nil {
		return nil, arrayErrorf(opInverse, err)
	}
	rows := x.Rows()
	out := newResult[W12](rows, ProcessingValuesOnly)
	var r, c int
	for i := 0; i < rows; i++ {
		src, dst := x.Row(i), out.Row(i)
		for c = 0; c < 3; c++ {
			for r = 0; r < 3; r++ {
				dst[c*3+r] = src[r*3+c] // Rᵀ(r,c) = R(c,r)
			}
		}
		// o' = −Rᵀ·o; row r of Rᵀ is column r of R.
		for r = 0; r < 3; r++ {
			dst[9+r] = -(src[r*3]*src[9] + src[r*3+1]*src[10] + src[r*3+2]*src[11])
		}
		out.residuals[i] = x.Residual(i)
	}

	return out, nil
}

// EulerAngles decomposes the orientation in columns 0..8 of x into three
// angles (radians) about the axis sequence (a0, a1, a2).
// MAIN DESCRIPTION:
//   - R = Rot(a0, α)·Rot(a1, β)·Rot(a2, γ); returns [α β γ] per row.
//
// Implementation:
//   - Stage 1: validate x (≥ 9 columns) and the axis sequence.
//   - Stage 2: per row, solve proper Euler (a0 == a2) or Tait–Bryan
//     (a0 != a2) angles.
//
// Behavior highlights:
//   - Any of the 12 conventional sequences (XYZ, ZYX, ZXZ, ...).
//   - α ∈ [0, π], β and γ ∈ [−π, π]; the representation is unique except
//     at gimbal lock.
//   - Residuals pass through; tag ValuesOnly.
//
// Errors:
//   - ErrNilOperand, ErrEmptyOperand, ErrBadShape (< 9 columns), ErrBadAxis.
//
// Complexity:
//   - Time O(rows), Space O(rows*3).
func EulerAngles[C Width](x Xpr[C], a0, a1, a2 int) (*Result[W3], error) {
	if err := validateOperand(x); err != nil {
		return nil, arrayErrorf(opEulerAngles, err)
	}
	if x.Cols() < 9 {
		return nil, arrayErrorf(opEulerAngles, ErrBadShape)
	}
	if err := validateAxes(a0, a1, a2); err != nil {
		return nil, arrayErrorf(opEulerAngles, err)
	}
	rows := x.Rows()
	out := newResult[W3](rows, ProcessingValuesOnly)
	for i := 0; i < rows; i++ {
		eulerRow(out.Row(i), x.Row(i), a0, a1, a2)
		out.residuals[i] = x.Residual(i)
	}

	return out, nil
}

// eulerRow writes the angles of the column-major orientation m into dst.
func eulerRow(dst, m []float64, a0, a1, a2 int) {
	at := func(r, c int) float64 { return m[c*3+r] }

	odd := 1
	if (a0+1)%3 == a1 {
		odd = 0
	}
	i := a0
	j := (a0 + 1 + odd) % 3
	k := (a0 + 2 - odd) % 3

	var r0, r1, r2 float64
	if a0 == a2 {
		// Proper Euler angles.
		r0 = math.Atan2(at(j, i), at(k, i))
		s2 := math.Hypot(at(j, i), at(k, i))
		if (odd == 1 && r0 < 0) || (odd == 0 && r0 > 0) {
			r0 = shiftPi(r0)
			r1 = -math.Atan2(s2, at(i, i))
		} else {
			r1 = math.Atan2(s2, at(i, i))
		}
		s1, c1 := math.Sincos(r0)
		r2 = math.Atan2(c1*at(j, k)-s1*at(k, k), c1*at(j, j)-s1*at(k, j))
	} else {
		// Tait–Bryan angles.
		r0 = math.Atan2(at(j, k), at(k, k))
		c2 := math.Hypot(at(i, i), at(i, j))
		if (odd == 1 && r0 < 0) || (odd == 0 && r0 > 0) {
			r0 = shiftPi(r0)
			r1 = math.Atan2(-at(i, k), -c2)
		} else {
			r1 = math.Atan2(-at(i, k), c2)
		}
		s1, c1 := math.Sincos(r0)
		r2 = math.Atan2(s1*at(k, i)-c1*at(j, i), c1*at(j, j)-s1*at(k, j))
	}
	if odd == 0 {
		r0, r1, r2 = -r0, -r1, -r2
	}
	dst[0], dst[1], dst[2] = r0, r1, r2
}

// shiftPi moves an angle by π towards zero.
func shiftPi(a float64) float64 {
	if a > 0 {
		return a - math.Pi
	}

	return a + math.Pi
}
