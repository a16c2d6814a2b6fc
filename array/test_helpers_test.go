// SPDX-License-Identifier: MIT
// Package array_test contains test helpers
//
// Purpose:
//   • Build small deterministic fixtures (vectors, scalars, motions).
//   • Provide rotation builders in the column-major [u v w] layout.
//   • Assert the zero-invariant on any array-like value.

package array_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/motion/array"
	"github.com/stretchr/testify/require"
)

// tol is the absolute tolerance used for trigonometric round-trips.
const tol = 1e-9

// occ is a shorthand for the canonical occlusion residual.
const occ = array.Invalid

// MustVector copies values/residuals into a 3-column array or fails the test.
func MustVector(t *testing.T, values, residuals []float64) *array.Vector {
	t.Helper()
	v, err := array.FromData[array.W3](values, residuals)
	require.NoError(t, err)

	return v
}

// MustScalar copies values/residuals into a 1-column array or fails the test.
func MustScalar(t *testing.T, values, residuals []float64) *array.Scalar {
	t.Helper()
	s, err := array.FromData[array.W1](values, residuals)
	require.NoError(t, err)

	return s
}

// MustMotion builds a motion from per-row (R, o) pairs or fails the test.
// A nil rotation marks the row occluded.
func MustMotion(t *testing.T, rots [][9]float64, origins [][3]float64) *array.Motion {
	t.Helper()
	require.Len(t, origins, len(rots))
	values := make([]float64, 0, len(rots)*12)
	residuals := make([]float64, len(rots))
	for i := range rots {
		values = append(values, rots[i][:]...)
		values = append(values, origins[i][:]...)
	}
	m, err := array.MotionFromData(values, residuals)
	require.NoError(t, err)

	return m
}

// requireZeroInvariant fails unless every row with a negative residual holds zeros.
func requireZeroInvariant(t *testing.T, d array.Data) {
	t.Helper()
	for i := 0; i < d.Rows(); i++ {
		if d.Residual(i) >= 0 {
			continue
		}
		for j, v := range d.Row(i) {
			require.Zerof(t, v, "row %d col %d must be zero when occluded", i, j)
		}
	}
}

// requireRowsInDelta compares every value of d with want (row-major).
func requireRowsInDelta(t *testing.T, want []float64, d array.Data, delta float64) {
	t.Helper()
	require.Equal(t, len(want), d.Rows()*d.Cols(), "value count")
	c := d.Cols()
	for i := 0; i < d.Rows(); i++ {
		for j, v := range d.Row(i) {
			require.InDeltaf(t, want[i*c+j], v, delta, "row %d col %d", i, j)
		}
	}
}

// rotX returns the column-major rotation of angle a about X.
func rotX(a float64) [9]float64 {
	s, c := math.Sincos(a)

	return [9]float64{1, 0, 0, 0, c, s, 0, -s, c}
}

// rotY returns the column-major rotation of angle a about Y.
func rotY(a float64) [9]float64 {
	s, c := math.Sincos(a)

	return [9]float64{c, 0, -s, 0, 1, 0, s, 0, c}
}

// rotZ returns the column-major rotation of angle a about Z.
func rotZ(a float64) [9]float64 {
	s, c := math.Sincos(a)

	return [9]float64{c, s, 0, -s, c, 0, 0, 0, 1}
}

// mul returns the column-major product a·b.
func mul(a, b [9]float64) [9]float64 {
	var out [9]float64
	for c := 0; c < 3; c++ {
		for r := 0; r < 3; r++ {
			var s float64
			for k := 0; k < 3; k++ {
				s += a[k*3+r] * b[c*3+k]
			}
			out[c*3+r] = s
		}
	}

	return out
}

// identity is the column-major 3×3 identity.
var identity = [9]float64{1, 0, 0, 0, 1, 0, 0, 0, 1}
