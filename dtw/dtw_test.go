// SPDX-License-Identifier: MIT
package dtw_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/motion/array"
	"github.com/katalvlaran/motion/dtw"
)

// scalar builds a valid 1-column series.
func scalar(t *testing.T, values ...float64) *array.Scalar {
	t.Helper()
	s, err := array.FromValues[array.W1](values)
	require.NoError(t, err)

	return s
}

// TestAlign_EmptyInput verifies nil and fully occluded inputs are rejected.
func TestAlign_EmptyInput(t *testing.T) {
	opts := dtw.DefaultOptions()
	s := scalar(t, 1, 2, 3)

	_, _, err := dtw.Align[array.W1](nil, s, &opts)
	assert.ErrorIs(t, err, dtw.ErrEmptyInput, "nil first series should error")

	occluded, err := array.FromData[array.W1]([]float64{1, 2}, []float64{-1, -1})
	require.NoError(t, err)
	_, _, err = dtw.Align(s, occluded, &opts)
	assert.ErrorIs(t, err, dtw.ErrEmptyInput, "all-occluded series has no samples")
}

// TestAlign_BadOptions ensures invalid windows and penalties trigger ErrBadInput.
func TestAlign_BadOptions(t *testing.T) {
	s := scalar(t, 1)

	opts := dtw.DefaultOptions()
	opts.Window = -2
	_, _, err := dtw.Align(s, s, &opts)
	assert.ErrorIs(t, err, dtw.ErrBadInput, "Window < -1 must error")

	opts = dtw.DefaultOptions()
	opts.SlopePenalty = -0.5
	_, _, err = dtw.Align(s, s, &opts)
	assert.ErrorIs(t, err, dtw.ErrBadInput, "negative penalty must error")
}

// TestAlign_PathNeedsMatrix ensures ReturnPath with TwoRows errors.
func TestAlign_PathNeedsMatrix(t *testing.T) {
	opts := dtw.DefaultOptions()
	opts.ReturnPath = true
	opts.MemoryMode = dtw.TwoRows

	s := scalar(t, 1, 2)
	_, _, err := dtw.Align(s, s, &opts)
	assert.ErrorIs(t, err, dtw.ErrPathNeedsMatrix)
}

// TestAlign_Identical has zero distance and no path by default.
func TestAlign_Identical(t *testing.T) {
	s := scalar(t, 0, 1, 2)

	dist, path, err := dtw.Align(s, s, nil)
	require.NoError(t, err)
	assert.Equal(t, 0.0, dist)
	assert.Nil(t, path, "default ReturnPath=false should yield nil path")
}

// TestAlign_SubsequencePath checks a perfect stretched match and its path.
func TestAlign_SubsequencePath(t *testing.T) {
	opts := dtw.DefaultOptions()
	opts.ReturnPath = true

	dist, path, err := dtw.Align(scalar(t, 1, 2, 3), scalar(t, 1, 2, 2, 3), &opts)
	require.NoError(t, err)
	assert.Equal(t, 0.0, dist, "perfect subsequence match yields zero cost")
	assert.Equal(t, []dtw.Coord{{0, 0}, {1, 1}, {1, 2}, {2, 3}}, path)
}

// TestAlign_WindowConstraint verifies a strict window with a length mismatch
// yields +Inf and no path.
func TestAlign_WindowConstraint(t *testing.T) {
	opts := dtw.DefaultOptions()
	opts.Window = 0
	opts.ReturnPath = true

	dist, path, err := dtw.Align(scalar(t, 1, 2, 3), scalar(t, 1, 2, 3, 4), &opts)
	require.NoError(t, err)
	assert.True(t, math.IsInf(dist, 1), "strict window + mismatch must yield +Inf")
	assert.Nil(t, path)
}

// TestAlign_TwoRowsMatchesFullMatrix compares both memory modes.
func TestAlign_TwoRowsMatchesFullMatrix(t *testing.T) {
	a := scalar(t, 0, 0.5, 2, 3.5, 1, 0, -1, 0.25)
	b := scalar(t, 0, 2.5, 3, 0.5, -0.5, 0)

	for _, window := range []int{-1, 2, 3} {
		full := dtw.DefaultOptions()
		full.Window = window
		full.SlopePenalty = 0.3
		rolling := full
		rolling.MemoryMode = dtw.TwoRows

		d1, _, err := dtw.Align(a, b, &full)
		require.NoError(t, err)
		d2, _, err := dtw.Align(a, b, &rolling)
		require.NoError(t, err)
		assert.Equal(t, d1, d2, "window %d", window)
	}
}

// TestAlign_OccludedRowsSkipped maps the path back to original frames.
func TestAlign_OccludedRowsSkipped(t *testing.T) {
	a, err := array.FromData[array.W1]([]float64{0, 99, 1, 2}, []float64{0, -1, 0, 0})
	require.NoError(t, err)
	opts := dtw.DefaultOptions()
	opts.ReturnPath = true

	dist, path, err := dtw.Align(a, scalar(t, 0, 1, 2), &opts)
	require.NoError(t, err)
	assert.Equal(t, 0.0, dist)
	assert.Equal(t, []dtw.Coord{{0, 0}, {2, 1}, {3, 2}}, path)
}

// TestAlign_Vectors uses the Euclidean row distance.
func TestAlign_Vectors(t *testing.T) {
	a, err := array.FromValues[array.W3]([]float64{3, 4, 0})
	require.NoError(t, err)
	b, err := array.FromValues[array.W3]([]float64{0, 0, 0})
	require.NoError(t, err)

	dist, _, err := dtw.Align(a, b, nil)
	require.NoError(t, err)
	assert.Equal(t, 5.0, dist)
}
