// SPDX-License-Identifier: MIT
package array_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/motion/array"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMean_IgnoresOccludedGarbage averages only valid rows, even when the
// occluded rows of a borrowed buffer hold garbage.
func TestMean_IgnoresOccludedGarbage(t *testing.T) {
	values := []float64{2, 99, 4, 99}
	residuals := []float64{0, occ, 0, occ}
	v, err := array.NewView[array.W1](4, values, 1, residuals)
	require.NoError(t, err)

	m, err := array.Mean(v)
	require.NoError(t, err)
	assert.Equal(t, 1, m.Rows())
	assert.Equal(t, array.ProcessingFull, m.Processing())

	f, err := array.Float(m)
	require.NoError(t, err)
	assert.Equal(t, 3.0, f)
	assert.Equal(t, array.Valid, m.Residual(0))
}

// TestMean_AllOccluded yields zero with an invalid residual.
func TestMean_AllOccluded(t *testing.T) {
	s := MustScalar(t, []float64{5, 6}, []float64{occ, occ})
	m, err := array.Mean(s)
	require.NoError(t, err)
	assert.Equal(t, []float64{0}, m.Row(0))
	assert.True(t, m.Residual(0) < 0)
}

// TestMean_Columns averages each column independently.
func TestMean_Columns(t *testing.T) {
	v := MustVector(t, []float64{1, 2, 3, 3, 4, 5, 100, 100, 100}, []float64{0, 1.5, occ})
	m, err := array.Mean(v)
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 3, 4}, m.Row(0))
}

// TestNorm_PerRow computes Euclidean lengths and passes residuals through.
func TestNorm_PerRow(t *testing.T) {
	v := MustVector(t, []float64{3, 4, 0, 1, 2, 2, 0, 0, 0}, []float64{0.3, 0, occ})
	n, err := array.Norm(v)
	require.NoError(t, err)
	assert.Equal(t, 1, n.Cols())
	assert.Equal(t, []float64{5, 3, 0}, n.Values())
	assert.Equal(t, []float64{0.3, 0, occ}, n.Residuals(), "raw residual passes through")
	assert.Equal(t, array.ProcessingValuesOnly, n.Processing())
}

// TestScale_And_Div check multiplication and the near-zero divisor guard.
func TestScale_And_Div(t *testing.T) {
	v := MustVector(t, []float64{2, 4, 6}, []float64{0})
	s, err := array.Scale(v, 0.5)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3}, s.Row(0))

	d, err := array.Div(v, 2)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3}, d.Row(0))

	_, err = array.Div(v, 1e-20)
	require.ErrorIs(t, err, array.ErrNearZeroDivisor)
	_, err = array.Scale[array.W3](nil, 1)
	require.ErrorIs(t, err, array.ErrNilOperand)
}

// TestNormalized_Guard keeps near-zero rows finite and unit-scales the rest.
func TestNormalized_Guard(t *testing.T) {
	v := MustVector(t, []float64{0, 3, 4, 0, 0, 0, 1e-9, 0, 0}, []float64{0, 0, 0})
	n, err := array.Normalized(v)
	require.NoError(t, err)

	assert.InDeltaSlice(t, []float64{0, 0.6, 0.8}, n.Row(0), tol)
	assert.Equal(t, []float64{0, 0, 0}, n.Row(1), "zero row stays zero, no NaN")
	// 1e-18 is below epsilon, so the row is divided by 1.
	assert.Equal(t, []float64{1e-9, 0, 0}, n.Row(2))
	for _, x := range n.Values() {
		assert.False(t, math.IsNaN(x))
	}
}

// TestReplicate_Shape tiles rows and keeps residuals, zeroing occluded rows.
func TestReplicate_Shape(t *testing.T) {
	values := []float64{1, 2, 3, 9, 9, 9}
	residuals := []float64{0.5, occ}
	v, err := array.NewView[array.W3](2, values, 3, residuals)
	require.NoError(t, err)

	r, err := array.Replicate(v, 3)
	require.NoError(t, err)
	assert.Equal(t, 6, r.Rows())
	assert.Equal(t, array.ProcessingNone, r.Processing())
	for k := 0; k < 3; k++ {
		assert.Equal(t, []float64{1, 2, 3}, r.Row(2*k))
		assert.Equal(t, 0.5, r.Residual(2*k))
		assert.Equal(t, []float64{0, 0, 0}, r.Row(2*k+1))
		assert.Equal(t, occ, r.Residual(2*k+1))
	}

	_, err = array.Replicate(v, 0)
	require.ErrorIs(t, err, array.ErrInvalidRows)
}

// TestUnary_EmptyOperand rejects zero-row operands.
func TestUnary_EmptyOperand(t *testing.T) {
	e, err := array.New[array.W3](0)
	require.NoError(t, err)

	_, err = array.Norm(e)
	assert.ErrorIs(t, err, array.ErrEmptyOperand)
	_, err = array.Mean(e)
	assert.ErrorIs(t, err, array.ErrEmptyOperand)
	_, err = array.Normalized(e)
	assert.ErrorIs(t, err, array.ErrEmptyOperand)
	_, err = array.Replicate(e, 2)
	assert.ErrorIs(t, err, array.ErrEmptyOperand)
}
