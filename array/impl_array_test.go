// SPDX-License-Identifier: MIT
package array_test

import (
	"testing"

	"github.com/katalvlaran/motion/array"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNew_ZeroedAndValid verifies New returns zero values and valid residuals.
func TestNew_ZeroedAndValid(t *testing.T) {
	a, err := array.New[array.W3](4)
	require.NoError(t, err)
	assert.Equal(t, 4, a.Rows())
	assert.Equal(t, 3, a.Cols())
	assert.Len(t, a.Values(), 12)
	for i := 0; i < a.Rows(); i++ {
		assert.Equal(t, array.Valid, a.Residual(i))
		assert.Equal(t, []float64{0, 0, 0}, a.Row(i))
	}
	assert.True(t, a.IsValid())
	assert.False(t, a.IsOccluded())
}

// TestNew_Empty verifies the empty array is neither valid nor populated.
func TestNew_Empty(t *testing.T) {
	a, err := array.New[array.W1](0)
	require.NoError(t, err)
	assert.Equal(t, 0, a.Rows())
	assert.False(t, a.IsValid())
	assert.True(t, a.IsOccluded(), "empty counts as fully occluded")
}

// TestNew_NegativeRows ensures negative sizes are rejected.
func TestNew_NegativeRows(t *testing.T) {
	_, err := array.New[array.W3](-1)
	require.ErrorIs(t, err, array.ErrInvalidRows)
}

// TestFromData_SanitizesOccludedRows checks the zero-invariant at ingestion.
func TestFromData_SanitizesOccludedRows(t *testing.T) {
	a := MustVector(t,
		[]float64{1, 2, 3, 99, 99, 99, 7, 8, 9},
		[]float64{0.5, occ, 0},
	)
	assert.Equal(t, []float64{1, 2, 3}, a.Row(0))
	assert.Equal(t, []float64{0, 0, 0}, a.Row(1), "garbage under occlusion is dropped")
	assert.Equal(t, 0.5, a.Residual(0), "non-canonical residual kept verbatim")
	requireZeroInvariant(t, a)
}

// TestFromData_Copies ensures the caller's buffers are not aliased.
func TestFromData_Copies(t *testing.T) {
	values := []float64{1, 2, 3}
	a := MustVector(t, values, []float64{0})
	values[0] = 42
	assert.Equal(t, 1.0, a.Row(0)[0])
}

// TestFromData_BadShape covers every length disagreement.
func TestFromData_BadShape(t *testing.T) {
	_, err := array.FromData[array.W3]([]float64{1, 2}, []float64{0})
	require.ErrorIs(t, err, array.ErrBadShape, "values not a multiple of 3")

	_, err = array.FromData[array.W3]([]float64{1, 2, 3}, []float64{0, 0})
	require.ErrorIs(t, err, array.ErrBadShape, "residual count != rows")

	_, err = array.FromData[array.W3]([]float64{1, 2, 3}, nil)
	require.ErrorIs(t, err, array.ErrBadShape, "nil residuals for one row")
}

// TestFromValues_AllValid verifies FromValues marks every row valid.
func TestFromValues_AllValid(t *testing.T) {
	a, err := array.FromValues[array.W1]([]float64{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 0}, a.Residuals())

	_, err = array.FromValues[array.W3]([]float64{1})
	require.ErrorIs(t, err, array.ErrBadShape)
}

// TestAt_Bounds checks At on valid and out-of-range indices.
func TestAt_Bounds(t *testing.T) {
	a := MustVector(t, []float64{1, 2, 3, 4, 5, 6}, []float64{0, 0})
	v, err := a.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 6.0, v)

	for _, rc := range [][2]int{{-1, 0}, {2, 0}, {0, -1}, {0, 3}} {
		_, err = a.At(rc[0], rc[1])
		assert.ErrorIs(t, err, array.ErrOutOfRange, "At(%d,%d)", rc[0], rc[1])
	}
}

// TestSetRow_OccludedWritesZeros verifies SetRow honors the zero-invariant.
func TestSetRow_OccludedWritesZeros(t *testing.T) {
	a, err := array.New[array.W3](2)
	require.NoError(t, err)

	require.NoError(t, a.SetRow(0, []float64{1, 2, 3}, 0.25))
	require.NoError(t, a.SetRow(1, []float64{4, 5, 6}, occ))
	assert.Equal(t, []float64{1, 2, 3}, a.Row(0))
	assert.Equal(t, 0.25, a.Residual(0))
	assert.Equal(t, []float64{0, 0, 0}, a.Row(1))
	assert.Equal(t, occ, a.Residual(1))

	require.ErrorIs(t, a.SetRow(2, []float64{1, 2, 3}, 0), array.ErrOutOfRange)
	require.ErrorIs(t, a.SetRow(0, []float64{1, 2}, 0), array.ErrBadShape)
}

// TestSetZeroResiduals turns occluded samples into valid zeros.
func TestSetZeroResiduals(t *testing.T) {
	a := MustScalar(t, []float64{1, 2}, []float64{occ, 3})
	require.True(t, a.Residual(0) < 0)
	a.SetZeroResiduals()
	assert.Equal(t, []float64{0, 0}, a.Residuals())
	assert.Equal(t, []float64{0, 2}, a.Values())
}

// TestIsOccluded distinguishes partially and fully occluded arrays.
func TestIsOccluded(t *testing.T) {
	assert.False(t, MustScalar(t, []float64{1, 2}, []float64{occ, 0}).IsOccluded())
	assert.True(t, MustScalar(t, []float64{1, 2}, []float64{occ, -3}).IsOccluded())
}

// TestClone_Independent ensures Clone deep-copies both buffers.
func TestClone_Independent(t *testing.T) {
	a := MustVector(t, []float64{1, 2, 3}, []float64{0})
	cp := a.Clone()
	cp.Row(0)[0] = 9
	cp.SetResidual(0, occ)
	assert.Equal(t, 1.0, a.Row(0)[0])
	assert.Equal(t, array.Valid, a.Residual(0))
}

// TestString_Format checks the one-line-per-row rendering.
func TestString_Format(t *testing.T) {
	a := MustVector(t, []float64{1, 2.5, 3, 0, 0, 0}, []float64{0, occ})
	assert.Equal(t, "[1, 2.5, 3] | 0\n[0, 0, 0] | -1\n", a.String())
}

// TestAccessors_ColumnRange rejects blocks past the array width.
func TestAccessors_ColumnRange(t *testing.T) {
	s := MustScalar(t, []float64{1}, []float64{0})
	_, err := s.Y()
	require.ErrorIs(t, err, array.ErrColumnRange)
	_, err = s.U()
	require.ErrorIs(t, err, array.ErrColumnRange)

	v := MustVector(t, []float64{1, 2, 3}, []float64{0})
	z, err := v.Z()
	require.NoError(t, err)
	assert.Equal(t, []float64{3}, z.Row(0))
	_, err = v.V()
	require.ErrorIs(t, err, array.ErrColumnRange)
}

// TestResidualsFromMask converts conditions to sentinels.
func TestResidualsFromMask(t *testing.T) {
	assert.Equal(t,
		[]float64{array.Valid, array.Invalid, array.Valid},
		array.ResidualsFromMask([]bool{true, false, true}),
	)
}

// TestProcessing_String names every tag.
func TestProcessing_String(t *testing.T) {
	assert.Equal(t, "None", array.ProcessingNone.String())
	assert.Equal(t, "ValuesOnly", array.ProcessingValuesOnly.String())
	assert.Equal(t, "Full", array.ProcessingFull.String())
	assert.Equal(t, "Processing(7)", array.Processing(7).String())
}

// TestColsOf reports the type-level widths.
func TestColsOf(t *testing.T) {
	assert.Equal(t, 1, array.ColsOf[array.W1]())
	assert.Equal(t, 3, array.ColsOf[array.W3]())
	assert.Equal(t, 9, array.ColsOf[array.W9]())
	assert.Equal(t, 12, array.ColsOf[array.W12]())
}

// TestFloat_And_Must cover scalar extraction and the panicking helper.
func TestFloat_And_Must(t *testing.T) {
	s := MustScalar(t, []float64{4}, []float64{0})
	f, err := array.Float(s)
	require.NoError(t, err)
	assert.Equal(t, 4.0, f)

	f, err = array.Float(MustScalar(t, []float64{0}, []float64{occ}))
	require.NoError(t, err)
	assert.Zero(t, f)

	_, err = array.Float(MustScalar(t, []float64{1, 2}, []float64{0, 0}))
	require.ErrorIs(t, err, array.ErrNotScalar)
	_, err = array.Float(nil)
	require.ErrorIs(t, err, array.ErrNilOperand)

	assert.Panics(t, func() { array.Must(array.New[array.W3](-1)) })
	assert.NotPanics(t, func() { array.Must(array.New[array.W3](1)) })
}
