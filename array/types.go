// SPDX-License-Identifier: MIT

// Package array: capability root.
//
// Purpose:
//   - Define the type-level column widths (W1, W3, W9, W12).
//   - Define the Processing tag every expression carries.
//   - Define the minimal capability set (Data, Xpr, Storage) shared by
//     storage types and operation results.
//
// AI-Hints:
//   - Row(i) returns a slice aliasing the underlying storage; writes through
//     it are visible in the owner. Only Assign and block writes should do so.
//   - Implement Width on your own empty struct to introduce a new column count.

package array

import "strconv"

// Width is a column count carried at the type level.
// Implementations are empty structs; the method is called on the zero value.
type Width interface {
	Width() int
}

// W1 is the one-column width (scalars, norms).
type W1 struct{}

// W3 is the three-column width (vectors, trajectories, angles).
type W3 struct{}

// W9 is the nine-column width (3×3 orientations).
type W9 struct{}

// W12 is the twelve-column width (motions: [u v w o]).
type W12 struct{}

func (W1) Width() int  { return 1 }
func (W3) Width() int  { return 3 }
func (W9) Width() int  { return 9 }
func (W12) Width() int { return 12 }

// ColsOf returns the column count carried by C.
// Complexity: O(1).
func ColsOf[C Width]() int {
	var c C

	return c.Width()
}

// Processing classifies how much validity and zeroing work an expression's
// raw output still requires when it is assigned into storage.
//
//   - ProcessingNone       - values and residuals are final; copied verbatim.
//   - ProcessingValuesOnly - residuals are final (or a raw sign condition);
//     values may be dirty on rows whose residual is negative.
//   - ProcessingFull       - residuals hold the combined validity of all
//     operands; values may be dirty on rows it marks invalid.
type Processing int

const (
	// ProcessingNone marks already-final values and residuals.
	ProcessingNone Processing = iota

	// ProcessingValuesOnly marks results whose residual needs canonicalization
	// and whose values need zero-masking.
	ProcessingValuesOnly

	// ProcessingFull marks results with a combined residual column whose
	// values need zero-masking.
	ProcessingFull
)

// String returns the tag name.
func (p Processing) String() string {
	switch p {
	case ProcessingNone:
		return "None"
	case ProcessingValuesOnly:
		return "ValuesOnly"
	case ProcessingFull:
		return "Full"
	default:
		return "Processing(" + strconv.Itoa(int(p)) + ")"
	}
}

// Data is the untyped capability set of every array-like value.
//
// Rows/Cols report the shape; Row(i) returns the i-th value row (len == Cols)
// and Residual(i) its residual. Processing reports the finalization tag.
// Row and Residual panic on out-of-range indices, like slice indexing.
type Data interface {
	Rows() int
	Cols() int
	Row(i int) []float64
	Residual(i int) float64
	Processing() Processing
}

// Xpr is an array-like value whose column count is C.
// Shape only carries the type; its return value is the zero C.
type Xpr[C Width] interface {
	Data
	Shape() C
}

// Storage is an Xpr that Assign can write into.
type Storage[C Width] interface {
	Xpr[C]
	SetResidual(i int, r float64)
}

// residualSetter is satisfied by every value whose residual column is writable.
type residualSetter interface {
	SetResidual(i int, r float64)
}

// resizer is satisfied by owning storage that Assign may reshape.
type resizer interface {
	resize(rows int)
}

// Canonical residual sentinels.
const (
	// Valid is the residual produced when validity is recomputed.
	Valid = 0.0

	// Invalid is the residual marking an occluded row.
	Invalid = -1.0
)

// epsilon is the float64 machine epsilon (2^-52).
const epsilon = 0x1p-52

// maskValue converts a validity condition to its residual sentinel.
func maskValue(ok bool) float64 {
	if ok {
		return Valid
	}

	return Invalid
}

// ResidualsFromMask converts a per-row validity condition into the residual
// encoding: Valid (0) where true, Invalid (-1) where false.
// The result has one entry per condition row.
// Complexity: O(n).
func ResidualsFromMask(cond []bool) []float64 {
	out := make([]float64, len(cond))
	for i, ok := range cond {
		out[i] = maskValue(ok)
	}

	return out
}
