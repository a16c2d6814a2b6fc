// SPDX-License-Identifier: MIT

// Package array is an occlusion-aware numeric engine for time-series arrays
// used in motion analysis.
//
// An array is a sequence of samples (rows) over a fixed number of numeric
// columns. Every row also carries a residual: residual >= 0 marks a valid
// sample, a negative residual marks an occluded one (e.g. an unseen marker).
// Occluded rows always hold zero values.
//
// The package provides:
//
//   - Storage: Array (owning), View (non-owning, strided over caller buffers)
//     and Motion (12 columns [u v w o], a rigid transform per sample).
//   - Operations: Sub, Add, Cross, Transform, Norm, Mean, Scale, Div,
//     Normalized, Replicate, Inverse, EulerAngles and column blocks.
//   - Assign, the single place where an operation result is finalized into
//     storage according to its Processing tag.
//
// Column counts live in the type system (W1, W3, W9, W12 or any type
// implementing Width), so Cross on non-3-column operands or Assign between
// different widths does not compile. Row-count problems are reported through
// the sentinel errors in errors.go.
//
// Usage:
//
//	import "github.com/katalvlaran/motion/array"
//
//	d, err := array.Sub(distal, proximal)    // *Result[W3], tag Full
//	n, err := array.Norm(d)                  // *Result[W1], tag ValuesOnly
//	length, err := array.Materialize(n)      // occluded rows -> 0 / -1
//
// Operations are evaluated eagerly: each returns an owned Result whose values
// may still be dirty on rows its residual marks invalid. Assign (and
// Materialize / Export) clean them.
package array
