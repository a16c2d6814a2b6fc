// SPDX-License-Identifier: MIT

// Package dtw aligns two occlusion-aware time series with Dynamic Time
// Warping (DTW).
//
// 🚀 What is it for?
//
//	Two trials of the same movement rarely share timing: one gait cycle is
//	slower, a reach starts later. DTW warps the time axis to pair samples
//	so that the summed distance between paired rows is minimal. Typical uses:
//	  • comparing a marker trajectory across trials or sides
//	  • matching a joint-angle curve against a reference pattern
//	  • measuring how far two segment lengths drift apart over a capture
//
// ✨ Key features:
//   - any column count: row cost is the Euclidean distance between rows
//     (|a−b| for scalars)
//   - occlusion-aware: occluded rows are skipped, the path reports original
//     frame indices
//   - full-matrix mode with path recovery, or two-row mode in O(M) memory
//   - optional Sakoe–Chiba window (|i−j| ≤ w over valid samples)
//   - slope penalty to discourage excessive stretching
//
// ⚙️ Usage:
//
//	opts := dtw.DefaultOptions()
//	opts.Window = 20
//	opts.ReturnPath = true
//
//	dist, path, err := dtw.Align(left, right, &opts)
//
// Performance:
//
//   - Time:   O(N·M·C)
//   - Memory: O(N·M) (FullMatrix) or O(M) (TwoRows)
package dtw
