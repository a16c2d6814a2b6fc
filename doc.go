// Package motion is an occlusion-aware numeric engine for motion-capture
// time series: marker trajectories, scalar channels and segment motions,
// where any frame of any signal may be missing.
//
// 🚀 What is motion?
//
//	A small, typed library plus a CLI that brings together:
//		• Arrays of rows × columns with one residual per row (negative = occluded)
//		• Views over foreign buffers and column blocks over any expression
//		• Element-wise, vector and rigid-transform operations (Cross, Norm,
//		  Transform, Inverse, EulerAngles) that carry occlusion for you
//		• Dynamic time warping over the valid frames of two recordings
//		• YAML/TOML fixtures for named arrays
//
// ✨ Why choose motion?
//
//   - Shapes at compile time – widths W1, W3, W9, W12 live in the type
//   - One rule for missing data – an occluded input gives an occluded output,
//     always stored as zeros with residual -1
//   - Errors, not panics – every precondition is a sentinel for errors.Is
//
// Under the hood, everything is organized under these packages:
//
//	array/           - storage (Array, View, Motion), blocks, assignment and operations
//	dtw/             - occlusion-aware dynamic time warping
//	ingest/          - named-array fixture documents (YAML, TOML)
//	internal/config/ - CLI configuration (viper)
//	internal/logger/ - structured logging (zap)
//	synth/           - deterministic synthetic arrays with occlusion
//	cmd/motion/      - the motion command line
//
// Quick ASCII example:
//
//	frame   LASI        residual
//	  0     [1 2 3]      0.4
//	  1     [0 0 0]     -1      ← occluded: zeros, never NaN
//
// Dive into cmd/motion for end-to-end usage:
//
//	go install github.com/katalvlaran/motion/cmd/motion@latest
package motion
