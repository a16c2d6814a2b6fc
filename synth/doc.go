// SPDX-License-Identifier: MIT

// Package synth generates deterministic synthetic motion-capture arrays for
// tests, demos and fixtures.
//
// 🚀 What is synth?
//
//	Small generators that return ready-to-use array storage:
//		• Pulse   - rectangular or triangular scalar channel (e.g. foot contact)
//		• Chirp   - linear frequency sweep on a scalar channel
//		• Orbit   - a marker circling in the XY plane
//		• Spin    - a segment Motion rotating about Z around a moving origin
//
// ✨ Occlusion on demand
//
//	WithDropout(p) occludes each frame with probability p, and WithGap(from, n)
//	occludes a contiguous run of frames. Occluded frames hold zeros with the
//	invalid residual, exactly like ingested data.
//
// ⚙️ Determinism
//
//	Every generator takes a seed. WithSeed/WithRand share one stream across
//	calls; otherwise each call seeds its own source. Same inputs, same output.
//
// Option constructors panic on meaningless values; generators never panic
// and report bad requests through errors.
package synth
