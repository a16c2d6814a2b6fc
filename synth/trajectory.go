// SPDX-License-Identifier: MIT
// Package: motion/synth
//
// trajectory.go - marker trajectories and segment motions.

package synth

import (
	"math"

	"github.com/katalvlaran/motion/array"
)

// Orbit returns a marker circling the Z axis at radius A with frequency f0:
//
//	p(i) = (A·cos θ, A·sin θ, 0) + trend·i·(1, 1, 1) + noise,  θ = τ·f0·i
//
// Noise is drawn per coordinate.
func Orbit(n int, seed int64, opts ...Option) (*array.Trajectory, error) {
	if n < 1 {
		return nil, ErrInvalidLength
	}
	cfg := newConfig(opts...)
	rng := rngFrom(cfg, seed)

	values := make([]float64, 0, n*3)
	for i := 0; i < n; i++ {
		s, c := math.Sincos(tau * cfg.frequency * float64(i))
		drift := cfg.trend * float64(i)
		values = append(values,
			cfg.amplitude*c+drift+noise(cfg, rng),
			cfg.amplitude*s+drift+noise(cfg, rng),
			drift+noise(cfg, rng),
		)
	}

	return array.FromData[array.W3](values, residuals(n, cfg, rng))
}

// Spin returns a segment turning about Z at frequency f0 whose origin follows
// Orbit's path. The orientation stays exactly orthonormal; noise only moves
// the origin.
//
// Frame i rotates by θ = τ·f0·i, so u = (cos θ, sin θ, 0),
// v = (−sin θ, cos θ, 0), w = (0, 0, 1).
func Spin(n int, seed int64, opts ...Option) (*array.Motion, error) {
	if n < 1 {
		return nil, ErrInvalidLength
	}
	cfg := newConfig(opts...)
	rng := rngFrom(cfg, seed)

	values := make([]float64, 0, n*12)
	for i := 0; i < n; i++ {
		s, c := math.Sincos(tau * cfg.frequency * float64(i))
		drift := cfg.trend * float64(i)
		values = append(values,
			c, s, 0,
			-s, c, 0,
			0, 0, 1,
			cfg.amplitude*c+drift+noise(cfg, rng),
			cfg.amplitude*s+drift+noise(cfg, rng),
			drift+noise(cfg, rng),
		)
	}

	return array.MotionFromData(values, residuals(n, cfg, rng))
}
