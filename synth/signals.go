// SPDX-License-Identifier: MIT
// Package: motion/synth
//
// signals.go - scalar channels: Pulse and Chirp.
//
// Contract:
//   • Generators return (nil, ErrInvalidLength) for n < 1.
//   • O(n) time and memory; no global state.
//   • Noise is drawn before occlusion, frame by frame, from one stream.

package synth

import (
	"math"

	"github.com/katalvlaran/motion/array"
)

// tau is 2π.
const tau = 2.0 * math.Pi

// Pulse returns a length-n scalar pulse channel.
// Shape:
//   - Rectangular: y ∈ {0, A}, on while (i·f0 mod 1) < duty.
//   - Triangular:  y = A·(1 − |2·frac − 1|).
//
// Then y += trend·i + sigma·N(0,1), and occlusion is applied.
func Pulse(n int, seed int64, opts ...Option) (*array.Scalar, error) {
	if n < 1 {
		return nil, ErrInvalidLength
	}
	cfg := newConfig(opts...)
	rng := rngFrom(cfg, seed)

	values := make([]float64, n)
	var frac, base float64
	for i := range values {
		frac = math.Mod(float64(i)*cfg.frequency, 1)
		switch {
		case cfg.triangular:
			base = cfg.amplitude * (1 - math.Abs(2*frac-1))
		case frac < cfg.duty:
			base = cfg.amplitude
		default:
			base = 0
		}
		values[i] = base + cfg.trend*float64(i) + noise(cfg, rng)
	}

	return array.FromData[array.W1](values, residuals(n, cfg, rng))
}

// Chirp returns a length-n linear chirp sweeping f0 → f1.
// Model:
//   - fi   = f0 + (f1 − f0)·i/(n−1)
//   - θᵢ₊₁ = θᵢ + τ·fi
//   - yᵢ   = A·sin(θᵢ) + trend·i + noise
func Chirp(n int, seed int64, opts ...Option) (*array.Scalar, error) {
	if n < 1 {
		return nil, ErrInvalidLength
	}
	cfg := newConfig(opts...)
	f0, f1 := cfg.chirpStart, cfg.chirpEnd
	rng := rngFrom(cfg, seed)

	values := make([]float64, n)
	var theta, t float64
	for i := range values {
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		theta += tau * (f0 + (f1-f0)*t)
		values[i] = cfg.amplitude*math.Sin(theta) + cfg.trend*float64(i) + noise(cfg, rng)
	}

	return array.FromData[array.W1](values, residuals(n, cfg, rng))
}
