// SPDX-License-Identifier: MIT
// Package: motion/synth
//
// config.go - resolved generator settings and their defaults.
//
// Defaults:
//   • amplitude = 1.0
//   • frequency = 0.125 cycles/frame (Pulse/Orbit/Spin), Chirp sweeps 0.02 → 0.25
//   • duty      = 0.5, rectangular shape
//   • trend     = 0.0, noise = 0.0
//   • dropout   = 0.0, no gaps
//   • residual  = 0.0 for every visible frame

package synth

import (
	"math/rand"
)

// gap is a run of occluded frames [from, from+n).
type gap struct {
	from int
	n    int
}

// config aggregates all knobs used by the generators. Passed by value.
type config struct {
	rng *rand.Rand // nil: each generator seeds its own source

	amplitude  float64 // >0
	frequency  float64 // >0, cycles per frame
	chirpStart float64 // >0, initial Chirp frequency
	chirpEnd   float64 // >0, final Chirp frequency
	duty       float64 // [0,1]
	triangular bool
	trend      float64 // added per frame
	noiseSigma float64 // >=0

	dropout  float64 // [0,1)
	gaps     []gap
	residual float64 // >=0, reported for visible frames
}

// Deterministic defaults.
const (
	defaultAmplitude = 1.0
	defaultFrequency = 0.125 // period of 8 frames
	defaultChirpF0   = 0.02
	defaultChirpF1   = 0.25
	defaultDuty      = 0.5
)

// newConfig applies opts over the defaults, last wins.
func newConfig(opts ...Option) config {
	cfg := config{
		amplitude:  defaultAmplitude,
		frequency:  defaultFrequency,
		chirpStart: defaultChirpF0,
		chirpEnd:   defaultChirpF1,
		duty:       defaultDuty,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// rngFrom returns cfg.rng if present (shared stream), else a local source
// seeded by seed.
func rngFrom(cfg config, seed int64) *rand.Rand {
	if cfg.rng != nil {
		return cfg.rng
	}

	return rand.New(rand.NewSource(seed))
}
