// SPDX-License-Identifier: MIT
// Package: motion/synth
//
// occlusion.go - residual columns and noise draws shared by every generator.

package synth

import (
	"errors"
	"math/rand"

	"github.com/katalvlaran/motion/array"
)

// ErrInvalidLength is returned when a generator is asked for fewer than one frame.
var ErrInvalidLength = errors.New("synth: length must be >= 1")

// residuals builds the residual column: cfg.residual for visible frames,
// array.Invalid for dropped frames and gaps. Dropout draws one number per
// frame, and only when enabled.
func residuals(n int, cfg config, rng *rand.Rand) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = cfg.residual
		if cfg.dropout > 0 && rng.Float64() < cfg.dropout {
			out[i] = array.Invalid
		}
	}
	for _, g := range cfg.gaps {
		for i := g.from; i < g.from+g.n && i < n; i++ {
			out[i] = array.Invalid
		}
	}

	return out
}

// noise returns one Gaussian draw scaled by cfg.noiseSigma, or 0 without
// consuming the stream when noise is disabled.
func noise(cfg config, rng *rand.Rand) float64 {
	if cfg.noiseSigma == 0 {
		return 0
	}

	return cfg.noiseSigma * rng.NormFloat64()
}
