// SPDX-License-Identifier: MIT
// Package: motion/synth
//
// options.go - functional options for the generators.
//
// Contract:
//   • Option constructors validate and panic on meaningless inputs.
//     Generators themselves never panic.
//   • Determinism is explicit: WithSeed or WithRand share a stream.

package synth

import (
	"fmt"
	"math/rand"
)

// Option customizes a generator call by mutating its config.
type Option func(*config)

// WithRand provides an explicit RNG shared by every call it is passed to.
// Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("synth: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithSeed creates a new seeded RNG. It overrides the generator's own seed.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithAmplitude sets the signal amplitude (Pulse/Chirp height, Orbit radius).
// Panics if A <= 0.
func WithAmplitude(A float64) Option {
	if A <= 0 {
		panic("synth: WithAmplitude(A<=0)")
	}
	return func(c *config) {
		c.amplitude = A
	}
}

// WithFrequency sets the base frequency f0 in cycles per frame for Pulse,
// Orbit and Spin. Panics if f0 <= 0.
func WithFrequency(f0 float64) Option {
	if f0 <= 0 {
		panic("synth: WithFrequency(f0<=0)")
	}
	return func(c *config) {
		c.frequency = f0
	}
}

// WithSweep sets both ends of the Chirp sweep. Panics unless both are > 0.
func WithSweep(f0, f1 float64) Option {
	if f0 <= 0 || f1 <= 0 {
		panic(fmt.Sprintf("synth: WithSweep(%g, %g)", f0, f1))
	}
	return func(c *config) {
		c.chirpStart, c.chirpEnd = f0, f1
	}
}

// WithDuty sets the Pulse duty cycle. Panics outside [0,1].
func WithDuty(duty float64) Option {
	if duty < 0 || duty > 1 {
		panic("synth: WithDuty(duty∉[0,1])")
	}
	return func(c *config) {
		c.duty = duty
	}
}

// WithTriangular switches Pulse to a triangular envelope.
func WithTriangular() Option {
	return func(c *config) {
		c.triangular = true
	}
}

// WithTrend adds k*i to every sample (every coordinate for trajectories).
func WithTrend(k float64) Option {
	return func(c *config) {
		c.trend = k
	}
}

// WithNoise adds Gaussian noise of the given sigma. Panics if sigma < 0.
func WithNoise(sigma float64) Option {
	if sigma < 0 {
		panic("synth: WithNoise(sigma<0)")
	}
	return func(c *config) {
		c.noiseSigma = sigma
	}
}

// WithDropout occludes each frame independently with probability p.
// Panics outside [0,1).
func WithDropout(p float64) Option {
	if p < 0 || p >= 1 {
		panic("synth: WithDropout(p∉[0,1))")
	}
	return func(c *config) {
		c.dropout = p
	}
}

// WithGap occludes frames [from, from+n). Gaps beyond the series are clipped.
// Panics if from < 0 or n < 1.
func WithGap(from, n int) Option {
	if from < 0 || n < 1 {
		panic(fmt.Sprintf("synth: WithGap(%d, %d)", from, n))
	}
	return func(c *config) {
		c.gaps = append(c.gaps, gap{from: from, n: n})
	}
}

// WithResidual sets the residual reported for visible frames. Panics if r < 0.
func WithResidual(r float64) Option {
	if r < 0 {
		panic("synth: WithResidual(r<0)")
	}
	return func(c *config) {
		c.residual = r
	}
}
