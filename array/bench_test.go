// SPDX-License-Identifier: MIT
package array_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/motion/array"
)

// benchRows is the sample count of a ~1 min capture at 200 Hz.
const benchRows = 12000

// benchVector builds a deterministic trajectory with every 7th frame occluded.
func benchVector(b *testing.B, phase float64) *array.Vector {
	values := make([]float64, benchRows*3)
	residuals := make([]float64, benchRows)
	for i := 0; i < benchRows; i++ {
		t := float64(i)/200 + phase
		values[i*3], values[i*3+1], values[i*3+2] = math.Cos(t), math.Sin(t), t
		if i%7 == 0 {
			residuals[i] = array.Invalid
		}
	}
	v, err := array.FromData[array.W3](values, residuals)
	if err != nil {
		b.Fatalf("FromData failed: %v", err)
	}

	return v
}

// benchMotion builds a deterministic motion series rotating about Z.
func benchMotion(b *testing.B) *array.Motion {
	values := make([]float64, 0, benchRows*12)
	for i := 0; i < benchRows; i++ {
		s, c := math.Sincos(float64(i) / 100)
		values = append(values, c, s, 0, -s, c, 0, 0, 0, 1, float64(i), 0, 0)
	}
	m, err := array.MotionFromData(values, make([]float64, benchRows))
	if err != nil {
		b.Fatalf("MotionFromData failed: %v", err)
	}

	return m
}

// BenchmarkSegmentLength measures Sub → Norm → Assign.
func BenchmarkSegmentLength(b *testing.B) {
	p, d := benchVector(b, 0), benchVector(b, 0.5)
	dst, _ := array.New[array.W1](benchRows)

	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		diff, err := array.Sub(d, p)
		if err != nil {
			b.Fatalf("Sub failed: %v", err)
		}
		n, err := array.Norm(diff)
		if err != nil {
			b.Fatalf("Norm failed: %v", err)
		}
		if err = array.Assign[array.W1](dst, n); err != nil {
			b.Fatalf("Assign failed: %v", err)
		}
	}
}

// BenchmarkTransformInverse measures relative motion Inverse(a) ∘ b.
func BenchmarkTransformInverse(b *testing.B) {
	m := benchMotion(b)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		inv, err := array.Inverse(m)
		if err != nil {
			b.Fatalf("Inverse failed: %v", err)
		}
		if _, err = array.Transform(inv, m); err != nil {
			b.Fatalf("Transform failed: %v", err)
		}
	}
}

// BenchmarkEulerAngles measures XYZ decomposition.
func BenchmarkEulerAngles(b *testing.B) {
	m := benchMotion(b)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := array.EulerAngles(m, 0, 1, 2); err != nil {
			b.Fatalf("EulerAngles failed: %v", err)
		}
	}
}
