// SPDX-License-Identifier: MIT
package dtw_test

import (
	"fmt"

	"github.com/katalvlaran/motion/array"
	"github.com/katalvlaran/motion/dtw"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleAlign_missingSample
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Almost identical curves where the second one skips a value.
//	  a = [10, 11, 12, 13, 14, 15]
//	  b = [10, 11, 13, 14, 15]
//
// Options:
//   - Window = 1
//   - SlopePenalty = 1.0   (cost for each insertion/deletion)
//   - ReturnPath = true
//
// Complexity: O(N·M) time, O(N·M) memory
func ExampleAlign_missingSample() {
	a, _ := array.FromValues[array.W1]([]float64{10, 11, 12, 13, 14, 15})
	b, _ := array.FromValues[array.W1]([]float64{10, 11, 13, 14, 15})
	opts := dtw.DefaultOptions()
	opts.Window = 1
	opts.SlopePenalty = 1.0
	opts.ReturnPath = true

	dist, path, err := dtw.Align(a, b, &opts)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("distance=%.0f\npath=%v\n", dist, path)
	// Output:
	// distance=2
	// path=[{0 0} {1 1} {2 1} {3 2} {4 3} {5 4}]
}

// ExampleAlign_occlusion shows occluded frames being skipped while the path
// keeps the original frame numbers.
func ExampleAlign_occlusion() {
	a, _ := array.FromData[array.W1]([]float64{0, 0, 1, 2}, []float64{0, array.Invalid, 0, 0})
	b, _ := array.FromValues[array.W1]([]float64{0, 1, 2})
	opts := dtw.DefaultOptions()
	opts.ReturnPath = true

	dist, path, _ := dtw.Align(a, b, &opts)
	fmt.Printf("distance=%.0f\npath=%v\n", dist, path)
	// Output:
	// distance=0
	// path=[{0 0} {2 1} {3 2}]
}
