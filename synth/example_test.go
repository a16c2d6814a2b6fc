// SPDX-License-Identifier: MIT
package synth_test

import (
	"fmt"

	"github.com/katalvlaran/motion/synth"
)

// ExamplePulse builds a contact channel that loses one frame.
func ExamplePulse() {
	contact, err := synth.Pulse(4, 0, synth.WithFrequency(0.25), synth.WithGap(1, 1))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Print(contact)
	// Output:
	// [1] | 0
	// [0] | -1
	// [0] | 0
	// [0] | 0
}
