// SPDX-License-Identifier: MIT

package dtw

// MemoryMode controls how Align stores its DP matrix.
//
//   - FullMatrix - keep the entire (n+1)×(m+1) matrix.
//     Allows distance + backtrace of the optimal warping path.
//   - TwoRows    - keep only the previous and current rows.
//     Memory O(m), no path recovery.
type MemoryMode int

const (
	// FullMatrix stores all rows and supports path recovery.
	FullMatrix MemoryMode = iota

	// TwoRows stores two rows only; ReturnPath is rejected.
	TwoRows
)

// Options configures Align.
//
// Fields:
//   - Window       - maximum |i−j| over valid samples (Sakoe–Chiba band).
//     -1 means unconstrained; 0 forces the diagonal.
//   - SlopePenalty - extra cost of each insertion/deletion step (>= 0).
//   - ReturnPath   - backtrack and return the warping path.
//     Requires MemoryMode = FullMatrix.
//   - MemoryMode   - FullMatrix or TwoRows.
type Options struct {
	Window       int
	SlopePenalty float64
	ReturnPath   bool
	MemoryMode   MemoryMode
}

// DefaultOptions returns an unconstrained, penalty-free, distance-only setup.
func DefaultOptions() Options {
	return Options{
		Window:       -1,
		SlopePenalty: 0,
		ReturnPath:   false,
		MemoryMode:   FullMatrix,
	}
}

// Coord pairs frame I of the first series with frame J of the second.
// Indices refer to rows of the original inputs, occluded rows included.
type Coord struct {
	I, J int
}
