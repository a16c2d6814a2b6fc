// SPDX-License-Identifier: MIT

package dtw

import (
	"errors"
	"math"

	"github.com/katalvlaran/motion/array"
)

var (
	// ErrEmptyInput indicates a nil series or one without any valid row.
	ErrEmptyInput = errors.New("dtw: input series must have valid samples")

	// ErrBadInput indicates invalid options (Window < -1, negative or NaN penalty).
	ErrBadInput = errors.New("dtw: invalid options")

	// ErrPathNeedsMatrix indicates ReturnPath without FullMatrix memory.
	ErrPathNeedsMatrix = errors.New("dtw: ReturnPath requires MemoryMode=FullMatrix")
)

// Align computes the DTW distance between the valid rows of a and b.
//
// Algorithm:
//  1. Compact each input to its valid rows (residual >= 0); n, m = counts.
//  2. D[0][0] = 0, D[i][0] = D[0][j] = +Inf.
//  3. For each (i, j) inside the window:
//     D[i][j] = ‖a_i − b_j‖ + min(D[i−1][j] + p, D[i][j−1] + p, D[i−1][j−1]).
//  4. distance = D[n][m]; +Inf when the window admits no path.
//  5. With ReturnPath, backtrack from (n, m) preferring the diagonal on ties
//     and map compacted indices back to frame indices.
//
// Errors: ErrEmptyInput, ErrBadInput, ErrPathNeedsMatrix.
// Complexity: O(n·m·C) time; O(n·m) or O(m) memory.
func Align[C array.Width](a, b array.Xpr[C], opts *Options) (distance float64, path []Coord, err error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if o.Window < -1 || o.SlopePenalty < 0 || math.IsNaN(o.SlopePenalty) {
		return 0, nil, ErrBadInput
	}
	if o.ReturnPath && o.MemoryMode != FullMatrix {
		return 0, nil, ErrPathNeedsMatrix
	}
	if a == nil || b == nil {
		return 0, nil, ErrEmptyInput
	}
	ia, ib := validRows(a), validRows(b)
	n, m := len(ia), len(ib)
	if n == 0 || m == 0 {
		return 0, nil, ErrEmptyInput
	}

	// FullMatrix keeps n+1 rows; TwoRows reuses rows i%2.
	rows := 2
	if o.MemoryMode == FullMatrix {
		rows = n + 1
	}
	dp := make([][]float64, rows)
	for i := range dp {
		dp[i] = make([]float64, m+1)
	}
	inf := math.Inf(1)
	for j := 1; j <= m; j++ {
		dp[0][j] = inf
	}

	p := o.SlopePenalty
	for i := 1; i <= n; i++ {
		curr, prev := dp[i%rows], dp[(i-1)%rows]
		curr[0] = inf
		ra := a.Row(ia[i-1])
		for j := 1; j <= m; j++ {
			if o.Window >= 0 && abs(i-j) > o.Window {
				curr[j] = inf
				continue
			}
			curr[j] = rowDistance(ra, b.Row(ib[j-1])) + min(prev[j]+p, curr[j-1]+p, prev[j-1])
		}
	}
	distance = dp[n%rows][m]

	if o.ReturnPath && !math.IsInf(distance, 1) {
		path = backtrack(dp, p, ia, ib)
	}

	return distance, path, nil
}

// validRows lists the indices of rows whose residual is non-negative.
func validRows(x array.Data) []int {
	idx := make([]int, 0, x.Rows())
	for i := 0; i < x.Rows(); i++ {
		if x.Residual(i) >= 0 {
			idx = append(idx, i)
		}
	}

	return idx
}

// rowDistance returns the Euclidean distance between two equal-length rows.
func rowDistance(x, y []float64) float64 {
	if len(x) == 1 {
		return math.Abs(x[0] - y[0])
	}
	var s float64
	for k := range x {
		d := x[k] - y[k]
		s += d * d
	}

	return math.Sqrt(s)
}

// backtrack walks the full DP matrix from (n, m) to (1, 1).
func backtrack(dp [][]float64, penalty float64, ia, ib []int) []Coord {
	i, j := len(ia), len(ib)
	path := make([]Coord, 0, i+j)
	for {
		path = append(path, Coord{I: ia[i-1], J: ib[j-1]})
		if i == 1 && j == 1 {
			break
		}
		bi, bj := i-1, j-1
		best := math.Inf(1)
		if i > 1 && j > 1 {
			best = dp[i-1][j-1]
		}
		if i > 1 && dp[i-1][j]+penalty < best {
			best, bi, bj = dp[i-1][j]+penalty, i-1, j
		}
		if j > 1 && dp[i][j-1]+penalty < best {
			bi, bj = i, j-1
		}
		i, j = bi, bj
	}
	for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
		path[l], path[r] = path[r], path[l]
	}

	return path
}

// abs returns the absolute value of an int.
func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
