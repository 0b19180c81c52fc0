package assign

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Solve finds the permutation perm minimizing Σ cost[i][perm[i]]
// (maximizing under WithMaximize) and returns it together with the
// achieved total, exactly, in O(n³).
//
// Contracts:
//   - cost must be non-nil, square, n ≥ 1, all entries finite.
//   - WithFixed pairs must be in bounds and injective on both sides;
//     violations return ErrInfeasible before any solving.
//
// Error priority: nil → shape → square → NaN/Inf → fixed mask.
//
// Complexity: O(n³) time, O(n²) space (one working copy of the costs).
func Solve(cost mat.Matrix, opts ...Option) ([]int, float64, error) {
	// Stage 1: shape and value validation.
	if cost == nil {
		return nil, 0, ErrNilMatrix
	}
	r, cl := cost.Dims()
	if r <= 0 || cl <= 0 {
		return nil, 0, ErrBadShape
	}
	if r != cl {
		return nil, 0, ErrNonSquare
	}
	n := r

	var (
		i, j int
		v    float64
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			v = cost.At(i, j)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, 0, ErrNaNInf
			}
		}
	}

	// Stage 2: options and fixed-mask consistency.
	o := gatherOptions(opts...)
	fixedRow, fixedCol, err := resolveFixed(o.fixed, n)
	if err != nil {
		return nil, 0, err
	}

	// Stage 3: assemble the free sub-block in solver orientation.
	var (
		freeRows = make([]int, 0, n)
		freeCols = make([]int, 0, n)
	)
	for i = 0; i < n; i++ {
		if fixedRow[i] < 0 {
			freeRows = append(freeRows, i)
		}
		if fixedCol[i] < 0 {
			freeCols = append(freeCols, i)
		}
	}

	perm := make([]int, n)
	for i = 0; i < n; i++ {
		perm[i] = fixedRow[i] // forced pairs; -1 for free rows, filled below
	}

	if len(freeRows) > 0 {
		sub := make([][]float64, len(freeRows))
		for i = range freeRows {
			row := make([]float64, len(freeCols))
			for j = range freeCols {
				v = cost.At(freeRows[i], freeCols[j])
				if o.maximize {
					v = -v
				}
				row[j] = v
			}
			sub[i] = row
		}

		// Stage 4: exact LAP on the free block, then splice.
		rp := jvSolve(sub)
		for i = range freeRows {
			perm[freeRows[i]] = freeCols[rp[i]]
		}
	}

	// Stage 5: total in the caller's orientation.
	var total float64
	for i = 0; i < n; i++ {
		total += cost.At(i, perm[i])
	}

	return perm, total, nil
}

// resolveFixed validates the fixed mask and expands it into two
// injective lookup arrays: fixedRow[i] = forced column of row i (or -1)
// and fixedCol[j] = forced row of column j (or -1).
//
// Complexity: O(n + k) for k fixed pairs.
func resolveFixed(pairs [][2]int, n int) (fixedRow, fixedCol []int, err error) {
	fixedRow = make([]int, n)
	fixedCol = make([]int, n)
	for i := range fixedRow {
		fixedRow[i] = -1
		fixedCol[i] = -1
	}

	var row, col int
	for _, p := range pairs {
		row, col = p[0], p[1]
		if row < 0 || row >= n || col < 0 || col >= n {
			return nil, nil, ErrInfeasible
		}
		if fixedRow[row] >= 0 || fixedCol[col] >= 0 {
			return nil, nil, ErrInfeasible
		}
		fixedRow[row] = col
		fixedCol[col] = row
	}

	return fixedRow, fixedCol, nil
}
