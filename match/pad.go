// SPDX-License-Identifier: MIT

package match

import "gonum.org/v1/gonum/mat"

// padDense copies a into a fresh n×n dense matrix, zero-padding the
// extra rows and columns. Dummy nodes carry no edges, so padding never
// changes the objective of a permutation that maps real nodes to real
// nodes. The input is left untouched.
//
// Complexity: O(n²) time and space.
func padDense(a mat.Matrix, n int) *mat.Dense {
	out := mat.NewDense(n, n, nil)
	r, c := a.Dims()

	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			out.Set(i, j, a.At(i, j))
		}
	}

	return out
}

// reorder returns a copy of the n×n matrix a with rows and columns
// permuted by ord: out[i][j] = a[ord[i]][ord[j]]. Used to move seeded
// nodes to the leading block before partitioning.
//
// Complexity: O(n²) time and space.
func reorder(a *mat.Dense, ord []int) *mat.Dense {
	n := len(ord)
	out := mat.NewDense(n, n, nil)

	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			out.Set(i, j, a.At(ord[i], ord[j]))
		}
	}

	return out
}
