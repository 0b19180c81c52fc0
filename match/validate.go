// SPDX-License-Identifier: MIT

// Package match - validation utilities shared by Match and the scoring
// helpers.
//
// Design principles:
//   - Deterministic, side-effect free functions.
//   - No logging, no panics on user input - only sentinel errors from types.go.
//   - All validation happens BEFORE any numeric work; a failing input
//     never triggers partial computation.
package match

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// validateAdjacency verifies one adjacency matrix: non-nil, square,
// n ≥ 1, every entry finite. Returns the matrix order on success.
//
// Complexity: O(n²).
func validateAdjacency(a mat.Matrix) (int, error) {
	// Stage 1: shape.
	if a == nil {
		return 0, ErrNilMatrix
	}
	r, c := a.Dims()
	if r != c || r <= 0 {
		return 0, ErrNonSquare
	}

	// Stage 2: numeric policy - finite entries only, no NaN.
	var (
		i, j int
		v    float64
	)
	for i = 0; i < r; i++ {
		for j = 0; j < r; j++ {
			v = a.At(i, j)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return 0, ErrNaNInf
			}
		}
	}

	return r, nil
}

// validateSeeds enforces bounds and injectivity on both sides of the
// seed set. nA and nB are the ORIGINAL (unpadded) matrix orders, so a
// seed can never reference a dummy node.
//
// Complexity: O(nA + nB + k) for k seeds.
func validateSeeds(seeds []Seed, nA, nB int) error {
	var (
		seenA = make([]bool, nA)
		seenB = make([]bool, nB)
	)
	for _, s := range seeds {
		if s.A < 0 || s.A >= nA || s.B < 0 || s.B >= nB {
			return ErrSeedOutOfRange
		}
		if seenA[s.A] || seenB[s.B] {
			return ErrSeedDuplicate
		}
		seenA[s.A] = true
		seenB[s.B] = true
	}

	return nil
}

// validatePermutation verifies that perm is a bijection on {0..n-1}.
//
// Complexity: O(n) time, O(n) space.
func validatePermutation(perm []int, n int) error {
	if len(perm) != n {
		return ErrPermLength
	}
	seen := make([]bool, n)
	for _, j := range perm {
		if j < 0 || j >= n || seen[j] {
			return ErrPermInvalid
		}
		seen[j] = true
	}

	return nil
}
