// SPDX-License-Identifier: MIT

// Package match - scoring utilities: the disagreement objective and the
// match ratio against a known ground truth.
package match

import "gonum.org/v1/gonum/mat"

// Objective computes the graph-matching objective of perm: the sum of
// squared adjacency disagreements Σᵢⱼ (A[i][j] − B[perm[i]][perm[j]])².
// For binary undirected adjacency matrices this counts disagreeing
// entries (each undirected edge contributes twice).
//
// Contracts:
//   - a and b must be square, finite, and of equal order n.
//   - perm must be a bijection on {0..n-1}.
//
// Complexity: O(n²).
func Objective(a, b mat.Matrix, perm []int) (float64, error) {
	nA, err := validateAdjacency(a)
	if err != nil {
		return 0, err
	}
	nB, err := validateAdjacency(b)
	if err != nil {
		return 0, err
	}
	if nA != nB {
		return 0, ErrPermLength
	}
	if err = validatePermutation(perm, nA); err != nil {
		return 0, err
	}

	return objective(a, b, perm), nil
}

// MatchRatio returns the fraction of indices where perm agrees with the
// ground-truth permutation truth. Entries of -1 in perm (stripped dummy
// mappings) never count as agreements.
//
// Complexity: O(n).
func MatchRatio(perm, truth []int) (float64, error) {
	if len(perm) == 0 || len(perm) != len(truth) {
		return 0, ErrPermLength
	}

	hits := 0
	for i := range perm {
		if perm[i] >= 0 && perm[i] == truth[i] {
			hits++
		}
	}

	return float64(hits) / float64(len(perm)), nil
}

// objective is the unvalidated kernel shared with the orchestrator.
func objective(a, b mat.Matrix, perm []int) float64 {
	n := len(perm)

	var (
		i, j int
		d    float64
		sum  float64
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			d = a.At(i, j) - b.At(perm[i], perm[j])
			sum += d * d
		}
	}

	return sum
}

// objectiveDense is the padded-space fast path used per restart.
func objectiveDense(a, b *mat.Dense, perm []int) float64 {
	return objective(a, b, perm)
}
