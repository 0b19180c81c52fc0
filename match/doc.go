// SPDX-License-Identifier: MIT

// Package match solves the seeded graph-matching problem: given two
// networks' adjacency matrices A and B and an optional set of known
// node correspondences (seeds), find the permutation P approximately
// minimizing the number of disagreeing edges ‖A − PBPᵗ‖²_F.
//
// 🚀 What is match?
//
//	Graph matching is an instance of the quadratic assignment problem
//	(QAP), which is NP-hard. This package implements the FAQ / SGM
//	approach: relax the permutation constraint to the Birkhoff
//	polytope of doubly stochastic matrices, run Frank–Wolfe descent
//	on the relaxed quadratic objective (each descent direction is one
//	linear assignment solve), then project the final fractional
//	solution back to an exact permutation.
//
// ✨ Key features:
//   - seeds: known pairs are pinned before optimization begins and are
//     always fixed points of the returned permutation
//   - restarts: independent initializations with per-restart RNG
//     streams; best result selected by true objective, ties broken by
//     lowest restart index
//   - deterministic: explicit seed, no time-based randomness; the same
//     configuration always returns the same result
//   - non-convergence is metadata, never an error: within the
//     iteration budget the solver returns its best iterate and reports
//     Converged=false
//
// ⚙️ Usage:
//
//	import (
//	    "gonum.org/v1/gonum/mat"
//	    "github.com/katalvlaran/qmatch/match"
//	)
//
//	res, err := match.Match(a, b, []match.Seed{{A: 3, B: 17}},
//	    match.WithRestarts(5),
//	    match.WithSeed(42),
//	)
//	if err != nil {
//	    // invalid input: see sentinel errors in types.go
//	}
//	fmt.Println(res.Perm, res.Objective, res.Converged)
//
// Matrices of unequal order are zero-padded internally; rows of the
// first network that land on padding are reported as -1 in Perm. When
// both networks have the same order, Perm is always a true bijection.
//
// Scoring helpers Objective and MatchRatio evaluate a permutation
// against the disagreement objective and a known ground truth.
package match
