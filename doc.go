// Package qmatch aligns the nodes of two networks: given two adjacency
// matrices and (optionally) a handful of known correspondences, it finds
// a node permutation that makes the networks agree on as many edges as
// possible.
//
// 🚀 What is qmatch?
//
//	A seeded graph-matching library built around the Frank–Wolfe
//	relaxation of the quadratic assignment problem (the FAQ / SGM
//	family of algorithms):
//	  • assign/ — exact O(n³) linear assignment (Jonker–Volgenant),
//	    with forced-pair support
//	  • match/  — doubly-stochastic relaxation, seeds, restarts,
//	    discretization and scoring
//
// ✨ Why choose qmatch?
//
//   - Deterministic – explicit seeds, reproducible restarts, no
//     time-based randomness anywhere
//   - Strict sentinels – every user-facing failure is a package-level
//     error matched via errors.Is
//   - Pure functions – no fit/transform state; results are immutable
//     values and restarts parallelize trivially
//
// Quick start:
//
//	res, err := match.Match(a, b, []match.Seed{{A: 0, B: 4}},
//	    match.WithRestarts(5), match.WithSeed(42))
//	if err != nil {
//	    // handle validation error
//	}
//	fmt.Println(res.Perm, res.Objective)
//
// Matrices are consumed through gonum's mat.Matrix interface; build
// them with mat.NewDense (or any type satisfying the interface).
package qmatch
