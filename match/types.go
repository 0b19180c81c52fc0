// SPDX-License-Identifier: MIT

// Package match: sentinel error set and public value types.
//
// All validation failures surface as the sentinels below, before any
// numeric work begins; callers match them via errors.Is. Algorithmic
// termination (hitting the iteration budget, the time limit) is NEVER
// an error — it is reported on Result.
package match

import "errors"

// ERROR PRIORITY (enforced in tests):
// nil matrix → non-square → NaN/Inf → seed bounds → seed duplicates.

var (
	// ErrNilMatrix indicates a nil adjacency matrix argument.
	ErrNilMatrix = errors.New("match: nil adjacency matrix")

	// ErrNonSquare indicates an adjacency matrix that is not square.
	ErrNonSquare = errors.New("match: adjacency matrix is not square")

	// ErrNaNInf indicates a NaN or ±Inf adjacency entry; all entries
	// must be finite.
	ErrNaNInf = errors.New("match: NaN or Inf adjacency entry")

	// ErrSeedOutOfRange indicates a seed index outside its matrix bounds.
	ErrSeedOutOfRange = errors.New("match: seed index out of range")

	// ErrSeedDuplicate indicates a seed set that is not injective: some
	// node of A or of B appears in more than one pair.
	ErrSeedDuplicate = errors.New("match: duplicate seed index")

	// ErrPermLength indicates a permutation slice whose length does not
	// match the matrix order (scoring helpers).
	ErrPermLength = errors.New("match: permutation length mismatch")

	// ErrPermInvalid indicates a slice that is not a bijection on
	// {0..n-1} (scoring helpers).
	ErrPermInvalid = errors.New("match: not a valid permutation")
)

// Seed pins node A of the first network to node B of the second.
// Seeds are fixed points of the returned permutation: Perm[A] == B.
type Seed struct {
	A int
	B int
}

// Init selects the starting point of each Frank–Wolfe restart.
//
//   - Barycenter  — the flat matrix J/m, the center of the Birkhoff
//     polytope. Deterministic; restarts beyond the first fall back to
//     Randomized (identical barycenter restarts would be wasted work).
//   - Randomized  — (J/m + K)/2 where K is a random permutation matrix
//     drawn from the restart's RNG stream.
type Init int

const (
	// Barycenter starts from the flat doubly stochastic matrix J/m.
	Barycenter Init = iota

	// Randomized starts from the barycenter averaged with a random
	// permutation matrix.
	Randomized
)

// Result is the outcome of Match: an immutable value, created once and
// never mutated by the library afterwards.
type Result struct {
	// Perm maps node i of the first network to node Perm[i] of the
	// second. Length equals the first network's original order; entries
	// mapping to padding (possible only when the networks had unequal
	// order) are -1.
	Perm []int

	// Objective is the achieved disagreement count Σ(A − PBPᵗ)²,
	// evaluated on the padded common order.
	Objective float64

	// Iterations is the number of Frank–Wolfe iterations consumed by
	// the winning restart.
	Iterations int

	// Converged reports whether the winning restart met the tolerance
	// before exhausting its iteration budget (or time limit).
	Converged bool

	// Restarts is the number of restarts actually executed.
	Restarts int
}
