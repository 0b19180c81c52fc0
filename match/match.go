// SPDX-License-Identifier: MIT

// Package match - orchestration: validation, padding, seeds-first
// partition, restarts, discretization and best-result selection.
package match

import (
	"sort"
	"time"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/qmatch/assign"
)

// problemSetup is the validated, padded and partitioned instance shared
// read-only by every restart.
type problemSetup struct {
	nA, nB int // original orders
	n, s   int // padded order, seed count

	padA, padB   *mat.Dense // padded matrices in original node order
	permA, permB []int      // seeds-first node orders (solver → original)
	pr           *fwProblem // nil iff every node is seeded (n == s)
}

// Match computes a node correspondence between the two networks that
// approximately minimizes the edge disagreement ‖A − PBPᵗ‖², holding
// every seed pair fixed.
//
// Contracts:
//   - a and b must be square with finite entries; unequal orders are
//     zero-padded to the larger one.
//   - seeds must be in bounds of the ORIGINAL orders and injective on
//     both sides; violations surface before any numeric work.
//   - The same inputs and options always produce the same Result,
//     regardless of WithWorkers.
//
// Errors: sentinels from types.go only. Non-convergence and time-limit
// expiry are reported via Result metadata, never as errors.
//
// Complexity: O(restarts · maxIter · n³) time, O(n²) space per worker.
func Match(a, b mat.Matrix, seeds []Seed, opts ...Option) (Result, error) {
	o := gatherOptions(opts...)

	// Stage 1: validation, then setup (padding + seeds-first partition).
	ps, err := prepare(a, b, seeds)
	if err != nil {
		return Result{}, err
	}

	// Stage 2: fully seeded instance — the permutation is already fixed.
	if ps.pr == nil {
		full := make([]int, ps.n)
		for k := range ps.permA {
			full[ps.permA[k]] = ps.permB[k]
		}

		return Result{
			Perm:      ps.strip(full),
			Objective: objectiveDense(ps.padA, ps.padB, full),
			Converged: true,
		}, nil
	}

	var deadline time.Time
	if o.timeLimit > 0 {
		deadline = time.Now().Add(o.timeLimit)
	}

	// Stage 3: independent restarts, bounded by WithWorkers. Outcomes
	// land in a restart-indexed slice: no shared mutable state, and the
	// reduction below never depends on completion order.
	type outcome struct {
		perm      []int
		obj       float64
		iters     int
		converged bool
	}
	outs := make([]outcome, o.restarts)

	var g errgroup.Group
	g.SetLimit(o.workers)
	for idx := 0; idx < o.restarts; idx++ {
		r := idx
		g.Go(func() error {
			rng := restartRNG(o.seed, r)
			randomize := o.init == Randomized || r > 0

			fw, ferr := ps.pr.solve(rng, randomize, o.maxIter, o.tol, deadline)
			if ferr != nil {
				return ferr
			}

			// Discretize: maximize the assigned mass of the last iterate.
			cols, _, aerr := assign.Solve(fw.p, assign.WithMaximize())
			if aerr != nil {
				return aerr
			}

			full := ps.splice(cols)
			outs[r] = outcome{
				perm:      full,
				obj:       objectiveDense(ps.padA, ps.padB, full),
				iters:     fw.iterations,
				converged: fw.converged,
			}

			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return Result{}, err
	}

	// Stage 4: deterministic selection — minimum objective, ties broken
	// by the lowest restart index.
	best := 0
	for r := 1; r < o.restarts; r++ {
		if outs[r].obj < outs[best].obj {
			best = r
		}
	}

	return Result{
		Perm:       ps.strip(outs[best].perm),
		Objective:  outs[best].obj,
		Iterations: outs[best].iters,
		Converged:  outs[best].converged,
		Restarts:   o.restarts,
	}, nil
}

// prepare validates all inputs, pads to a common order, reorders seeds
// first on both sides and partitions the problem.
func prepare(a, b mat.Matrix, seeds []Seed) (*problemSetup, error) {
	nA, err := validateAdjacency(a)
	if err != nil {
		return nil, err
	}
	nB, err := validateAdjacency(b)
	if err != nil {
		return nil, err
	}
	if err = validateSeeds(seeds, nA, nB); err != nil {
		return nil, err
	}

	n := nA
	if nB > n {
		n = nB
	}

	ps := &problemSetup{
		nA:   nA,
		nB:   nB,
		n:    n,
		s:    len(seeds),
		padA: padDense(a, n),
		padB: padDense(b, n),
	}

	// Canonical seed order (ascending A index) makes the partition
	// independent of how the caller listed the pairs.
	sorted := append([]Seed(nil), seeds...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].A < sorted[j].A })

	ps.permA = seedsFirstOrder(n, sorted, func(s Seed) int { return s.A })
	ps.permB = seedsFirstOrder(n, sorted, func(s Seed) int { return s.B })

	if ps.s < n {
		ps.pr = newFWProblem(reorder(ps.padA, ps.permA), reorder(ps.padB, ps.permB), ps.s)
	}

	return ps, nil
}

// seedsFirstOrder builds a node order with the seeded indices leading
// (in sorted seed order) followed by the remaining indices ascending.
func seedsFirstOrder(n int, sorted []Seed, pick func(Seed) int) []int {
	var (
		ord  = make([]int, 0, n)
		used = make([]bool, n)
	)
	for _, sd := range sorted {
		ord = append(ord, pick(sd))
		used[pick(sd)] = true
	}
	for i := 0; i < n; i++ {
		if !used[i] {
			ord = append(ord, i)
		}
	}

	return ord
}

// splice converts a free-block assignment (cols[k] = free column of
// free row k) into a full padded-order permutation over the ORIGINAL
// node labels, with the seeds as fixed points.
func (ps *problemSetup) splice(cols []int) []int {
	full := make([]int, ps.n)
	for k := 0; k < ps.s; k++ {
		full[ps.permA[k]] = ps.permB[k]
	}
	for k, c := range cols {
		full[ps.permA[ps.s+k]] = ps.permB[ps.s+c]
	}

	return full
}

// strip trims the padded permutation to the first network's original
// order and replaces mappings onto B-side padding with -1. Whenever the
// inputs had equal order this is the identity transformation and the
// result is a true bijection.
func (ps *problemSetup) strip(full []int) []int {
	out := make([]int, ps.nA)
	copy(out, full[:ps.nA])
	for i, j := range out {
		if j >= ps.nB {
			out[i] = -1
		}
	}

	return out
}
