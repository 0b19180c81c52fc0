// SPDX-License-Identifier: MIT

package match

// Test-Bridge (White-Box) for Private Solver Internals
//
// Purpose:
//   - Expose the per-iteration relaxed objective trajectory to match_test
//     ONLY, so the "relaxed objective is non-increasing" property can be
//     asserted without widening the production API.
//
// Build Policy:
//   - The _test.go suffix keeps this file out of production builds while
//     granting access to package privates.
//
// Behavior & Determinism:
//   - Pure pass-through to prepare + fwProblem.solve; deterministic for a
//     fixed seed.

import (
	"time"

	"gonum.org/v1/gonum/mat"
)

// RelaxedTrajectoryForTest runs a single restart with the early stop
// disabled and returns the relaxed objective recorded after the initial
// point and after every Frank–Wolfe update.
func RelaxedTrajectoryForTest(a, b mat.Matrix, seeds []Seed, randomize bool, seed int64, maxIter int) ([]float64, error) {
	ps, err := prepare(a, b, seeds)
	if err != nil {
		return nil, err
	}
	if ps.pr == nil {
		// Fully seeded: no free block, no trajectory.
		return nil, nil
	}

	out, err := ps.pr.solve(restartRNG(seed, 0), randomize, maxIter, 0, time.Time{})
	if err != nil {
		return nil, err
	}

	return out.relaxed, nil
}
