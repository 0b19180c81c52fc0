// Package assign solves the linear assignment problem (LAP): given an
// n×n cost matrix C, find the permutation p minimizing Σ C[i, p(i)].
//
// 🚀 What is assign?
//
//	An exact O(n³) solver built on the Jonker–Volgenant potentials
//	variant of the Kuhn–Munkres (Hungarian) algorithm. It is the
//	combinatorial primitive behind the match package: every
//	Frank–Wolfe descent direction and every final discretization is
//	one LAP solve.
//
// ✨ Key features:
//   - exact optimum, never approximate
//   - WithMaximize flips the objective (maximize total value)
//   - WithFixed forces chosen row→column pairs; the solver optimizes
//     the remaining sub-block and splices the forced pairs back in
//   - pure function of its inputs; safe for concurrent use
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/qmatch/assign"
//
//	perm, total, err := assign.Solve(cost)
//	if err != nil {
//	  // ErrNilMatrix / ErrBadShape / ErrNonSquare / ErrNaNInf / ErrInfeasible
//	}
//	// perm[i] is the column assigned to row i; total is Σ cost[i][perm[i]].
//
// Costs must be finite: NaN and ±Inf entries are rejected up front.
// To forbid a pairing, give it a cost larger than any optimal total
// could reach, rather than +Inf.
package assign
