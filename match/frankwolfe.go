// SPDX-License-Identifier: MIT

// Package match - Frank–Wolfe descent on the relaxed QAP objective.
//
// The solver works on the seeds-first partition of the (padded) inputs
//
//	A = | A11 A12 |    B = | B11 B12 |
//	    | A21 A22 |        | B21 B22 |
//
// with the s seeded nodes in the leading block. Seeded rows/columns are
// pinned, so optimization runs over the m×m doubly stochastic matrix P
// of the free block only. Internally the solver MAXIMIZES the edge
// agreement
//
//	T(P) = ⟨A11,B11⟩ + ⟨P, A21·B21ᵗ + A12ᵗ·B12⟩ + ⟨A22, P·B22·Pᵗ⟩,
//
// which at any permutation equals minimizing the disagreement
// ‖A − PBPᵗ‖² = ‖A‖² + ‖B‖² − 2·T(P). The relaxed objective recorded
// per iteration uses the disagreement form, so exact line search makes
// it non-increasing by construction.
package match

import (
	"math"
	"math/rand"
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/qmatch/assign"
)

// fwProblem is the read-only partitioned problem shared by all
// restarts. Fields are never mutated after newFWProblem returns, so
// concurrent solve calls need no synchronization.
type fwProblem struct {
	s int // seeded block order
	m int // free block order, m ≥ 1

	a22, b22 *mat.Dense // free-block adjacency (compact copies)
	constSum *mat.Dense // A21·B21ᵗ + A12ᵗ·B12, the seed cross-term of the gradient
	seedDot  float64    // ⟨A11,B11⟩, constant agreement of the seeded block
	sqSum    float64    // ‖A‖²_F + ‖B‖²_F of the full padded matrices
}

// fwOutcome is one restart's final state, handed to discretization.
type fwOutcome struct {
	p          *mat.Dense // last doubly stochastic iterate
	iterations int
	converged  bool
	relaxed    []float64 // relaxed objective after init and each update
}

// newFWProblem partitions the seeds-first reordered matrices a and b
// (order n, s seeded nodes leading, m = n−s ≥ 1 free nodes) and
// precomputes the gradient constants.
//
// Complexity: O(n²·s/m mix) — two m×s·s×m products; O(n²) space.
func newFWProblem(a, b *mat.Dense, s int) *fwProblem {
	n, _ := a.Dims()
	m := n - s

	pr := &fwProblem{
		s:        s,
		m:        m,
		a22:      mat.DenseCopyOf(a.Slice(s, n, s, n)),
		b22:      mat.DenseCopyOf(b.Slice(s, n, s, n)),
		constSum: mat.NewDense(m, m, nil),
		sqSum:    sqFrob(a) + sqFrob(b),
	}

	if s > 0 {
		var (
			a12 = a.Slice(0, s, s, n)
			a21 = a.Slice(s, n, 0, s)
			b12 = b.Slice(0, s, s, n)
			b21 = b.Slice(s, n, 0, s)

			t1, t2 mat.Dense
		)
		t1.Mul(a21, b21.T())
		t2.Mul(a12.T(), b12)
		pr.constSum.Add(&t1, &t2)

		pr.seedDot = frobDot(
			mat.DenseCopyOf(a.Slice(0, s, 0, s)),
			mat.DenseCopyOf(b.Slice(0, s, 0, s)),
		)
	}

	return pr
}

// solve runs one Frank–Wolfe restart from either the barycenter or a
// randomized starting point.
//
// Algorithm (one FAQ iteration):
//  1. ∇T(P) = constSum + A22·P·B22ᵗ + A22ᵗ·P·B22.
//  2. Direction Q = argmax ⟨∇T, Q⟩ over permutations — one LAP solve.
//  3. Exact step α ∈ [0,1] of the univariate quadratic T(P + α(Q−P)).
//  4. P ← P + α(Q−P); still doubly stochastic (convex combination).
//  5. Stop on ‖ΔP‖_F/√m < tol, the iteration budget, or the deadline.
//
// Non-convergence is not an error: the best (last) iterate is returned
// with converged=false.
//
// Complexity: O(iter·m³) time — a constant number of m×m products and
// one LAP per iteration; O(m²) space.
func (pr *fwProblem) solve(rng *rand.Rand, randomize bool, maxIter int, tol float64, deadline time.Time) (fwOutcome, error) {
	m := pr.m
	p := pr.initial(rng, randomize)

	out := fwOutcome{
		relaxed: make([]float64, 0, maxIter+1),
	}
	out.relaxed = append(out.relaxed, pr.sqSum-2*pr.agreement(p))

	var (
		grad, t1, t2   mat.Dense // gradient scratch
		r, rb, pb, t3  mat.Dense // step-size scratch
		next           mat.Dense
		alpha, a, b    float64
		crit, stepNorm float64
	)
	for t := 1; t <= maxIter; t++ {
		// Caller-supplied wall-clock budget: return the best iterate so far.
		if !deadline.IsZero() && !time.Now().Before(deadline) {
			break
		}

		// Gradient of the agreement at P (affine in P).
		t1.Mul(pr.a22, p)
		grad.Mul(&t1, pr.b22.T())
		t2.Mul(pr.a22.T(), p)
		t1.Mul(&t2, pr.b22)
		grad.Add(&grad, &t1)
		grad.Add(&grad, pr.constSum)

		// Direction: best permutation under the linearized objective.
		cols, _, err := assign.Solve(&grad, assign.WithMaximize())
		if err != nil {
			return fwOutcome{}, err
		}
		q := permMatrix(cols)

		// Closed-form step along R = Q − P:
		// T(P+αR) = T(P) + α·b + α²·a with
		//   a = ⟨A22, (R·B22)·Rᵗ⟩
		//   b = ⟨R, constSum⟩ + ⟨A22, (R·B22)·Pᵗ⟩ + ⟨A22, (P·B22)·Rᵗ⟩.
		r.Sub(q, p)
		rb.Mul(&r, pr.b22)
		pb.Mul(p, pr.b22)

		t3.Mul(&rb, r.T())
		a = frobDot(pr.a22, &t3)
		t3.Mul(&rb, p.T())
		b = frobDot(&r, pr.constSum) + frobDot(pr.a22, &t3)
		t3.Mul(&pb, r.T())
		b += frobDot(pr.a22, &t3)

		// Maximize aα² + bα over [0,1]; clamp to the best endpoint when
		// the critical point is not an interior maximum. Ties keep the
		// current iterate (α=0) for determinism.
		crit = math.NaN()
		if a != 0 {
			crit = -b / (2 * a)
		}
		switch {
		case a < 0 && crit >= 0 && crit <= 1:
			alpha = crit
		case a+b > 0:
			alpha = 1
		default:
			alpha = 0
		}

		// Update: Pₜ₊₁ = Pₜ + α(Q − Pₜ).
		next.Scale(alpha, &r)
		next.Add(&next, p)
		stepNorm = alpha * mat.Norm(&r, 2) / math.Sqrt(float64(m))
		p.Copy(&next)

		out.iterations = t
		out.relaxed = append(out.relaxed, pr.sqSum-2*pr.agreement(p))

		if tol > 0 && stepNorm < tol {
			out.converged = true

			break
		}
	}

	out.p = p

	return out, nil
}

// initial builds the starting doubly stochastic matrix: the barycenter
// J/m, or (J/m + K)/2 for a random permutation matrix K drawn from rng.
//
// Complexity: O(m²).
func (pr *fwProblem) initial(rng *rand.Rand, randomize bool) *mat.Dense {
	m := pr.m
	p := mat.NewDense(m, m, nil)

	base := 1.0 / float64(m)
	if randomize {
		base /= 2
	}
	var i, j int
	for i = 0; i < m; i++ {
		for j = 0; j < m; j++ {
			p.Set(i, j, base)
		}
	}
	if randomize {
		for i, j = range rng.Perm(m) {
			p.Set(i, j, p.At(i, j)+0.5)
		}
	}

	return p
}

// agreement evaluates T(P), the total edge agreement of the relaxed
// assignment (seeded block included).
//
// Complexity: O(m³) — two m×m products.
func (pr *fwProblem) agreement(p *mat.Dense) float64 {
	var pb, pbpt mat.Dense
	pb.Mul(p, pr.b22)
	pbpt.Mul(&pb, p.T())

	return pr.seedDot + frobDot(p, pr.constSum) + frobDot(pr.a22, &pbpt)
}

// permMatrix expands perm (row i → column perm[i]) into a dense 0/1
// permutation matrix.
func permMatrix(perm []int) *mat.Dense {
	n := len(perm)
	q := mat.NewDense(n, n, nil)
	for i, j := range perm {
		q.Set(i, j, 1)
	}

	return q
}

// frobDot is the Frobenius inner product ⟨X, Y⟩ = Σ X∘Y of two compact
// equally-shaped dense matrices.
func frobDot(x, y *mat.Dense) float64 {
	return floats.Dot(x.RawMatrix().Data, y.RawMatrix().Data)
}

// sqFrob is the squared Frobenius norm of a compact dense matrix.
func sqFrob(x *mat.Dense) float64 {
	d := x.RawMatrix().Data

	return floats.Dot(d, d)
}
