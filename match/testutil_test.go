// Package match_test provides lightweight helpers shared across the
// *_test.go files in this package: deterministic graph-pair generators
// (Erdős–Rényi and stochastic-block-model pairs with edge correlation)
// and permutation utilities. Generators live here, test-only, on
// purpose: network simulation is not part of the public surface.
package match_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// testSeed is the deterministic seed shared by RNG-based tests.
const testSeed = int64(42)

// denseFrom builds an undirected binary adjacency matrix from an edge list.
func denseFrom(n int, edges [][2]int) *mat.Dense {
	a := mat.NewDense(n, n, nil)
	for _, e := range edges {
		a.Set(e[0], e[1], 1)
		a.Set(e[1], e[0], 1)
	}

	return a
}

// twoTriangles is the 6-node graph with triangles {0,1,2} and {3,4,5}
// fully connected internally and no cross edges.
func twoTriangles() *mat.Dense {
	return denseFrom(6, [][2]int{{0, 1}, {0, 2}, {1, 2}, {3, 4}, {3, 5}, {4, 5}})
}

// erGraph samples an undirected Erdős–Rényi graph with edge probability p.
func erGraph(rng *rand.Rand, n int, p float64) *mat.Dense {
	a := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if rng.Float64() < p {
				a.Set(i, j, 1)
				a.Set(j, i, 1)
			}
		}
	}

	return a
}

// corrER samples a ρ-correlated Erdős–Rényi pair: aligned node v of A
// corresponds to node v of B.
func corrER(rng *rand.Rand, n int, p, rho float64) (*mat.Dense, *mat.Dense) {
	a := mat.NewDense(n, n, nil)
	b := mat.NewDense(n, n, nil)
	fillCorr(rng, a, b, func(int, int) float64 { return p }, rho)

	return a, b
}

// corrSBM samples a ρ-correlated stochastic-block-model pair with the
// given block sizes and block edge probabilities.
func corrSBM(rng *rand.Rand, sizes []int, probs [][]float64, rho float64) (*mat.Dense, *mat.Dense) {
	n := 0
	block := make([]int, 0)
	for bi, sz := range sizes {
		for k := 0; k < sz; k++ {
			block = append(block, bi)
		}
		n += sz
	}

	a := mat.NewDense(n, n, nil)
	b := mat.NewDense(n, n, nil)
	fillCorr(rng, a, b, func(i, j int) float64 { return probs[block[i]][block[j]] }, rho)

	return a, b
}

// fillCorr draws each undirected pair once: A ~ Bern(p), then B given A
// with P(B=1|A=1) = p + ρ(1−p) and P(B=1|A=0) = p(1−ρ), which yields
// marginal Bern(p) for B and edge correlation ρ.
func fillCorr(rng *rand.Rand, a, b *mat.Dense, prob func(i, j int) float64, rho float64) {
	n, _ := a.Dims()
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			p := prob(i, j)
			av := 0.0
			if rng.Float64() < p {
				av = 1
			}
			cond := p * (1 - rho)
			if av == 1 {
				cond = p + rho*(1-p)
			}
			bv := 0.0
			if rng.Float64() < cond {
				bv = 1
			}
			a.Set(i, j, av)
			a.Set(j, i, av)
			b.Set(i, j, bv)
			b.Set(j, i, bv)
		}
	}
}

// shuffled relabels b by sigma: out[i][j] = b[sigma[i]][sigma[j]].
func shuffled(b *mat.Dense, sigma []int) *mat.Dense {
	n := len(sigma)
	out := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			out.Set(i, j, b.At(sigma[i], sigma[j]))
		}
	}

	return out
}

// inverse returns the inverse permutation: inv[p[i]] = i.
//
// For bShuffled = shuffled(b, sigma), the ground-truth correspondence
// from aligned node v of A to its position in bShuffled is inverse(sigma).
func inverse(p []int) []int {
	inv := make([]int, len(p))
	for i, v := range p {
		inv[v] = i
	}

	return inv
}

// requirePermutation fails unless perm is a bijection on {0..n-1}.
func requirePermutation(t *testing.T, perm []int, n int) {
	t.Helper()
	require.Len(t, perm, n)
	seen := make([]bool, n)
	for _, j := range perm {
		require.GreaterOrEqual(t, j, 0)
		require.Less(t, j, n)
		require.False(t, seen[j], "index %d mapped twice", j)
		seen[j] = true
	}
}
