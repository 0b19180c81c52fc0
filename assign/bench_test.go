package assign_test

import (
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/qmatch/assign"
)

// benchmarkSolve runs Solve on a deterministic random n×n instance.
func benchmarkSolve(b *testing.B, n int) {
	rng := rand.New(rand.NewSource(1))
	data := make([]float64, n*n)
	for i := range data {
		data[i] = rng.Float64()
	}
	cost := mat.NewDense(n, n, data)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, err := assign.Solve(cost)
		if err != nil {
			b.Fatalf("Solve failed: %v", err)
		}
	}
}

// BenchmarkSolve_50 benchmarks a 50×50 instance.
func BenchmarkSolve_50(b *testing.B) { benchmarkSolve(b, 50) }

// BenchmarkSolve_200 benchmarks a 200×200 instance.
func BenchmarkSolve_200(b *testing.B) { benchmarkSolve(b, 200) }

// BenchmarkSolve_500 benchmarks a 500×500 instance.
func BenchmarkSolve_500(b *testing.B) { benchmarkSolve(b, 500) }
