package jacobi

import (
	"math/rand"
	"testing"
)

func BenchmarkSolve(b *testing.B) {
	b.Run("n=10", benchSolveN(10))
	b.Run("n=100", benchSolveN(100))
	b.Run("n=500", benchSolveN(500))
}

func benchSolveN(n int) func(b *testing.B) {
	return func(b *testing.B) {
		rng := rand.New(rand.NewSource(17))
		A, rhs := randDominant(n, rng)

		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			if _, err := Solve(A, rhs, 1e-8); err != nil {
				b.Error(err)
			}
		}
	}
}
