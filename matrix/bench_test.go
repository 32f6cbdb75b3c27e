// Package matrix_test provides benchmarks for the dense kernels,
// using deterministic random fill.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/tropical/matrix"
	"github.com/katalvlaran/tropical/semiring"
)

// benchSizes are the matrix sizes to benchmark.
var benchSizes = []int{64, 128, 256}

// sinks to defeat dead-code elimination
var (
	sinkM *matrix.Dense
	sinkV []semiring.Value
)

func benchBackends() []matrix.Backend {
	return []matrix.Backend{matrix.Scalar(), matrix.Parallel(0, 0)}
}

func BenchmarkMul(b *testing.B) {
	b.ReportAllocs()
	for _, be := range benchBackends() {
		for _, n := range benchSizes {
			b.Run(fmt.Sprintf("%s/n=%d", be.Name(), n), func(b *testing.B) {
				A := randomDense(b, n, n, semiring.MaxPlus, 1337)
				B := randomDense(b, n, n, semiring.MaxPlus, 4242)
				opt := matrix.WithBackend(be)
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					m, err := matrix.Mul(A, B, semiring.MaxPlus, opt)
					if err != nil {
						b.Fatal(err)
					}
					sinkM = m
				}
			})
		}
	}
}

func BenchmarkClosure(b *testing.B) {
	b.ReportAllocs()
	for _, be := range benchBackends() {
		for _, n := range benchSizes {
			b.Run(fmt.Sprintf("%s/n=%d", be.Name(), n), func(b *testing.B) {
				A := randomDense(b, n, n, semiring.MinPlus, 7)
				opt := matrix.WithBackend(be)
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					m, err := matrix.Closure(A, semiring.MinPlus, opt)
					if err != nil {
						b.Fatal(err)
					}
					sinkM = m
				}
			})
		}
	}
}

func BenchmarkMatVec(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := randomDense(b, n, n, semiring.MaxPlus, 99)
			x := randomVector(n, semiring.MaxPlus, 100)
			y := make([]semiring.Value, n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if err := matrix.MatVec(A, x, y, semiring.MaxPlus); err != nil {
					b.Fatal(err)
				}
			}
			sinkV = y
		})
	}
}
