// Package matrix_test provides benchmarks for core matrix operations,
// using deterministic random fill.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/flatmat/matrix"
)

// benchSizes are the square matrix sizes to benchmark.
var benchSizes = []int{64, 128, 256}

// sinks to defeat dead-code elimination
var (
	sinkM matrix.Matrix[float64]
	sinkS []float64
)

func BenchmarkDot(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := randomMatrix(n, n, 1337)
			B := randomMatrix(n, n, 4242)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Dot(A, B)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkTranspose(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := randomMatrix(n, n, 11)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkM = matrix.Transpose(A)
			}
		})
	}
}

func BenchmarkMap(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := randomMatrix(n, n, 22)
			square := func(v float64) float64 { return v * v }
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkM = matrix.Map(square, A)
			}
		})
	}
}

func BenchmarkFlat(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := randomMatrix(n, n, 33)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkS = matrix.Flat(A)
			}
		})
	}
}
