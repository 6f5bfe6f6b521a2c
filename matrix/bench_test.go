// Package matrix_test: benchmarks over deterministic integer fixtures,
// covering both densely populated and band-sparse stores.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/matveil/tensor/matrix"
)

// benchSizes are the square shapes to benchmark.
var benchSizes = []int{32, 64, 128}

// sinks to defeat dead-code elimination
var (
	sinkM *matrix.Matrix[int]
	sinkS string
	sinkI int
)

func BenchmarkProduct(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("dense_n=%d", n), func(b *testing.B) {
			A := benchSequential(b, n)
			B := benchSequential(b, n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Product(A, B)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
		b.Run(fmt.Sprintf("banded_n=%d", n), func(b *testing.B) {
			A := benchBanded(b, n, 2)
			B := benchBanded(b, n, 2)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Product(A, B)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkPower(b *testing.B) {
	b.ReportAllocs()
	const exponent = 8
	for _, n := range []int{16, 32} { // kept small, each step is a full product
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := benchBanded(b, n, 1)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Power(A, exponent)
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
		b.Run(fmt.Sprintf("dense_n=%d", n), func(b *testing.B) {
			A := benchSequential(b, n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Transpose(A)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
		b.Run(fmt.Sprintf("banded_n=%d", n), func(b *testing.B) {
			A := benchBanded(b, n, 2)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Transpose(A)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkAdd(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := benchSequential(b, n)
			B := benchSequential(b, n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Add(A, B)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkAddScalar(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("banded_n=%d", n), func(b *testing.B) {
			A := benchBanded(b, n, 2)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.AddScalar(A, 7)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkSet(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := benchSequential(b, n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := A.Set(n/2, n/2, i)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkFormat(b *testing.B) {
	b.ReportAllocs()
	for _, n := range []int{8, 32} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := benchSequential(b, n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkS = matrix.Format(A)
			}
		})
	}
}

func BenchmarkAt(b *testing.B) {
	b.ReportAllocs()
	A := benchBanded(b, 128, 2)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		v, err := A.At(64, 64)
		if err != nil {
			b.Fatal(err)
		}
		sinkI = v
	}
}
