// SPDX-License-Identifier: MIT
// Package solver_test provides benchmarks for the factor-and-solve pipelines
// on deterministic random tridiagonal systems.
package solver_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/klur/csc"
	"github.com/katalvlaran/klur/solver"
)

// benchSizes are the matrix orders to benchmark.
var benchSizes = []int{32, 128, 512}

// sink to defeat dead-code elimination
var sinkErr error

// tridiag builds a diagonally dominant tridiagonal matrix of order n.
func tridiag(n int, seed int64) csc.Matrix[float64] {
	rng := rand.New(rand.NewSource(seed))
	colPtr := make([]int32, n+1)
	var (
		rows []int32
		vals []float64
	)
	for j := 0; j < n; j++ {
		for i := j - 1; i <= j+1; i++ {
			if i < 0 || i >= n {
				continue
			}
			v := rng.Float64() - 0.5
			if i == j {
				v = 4 + rng.Float64()
			}
			rows = append(rows, int32(i))
			vals = append(vals, v)
		}
		colPtr[j+1] = int32(len(rows))
	}

	return csc.New(n, rows, colPtr, vals)
}

func BenchmarkFactorSolve(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			m := tridiag(n, 1337)
			rhs := make([]float64, n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				for k := range rhs {
					rhs[k] = 1
				}
				sinkErr = solver.FactorSolve(m, rhs)
			}
		})
	}
}

func BenchmarkZFactorSolve(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			rm := tridiag(n, 4242)
			m := csc.New(n, rm.RowIdx, rm.ColPtr, make([]complex128, len(rm.Values)))
			for p, v := range rm.Values {
				m.Values[p] = complex(v, v/2)
			}
			rhs := make([]complex128, n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				for k := range rhs {
					rhs[k] = 1
				}
				sinkErr = solver.ZFactorSolve(m, rhs)
			}
		})
	}
}
