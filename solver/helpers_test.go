// SPDX-License-Identifier: MIT
package solver_test

import (
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/klur/csc"
)

const tol = 1e-10

// diag3 is diag(2, 3, 4).
func diag3() csc.Matrix[float64] {
	return csc.New(3, []int32{0, 1, 2}, []int32{0, 1, 2, 3}, []float64{2, 3, 4})
}

// nonsym4 is a diagonally dominant nonsymmetric matrix:
//
//	[10  1  0  2]
//	[ 3  9  1  0]
//	[ 0  2  8  1]
//	[ 1  0  4  7]
func nonsym4() csc.Matrix[float64] {
	return csc.New(4,
		[]int32{0, 1, 3, 0, 1, 2, 1, 2, 3, 0, 2, 3},
		[]int32{0, 3, 6, 9, 12},
		[]float64{10, 3, 1, 1, 9, 2, 1, 8, 4, 2, 1, 7})
}

// emptyCol3 is diag(2, ·, 4) with column 1 absent.
func emptyCol3() csc.Matrix[float64] {
	return csc.New(3, []int32{0, 2}, []int32{0, 1, 1, 2}, []float64{2, 4})
}

// znonsym3 is
//
//	[4+i   1    0 ]
//	[ 2i  5-i   1 ]
//	[ 0   1+i   6 ]
func znonsym3() csc.Matrix[complex128] {
	return csc.New(3,
		[]int32{0, 1, 0, 1, 2, 1, 2},
		[]int32{0, 2, 5, 7},
		[]complex128{4 + 1i, 2i, 1, 5 - 1i, 1 + 1i, 1, 6})
}

// rhs returns op(A)·x for every vector of x, op being A, Aᵀ or (conj) Aᴴ.
func rhs[T csc.Scalar](m csc.Matrix[T], x []T, trans, conj bool) []T {
	n := m.N
	b := make([]T, len(x))
	in := make([]T, n)
	for k := 0; k+n <= len(x); k += n {
		copy(in, x[k:k+n])
		if conj {
			conjugate(in)
		}
		m.MulVec(b[k:k+n], in, trans)
		if conj {
			conjugate(b[k : k+n])
		}
	}

	return b
}

func conjugate[T csc.Scalar](v []T) {
	for i := range v {
		if z, ok := any(v[i]).(complex128); ok {
			v[i] = any(cmplx.Conj(z)).(T)
		}
	}
}

func requireClose(t *testing.T, want, got []float64) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		require.InDelta(t, want[i], got[i], tol, "index %d", i)
	}
}

func requireCloseZ(t *testing.T, want, got []complex128) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		require.InDelta(t, 0, cmplx.Abs(want[i]-got[i]), tol, "index %d: want %v, got %v", i, want[i], got[i])
	}
}
