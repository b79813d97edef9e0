// SPDX-License-Identifier: MIT

package csc

// Scalar is the element type of a Matrix: real or complex double precision.
type Scalar interface {
	~float64 | ~complex128
}

// Matrix is a borrowed compressed-column view of an N×N sparse matrix.
// Column j holds entries ColPtr[j] ≤ p < ColPtr[j+1], each at row RowIdx[p]
// with value Values[p]. Indices are 0-based and int32, matching the engine.
type Matrix[T Scalar] struct {
	N      int
	RowIdx []int32
	ColPtr []int32
	Values []T
}

// New bundles the four parts of a CSC matrix without copying them.
func New[T Scalar](n int, rowIdx, colPtr []int32, values []T) Matrix[T] {
	return Matrix[T]{N: n, RowIdx: rowIdx, ColPtr: colPtr, Values: values}
}

// Nnz returns the number of stored entries.
func (m Matrix[T]) Nnz() int { return len(m.Values) }

// MulVec computes y = A·x, or y = Aᵀ·x when trans is set, for one vector.
// The matrix is assumed valid (see Validate and the engine's analysis);
// out-of-range indices panic like any slice access.
// Complexity: O(N + nnz).
func (m Matrix[T]) MulVec(y, x []T, trans bool) {
	for i := range y[:m.N] {
		y[i] = 0
	}
	for j := 0; j < m.N; j++ {
		for p := m.ColPtr[j]; p < m.ColPtr[j+1]; p++ {
			i := m.RowIdx[p]
			if trans {
				y[j] += m.Values[p] * x[i]
			} else {
				y[i] += m.Values[p] * x[j]
			}
		}
	}
}
