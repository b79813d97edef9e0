// SPDX-License-Identifier: MIT

package csc

import "fmt"

// RHSPolicy decides what happens when len(b) is not a multiple of N.
type RHSPolicy int

const (
	// RHSExact rejects a right-hand side whose length is not k·N, k ≥ 1.
	RHSExact RHSPolicy = iota

	// RHSTruncate accepts any len(b) ≥ N and solves for ⌊len(b)/N⌋ vectors,
	// leaving trailing entries untouched.
	RHSTruncate
)

// String returns the policy name.
func (p RHSPolicy) String() string {
	switch p {
	case RHSExact:
		return "exact"
	case RHSTruncate:
		return "truncate"
	default:
		return fmt.Sprintf("RHSPolicy(%d)", int(p))
	}
}

// Validate checks the shapes of m and b and returns the number of
// right-hand-side vectors stored in b.
//
// Order of checks (first failure wins):
//   - N > 0                                 → ErrBadOrder
//   - RowIdx, ColPtr, Values, b non-nil     → *BufferError{ErrNilBuffer}
//   - len(ColPtr) == N+1                    → *BufferError{"colptr", ErrLength}
//   - len(Values) == len(RowIdx)            → *BufferError{"nz", ErrLength}
//   - len(b) ≥ N, and len(b)%N == 0 under RHSExact → *BufferError{"b", ErrRHSLength}
//
// Validate is pure: no allocation beyond the error, no mutation.
// Complexity: O(1).
func Validate[T Scalar](m Matrix[T], b []T, policy RHSPolicy) (nrhs int, err error) {
	if m.N <= 0 {
		return 0, fmt.Errorf("n=%d: %w", m.N, ErrBadOrder)
	}

	switch {
	case m.RowIdx == nil:
		return 0, &BufferError{Field: FieldRowIdx, Err: ErrNilBuffer}
	case m.ColPtr == nil:
		return 0, &BufferError{Field: FieldColPtr, Err: ErrNilBuffer}
	case m.Values == nil:
		return 0, &BufferError{Field: FieldValues, Err: ErrNilBuffer}
	case b == nil:
		return 0, &BufferError{Field: FieldRHS, Err: ErrNilBuffer}
	}

	if len(m.ColPtr) != m.N+1 {
		return 0, bufferErrorf(FieldColPtr, ErrLength, "len=%d, want n+1=%d", len(m.ColPtr), m.N+1)
	}
	if len(m.Values) != len(m.RowIdx) {
		return 0, bufferErrorf(FieldValues, ErrLength, "len=%d, want len(rowind)=%d", len(m.Values), len(m.RowIdx))
	}

	nrhs = len(b) / m.N
	if nrhs == 0 || (policy == RHSExact && len(b)%m.N != 0) {
		return 0, bufferErrorf(FieldRHS, ErrRHSLength, "len=%d, n=%d", len(b), m.N)
	}

	return nrhs, nil
}
