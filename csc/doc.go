// SPDX-License-Identifier: MIT

// Package csc holds the compressed-column view of a square sparse matrix and
// the input validator that runs before any engine resource is allocated.
//
// What & Why:
//
//	A Matrix borrows three caller-owned slices: ColPtr (N+1 column offsets),
//	RowIdx (row of each stored entry) and Values. Nothing is copied and
//	nothing is mutated. Validate checks the shapes that must hold before an
//	engine can even look at the data and derives the right-hand-side count.
//	The contents of ColPtr and RowIdx (monotonicity, ranges, duplicates)
//	are the engine's analysis phase to judge.
//
// Errors:
//
//	Shape failures are *BufferError values naming the offending field with
//	the same names the solver reports ("rowind", "colptr", "nz", "b").
//	Match causes with errors.Is against the package sentinels.
package csc
