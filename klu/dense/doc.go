// SPDX-License-Identifier: MIT

// Package dense implements klu.Engine on top of gonum's LAPACK.
//
// What & Why:
//
//	It is the pure-Go engine klur uses when no native KLU is linked in. The
//	CSC pattern is validated and analyzed the way KLU does it (column
//	pointers, row ranges, duplicates, structural rank), then the matrix is
//	expanded to a dense row-major buffer and factored with partial pivoting
//	(Getrf). Solves call Getrs.
//
// Complex systems:
//
//	A = Ar + i·Ai is factored through its real embedding
//
//	    M = [ Ar  -Ai ]
//	        [ Ai   Ar ]
//
//	so A·x = b becomes M·[xr; xi] = [br; bi]. Mᵀ embeds Aᴴ, which gives the
//	conjugate transpose directly and the plain transpose by conjugating the
//	right-hand side and the solution.
//
// Configuration:
//
//	Scale and HaltIfSingular are honored. Ordering, BTF and Tol describe
//	sparse pivoting and are accepted but have no effect on a dense LU.
//
// Complexity:
//
//	Factor is O(n³) time and O(n²) memory (O((2n)³), O((2n)²) for complex),
//	which bounds it to moderate orders; see MaxOrder.
package dense
