// SPDX-License-Identifier: MIT

package klu

// Symbolic is an engine-owned analysis context. A nil Symbolic means the
// analysis failed; the reason is in Common.Status.
type Symbolic interface{}

// Numeric is an engine-owned factorization context. A nil Numeric means the
// factorization failed; the reason is in Common.Status.
type Numeric interface{}

// Engine is the sparse LU collaborator driven by the solver.
//
// Index arrays are CSC: ap has n+1 column offsets, ai the row of each entry.
// Right-hand sides are column-major with leading dimension ldim; solves
// overwrite b with the solution. Complex entry points take interleaved
// [re, im] buffers (2*nnz values, 2*ldim*nrhs right-hand-side entries).
//
// Free* functions take a pointer to the context, release it, and set it to
// nil; calling them on a nil context is a no-op.
type Engine interface {
	// Defaults fills c with default configuration and acquires any engine
	// state needed by later calls. It reports false on allocation failure.
	Defaults(c *Common) bool

	// Analyze orders and analyzes the pattern of an n×n matrix.
	Analyze(n int, ap, ai []int32, c *Common) Symbolic

	// Factor computes the numeric LU factors of a real matrix.
	Factor(ap, ai []int32, ax []float64, s Symbolic, c *Common) Numeric

	// ZFactor computes the numeric LU factors of a complex matrix.
	ZFactor(ap, ai []int32, az []float64, s Symbolic, c *Common) Numeric

	// Solve solves A·X = B in place.
	Solve(s Symbolic, num Numeric, ldim, nrhs int, b []float64, c *Common) bool

	// TSolve solves Aᵀ·X = B in place.
	TSolve(s Symbolic, num Numeric, ldim, nrhs int, b []float64, c *Common) bool

	// ZSolve solves A·X = B in place for a complex factorization.
	ZSolve(s Symbolic, num Numeric, ldim, nrhs int, b []float64, c *Common) bool

	// ZTSolve solves Aᵀ·X = B, or Aᴴ·X = B when conj is set.
	ZTSolve(s Symbolic, num Numeric, ldim, nrhs int, b []float64, conj bool, c *Common) bool

	FreeNumeric(num *Numeric, c *Common)
	ZFreeNumeric(num *Numeric, c *Common)
	FreeSymbolic(s *Symbolic, c *Common)

	// FreeCommon releases whatever Defaults acquired.
	FreeCommon(c *Common)
}
