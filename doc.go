// SPDX-License-Identifier: MIT

// Package klur factors sparse square matrices held in compressed sparse
// column (CSC) form and solves linear systems against them, in real and
// complex arithmetic, through a KLU-style engine.
//
// What is klur?
//
//	A thin, resource-safe orchestration layer around a sparse LU engine:
//		• Input views: borrowed CSC matrices, column-major right-hand sides
//		• Validation: shapes checked before the engine is touched
//		• Protocol: defaults → analyze → factor → solve, released in reverse
//		• Complex support: interleaved [re, im] marshaling for the engine
//		• Errors: one typed error per phase, engine status attached
//
// Layout:
//
//	csc/               Matrix view, shape validation, BufferError
//	interleave/        complex128 ⇄ interleaved float64 buffers
//	klu/               engine contract: Common, Status, Engine
//	klu/dense/         pure-Go engine on gonum LAPACK (default)
//	klu/suitesparse/   cgo binding to SuiteSparse KLU (build tag "suitesparse")
//	klu/klutest/       instrumented engine for resource and fault tests
//	solver/            FactorSolve, ZFactorSolve, SolveVec and options
//	cmd/klur/          command-line front end (YAML problems, koanf config)
//
// Quick start:
//
//	m := csc.New(3, []int32{0, 1, 2}, []int32{0, 1, 2, 3}, []float64{2, 3, 4})
//	b := []float64{2, 3, 4}
//	if err := solver.FactorSolve(m, b); err != nil {
//		// errors.Is(err, solver.ErrFactorization), errors.Is(err, klu.ErrSingular), ...
//	}
//	// b == [1 1 1]
//
// Every call owns its engine state for exactly its own duration; calls are
// independent and safe to run concurrently on distinct buffers.
package klur
