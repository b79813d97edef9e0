// SPDX-License-Identifier: MIT

// Package solver factors a sparse CSC matrix with a KLU-shaped engine and
// solves for one or more right-hand sides in place.
//
// What & Why:
//
//	FactorSolve (real) and ZFactorSolve (complex) run one complete
//	factorization protocol per call:
//
//	    validate → init → analyze → factor → solve → done
//
//	Each call owns its engine configuration record, symbolic context and
//	numeric context, and releases all of them before returning, on every
//	path, numeric first, then symbolic, then the configuration record.
//	Nothing is shared between calls, so concurrent calls on distinct
//	buffers are safe.
//
// Complex data:
//
//	The engine's complex entry points take interleaved [re, im] doubles.
//	ZFactorSolve packs the values and the right-hand side into transient
//	buffers, and unpacks the solution into b only after a successful solve;
//	on failure b is left as it was.
//
// Errors:
//
//	Input problems wrap ErrValidate together with a *csc.BufferError (or
//	csc.ErrBadOrder). Engine failures are *EngineError values carrying the
//	failed Phase, the engine entry point and the raw klu.Status; they match
//	ErrEngineInit, ErrAnalysis, ErrFactorization or ErrSolve, and the status
//	sentinel (klu.ErrSingular, klu.ErrInvalid, ...), with errors.Is.
//
// Configuration:
//
//	Functional options: WithTranspose, WithConjugate, WithRHSPolicy,
//	WithEngine, WithLogger, WithStats and the engine tunables
//	WithPivotTolerance, WithOrdering, WithScaling, WithBTF and
//	WithHaltIfSingular. The default engine is klu/dense.
//
// Cancellation:
//
//	None. An engine call cannot be interrupted; bound problem sizes
//	upstream if latency matters.
package solver
