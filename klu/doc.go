// SPDX-License-Identifier: MIT

// Package klu defines the contract between the klur orchestration layer and a
// sparse LU engine shaped like SuiteSparse KLU.
//
// What & Why:
//
//	The engine is a fixed collaborator: it owns symbolic analysis, numeric
//	factorization and triangular solves. This package only describes the call
//	surface (Engine), the configuration/status record shared by every call
//	(Common), the opaque contexts it hands out (Symbolic, Numeric) and the
//	status codes it reports (Status).
//
// Protocol:
//
//	Defaults → Analyze → Factor|ZFactor → Solve|TSolve|ZSolve|ZTSolve, then
//	FreeNumeric|ZFreeNumeric → FreeSymbolic → FreeCommon.
//	Analyze and Factor report failure by returning nil; Solve variants by
//	returning false. In both cases Common.Status carries the reason.
//
// Complex data:
//
//	Complex entry points take interleaved float64 buffers, two doubles per
//	element: [re0, im0, re1, im1, ...].
//
// Implementations:
//
//	klu/dense         pure Go, backed by gonum LAPACK (default).
//	klu/suitesparse   cgo binding to libklu (build tag "suitesparse").
//	klu/klutest       instrumented decorator for resource accounting in tests.
package klu
