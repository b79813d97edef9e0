// SPDX-License-Identifier: MIT

// Package klutest provides an instrumented klu.Engine for tests: it counts
// every acquisition and release, records the call sequence, and can inject a
// failure into any phase of the protocol.
package klutest

import (
	"sync"

	"github.com/katalvlaran/klur/klu"
)

// Fault selects the engine call that fails.
type Fault int

const (
	FailNone     Fault = iota
	FailDefaults       // Defaults reports false
	FailAnalyze        // Analyze returns nil with StatusInvalid
	FailFactor         // Factor and ZFactor return nil with StatusSingular
	FailSolve          // every solve variant returns false with StatusInvalid
)

// Call names recorded by Engine.Calls.
const (
	CallDefaults     = "Defaults"
	CallAnalyze      = "Analyze"
	CallFactor       = "Factor"
	CallZFactor      = "ZFactor"
	CallSolve        = "Solve"
	CallTSolve       = "TSolve"
	CallZSolve       = "ZSolve"
	CallZTSolve      = "ZTSolve"
	CallFreeNumeric  = "FreeNumeric"
	CallZFreeNumeric = "ZFreeNumeric"
	CallFreeSymbolic = "FreeSymbolic"
	CallFreeCommon   = "FreeCommon"
)

// Counts tallies successful acquisitions and effective releases.
type Counts struct {
	Common, CommonFreed     int
	Symbolic, SymbolicFreed int
	Numeric, NumericFreed   int
	Solves                  int
}

// Balanced reports whether every acquired resource was released exactly once.
func (c Counts) Balanced() bool {
	return c.Common == c.CommonFreed &&
		c.Symbolic == c.SymbolicFreed &&
		c.Numeric == c.NumericFreed
}

// Engine decorates another engine. Safe for concurrent use.
type Engine struct {
	inner klu.Engine
	fault Fault

	mu     sync.Mutex
	counts Counts
	calls  []string
	// ZSolve/ZTSolve conjugation flags as observed, in call order.
	conj []bool
}

var _ klu.Engine = (*Engine)(nil)

// New wraps inner. fault selects the call to fail (FailNone for none).
func New(inner klu.Engine, fault Fault) *Engine {
	return &Engine{inner: inner, fault: fault}
}

// Counts returns a snapshot of the tallies.
func (e *Engine) Counts() Counts {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.counts
}

// Calls returns the recorded call sequence.
func (e *Engine) Calls() []string {
	e.mu.Lock()
	defer e.mu.Unlock()

	return append([]string(nil), e.calls...)
}

// Conjugations returns the conj flag of every ZTSolve call.
func (e *Engine) Conjugations() []bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	return append([]bool(nil), e.conj...)
}

func (e *Engine) record(name string, update func(*Counts)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.calls = append(e.calls, name)
	if update != nil {
		update(&e.counts)
	}
}

func (e *Engine) Defaults(c *klu.Common) bool {
	if e.fault == FailDefaults {
		e.record(CallDefaults, nil)
		return false
	}
	ok := e.inner.Defaults(c)
	e.record(CallDefaults, func(k *Counts) {
		if ok {
			k.Common++
		}
	})

	return ok
}

func (e *Engine) Analyze(n int, ap, ai []int32, c *klu.Common) klu.Symbolic {
	if e.fault == FailAnalyze {
		c.Status = klu.StatusInvalid
		e.record(CallAnalyze, nil)
		return nil
	}
	s := e.inner.Analyze(n, ap, ai, c)
	e.record(CallAnalyze, func(k *Counts) {
		if s != nil {
			k.Symbolic++
		}
	})

	return s
}

func (e *Engine) Factor(ap, ai []int32, ax []float64, s klu.Symbolic, c *klu.Common) klu.Numeric {
	return e.factor(CallFactor, c, func() klu.Numeric { return e.inner.Factor(ap, ai, ax, s, c) })
}

func (e *Engine) ZFactor(ap, ai []int32, az []float64, s klu.Symbolic, c *klu.Common) klu.Numeric {
	return e.factor(CallZFactor, c, func() klu.Numeric { return e.inner.ZFactor(ap, ai, az, s, c) })
}

func (e *Engine) factor(name string, c *klu.Common, call func() klu.Numeric) klu.Numeric {
	if e.fault == FailFactor {
		c.Status = klu.StatusSingular
		e.record(name, nil)
		return nil
	}
	num := call()
	e.record(name, func(k *Counts) {
		if num != nil {
			k.Numeric++
		}
	})

	return num
}

func (e *Engine) Solve(s klu.Symbolic, num klu.Numeric, ldim, nrhs int, b []float64, c *klu.Common) bool {
	return e.solve(CallSolve, c, func() bool { return e.inner.Solve(s, num, ldim, nrhs, b, c) })
}

func (e *Engine) TSolve(s klu.Symbolic, num klu.Numeric, ldim, nrhs int, b []float64, c *klu.Common) bool {
	return e.solve(CallTSolve, c, func() bool { return e.inner.TSolve(s, num, ldim, nrhs, b, c) })
}

func (e *Engine) ZSolve(s klu.Symbolic, num klu.Numeric, ldim, nrhs int, b []float64, c *klu.Common) bool {
	return e.solve(CallZSolve, c, func() bool { return e.inner.ZSolve(s, num, ldim, nrhs, b, c) })
}

func (e *Engine) ZTSolve(s klu.Symbolic, num klu.Numeric, ldim, nrhs int, b []float64, conj bool, c *klu.Common) bool {
	e.mu.Lock()
	e.conj = append(e.conj, conj)
	e.mu.Unlock()

	return e.solve(CallZTSolve, c, func() bool { return e.inner.ZTSolve(s, num, ldim, nrhs, b, conj, c) })
}

func (e *Engine) solve(name string, c *klu.Common, call func() bool) bool {
	if e.fault == FailSolve {
		c.Status = klu.StatusInvalid
		e.record(name, nil)
		return false
	}
	ok := call()
	e.record(name, func(k *Counts) { k.Solves++ })

	return ok
}

func (e *Engine) FreeNumeric(num *klu.Numeric, c *klu.Common) {
	live := num != nil && *num != nil
	e.inner.FreeNumeric(num, c)
	e.record(CallFreeNumeric, func(k *Counts) {
		if live {
			k.NumericFreed++
		}
	})
}

func (e *Engine) ZFreeNumeric(num *klu.Numeric, c *klu.Common) {
	live := num != nil && *num != nil
	e.inner.ZFreeNumeric(num, c)
	e.record(CallZFreeNumeric, func(k *Counts) {
		if live {
			k.NumericFreed++
		}
	})
}

func (e *Engine) FreeSymbolic(s *klu.Symbolic, c *klu.Common) {
	live := s != nil && *s != nil
	e.inner.FreeSymbolic(s, c)
	e.record(CallFreeSymbolic, func(k *Counts) {
		if live {
			k.SymbolicFreed++
		}
	})
}

func (e *Engine) FreeCommon(c *klu.Common) {
	e.inner.FreeCommon(c)
	e.record(CallFreeCommon, func(k *Counts) { k.CommonFreed++ })
}
