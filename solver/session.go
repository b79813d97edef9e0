// SPDX-License-Identifier: MIT

package solver

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/klur/klu"
)

// session owns the engine state of one call: the common record, the
// symbolic context and the numeric context. close releases whatever was
// acquired, numeric → symbolic → common, each at most once.
type session struct {
	eng   klu.Engine
	log   *zap.Logger
	cplx  bool
	phase Phase
	stats *klu.Stats

	common    klu.Common
	hasCommon bool
	sym       klu.Symbolic
	num       klu.Numeric
}

func newSession(o *Options, cplx bool) *session {
	return &session{
		eng:   o.engine,
		log:   o.logger,
		cplx:  cplx,
		phase: PhaseValidate,
		stats: o.stats,
	}
}

// run drives init → analyze → factor → solve. x holds the values and b the
// right-hand sides, both interleaved when the session is complex.
func (s *session) run(o *Options, n int, ap, ai []int32, x []float64, nrhs int, b []float64) error {
	if err := s.init(o.configure); err != nil {
		return err
	}
	if err := s.analyze(n, ap, ai); err != nil {
		return err
	}
	if err := s.factor(ap, ai, x); err != nil {
		return err
	}
	if err := s.solve(n, nrhs, b, o.transpose, o.conjugate); err != nil {
		return err
	}
	s.enter(PhaseDone)

	return nil
}

func (s *session) enter(p Phase) {
	s.phase = p
	s.log.Debug("klu phase", zap.Stringer("phase", p), zap.Bool("complex", s.cplx))
}

// fail maps the engine's current status to an *EngineError for the phase
// in progress.
func (s *session) fail(op string) error {
	err := &EngineError{Phase: s.phase, Op: op, Status: s.common.Status}
	s.log.Debug("klu call failed",
		zap.Stringer("phase", s.phase),
		zap.String("op", op),
		zap.Stringer("status", s.common.Status),
		zap.Error(err))

	return err
}

func (s *session) init(configure []func(*klu.Common)) error {
	s.enter(PhaseInit)
	if !s.eng.Defaults(&s.common) {
		return s.fail(opDefaults)
	}
	s.hasCommon = true
	for _, f := range configure {
		f(&s.common)
	}

	return nil
}

func (s *session) analyze(n int, ap, ai []int32) error {
	s.enter(PhaseAnalyze)
	s.sym = s.eng.Analyze(n, ap, ai, &s.common)
	if s.sym == nil {
		return s.fail(opAnalyze)
	}

	return nil
}

func (s *session) factor(ap, ai []int32, x []float64) error {
	s.enter(PhaseFactor)
	op := opFactor
	if s.cplx {
		op = opZFactor
		s.num = s.eng.ZFactor(ap, ai, x, s.sym, &s.common)
	} else {
		s.num = s.eng.Factor(ap, ai, x, s.sym, &s.common)
	}
	if s.num == nil {
		return s.fail(op)
	}

	return nil
}

func (s *session) solve(n, nrhs int, b []float64, trans, conj bool) error {
	s.enter(PhaseSolve)
	s.log.Debug("klu solve", zap.Int("n", n), zap.Int("nrhs", nrhs), zap.Bool("transpose", trans))

	var (
		ok bool
		op string
	)
	switch {
	case s.cplx && trans:
		op = opZTSolve
		ok = s.eng.ZTSolve(s.sym, s.num, n, nrhs, b, conj, &s.common)
	case s.cplx:
		op = opZSolve
		ok = s.eng.ZSolve(s.sym, s.num, n, nrhs, b, &s.common)
	case trans:
		op = opTSolve
		ok = s.eng.TSolve(s.sym, s.num, n, nrhs, b, &s.common)
	default:
		op = opSolve
		ok = s.eng.Solve(s.sym, s.num, n, nrhs, b, &s.common)
	}
	if !ok {
		return s.fail(op)
	}

	return nil
}

// close releases numeric, then symbolic, then the common record. Statistics
// are copied out before the common record goes away. Safe to call twice.
func (s *session) close() {
	if s.num != nil {
		if s.cplx {
			s.eng.ZFreeNumeric(&s.num, &s.common)
		} else {
			s.eng.FreeNumeric(&s.num, &s.common)
		}
		s.num = nil
	}
	if s.sym != nil {
		s.eng.FreeSymbolic(&s.sym, &s.common)
		s.sym = nil
	}
	if s.hasCommon {
		if s.stats != nil {
			*s.stats = s.common.Stats
		}
		s.eng.FreeCommon(&s.common)
		s.hasCommon = false
	}
}
