// SPDX-License-Identifier: MIT

package solver

import (
	"fmt"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/klur/csc"
	"github.com/katalvlaran/klur/interleave"
)

// FactorSolve factors the real matrix m and overwrites b with the solution
// of A·X = B (Aᵀ·X = B with WithTranspose).
//
// b is column-major: vector k occupies b[k*N : (k+1)*N]. The number of
// vectors is len(b)/N; see WithRHSPolicy for lengths that are not a
// multiple of N.
//
// Errors:
//   - ErrValidate with *csc.BufferError or csc.ErrBadOrder: bad shapes, no
//     engine call was made.
//   - *EngineError (ErrEngineInit, ErrAnalysis, ErrFactorization, ErrSolve):
//     the engine rejected the call. All engine state is released by then.
//     After an ErrSolve b may hold partial results.
//
// Complexity: that of the engine; this layer adds O(1).
func FactorSolve(m csc.Matrix[float64], b []float64, opts ...Option) error {
	o := gatherOptions(opts...)
	nrhs, err := validate(&o, m, b, false)
	if err != nil {
		return err
	}

	s := newSession(&o, false)
	defer s.close()

	return s.run(&o, m.N, m.ColPtr, m.RowIdx, m.Values, nrhs, b)
}

// ZFactorSolve is FactorSolve for complex matrices.
//
// Values and right-hand sides are packed into interleaved [re, im] buffers
// for the engine; b receives the solution only when every phase succeeded,
// so a failed call leaves b unchanged.
//
// With WithTranspose it solves Aᵀ·X = B; adding WithConjugate solves
// Aᴴ·X = B instead.
func ZFactorSolve(m csc.Matrix[complex128], b []complex128, opts ...Option) error {
	o := gatherOptions(opts...)
	nrhs, err := validate(&o, m, b, true)
	if err != nil {
		return err
	}

	az := interleave.Pack(nil, m.Values)
	bz := interleave.Pack(nil, b[:nrhs*m.N])

	s := newSession(&o, true)
	defer s.close()

	if err = s.run(&o, m.N, m.ColPtr, m.RowIdx, az, nrhs, bz); err != nil {
		return err
	}
	if err = interleave.Unpack(b, bz); err != nil {
		return fmt.Errorf("solver: unpack solution: %w", err)
	}

	return nil
}

// SolveVec runs FactorSolve on the storage of a gonum vector. The vector
// must be contiguous (Inc == 1); strided views such as Dense.ColView are
// rejected with a *csc.BufferError wrapping csc.ErrNonContiguous.
func SolveVec(m csc.Matrix[float64], b *mat.VecDense, opts ...Option) error {
	if b == nil || b.IsEmpty() {
		return validateErrorf(&csc.BufferError{Field: csc.FieldRHS, Err: csc.ErrNilBuffer})
	}
	raw := b.RawVector()
	if raw.Inc != 1 {
		return validateErrorf(&csc.BufferError{
			Field: csc.FieldRHS,
			Err:   fmt.Errorf("inc=%d: %w", raw.Inc, csc.ErrNonContiguous),
		})
	}

	return FactorSolve(m, raw.Data[:raw.N], opts...)
}

// validate runs the input validator and logs its outcome.
func validate[T csc.Scalar](o *Options, m csc.Matrix[T], b []T, cplx bool) (int, error) {
	nrhs, err := csc.Validate(m, b, o.rhsPolicy)
	if err != nil {
		o.logger.Debug("klu input rejected", zap.Stringer("phase", PhaseValidate), zap.Error(err))
		return 0, validateErrorf(err)
	}
	o.logger.Debug("klu input accepted",
		zap.Int("n", m.N),
		zap.Int("nnz", m.Nnz()),
		zap.Int("nrhs", nrhs),
		zap.Bool("complex", cplx),
		zap.Stringer("rhs_policy", o.rhsPolicy))

	return nrhs, nil
}
