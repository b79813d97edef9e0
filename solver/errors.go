// SPDX-License-Identifier: MIT

package solver

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/klur/klu"
)

// Phase sentinels. Every message is prefixed with "solver: ".
var (
	// ErrValidate marks input rejected before any engine call.
	ErrValidate = errors.New("solver: invalid input")

	// ErrEngineInit marks a failure to acquire the engine configuration.
	ErrEngineInit = errors.New("solver: engine initialization failed")

	// ErrAnalysis marks a symbolic analysis failure, e.g. invalid column
	// pointers or row indices.
	ErrAnalysis = errors.New("solver: symbolic analysis failed")

	// ErrFactorization marks a numeric factorization failure, e.g. a
	// structurally or numerically singular matrix.
	ErrFactorization = errors.New("solver: numeric factorization failed")

	// ErrSolve marks a triangular solve failure after a successful
	// factorization.
	ErrSolve = errors.New("solver: triangular solve failed")
)

// Engine entry point names, as reported in EngineError.Op.
const (
	opDefaults = "klu_defaults"
	opAnalyze  = "klu_analyze"
	opFactor   = "klu_factor"
	opZFactor  = "klu_z_factor"
	opSolve    = "klu_solve"
	opTSolve   = "klu_tsolve"
	opZSolve   = "klu_z_solve"
	opZTSolve  = "klu_z_tsolve"
)

// EngineError reports a failed engine call.
type EngineError struct {
	Phase  Phase      // phase that failed
	Op     string     // engine entry point, e.g. "klu_z_factor"
	Status klu.Status // raw status the engine left in its common record
}

func (e *EngineError) Error() string {
	return fmt.Sprintf("solver: %s: error calling %s (%s)", e.Phase, e.Op, e.Status)
}

// Unwrap exposes the phase sentinel and, when the status is not KLU_OK, the
// status sentinel.
func (e *EngineError) Unwrap() []error {
	errs := []error{phaseErr(e.Phase)}
	if se := e.Status.Err(); se != nil {
		errs = append(errs, se)
	}

	return errs
}

func phaseErr(p Phase) error {
	switch p {
	case PhaseValidate:
		return ErrValidate
	case PhaseInit:
		return ErrEngineInit
	case PhaseAnalyze:
		return ErrAnalysis
	case PhaseFactor:
		return ErrFactorization
	default:
		return ErrSolve
	}
}

// validateErrorf tags a validator failure with ErrValidate, keeping the
// validator error reachable through errors.Is/As.
func validateErrorf(err error) error {
	return fmt.Errorf("%w: %w", ErrValidate, err)
}
