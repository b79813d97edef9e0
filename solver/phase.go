// SPDX-License-Identifier: MIT

package solver

import "strconv"

// Phase is a step of the factorization protocol. A call walks the phases in
// order and either reaches PhaseDone or stops in the phase that failed.
type Phase int

const (
	PhaseValidate Phase = iota
	PhaseInit
	PhaseAnalyze
	PhaseFactor
	PhaseSolve
	PhaseDone
)

var phaseNames = [...]string{
	PhaseValidate: "validate",
	PhaseInit:     "init",
	PhaseAnalyze:  "analyze",
	PhaseFactor:   "factor",
	PhaseSolve:    "solve",
	PhaseDone:     "done",
}

func (p Phase) String() string {
	if p >= 0 && int(p) < len(phaseNames) {
		return phaseNames[p]
	}
	return "phase(" + strconv.Itoa(int(p)) + ")"
}
