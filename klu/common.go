// SPDX-License-Identifier: MIT

package klu

// Ordering selects the fill-reducing ordering applied during analysis.
type Ordering int

const (
	OrderingAMD    Ordering = 0 // approximate minimum degree on A+Aᵀ
	OrderingCOLAMD Ordering = 1 // column approximate minimum degree on AᵀA
)

// String returns a short lower-case name.
func (o Ordering) String() string {
	switch o {
	case OrderingAMD:
		return "amd"
	case OrderingCOLAMD:
		return "colamd"
	default:
		return "unknown"
	}
}

// Scaling selects the row scaling applied during factorization.
type Scaling int

const (
	ScaleNone Scaling = 0 // no scaling
	ScaleSum  Scaling = 1 // divide each row by the sum of its absolute values
	ScaleMax  Scaling = 2 // divide each row by its largest absolute value
)

// String returns a short lower-case name.
func (s Scaling) String() string {
	switch s {
	case ScaleNone:
		return "none"
	case ScaleSum:
		return "sum"
	case ScaleMax:
		return "max"
	default:
		return "unknown"
	}
}

// Engine defaults, mirroring klu_defaults.
const (
	DefaultTol            = 0.001
	DefaultBTF            = true
	DefaultOrdering       = OrderingAMD
	DefaultScale          = ScaleMax
	DefaultHaltIfSingular = true
)

// Stats is the diagnostic part of Common, filled by the engine as it runs.
type Stats struct {
	StructuralRank int     // -1 until analysis has run
	NumOffDiag     int     // off-diagonal pivots chosen during factorization
	NoffDiag       int     // entries in off-diagonal BTF blocks, 0 without BTF
	SingularCol    int     // first singular column, -1 if none
	Condest        float64 // reciprocal condition estimate, 0 if not computed
}

// Common is the configuration and status record threaded through every call
// of one factorization protocol, the Go counterpart of klu_common.
//
// Callers set the configuration fields after Defaults and never touch
// Native. Engines update Status and Stats on every call.
type Common struct {
	Tol            float64
	BTF            bool
	Ordering       Ordering
	Scale          Scaling
	HaltIfSingular bool

	Status Status
	Stats  Stats

	// Native holds engine-private state (e.g. a C klu_common). Owned by the
	// engine; released by FreeCommon.
	Native any
}

// Reset writes the documented defaults into c and clears status and
// statistics. Engines call it from Defaults; Native is left untouched.
func (c *Common) Reset() {
	c.Tol = DefaultTol
	c.BTF = DefaultBTF
	c.Ordering = DefaultOrdering
	c.Scale = DefaultScale
	c.HaltIfSingular = DefaultHaltIfSingular
	c.Status = StatusOK
	c.Stats = Stats{StructuralRank: -1, SingularCol: -1}
}
