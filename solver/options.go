// SPDX-License-Identifier: MIT

package solver

import (
	"math"

	"go.uber.org/zap"

	"github.com/katalvlaran/klur/csc"
	"github.com/katalvlaran/klur/klu"
	"github.com/katalvlaran/klur/klu/dense"
)

// Call defaults. Engine tunables default to whatever the engine's Defaults
// writes (klu.Default*).
const (
	DefaultTranspose = false
	DefaultConjugate = false
	DefaultRHSPolicy = csc.RHSExact
)

const (
	panicNilEngine        = "solver: WithEngine: engine must not be nil"
	panicTolInvalid       = "solver: WithPivotTolerance: tol must be finite and in (0, 1]"
	panicOrderingInvalid  = "solver: WithOrdering: unknown ordering"
	panicScalingInvalid   = "solver: WithScaling: unknown scaling"
	panicRHSPolicyInvalid = "solver: WithRHSPolicy: unknown policy"
)

// Option configures one FactorSolve/ZFactorSolve call.
// Constructors panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options is the resolved configuration of a call. Fields are unexported;
// callers build it through Option values.
type Options struct {
	engine    klu.Engine
	logger    *zap.Logger
	transpose bool
	conjugate bool
	rhsPolicy csc.RHSPolicy
	stats     *klu.Stats

	// configure runs after the engine's Defaults, in option order.
	configure []func(*klu.Common)
}

// WithTranspose solves Aᵀ·x = b instead of A·x = b, reusing the
// factorization of A.
func WithTranspose() Option {
	return func(o *Options) { o.transpose = true }
}

// WithConjugate makes a transposed complex solve use the conjugate
// transpose Aᴴ. It has no effect without WithTranspose or on real systems.
func WithConjugate() Option {
	return func(o *Options) { o.conjugate = true }
}

// WithRHSPolicy selects how a right-hand side whose length is not a multiple
// of n is treated. The default, csc.RHSExact, rejects it.
func WithRHSPolicy(p csc.RHSPolicy) Option {
	if p != csc.RHSExact && p != csc.RHSTruncate {
		panic(panicRHSPolicyInvalid)
	}

	return func(o *Options) { o.rhsPolicy = p }
}

// WithEngine replaces the default dense engine.
func WithEngine(e klu.Engine) Option {
	if e == nil {
		panic(panicNilEngine)
	}

	return func(o *Options) { o.engine = e }
}

// WithLogger routes phase tracing to l at Debug level. A nil logger
// disables logging.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l == nil {
			l = zap.NewNop()
		}
		o.logger = l
	}
}

// WithStats copies the engine statistics into dst when the call returns,
// on success and on failure alike.
func WithStats(dst *klu.Stats) Option {
	return func(o *Options) { o.stats = dst }
}

// WithPivotTolerance sets the partial pivoting tolerance passed to the
// engine (klu_common.tol).
func WithPivotTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol <= 0 || tol > 1 {
		panic(panicTolInvalid)
	}

	return withCommon(func(c *klu.Common) { c.Tol = tol })
}

// WithOrdering selects the fill-reducing ordering.
func WithOrdering(ord klu.Ordering) Option {
	if ord != klu.OrderingAMD && ord != klu.OrderingCOLAMD {
		panic(panicOrderingInvalid)
	}

	return withCommon(func(c *klu.Common) { c.Ordering = ord })
}

// WithScaling selects the row scaling applied before factorization.
func WithScaling(s klu.Scaling) Option {
	if s != klu.ScaleNone && s != klu.ScaleSum && s != klu.ScaleMax {
		panic(panicScalingInvalid)
	}

	return withCommon(func(c *klu.Common) { c.Scale = s })
}

// WithBTF toggles the block triangular form preordering.
func WithBTF(on bool) Option {
	return withCommon(func(c *klu.Common) { c.BTF = on })
}

// WithHaltIfSingular controls whether a singular matrix aborts the
// factorization (the default) or yields factors whose solves contain Inf
// or NaN. Stats.SingularCol names the offending column either way.
func WithHaltIfSingular(halt bool) Option {
	return withCommon(func(c *klu.Common) { c.HaltIfSingular = halt })
}

func withCommon(f func(*klu.Common)) Option {
	return func(o *Options) { o.configure = append(o.configure, f) }
}

// gatherOptions resolves opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{
		engine:    dense.New(),
		logger:    zap.NewNop(),
		transpose: DefaultTranspose,
		conjugate: DefaultConjugate,
		rhsPolicy: DefaultRHSPolicy,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
