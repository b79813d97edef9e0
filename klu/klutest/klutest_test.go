// SPDX-License-Identifier: MIT
package klutest_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/klur/klu"
	"github.com/katalvlaran/klur/klu/dense"
	"github.com/katalvlaran/klur/klu/klutest"
)

var (
	ap = []int32{0, 1, 2}
	ai = []int32{0, 1}
	ax = []float64{2, 4}
)

func TestEngine_CountsFullProtocol(t *testing.T) {
	t.Parallel()

	e := klutest.New(dense.New(), klutest.FailNone)
	var c klu.Common
	require.True(t, e.Defaults(&c))
	sym := e.Analyze(2, ap, ai, &c)
	num := e.Factor(ap, ai, ax, sym, &c)
	b := []float64{2, 4}
	require.True(t, e.Solve(sym, num, 2, 1, b, &c))
	require.Equal(t, []float64{1, 1}, b)

	e.FreeNumeric(&num, &c)
	e.FreeNumeric(&num, &c) // second release is a no-op
	e.FreeSymbolic(&sym, &c)
	e.FreeCommon(&c)

	got := e.Counts()
	require.True(t, got.Balanced(), "%+v", got)
	require.Equal(t, klutest.Counts{
		Common: 1, CommonFreed: 1,
		Symbolic: 1, SymbolicFreed: 1,
		Numeric: 1, NumericFreed: 1,
		Solves: 1,
	}, got)
	require.Equal(t, []string{
		klutest.CallDefaults, klutest.CallAnalyze, klutest.CallFactor, klutest.CallSolve,
		klutest.CallFreeNumeric, klutest.CallFreeNumeric, klutest.CallFreeSymbolic, klutest.CallFreeCommon,
	}, e.Calls())
}

func TestEngine_Faults(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		fault  klutest.Fault
		status klu.Status
	}{
		{"analyze", klutest.FailAnalyze, klu.StatusInvalid},
		{"factor", klutest.FailFactor, klu.StatusSingular},
		{"solve", klutest.FailSolve, klu.StatusInvalid},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			e := klutest.New(dense.New(), tc.fault)
			var c klu.Common
			require.True(t, e.Defaults(&c))

			sym := e.Analyze(2, ap, ai, &c)
			if tc.fault == klutest.FailAnalyze {
				require.Nil(t, sym)
				require.Equal(t, tc.status, c.Status)
				return
			}
			num := e.Factor(ap, ai, ax, sym, &c)
			if tc.fault == klutest.FailFactor {
				require.Nil(t, num)
				require.Equal(t, tc.status, c.Status)
				return
			}
			require.False(t, e.Solve(sym, num, 2, 1, []float64{1, 1}, &c))
			require.Equal(t, tc.status, c.Status)
			require.Zero(t, e.Counts().Solves)
		})
	}
}

func TestEngine_FailDefaults(t *testing.T) {
	t.Parallel()

	e := klutest.New(dense.New(), klutest.FailDefaults)
	var c klu.Common
	require.False(t, e.Defaults(&c))
	require.Zero(t, e.Counts().Common)
	require.Equal(t, []string{klutest.CallDefaults}, e.Calls())
}

func TestEngine_Conjugations(t *testing.T) {
	t.Parallel()

	e := klutest.New(dense.New(), klutest.FailNone)
	var c klu.Common
	require.True(t, e.Defaults(&c))
	sym := e.Analyze(2, ap, ai, &c)
	num := e.ZFactor(ap, ai, []float64{2, 0, 4, 0}, sym, &c)
	require.NotNil(t, num)

	require.True(t, e.ZTSolve(sym, num, 2, 1, []float64{2, 0, 4, 0}, true, &c))
	require.True(t, e.ZTSolve(sym, num, 2, 1, []float64{2, 0, 4, 0}, false, &c))
	require.Equal(t, []bool{true, false}, e.Conjugations())

	e.ZFreeNumeric(&num, &c)
	e.FreeSymbolic(&sym, &c)
	e.FreeCommon(&c)
	require.True(t, e.Counts().Balanced())
}
