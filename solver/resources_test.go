// SPDX-License-Identifier: MIT
package solver_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/klur/csc"
	"github.com/katalvlaran/klur/klu/dense"
	"github.com/katalvlaran/klur/klu/klutest"
	"github.com/katalvlaran/klur/solver"
)

// releases returns the release calls of calls, in order.
func releases(calls []string) []string {
	var out []string
	for _, c := range calls {
		switch c {
		case klutest.CallFreeNumeric, klutest.CallZFreeNumeric, klutest.CallFreeSymbolic, klutest.CallFreeCommon:
			out = append(out, c)
		}
	}

	return out
}

// TestResources_Real checks that every path releases exactly what it
// acquired, numeric before symbolic before common.
func TestResources_Real(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		m         csc.Matrix[float64]
		fault     klutest.Fault
		wantErr   error
		wantCalls []string
	}{
		{
			name:  "success",
			m:     diag3(),
			fault: klutest.FailNone,
			wantCalls: []string{
				klutest.CallDefaults, klutest.CallAnalyze, klutest.CallFactor, klutest.CallSolve,
				klutest.CallFreeNumeric, klutest.CallFreeSymbolic, klutest.CallFreeCommon,
			},
		},
		{
			name:      "defaults fails",
			m:         diag3(),
			fault:     klutest.FailDefaults,
			wantErr:   solver.ErrEngineInit,
			wantCalls: []string{klutest.CallDefaults},
		},
		{
			name:    "analyze fails",
			m:       diag3(),
			fault:   klutest.FailAnalyze,
			wantErr: solver.ErrAnalysis,
			wantCalls: []string{
				klutest.CallDefaults, klutest.CallAnalyze, klutest.CallFreeCommon,
			},
		},
		{
			name:    "factor fails",
			m:       diag3(),
			fault:   klutest.FailFactor,
			wantErr: solver.ErrFactorization,
			wantCalls: []string{
				klutest.CallDefaults, klutest.CallAnalyze, klutest.CallFactor,
				klutest.CallFreeSymbolic, klutest.CallFreeCommon,
			},
		},
		{
			name:    "singular matrix",
			m:       emptyCol3(),
			fault:   klutest.FailNone,
			wantErr: solver.ErrFactorization,
			wantCalls: []string{
				klutest.CallDefaults, klutest.CallAnalyze, klutest.CallFactor,
				klutest.CallFreeSymbolic, klutest.CallFreeCommon,
			},
		},
		{
			name:    "solve fails",
			m:       diag3(),
			fault:   klutest.FailSolve,
			wantErr: solver.ErrSolve,
			wantCalls: []string{
				klutest.CallDefaults, klutest.CallAnalyze, klutest.CallFactor, klutest.CallSolve,
				klutest.CallFreeNumeric, klutest.CallFreeSymbolic, klutest.CallFreeCommon,
			},
		},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			eng := klutest.New(dense.New(), tc.fault)
			err := solver.FactorSolve(tc.m, []float64{2, 3, 4}, solver.WithEngine(eng))
			if tc.wantErr == nil {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, tc.wantErr)
			}
			counts := eng.Counts()
			require.True(t, counts.Balanced(), "%+v", counts)
			require.Equal(t, tc.wantCalls, eng.Calls())
		})
	}
}

func TestResources_Complex(t *testing.T) {
	t.Parallel()

	for _, fault := range []klutest.Fault{klutest.FailNone, klutest.FailAnalyze, klutest.FailFactor, klutest.FailSolve} {
		eng := klutest.New(dense.New(), fault)
		b := []complex128{1, 2i, 3}
		_ = solver.ZFactorSolve(znonsym3(), b, solver.WithEngine(eng), solver.WithTranspose())

		counts := eng.Counts()
		require.True(t, counts.Balanced(), "fault %d: %+v", fault, counts)
		require.Equal(t, 1, counts.CommonFreed, "fault %d", fault)
		for _, c := range eng.Calls() {
			require.NotEqual(t, klutest.CallFreeNumeric, c, "complex factors must be released with the complex variant")
			require.NotEqual(t, klutest.CallFactor, c)
		}
	}

	eng := klutest.New(dense.New(), klutest.FailNone)
	require.NoError(t, solver.ZFactorSolve(znonsym3(), []complex128{1, 2, 3}, solver.WithEngine(eng)))
	require.Equal(t, []string{
		klutest.CallZFreeNumeric, klutest.CallFreeSymbolic, klutest.CallFreeCommon,
	}, releases(eng.Calls()))
}

// TestResources_ValidationFirst checks that no engine call happens for
// malformed input.
func TestResources_ValidationFirst(t *testing.T) {
	t.Parallel()

	eng := klutest.New(dense.New(), klutest.FailNone)
	m := diag3()
	err := solver.FactorSolve(csc.New(3, m.RowIdx, []int32{0, 1}, m.Values), []float64{1, 2, 3}, solver.WithEngine(eng))
	require.ErrorIs(t, err, solver.ErrValidate)
	require.Empty(t, eng.Calls())

	err = solver.ZFactorSolve(znonsym3(), nil, solver.WithEngine(eng))
	require.ErrorIs(t, err, solver.ErrValidate)
	require.Empty(t, eng.Calls())
}

// TestResources_SolveVariant checks which solve entry point each option
// combination selects.
func TestResources_SolveVariant(t *testing.T) {
	t.Parallel()

	rt := klutest.New(dense.New(), klutest.FailNone)
	require.NoError(t, solver.FactorSolve(diag3(), []float64{1, 2, 3}, solver.WithEngine(rt), solver.WithTranspose()))
	require.Contains(t, rt.Calls(), klutest.CallTSolve)

	zt := klutest.New(dense.New(), klutest.FailNone)
	require.NoError(t, solver.ZFactorSolve(znonsym3(), []complex128{1, 2, 3},
		solver.WithEngine(zt), solver.WithTranspose(), solver.WithConjugate()))
	require.Contains(t, zt.Calls(), klutest.CallZTSolve)
	require.Equal(t, []bool{true}, zt.Conjugations())

	zp := klutest.New(dense.New(), klutest.FailNone)
	require.NoError(t, solver.ZFactorSolve(znonsym3(), []complex128{1, 2, 3},
		solver.WithEngine(zp), solver.WithTranspose()))
	require.Equal(t, []bool{false}, zp.Conjugations())

	z := klutest.New(dense.New(), klutest.FailNone)
	require.NoError(t, solver.ZFactorSolve(znonsym3(), []complex128{1, 2, 3}, solver.WithEngine(z)))
	require.Contains(t, z.Calls(), klutest.CallZSolve)
	require.Empty(t, z.Conjugations())
}
