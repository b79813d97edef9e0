// SPDX-License-Identifier: MIT
package solver_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/klur/csc"
	"github.com/katalvlaran/klur/klu"
	"github.com/katalvlaran/klur/solver"
)

// ExampleFactorSolve solves diag(2, 3, 4)·x = [2, 3, 4].
func ExampleFactorSolve() {
	m := csc.New(3,
		[]int32{0, 1, 2},    // rowind
		[]int32{0, 1, 2, 3}, // colptr
		[]float64{2, 3, 4})  // nz
	b := []float64{2, 3, 4}

	if err := solver.FactorSolve(m, b); err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(b)
	// Output: [1 1 1]
}

// ExampleZFactorSolve solves a complex diagonal system.
func ExampleZFactorSolve() {
	m := csc.New(2, []int32{0, 1}, []int32{0, 1, 2}, []complex128{2i, 4})
	b := []complex128{2, 2i}

	if err := solver.ZFactorSolve(m, b); err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("%.3g %.3g\n", b[0], b[1])
	// Output: (0-1i) (0+0.5i)
}

// ExampleFactorSolve_singular inspects a factorization failure.
func ExampleFactorSolve_singular() {
	// Column 1 has no entries.
	m := csc.New(3, []int32{0, 2}, []int32{0, 1, 1, 2}, []float64{2, 4})
	b := []float64{2, 3, 4}

	var st klu.Stats
	err := solver.FactorSolve(m, b, solver.WithStats(&st))
	fmt.Println(err)
	fmt.Println(errors.Is(err, solver.ErrFactorization), errors.Is(err, klu.ErrSingular))
	fmt.Println("singular column:", st.SingularCol)
	// Output:
	// solver: factor: error calling klu_factor (KLU_SINGULAR)
	// true true
	// singular column: 1
}
