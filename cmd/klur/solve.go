package main

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"math/cmplx"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/klur/csc"
	"github.com/katalvlaran/klur/klu"
	"github.com/katalvlaran/klur/solver"
)

var (
	transpose bool
	conjugate bool
	output    string
)

// solveCmd factors and solves one problem file
var solveCmd = &cobra.Command{
	Use:   "solve <problem.yaml|->",
	Short: "Factor a CSC matrix and solve for its right-hand sides",
	Long: `Factor a CSC matrix and solve for its right-hand sides.

Examples:
  # Solve A x = b
  klur solve system.yaml

  # Solve the transposed system from stdin, JSON output
  cat system.yaml | klur solve --transpose --output json -`,
	Args: cobra.ExactArgs(1),
	RunE: runSolve,
}

func init() {
	solveCmd.Flags().BoolVar(&transpose, "transpose", false, "solve Aᵀ x = b")
	solveCmd.Flags().BoolVar(&conjugate, "conjugate", false, "with --transpose on a complex problem, solve Aᴴ x = b")
	solveCmd.Flags().StringVarP(&output, "output", "o", "text", "output format: text or json")
}

// SolveResult is the JSON output of the solve command.
type SolveResult struct {
	X        []float64    `json:"x,omitempty"`
	Z        [][2]float64 `json:"z,omitempty"`
	Residual float64      `json:"residual"`
	Stats    klu.Stats    `json:"stats"`
}

func runSolve(cmd *cobra.Command, args []string) error {
	if output != "text" && output != "json" {
		return fmt.Errorf("--output: unknown value %q", output)
	}
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg.Log)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	var in io.Reader = cmd.InOrStdin()
	if args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("failed to open problem: %w", err)
		}
		defer f.Close()
		in = f
	}
	p, err := decodeProblem(in)
	if err != nil {
		return err
	}

	opts, err := cfg.options()
	if err != nil {
		return err
	}
	var res SolveResult
	opts = append(opts, solver.WithLogger(logger), solver.WithStats(&res.Stats))
	if transpose {
		opts = append(opts, solver.WithTranspose())
	}
	if conjugate {
		opts = append(opts, solver.WithConjugate())
	}

	if p.Complex() {
		err = solveComplex(p, &res, opts)
	} else {
		err = solveReal(p, &res, opts)
	}
	if err != nil {
		logger.Error("solve failed", zap.Error(err))
		return err
	}
	logger.Info("solve finished",
		zap.Int("n", p.N),
		zap.Float64("residual", res.Residual),
		zap.Float64("condest", res.Stats.Condest))

	return writeResult(cmd.OutOrStdout(), &res)
}

func solveReal(p *Problem, res *SolveResult, opts []solver.Option) error {
	m, b := p.Real()
	x := append([]float64(nil), b...)
	if err := solver.FactorSolve(m, x, opts...); err != nil {
		return err
	}
	res.X = x
	res.Residual = residual(m, x, b, transpose, false)

	return nil
}

func solveComplex(p *Problem, res *SolveResult, opts []solver.Option) error {
	m, b, err := p.ComplexParts()
	if err != nil {
		return err
	}
	x := append([]complex128(nil), b...)
	if err := solver.ZFactorSolve(m, x, opts...); err != nil {
		return err
	}
	res.Z = make([][2]float64, len(x))
	for k, z := range x {
		res.Z[k] = [2]float64{real(z), imag(z)}
	}
	res.Residual = residual(m, x, b, transpose, transpose && conjugate)

	return nil
}

// residual returns max |op(A)·x − b| over every solved vector, where op is
// the identity, the transpose or (conj) the conjugate transpose.
func residual[T csc.Scalar](m csc.Matrix[T], x, b []T, trans, conj bool) float64 {
	n := m.N
	y := make([]T, n)
	xc := make([]T, n)
	var worst float64
	for k := 0; k+n <= len(b); k += n {
		copy(xc, x[k:k+n])
		if conj {
			conjugateAll(xc)
		}
		m.MulVec(y, xc, trans)
		if conj {
			conjugateAll(y)
		}
		for i := range y {
			if d := abs(y[i] - b[k+i]); d > worst || math.IsNaN(d) {
				worst = d
			}
		}
	}

	return worst
}

func conjugateAll[T csc.Scalar](v []T) {
	for i := range v {
		if z, ok := any(v[i]).(complex128); ok {
			v[i] = any(cmplx.Conj(z)).(T)
		}
	}
}

func abs[T csc.Scalar](v T) float64 {
	switch t := any(v).(type) {
	case complex128:
		return cmplx.Abs(t)
	case float64:
		return math.Abs(t)
	default:
		return math.NaN()
	}
}

func writeResult(w io.Writer, res *SolveResult) error {
	if output == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}

	for _, v := range res.X {
		fmt.Fprintf(w, "%.17g\n", v)
	}
	for _, z := range res.Z {
		fmt.Fprintf(w, "%.17g %.17g\n", z[0], z[1])
	}
	fmt.Fprintf(w, "# residual %.3e\n", res.Residual)

	return nil
}
