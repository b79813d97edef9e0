// Package main implements klur, a command-line front end that loads a CSC
// problem from YAML, factors it and prints the solution.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	// configPath is the optional YAML configuration file
	configPath string
	// version information
	version = "dev"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "klur",
	Short: "Sparse LU factor-and-solve for CSC problems",
	Long: `klur factors a sparse matrix given in compressed-column form and solves
for one or more right-hand sides, in real or complex arithmetic.

Configuration is read from --config (YAML) and overridden by KLUR_*
environment variables, e.g. KLUR_SOLVER_ORDERING=colamd.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: false,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML configuration file")
	rootCmd.AddCommand(solveCmd)
}
