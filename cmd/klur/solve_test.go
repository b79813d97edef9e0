package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const realProblem = `
n: 3
colptr: [0, 1, 2, 3]
rowind: [0, 1, 2]
nz: [2, 3, 4]
b: [2, 3, 4]
`

const complexProblem = `
n: 2
colptr: [0, 2, 4]
rowind: [0, 1, 0, 1]
z_nz: [[2, 1], [0, 1], [1, 0], [3, -1]]
z_b: [[1, 0], [0, 1]]
`

// execute runs the root command with every solve flag given explicitly, so
// values left over from a previous run cannot leak in.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()

	return out.String(), err
}

func TestDecodeProblem(t *testing.T) {
	p, err := decodeProblem(strings.NewReader(realProblem))
	require.NoError(t, err)
	assert.False(t, p.Complex())
	m, b := p.Real()
	assert.Equal(t, 3, m.N)
	assert.Equal(t, []float64{2, 3, 4}, b)

	p, err = decodeProblem(strings.NewReader(complexProblem))
	require.NoError(t, err)
	require.True(t, p.Complex())
	zm, zb, err := p.ComplexParts()
	require.NoError(t, err)
	assert.Equal(t, []complex128{2 + 1i, 1i, 1, 3 - 1i}, zm.Values)
	assert.Equal(t, []complex128{1, 1i}, zb)
}

func TestDecodeProblem_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"mixed", "n: 1\ncolptr: [0, 1]\nrowind: [0]\nnz: [1]\nz_b: [[1, 0]]\n"},
		{"empty", "n: 1\ncolptr: [0, 1]\nrowind: [0]\n"},
		{"unknown field", "n: 1\nvalues: [1]\n"},
		{"not yaml", "n: [\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := decodeProblem(strings.NewReader(tc.yaml))
			assert.Error(t, err)
		})
	}

	p, err := decodeProblem(strings.NewReader("n: 1\ncolptr: [0, 1]\nrowind: [0]\nz_nz: [[1]]\nz_b: [[1, 0]]\n"))
	require.NoError(t, err)
	_, _, err = p.ComplexParts()
	assert.ErrorIs(t, err, errPair)
}

func TestSolveCommand_Real(t *testing.T) {
	out, err := execute(t, realProblem, "solve", "--transpose=false", "--conjugate=false", "--output", "text", "-")
	require.NoError(t, err)
	assert.Equal(t, "1\n1\n1\n# residual 0.000e+00\n", out)
}

func TestSolveCommand_FromFile(t *testing.T) {
	path := writeFile(t, "system.yaml", realProblem)
	out, err := execute(t, "", "solve", "--transpose=true", "--conjugate=false", "--output", "text", path)
	require.NoError(t, err)
	assert.Contains(t, out, "# residual")
}

func TestSolveCommand_ComplexJSON(t *testing.T) {
	for _, flags := range [][]string{
		{"--transpose=false", "--conjugate=false"},
		{"--transpose=true", "--conjugate=false"},
		{"--transpose=true", "--conjugate=true"},
	} {
		args := append([]string{"solve"}, flags...)
		args = append(args, "--output", "json", "-")
		out, err := execute(t, complexProblem, args...)
		require.NoError(t, err, flags)

		var res SolveResult
		require.NoError(t, json.Unmarshal([]byte(out), &res))
		assert.Len(t, res.Z, 2)
		assert.Empty(t, res.X)
		assert.Less(t, res.Residual, 1e-12, flags)
		assert.Equal(t, 2, res.Stats.StructuralRank)
	}
}

func TestSolveCommand_Errors(t *testing.T) {
	singular := "n: 3\ncolptr: [0, 1, 1, 2]\nrowind: [0, 2]\nnz: [2, 4]\nb: [2, 3, 4]\n"
	_, err := execute(t, singular, "solve", "--transpose=false", "--conjugate=false", "--output", "text", "-")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "klu_factor")

	_, err = execute(t, realProblem, "solve", "--transpose=false", "--conjugate=false", "--output", "yaml", "-")
	require.Error(t, err)

	_, err = execute(t, "", "solve", "--transpose=false", "--conjugate=false", "--output", "text", "/does/not/exist.yaml")
	require.Error(t, err)
}
