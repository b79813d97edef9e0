package main

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/klur/csc"
)

// Problem is a CSC system as stored in a YAML file. A real problem sets nz
// and b; a complex problem sets z_nz and z_b, each entry a [re, im] pair.
//
//	n: 3
//	colptr: [0, 1, 2, 3]
//	rowind: [0, 1, 2]
//	nz: [2, 3, 4]
//	b: [2, 3, 4]
type Problem struct {
	N      int         `yaml:"n"`
	ColPtr []int32     `yaml:"colptr"`
	RowIdx []int32     `yaml:"rowind"`
	Values []float64   `yaml:"nz,omitempty"`
	B      []float64   `yaml:"b,omitempty"`
	ZNz    [][]float64 `yaml:"z_nz,omitempty"`
	ZB     [][]float64 `yaml:"z_b,omitempty"`
}

var (
	errMixedProblem = errors.New("problem: set either nz/b or z_nz/z_b")
	errPair         = errors.New("problem: complex entries must be [re, im] pairs")
)

func decodeProblem(r io.Reader) (*Problem, error) {
	var p Problem
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil {
		return nil, fmt.Errorf("problem: decode: %w", err)
	}
	isReal := len(p.Values) > 0 || len(p.B) > 0
	cplx := len(p.ZNz) > 0 || len(p.ZB) > 0
	if isReal == cplx {
		return nil, errMixedProblem
	}

	return &p, nil
}

// Complex reports whether the problem uses complex values.
func (p *Problem) Complex() bool { return len(p.ZNz) > 0 || len(p.ZB) > 0 }

// Real returns the real CSC view and right-hand side.
func (p *Problem) Real() (csc.Matrix[float64], []float64) {
	return csc.New(p.N, p.RowIdx, p.ColPtr, p.Values), p.B
}

// ComplexParts converts the [re, im] pairs into complex128 slices.
func (p *Problem) ComplexParts() (csc.Matrix[complex128], []complex128, error) {
	nz, err := pairs(p.ZNz)
	if err != nil {
		return csc.Matrix[complex128]{}, nil, fmt.Errorf("z_nz: %w", err)
	}
	b, err := pairs(p.ZB)
	if err != nil {
		return csc.Matrix[complex128]{}, nil, fmt.Errorf("z_b: %w", err)
	}

	return csc.New(p.N, p.RowIdx, p.ColPtr, nz), b, nil
}

func pairs(in [][]float64) ([]complex128, error) {
	if in == nil {
		return nil, nil
	}
	out := make([]complex128, len(in))
	for k, v := range in {
		if len(v) != 2 {
			return nil, fmt.Errorf("entry %d: %w", k, errPair)
		}
		out[k] = complex(v[0], v[1])
	}

	return out, nil
}
