//go:build suitesparse

package main

import (
	"github.com/katalvlaran/klur/klu"
	"github.com/katalvlaran/klur/klu/suitesparse"
)

func init() {
	engines["suitesparse"] = func() klu.Engine { return suitesparse.New() }
}
