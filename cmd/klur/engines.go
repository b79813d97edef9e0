package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/klur/klu"
	"github.com/katalvlaran/klur/klu/dense"
)

const defaultEngine = "dense"

// engines maps configuration names to engine constructors. Build-tagged
// files register additional engines from init.
var engines = map[string]func() klu.Engine{
	defaultEngine: func() klu.Engine { return dense.New() },
}

func newEngine(name string) (klu.Engine, error) {
	ctor, ok := engines[name]
	if !ok {
		names := make([]string, 0, len(engines))
		for n := range engines {
			names = append(names, n)
		}
		sort.Strings(names)
		return nil, fmt.Errorf("engine: unknown value %q (have %s)", name, strings.Join(names, ", "))
	}

	return ctor(), nil
}
