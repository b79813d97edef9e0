package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"

	"github.com/katalvlaran/klur/csc"
	"github.com/katalvlaran/klur/klu"
	"github.com/katalvlaran/klur/solver"
)

const (
	envPrefix         = "KLUR_"
	maxConfigFileSize = 1024 * 1024 // 1MB
)

// Config is the CLI configuration.
type Config struct {
	Engine string    `koanf:"engine"`
	Log    LogConfig `koanf:"log"`
	Solver Settings  `koanf:"solver"`
}

// LogConfig selects the zap encoder and level.
type LogConfig struct {
	Level  string `koanf:"level"`  // debug, info, warn, error
	Format string `koanf:"format"` // json or console
}

// Settings mirrors the solver's engine tunables. Ordering is amd or colamd,
// Scale is none, sum or max, RHSPolicy is exact or truncate.
type Settings struct {
	Ordering       string  `koanf:"ordering"`
	Scale          string  `koanf:"scale"`
	Tol            float64 `koanf:"tol"`
	BTF            bool    `koanf:"btf"`
	HaltIfSingular bool    `koanf:"halt_if_singular"`
	RHSPolicy      string  `koanf:"rhs_policy"`
}

func defaultConfig() Config {
	return Config{
		Engine: defaultEngine,
		Log:    LogConfig{Level: "warn", Format: "console"},
		Solver: Settings{
			Ordering:       klu.DefaultOrdering.String(),
			Scale:          klu.DefaultScale.String(),
			Tol:            klu.DefaultTol,
			BTF:            klu.DefaultBTF,
			HaltIfSingular: klu.DefaultHaltIfSingular,
			RHSPolicy:      solver.DefaultRHSPolicy.String(),
		},
	}
}

// loadConfig reads path (if non-empty), then applies KLUR_* environment
// overrides: KLUR_SOLVER_RHS_POLICY → solver.rhs_policy.
func loadConfig(path string) (*Config, error) {
	k := koanf.New(".")

	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open config file: %w", err)
		}
		defer f.Close()

		content, err := io.ReadAll(io.LimitReader(f, maxConfigFileSize+1))
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if len(content) > maxConfigFileSize {
			return nil, fmt.Errorf("config file %s exceeds %d bytes", path, maxConfigFileSize)
		}
		if err := k.Load(rawbytes.Provider(content), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(envPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	cfg := defaultConfig()
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if _, err := cfg.options(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// envKey maps KLUR_SECTION_FIELD_NAME to section.field_name.
func envKey(s string) string {
	lower := strings.ToLower(strings.TrimPrefix(s, envPrefix))
	parts := strings.SplitN(lower, "_", 2)
	if len(parts) == 1 {
		return lower
	}

	return parts[0] + "." + parts[1]
}

// options translates the settings into solver options.
func (c *Config) options() ([]solver.Option, error) {
	var opts []solver.Option

	eng, err := newEngine(c.Engine)
	if err != nil {
		return nil, err
	}
	opts = append(opts, solver.WithEngine(eng))

	switch c.Solver.Ordering {
	case klu.OrderingAMD.String():
		opts = append(opts, solver.WithOrdering(klu.OrderingAMD))
	case klu.OrderingCOLAMD.String():
		opts = append(opts, solver.WithOrdering(klu.OrderingCOLAMD))
	default:
		return nil, fmt.Errorf("solver.ordering: unknown value %q", c.Solver.Ordering)
	}

	switch c.Solver.Scale {
	case klu.ScaleNone.String():
		opts = append(opts, solver.WithScaling(klu.ScaleNone))
	case klu.ScaleSum.String():
		opts = append(opts, solver.WithScaling(klu.ScaleSum))
	case klu.ScaleMax.String():
		opts = append(opts, solver.WithScaling(klu.ScaleMax))
	default:
		return nil, fmt.Errorf("solver.scale: unknown value %q", c.Solver.Scale)
	}

	if !(c.Solver.Tol > 0 && c.Solver.Tol <= 1) {
		return nil, fmt.Errorf("solver.tol: %g is outside (0, 1]", c.Solver.Tol)
	}
	opts = append(opts,
		solver.WithPivotTolerance(c.Solver.Tol),
		solver.WithBTF(c.Solver.BTF),
		solver.WithHaltIfSingular(c.Solver.HaltIfSingular))

	switch c.Solver.RHSPolicy {
	case csc.RHSExact.String():
		opts = append(opts, solver.WithRHSPolicy(csc.RHSExact))
	case csc.RHSTruncate.String():
		opts = append(opts, solver.WithRHSPolicy(csc.RHSTruncate))
	default:
		return nil, fmt.Errorf("solver.rhs_policy: unknown value %q", c.Solver.RHSPolicy)
	}

	return opts, nil
}
