// Package config loads command settings from the environment and flags.
package config

import (
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/caarlos0/env/v11"

	"torus-life/pkg/core"
)

// Config holds the settings shared by the torus-life commands.
type Config struct {
	Engine     string  `env:"TORUS_LIFE_ENGINE"     envDefault:"incremental"`
	Size       string  `env:"TORUS_LIFE_SIZE"       envDefault:"50x50"`
	Density    float64 `env:"TORUS_LIFE_DENSITY"    envDefault:"0.2"`
	RuleSpec   string  `env:"TORUS_LIFE_RULE"       envDefault:"2,3,3,3"`
	Iterations int     `env:"TORUS_LIFE_ITERATIONS" envDefault:"100"`
	Seed       int64   `env:"TORUS_LIFE_SEED"       envDefault:"42"`
	OutDir     string  `env:"TORUS_LIFE_OUT"`
	Scale      int     `env:"TORUS_LIFE_SCALE"      envDefault:"8"`
	FPS        int     `env:"TORUS_LIFE_FPS"        envDefault:"5"`
	Workers    int     `env:"TORUS_LIFE_WORKERS"    envDefault:"4"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Bind attaches the configuration to the provided FlagSet. Current values
// become the flag defaults.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Engine, "engine", c.Engine, "simulation engine ("+strings.Join(core.EngineNames(), ", ")+")")
	fs.StringVar(&c.Size, "size", c.Size, "grid extents separated by 'x', e.g. 50x50 or 15x15x15")
	fs.Float64Var(&c.Density, "p", c.Density, "probability that a seeded cell starts alive")
	fs.StringVar(&c.RuleSpec, "rule", c.RuleSpec, "eLow,eHigh,fLow,fHigh thresholds")
	fs.IntVar(&c.Iterations, "n", c.Iterations, "maximum generations to compute")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the initial world")
	fs.StringVar(&c.OutDir, "out", c.OutDir, "directory for PNG frames (empty disables export)")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.FPS, "fps", c.FPS, "playback frames per second")
	fs.IntVar(&c.Workers, "workers", c.Workers, "parallel workers")
}

// Parse reads the environment, then lets flags in args override it.
func Parse(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	cfg.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if _, err := cfg.Shape(); err != nil {
		return Config{}, err
	}
	if _, err := cfg.Rule(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Shape parses Size into per-axis extents.
func (c Config) Shape() ([]int, error) {
	return ParseShape(c.Size)
}

// Rule parses RuleSpec.
func (c Config) Rule() (core.Rule, error) {
	return core.ParseRule(c.RuleSpec)
}

// ParseShape reads extents separated by 'x' or ','.
func ParseShape(s string) ([]int, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == 'x' || r == 'X' || r == ',' })
	if len(fields) == 0 {
		return nil, fmt.Errorf("parse shape: empty size %q", s)
	}
	shape := make([]int, len(fields))
	for i, f := range fields {
		n, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, fmt.Errorf("parse shape: %w", err)
		}
		if n <= 0 {
			return nil, fmt.Errorf("parse shape: %w: extent %d", core.ErrInvalidShape, n)
		}
		shape[i] = n
	}
	return shape, nil
}
