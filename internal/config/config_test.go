package config

import (
	"errors"
	"flag"
	"io"
	"slices"
	"strings"
	"testing"

	"torus-life/pkg/core"
)

func newFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse(newFlagSet(), nil)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Engine != "incremental" || cfg.Iterations != 100 || cfg.Seed != 42 {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
	shape, _ := cfg.Shape()
	if !slices.Equal(shape, []int{50, 50}) {
		t.Fatalf("default shape %v", shape)
	}
	rule, _ := cfg.Rule()
	if rule != core.Classic {
		t.Fatalf("default rule %s", rule)
	}
}

func TestFlagsOverrideEnv(t *testing.T) {
	t.Setenv("TORUS_LIFE_ENGINE", "generic")
	t.Setenv("TORUS_LIFE_SIZE", "15x15x15")
	t.Setenv("TORUS_LIFE_ITERATIONS", "7")

	cfg, err := Parse(newFlagSet(), []string{"-n", "50", "-rule", "4,5,5,5"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Engine != "generic" {
		t.Fatalf("engine from env = %q", cfg.Engine)
	}
	if cfg.Iterations != 50 {
		t.Fatalf("flag should override env iterations, got %d", cfg.Iterations)
	}
	shape, _ := cfg.Shape()
	if !slices.Equal(shape, []int{15, 15, 15}) {
		t.Fatalf("shape %v", shape)
	}
	if rule, _ := cfg.Rule(); rule != (core.Rule{ELow: 4, EHigh: 5, FLow: 5, FHigh: 5}) {
		t.Fatalf("rule %s", rule)
	}
}

func TestParseEnvError(t *testing.T) {
	t.Setenv("TORUS_LIFE_SEED", "not-an-int")
	_, err := Parse(newFlagSet(), nil)
	if err == nil || !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env error, got %v", err)
	}
}

func TestParseRejectsBadValues(t *testing.T) {
	if _, err := Parse(newFlagSet(), []string{"-size", "10x0"}); !errors.Is(err, core.ErrInvalidShape) {
		t.Fatalf("expected ErrInvalidShape, got %v", err)
	}
	if _, err := Parse(newFlagSet(), []string{"-rule", "3,2,3,3"}); !errors.Is(err, core.ErrRuleOutOfRange) {
		t.Fatalf("expected ErrRuleOutOfRange, got %v", err)
	}
}

func TestParseShape(t *testing.T) {
	tests := []struct {
		in   string
		want []int
		ok   bool
	}{
		{"50x50", []int{50, 50}, true},
		{"9,9,9,9", []int{9, 9, 9, 9}, true},
		{"7", []int{7}, true},
		{"", nil, false},
		{"3xa", nil, false},
		{"-2x3", nil, false},
	}
	for _, tt := range tests {
		got, err := ParseShape(tt.in)
		if tt.ok != (err == nil) {
			t.Fatalf("ParseShape(%q) err = %v", tt.in, err)
		}
		if tt.ok && !slices.Equal(got, tt.want) {
			t.Fatalf("ParseShape(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
