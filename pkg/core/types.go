package core

import (
	"fmt"
	"sort"
)

// Engine runs a plain 0/1 grid through a complete simulation. It hides
// the snapshot type a particular stepper works on.
type Engine interface {
	Name() string
	Run(initial *Grid, maxIterations int) (Result[*Grid], error)
}

// Factory constructs an Engine for the provided rule.
type Factory func(rule Rule) (Engine, error)

var engines = map[string]Factory{}

// Register adds an engine factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	engines[name] = f
}

// Engines exposes the registry of available engine factories.
func Engines() map[string]Factory {
	return engines
}

// EngineNames lists the registered engines in sorted order.
func EngineNames() []string {
	names := make([]string, 0, len(engines))
	for name := range engines {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewEngine looks up name in the registry and builds it for rule.
func NewEngine(name string, rule Rule) (Engine, error) {
	f, ok := engines[name]
	if !ok {
		return nil, fmt.Errorf("%w %q (have %v)", ErrUnknownEngine, name, EngineNames())
	}
	return f(rule)
}
