package life

import (
	"errors"
	"fmt"

	"torus-life/pkg/core"
)

// ErrUnsupportedRule is returned when the incremental engine is asked to run
// anything but the classic rule.
var ErrUnsupportedRule = errors.New("unsupported rule")

type genericEngine struct {
	rule core.Rule
}

func (e genericEngine) Name() string { return "generic" }

func (e genericEngine) Run(initial *core.Grid, maxIterations int) (core.Result[*core.Grid], error) {
	return RunGeneric(initial, e.rule, maxIterations)
}

type incrementalEngine struct{}

func (incrementalEngine) Name() string { return "incremental" }

func (incrementalEngine) Run(initial *core.Grid, maxIterations int) (core.Result[*core.Grid], error) {
	res, err := RunIncremental(initial, maxIterations)
	if err != nil {
		return core.Result[*core.Grid]{}, err
	}
	out := core.Result[*core.Grid]{
		Generations: make([]*core.Grid, len(res.Generations)),
		Termination: res.Termination,
	}
	for i, g := range res.Generations {
		out.Generations[i] = g.Decode()
	}
	return out, nil
}

func init() {
	core.Register("generic", func(rule core.Rule) (core.Engine, error) {
		if _, err := core.NewRule(rule.ELow, rule.EHigh, rule.FLow, rule.FHigh); err != nil {
			return nil, err
		}
		return genericEngine{rule: rule}, nil
	})
	core.Register("incremental", func(rule core.Rule) (core.Engine, error) {
		if rule != core.Classic {
			return nil, fmt.Errorf("%w: incremental engine runs %s only, got %s", ErrUnsupportedRule, core.Classic, rule)
		}
		return incrementalEngine{}, nil
	})
}
