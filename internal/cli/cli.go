// Package cli holds the command bodies behind cmd/gol and cmd/ca so they can
// be exercised without a process boundary.
package cli

import (
	"context"
	"fmt"
	"io"
	"log"
	"time"

	"torus-life/internal/config"
	"torus-life/internal/render"
	"torus-life/pkg/core"
	_ "torus-life/pkg/sims/life"
)

// Simulation is a finished run together with how it was configured.
type Simulation struct {
	Engine string
	Rule   core.Rule
	Result core.Result[*core.Grid]
}

// Simulate seeds the world described by cfg and runs the selected engine.
func Simulate(cfg config.Config, logger *log.Logger) (Simulation, error) {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	shape, err := cfg.Shape()
	if err != nil {
		return Simulation{}, err
	}
	rule, err := cfg.Rule()
	if err != nil {
		return Simulation{}, err
	}
	eng, err := core.NewEngine(cfg.Engine, rule)
	if err != nil {
		return Simulation{}, err
	}
	world, err := core.Seed(core.NewRNG(cfg.Seed), cfg.Density, shape...)
	if err != nil {
		return Simulation{}, err
	}
	logger.Printf("seeded %v world with %d live cells (p=%.2f, seed=%d)", shape, world.Population(), cfg.Density, cfg.Seed)

	start := time.Now()
	res, err := eng.Run(world, cfg.Iterations)
	if err != nil {
		return Simulation{}, fmt.Errorf("run %s: %w", eng.Name(), err)
	}
	logger.Printf("%s engine computed %d generations in %s", eng.Name(), res.Steps(), time.Since(start).Round(time.Millisecond))
	if res.Termination == core.TerminationExtinct {
		logger.Printf("world extinct at generation %d", res.Steps())
	}
	return Simulation{Engine: eng.Name(), Rule: rule, Result: res}, nil
}

// Run executes the headless command: simulate, summarize to out, and export
// PNG frames when cfg.OutDir is set.
func Run(ctx context.Context, cfg config.Config, out, errOut io.Writer) error {
	if out == nil {
		out = io.Discard
	}
	if errOut == nil {
		errOut = io.Discard
	}
	logger := log.New(errOut, "", log.LstdFlags)

	sim, err := Simulate(cfg, logger)
	if err != nil {
		return err
	}
	last := sim.Result.Last()
	fmt.Fprintf(out, "engine=%s rule=%s generations=%d termination=%s alive=%d\n",
		sim.Engine, sim.Rule, sim.Result.Steps(), sim.Result.Termination, last.Population())

	if cfg.OutDir == "" {
		return nil
	}
	paths, err := render.WriteFrames(ctx, cfg.OutDir, sim.Result.Generations, render.FrameOptions{
		Scale:   cfg.Scale,
		Workers: cfg.Workers,
	})
	if err != nil {
		return fmt.Errorf("export frames: %w", err)
	}
	logger.Printf("wrote %d frames to %s", len(paths), cfg.OutDir)
	return nil
}
