// Package crosscheck runs the generic and incremental engines side by side on
// random square worlds and reports the first generation where they disagree.
package crosscheck

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"torus-life/pkg/core"
	"torus-life/pkg/sims/life"
)

// Options configures a cross-check sweep.
type Options struct {
	Trials      int
	MinSize     int
	MaxSize     int
	Densities   []float64
	Generations int
	Seed        int64
	Workers     int
	Logger      *log.Logger
}

// DefaultOptions returns a sweep small enough for a quick sanity run.
func DefaultOptions() Options {
	return Options{
		Trials:      200,
		MinSize:     1,
		MaxSize:     32,
		Densities:   []float64{0.1, 0.3, 0.5},
		Generations: 50,
		Seed:        1,
		Workers:     4,
	}
}

// Report summarizes a successful sweep.
type Report struct {
	Trials      int
	Generations int64
	Extinctions int64
}

// Mismatch describes the first disagreement found in a trial.
type Mismatch struct {
	Trial      int
	Size       int
	Density    float64
	Generation int
	Reason     string
}

func (m *Mismatch) Error() string {
	return fmt.Sprintf("trial %d (%dx%d, p=%.2f) generation %d: %s", m.Trial, m.Size, m.Size, m.Density, m.Generation, m.Reason)
}

// Run executes opts.Trials independent trials across opts.Workers goroutines.
// Each trial derives its own RNG from opts.Seed and the trial number, so the
// outcome does not depend on scheduling. The first mismatch is returned as a
// *Mismatch and stops the sweep.
func Run(ctx context.Context, opts Options) (Report, error) {
	if opts.MinSize < 1 || opts.MaxSize < opts.MinSize {
		return Report{}, fmt.Errorf("%w: size range [%d,%d]", core.ErrInvalidShape, opts.MinSize, opts.MaxSize)
	}
	if len(opts.Densities) == 0 {
		opts.Densities = DefaultOptions().Densities
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	generic, err := life.NewGeneric(core.Classic, 2)
	if err != nil {
		return Report{}, err
	}

	var gens, extinct atomic.Int64
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(opts.Workers, 1))
	for trial := 0; trial < opts.Trials; trial++ {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			rng := core.NewRNG(opts.Seed*1_000_003 + int64(trial))
			size := rng.IntRange(opts.MinSize, opts.MaxSize)
			p := opts.Densities[trial%len(opts.Densities)]
			steps, died, err := runTrial(generic, rng, size, p, opts.Generations)
			if err != nil {
				var m *Mismatch
				if errors.As(err, &m) {
					m.Trial = trial
				}
				return err
			}
			gens.Add(int64(steps))
			if died {
				extinct.Add(1)
			}
			logger.Printf("trial %d: %dx%d p=%.2f ok after %d generations (extinct=%v)", trial, size, size, p, steps, died)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Report{}, err
	}
	return Report{Trials: opts.Trials, Generations: gens.Load(), Extinctions: extinct.Load()}, nil
}

func runTrial(generic *life.Generic, rng *core.RNG, size int, p float64, generations int) (int, bool, error) {
	plain, err := core.Seed(rng, p, size, size)
	if err != nil {
		return 0, false, err
	}
	want, err := core.Run[*core.Grid](plain, generic, generations)
	if err != nil {
		return 0, false, err
	}
	got, err := life.RunIncremental(plain, generations)
	if err != nil {
		return 0, false, err
	}

	mismatch := func(gen int, format string, args ...any) *Mismatch {
		return &Mismatch{Size: size, Density: p, Generation: gen, Reason: fmt.Sprintf(format, args...)}
	}
	if len(got.Generations) != len(want.Generations) {
		return 0, false, mismatch(min(len(got.Generations), len(want.Generations)), "incremental produced %d generations, generic %d", len(got.Generations), len(want.Generations))
	}
	if got.Termination != want.Termination {
		return 0, false, mismatch(len(got.Generations)-1, "termination %s vs %s", got.Termination, want.Termination)
	}
	for gen, enc := range got.Generations {
		if !enc.Decode().Equal(want.Generations[gen]) {
			return 0, false, mismatch(gen, "alive cells differ")
		}
		if err := enc.Verify(); err != nil {
			return 0, false, mismatch(gen, "%v", err)
		}
	}
	return want.Steps(), want.Termination == core.TerminationExtinct, nil
}
