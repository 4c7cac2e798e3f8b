// Command crosscheck compares the generic and incremental engines on many
// random square worlds.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"strconv"
	"strings"
	"syscall"
	"time"

	"torus-life/internal/config"
	"torus-life/internal/crosscheck"
)

type densityList []float64

func (l *densityList) String() string {
	parts := make([]string, len(*l))
	for i, p := range *l {
		parts[i] = strconv.FormatFloat(p, 'f', -1, 64)
	}
	return strings.Join(parts, ",")
}

func (l *densityList) Set(value string) error {
	p, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return err
	}
	*l = append(*l, p)
	return nil
}

func main() {
	opts := crosscheck.DefaultOptions()
	var densities densityList
	flag.IntVar(&opts.Trials, "trials", opts.Trials, "number of random worlds")
	flag.IntVar(&opts.MinSize, "min", opts.MinSize, "smallest world edge")
	flag.IntVar(&opts.MaxSize, "max", opts.MaxSize, "largest world edge")
	flag.IntVar(&opts.Generations, "n", opts.Generations, "generations per world")
	flag.Int64Var(&opts.Seed, "seed", opts.Seed, "base seed")
	flag.IntVar(&opts.Workers, "workers", runtime.NumCPU(), "parallel trials")
	flag.Var(&densities, "p", "seed density (repeatable)")
	verbose := flag.Bool("v", false, "log every trial")
	flag.Parse()

	if len(densities) > 0 {
		opts.Densities = densities
	}
	if *verbose {
		opts.Logger = log.New(os.Stderr, "", log.Lmicroseconds)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Printf("Cross-checking %d worlds (%d workers, %d generations)\n", opts.Trials, opts.Workers, opts.Generations)
	start := time.Now()
	rep, err := crosscheck.Run(ctx, opts)
	if err != nil {
		config.Exitf("FAIL: %v", err)
	}
	fmt.Printf("OK: %d worlds, %d generations, %d extinctions (elapsed %s)\n",
		rep.Trials, rep.Generations, rep.Extinctions, time.Since(start).Round(time.Millisecond))
}
