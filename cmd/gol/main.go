// Command gol runs a toroidal life world headlessly and can export frames.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"torus-life/internal/cli"
	"torus-life/internal/config"
)

func main() {
	cfg, err := config.Parse(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("Error: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.Run(ctx, cfg, os.Stdout, os.Stderr); err != nil {
		config.Exitf("Error: %v", err)
	}
}
