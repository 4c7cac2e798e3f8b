package render

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"torus-life/pkg/core"
)

// FrameOptions controls batch frame export.
type FrameOptions struct {
	Palette Palette
	Scale   int
	// Workers bounds the number of frames encoded at once. Values below 1
	// mean one worker.
	Workers int
}

// FrameName returns the file name used for generation gen.
func FrameName(gen int) string { return fmt.Sprintf("frame_%05d.png", gen) }

// WriteFrames encodes every generation as a PNG in dir. Generations are
// immutable, so frames are rendered concurrently; the first failure cancels
// the remaining work.
func WriteFrames(ctx context.Context, dir string, gens []*core.Grid, opts FrameOptions) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create frame dir: %w", err)
	}
	if opts.Palette.On == nil || opts.Palette.Off == nil {
		opts.Palette = DefaultPalette
	}

	paths := make([]string, len(gens))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(opts.Workers, 1))
	for i, grid := range gens {
		paths[i] = filepath.Join(dir, FrameName(i))
		path := paths[i]
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return writePNG(path, Image(grid, opts.Palette, opts.Scale))
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return paths, nil
}

func writePNG(path string, img image.Image) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create frame: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close frame: %w", cerr)
		}
	}()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode %s: %w", filepath.Base(path), err)
	}
	return nil
}
