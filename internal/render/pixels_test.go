package render

import (
	"image/color"
	"slices"
	"testing"

	"torus-life/pkg/core"
)

func TestPlane2D(t *testing.T) {
	g := core.MustGrid(2, 3)
	g.Set(1, 0, 2)
	g.Set(1, 1, 0)
	w, h, cells := Plane(g)
	if w != 3 || h != 2 {
		t.Fatalf("plane size %dx%d, want 3x2", w, h)
	}
	if want := []uint8{0, 0, 1, 1, 0, 0}; !slices.Equal(cells, want) {
		t.Fatalf("cells %v, want %v", cells, want)
	}
}

func TestPlaneUsesCentralSlice(t *testing.T) {
	g := core.MustGrid(3, 3, 5)
	g.Set(1, 1, 1, 2) // midpoint of axis 2
	g.Set(1, 0, 0, 0) // off-plane
	_, _, cells := Plane(g)
	if want := []uint8{0, 0, 0, 0, 1, 0, 0, 0, 0}; !slices.Equal(cells, want) {
		t.Fatalf("cells %v, want %v", cells, want)
	}
}

func TestPlaneLowDimensions(t *testing.T) {
	g := core.MustGrid(4)
	g.Set(1, 3)
	if w, h, cells := Plane(g); w != 4 || h != 1 || cells[3] != 1 {
		t.Fatalf("1-d plane %dx%d %v", w, h, cells)
	}
	z := core.MustGrid()
	if w, h, _ := Plane(z); w != 1 || h != 1 {
		t.Fatalf("0-d plane %dx%d", w, h)
	}
}

func TestImageScalesCells(t *testing.T) {
	g := core.MustGrid(2, 2)
	g.Set(1, 0, 1)
	img := Image(g, DefaultPalette, 3)
	if b := img.Bounds(); b.Dx() != 6 || b.Dy() != 6 {
		t.Fatalf("bounds %v, want 6x6", b)
	}
	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	black := color.RGBA{A: 255}
	if got := img.RGBAAt(4, 2); got != white {
		t.Fatalf("live cell pixel %v", got)
	}
	if got := img.RGBAAt(1, 4); got != black {
		t.Fatalf("dead cell pixel %v", got)
	}
}
