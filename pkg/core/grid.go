package core

import (
	"fmt"
	"slices"
	"strings"
)

// Grid stores an N-dimensional toroidal grid of 0/1 cells in row-major
// order: axis 0 varies slowest and the last axis is contiguous.
type Grid struct {
	shape   []int
	strides []int
	data    []uint8
}

// NewGrid allocates an all-dead grid with the given per-axis extents. An
// empty shape yields a zero-dimensional grid holding a single cell.
func NewGrid(shape ...int) (*Grid, error) {
	total := 1
	for axis, extent := range shape {
		if extent <= 0 {
			return nil, fmt.Errorf("%w: axis %d has extent %d", ErrInvalidShape, axis, extent)
		}
		total *= extent
	}
	g := &Grid{
		shape:   slices.Clone(shape),
		strides: make([]int, len(shape)),
		data:    make([]uint8, total),
	}
	stride := 1
	for axis := len(shape) - 1; axis >= 0; axis-- {
		g.strides[axis] = stride
		stride *= shape[axis]
	}
	return g, nil
}

// MustGrid is NewGrid for shapes known to be valid. It panics otherwise.
func MustGrid(shape ...int) *Grid {
	g, err := NewGrid(shape...)
	if err != nil {
		panic(err)
	}
	return g
}

// Shape returns a copy of the per-axis extents.
func (g *Grid) Shape() []int { return slices.Clone(g.shape) }

// Dim returns the number of axes.
func (g *Grid) Dim() int { return len(g.shape) }

// Len returns the total number of cells.
func (g *Grid) Len() int { return len(g.data) }

// Cells exposes the backing slice so callers can read/write values directly.
// Values must stay 0 or 1.
func (g *Grid) Cells() []uint8 { return g.data }

// Wrap reduces coord modulo each axis extent. Negative components wrap to
// the far edge, so -1 maps to extent-1.
func (g *Grid) Wrap(coord []int) []int {
	g.checkArity(coord)
	out := make([]int, len(coord))
	for axis, c := range coord {
		out[axis] = wrap(c, g.shape[axis])
	}
	return out
}

// Index returns the flat slice index of the wrapped coordinate. It panics
// unless coord carries exactly one component per axis.
func (g *Grid) Index(coord []int) int {
	g.checkArity(coord)
	idx := 0
	for axis, c := range coord {
		idx += wrap(c, g.shape[axis]) * g.strides[axis]
	}
	return idx
}

// Coord writes the coordinate of flat index idx into dst, growing it when
// needed, and returns it.
func (g *Grid) Coord(idx int, dst []int) []int {
	if cap(dst) < len(g.shape) {
		dst = make([]int, len(g.shape))
	}
	dst = dst[:len(g.shape)]
	for axis, stride := range g.strides {
		dst[axis] = idx / stride
		idx %= stride
	}
	return dst
}

// At returns the cell value at the wrapped coordinate. Like Index, it panics
// when the number of components differs from Dim.
func (g *Grid) At(coord ...int) uint8 { return g.data[g.Index(coord)] }

// Set stores 1 for any non-zero v and 0 otherwise at the wrapped coordinate.
func (g *Grid) Set(v uint8, coord ...int) {
	if v != 0 {
		v = 1
	}
	g.data[g.Index(coord)] = v
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	return &Grid{
		shape:   slices.Clone(g.shape),
		strides: slices.Clone(g.strides),
		data:    slices.Clone(g.data),
	}
}

// SameShape reports whether both grids have identical extents.
func (g *Grid) SameShape(o *Grid) bool { return slices.Equal(g.shape, o.shape) }

// Equal reports whether both grids have the same shape and cell values.
func (g *Grid) Equal(o *Grid) bool {
	return g.SameShape(o) && slices.Equal(g.data, o.data)
}

// Population counts the live cells.
func (g *Grid) Population() int {
	n := 0
	for _, v := range g.data {
		n += int(v)
	}
	return n
}

// Extinct reports whether every cell is dead.
func (g *Grid) Extinct() bool {
	for _, v := range g.data {
		if v != 0 {
			return false
		}
	}
	return true
}

// Clear fills the grid with zeros.
func (g *Grid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}

// String renders 2D grids as rows of '#' and '.', which keeps test failures
// readable. Other dimensions fall back to shape and population.
func (g *Grid) String() string {
	if len(g.shape) != 2 {
		return fmt.Sprintf("Grid%v{pop=%d}", g.shape, g.Population())
	}
	var b strings.Builder
	rows, cols := g.shape[0], g.shape[1]
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if g.data[r*cols+c] != 0 {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		if r < rows-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func (g *Grid) checkArity(coord []int) {
	if len(coord) != len(g.shape) {
		panic(fmt.Sprintf("core: coordinate %v has %d components, grid has %d axes", coord, len(coord), len(g.shape)))
	}
}

func wrap(c, n int) int { return (c%n + n) % n }
