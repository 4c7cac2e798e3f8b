package life

import (
	"fmt"
	"slices"

	"torus-life/pkg/core"
)

// Cell packs a live-neighbor count and an alive bit into one value:
// count<<1 | alive.
type Cell uint8

// Pack builds a Cell from its parts.
func Pack(alive bool, count int) Cell {
	c := Cell(count << 1)
	if alive {
		c |= 1
	}
	return c
}

// Alive reports the alive bit.
func (c Cell) Alive() bool { return c&1 == 1 }

// AliveBit returns the alive bit as 0 or 1.
func (c Cell) AliveBit() uint8 { return uint8(c & 1) }

// Count returns the live-neighbor count.
func (c Cell) Count() int { return int(c >> 1) }

// Add shifts the count by delta neighbors and leaves the alive bit alone.
func (c Cell) Add(delta int) Cell { return Cell(int(c) + delta<<1) }

// Toggle flips the alive bit and leaves the count alone.
func (c Cell) Toggle() Cell { return c ^ 1 }

// EncodedGrid is a 2D toroidal grid of packed cells. Once a generation is
// complete every count equals the number of live neighbors in that same
// generation.
type EncodedGrid struct {
	rows, cols int
	cells      []Cell
}

// Encode packs a 2D grid, computing each cell's neighbor count.
func Encode(g *core.Grid) (*EncodedGrid, error) {
	if g.Dim() != 2 {
		return nil, fmt.Errorf("%w: encoding needs 2 axes, grid has %d", core.ErrDimensionMismatch, g.Dim())
	}
	shape := g.Shape()
	e := &EncodedGrid{rows: shape[0], cols: shape[1], cells: make([]Cell, g.Len())}
	hood := NewNeighborhood(2)
	src := g.Cells()
	coord := make([]int, 2)
	for idx, v := range src {
		coord = g.Coord(idx, coord)
		e.cells[idx] = Pack(v == 1, hood.Count(g, coord))
	}
	return e, nil
}

// Decode returns the alive bits as a plain grid.
func (e *EncodedGrid) Decode() *core.Grid {
	g := core.MustGrid(e.rows, e.cols)
	dst := g.Cells()
	for i, c := range e.cells {
		dst[i] = c.AliveBit()
	}
	return g
}

// Counts returns the neighbor count of every cell in row-major order.
func (e *EncodedGrid) Counts() []uint8 {
	out := make([]uint8, len(e.cells))
	for i, c := range e.cells {
		out[i] = uint8(c.Count())
	}
	return out
}

// Rows returns the extent of axis 0.
func (e *EncodedGrid) Rows() int { return e.rows }

// Cols returns the extent of axis 1.
func (e *EncodedGrid) Cols() int { return e.cols }

// Cells exposes the packed values in row-major order.
func (e *EncodedGrid) Cells() []Cell { return e.cells }

// At returns the packed value at the wrapped coordinate.
func (e *EncodedGrid) At(i, j int) Cell {
	i = (i%e.rows + e.rows) % e.rows
	j = (j%e.cols + e.cols) % e.cols
	return e.cells[i*e.cols+j]
}

// Clone returns an independent copy.
func (e *EncodedGrid) Clone() *EncodedGrid {
	return &EncodedGrid{rows: e.rows, cols: e.cols, cells: slices.Clone(e.cells)}
}

// Sum adds up the raw packed values.
func (e *EncodedGrid) Sum() int {
	total := 0
	for _, c := range e.cells {
		total += int(c)
	}
	return total
}

// Extinct reports whether the packed sum is zero. Counts cannot be
// non-zero without a live cell, so this is the all-dead condition.
func (e *EncodedGrid) Extinct() bool { return e.Sum() == 0 }

// Verify recomputes every neighbor count from the alive bits and reports
// the first cell whose stored count disagrees.
func (e *EncodedGrid) Verify() error {
	plain := e.Decode()
	hood := NewNeighborhood(2)
	coord := make([]int, 2)
	for idx, c := range e.cells {
		coord = plain.Coord(idx, coord)
		if want := hood.Count(plain, coord); c.Count() != want {
			return fmt.Errorf("cell (%d,%d) stores count %d, want %d", coord[0], coord[1], c.Count(), want)
		}
	}
	return nil
}
