package life

import (
	"fmt"

	"torus-life/pkg/core"
)

// Incremental steps 2D grids under the classic rule. Counts are
// carried in each packed cell and adjusted only around cells that flip.
type Incremental struct{}

// NewIncremental returns the incremental 2D stepper.
func NewIncremental() *Incremental { return &Incremental{} }

// Name returns the stepper identifier.
func (s *Incremental) Name() string { return "incremental" }

// Check rejects grids that are not square. Step itself wraps each axis by
// its own extent.
func (s *Incremental) Check(initial *EncodedGrid) error {
	if initial.rows != initial.cols {
		return fmt.Errorf("%w: incremental engine needs a square grid, got %dx%d", core.ErrDimensionMismatch, initial.rows, initial.cols)
	}
	return nil
}

// Step computes the next generation. Decisions read prev only; deltas are
// written to a copy of it, so cells that do not flip keep correct counts.
func (s *Incremental) Step(prev *EncodedGrid) *EncodedGrid {
	cur := prev.Clone()
	rows, cols := prev.rows, prev.cols
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			cell := prev.cells[i*cols+j]
			if cell == 0 {
				continue
			}
			count := cell.Count()
			var delta int
			switch {
			case cell.Alive() && !(1 < count && count < 4):
				delta = -1
			case !cell.Alive() && count == 3:
				delta = 1
			default:
				continue
			}
			cur.cells[i*cols+j] = cur.cells[i*cols+j].Toggle()
			for di := -1; di <= 1; di++ {
				r := (i + di + rows) % rows
				for dj := -1; dj <= 1; dj++ {
					if di == 0 && dj == 0 {
						continue
					}
					c := (j + dj + cols) % cols
					cur.cells[r*cols+c] = cur.cells[r*cols+c].Add(delta)
				}
			}
		}
	}
	return cur
}

// RunIncremental encodes initial and runs it for at most maxIterations
// generations.
func RunIncremental(initial *core.Grid, maxIterations int) (core.Result[*EncodedGrid], error) {
	enc, err := Encode(initial)
	if err != nil {
		return core.Result[*EncodedGrid]{}, err
	}
	return core.Run[*EncodedGrid](enc, NewIncremental(), maxIterations)
}
