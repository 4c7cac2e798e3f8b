package life

import "torus-life/pkg/core"

// Neighborhood holds the Moore neighborhood offsets for one dimension:
// every vector in {-1,0,1}^dim except the zero vector.
type Neighborhood struct {
	dim     int
	offsets [][]int
}

// NewNeighborhood enumerates the 3^dim - 1 neighbor offsets for dim axes.
// A zero-dimensional neighborhood is empty.
func NewNeighborhood(dim int) *Neighborhood {
	n := &Neighborhood{dim: dim}
	off := make([]int, dim)
	for i := range off {
		off[i] = -1
	}
	for {
		zero := true
		for _, v := range off {
			if v != 0 {
				zero = false
				break
			}
		}
		if !zero {
			n.offsets = append(n.offsets, append([]int(nil), off...))
		}
		// Odometer increment over {-1,0,1} per axis.
		axis := dim - 1
		for axis >= 0 && off[axis] == 1 {
			off[axis] = -1
			axis--
		}
		if axis < 0 {
			break
		}
		off[axis]++
	}
	return n
}

// Dim returns the number of axes the offsets span.
func (n *Neighborhood) Dim() int { return n.dim }

// Size returns the number of offsets.
func (n *Neighborhood) Size() int { return len(n.offsets) }

// Offsets returns the offset vectors. Callers must not modify them.
func (n *Neighborhood) Offsets() [][]int { return n.offsets }

// Count sums the live cells at coord+offset, wrapped toroidally, for every
// offset. The centre is never visited, but on grids smaller than three
// cells along an axis several offsets can wrap onto the same cell, the
// centre included, and each visit counts.
func (n *Neighborhood) Count(g *core.Grid, coord []int) int {
	cells := g.Cells()
	p := make([]int, n.dim)
	sum := 0
	for _, off := range n.offsets {
		for axis := range p {
			p[axis] = coord[axis] + off[axis]
		}
		sum += int(cells[g.Index(p)])
	}
	return sum
}

// CountNeighbors counts the live neighbors of coord in g.
func CountNeighbors(g *core.Grid, coord []int) int {
	return NewNeighborhood(g.Dim()).Count(g, coord)
}
