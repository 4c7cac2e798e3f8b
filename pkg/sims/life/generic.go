package life

import (
	"fmt"

	"torus-life/pkg/core"
)

// Generic steps grids of any dimension under any rule by recounting every
// cell's neighborhood each generation.
type Generic struct {
	rule core.Rule
	dim  int
	hood *Neighborhood
}

// NewGeneric returns a stepper for dim-dimensional grids. The rule must be
// satisfiable within a neighborhood of that dimension.
func NewGeneric(rule core.Rule, dim int) (*Generic, error) {
	if dim < 0 {
		return nil, fmt.Errorf("%w: negative dimension %d", core.ErrDimensionMismatch, dim)
	}
	if err := rule.Validate(dim); err != nil {
		return nil, err
	}
	return &Generic{rule: rule, dim: dim, hood: NewNeighborhood(dim)}, nil
}

// Name returns the stepper identifier.
func (s *Generic) Name() string { return "generic" }

// Rule returns the rule the stepper applies.
func (s *Generic) Rule() core.Rule { return s.rule }

// Check rejects grids whose dimension differs from the stepper's.
func (s *Generic) Check(initial *core.Grid) error {
	if initial.Dim() != s.dim {
		return fmt.Errorf("%w: grid has %d axes, stepper expects %d", core.ErrDimensionMismatch, initial.Dim(), s.dim)
	}
	return nil
}

// Step computes the next generation. Every cell is decided from prev, so
// the update is synchronous.
func (s *Generic) Step(prev *core.Grid) *core.Grid {
	next := prev.Clone()
	src := prev.Cells()
	dst := next.Cells()
	coord := make([]int, s.dim)
	for idx, v := range src {
		coord = prev.Coord(idx, coord)
		n := s.hood.Count(prev, coord)
		dst[idx] = s.rule.Next(v == 1, n)
	}
	return next
}

// RunGeneric runs initial under rule for at most maxIterations generations.
func RunGeneric(initial *core.Grid, rule core.Rule, maxIterations int) (core.Result[*core.Grid], error) {
	s, err := NewGeneric(rule, initial.Dim())
	if err != nil {
		return core.Result[*core.Grid]{}, err
	}
	return core.Run[*core.Grid](initial, s, maxIterations)
}
