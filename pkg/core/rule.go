package core

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Rule holds the survival band [ELow, EHigh] for live cells and the birth
// band [FLow, FHigh] for dead cells, both measured in live neighbors.
type Rule struct {
	ELow, EHigh int
	FLow, FHigh int
}

// Classic is Conway's B3/S23.
var Classic = Rule{ELow: 2, EHigh: 3, FLow: 3, FHigh: 3}

// NewRule builds a rule, rejecting negative thresholds and inverted bands.
func NewRule(eLow, eHigh, fLow, fHigh int) (Rule, error) {
	r := Rule{ELow: eLow, EHigh: eHigh, FLow: fLow, FHigh: fHigh}
	if eLow < 0 || fLow < 0 {
		return Rule{}, fmt.Errorf("%w: negative threshold in %s", ErrRuleOutOfRange, r)
	}
	if eLow > eHigh || fLow > fHigh {
		return Rule{}, fmt.Errorf("%w: inverted band in %s", ErrRuleOutOfRange, r)
	}
	return r, nil
}

// ParseRule reads the comma separated "eLow,eHigh,fLow,fHigh" form.
func ParseRule(s string) (Rule, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return Rule{}, fmt.Errorf("parse rule: want 4 thresholds, got %q", s)
	}
	var v [4]int
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return Rule{}, fmt.Errorf("parse rule: %w", err)
		}
		v[i] = n
	}
	return NewRule(v[0], v[1], v[2], v[3])
}

// MaxNeighbors returns 3^dim - 1, the Moore neighborhood size. It saturates
// at math.MaxInt for dimensions too large to enumerate anyway.
func MaxNeighbors(dim int) int {
	n := 1
	for i := 0; i < dim; i++ {
		if n > math.MaxInt/3 {
			return math.MaxInt
		}
		n *= 3
	}
	return n - 1
}

// Validate checks that every threshold is reachable in a grid of dim axes.
func (r Rule) Validate(dim int) error {
	if _, err := NewRule(r.ELow, r.EHigh, r.FLow, r.FHigh); err != nil {
		return err
	}
	limit := MaxNeighbors(dim)
	if r.EHigh > limit || r.FHigh > limit {
		return fmt.Errorf("%w: %s exceeds %d neighbors for dimension %d", ErrRuleOutOfRange, r, limit, dim)
	}
	return nil
}

// Next returns the state of a cell with n live neighbors in the following
// generation.
func (r Rule) Next(alive bool, n int) uint8 {
	if alive {
		if r.ELow <= n && n <= r.EHigh {
			return 1
		}
		return 0
	}
	if r.FLow <= n && n <= r.FHigh {
		return 1
	}
	return 0
}

func (r Rule) String() string {
	return fmt.Sprintf("%d,%d,%d,%d", r.ELow, r.EHigh, r.FLow, r.FHigh)
}
