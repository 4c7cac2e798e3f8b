package ui

import (
	"fmt"
	"strconv"
	"strings"
)

// Status is what the HUD shows about the generation on screen.
type Status struct {
	Engine      string
	Rule        string
	Shape       []int
	Generation  int
	Total       int
	Population  int
	Termination string
	Paused      bool
}

// Lines formats the status panel, one entry per text row.
func (s Status) Lines() []string {
	dims := make([]string, len(s.Shape))
	for i, n := range s.Shape {
		dims[i] = strconv.Itoa(n)
	}
	shape := strings.Join(dims, "x")
	if shape == "" {
		shape = "point"
	}
	state := "playing"
	if s.Paused {
		state = "paused"
	}
	lines := []string{
		"engine " + s.Engine,
		"rule   " + s.Rule,
		"world  " + shape,
		fmt.Sprintf("gen    %d/%d", s.Generation, max(s.Total-1, 0)),
		fmt.Sprintf("alive  %d", s.Population),
		state,
	}
	if s.Generation == s.Total-1 && s.Termination != "" {
		lines = append(lines, "run "+s.Termination)
	}
	return append(lines, "", "space pause", "n     step", "r     restart", "q     quit")
}
