package ui

import (
	"slices"
	"testing"
)

func TestStatusLines(t *testing.T) {
	s := Status{Engine: "incremental", Rule: "2,3,3,3", Shape: []int{50, 50}, Generation: 3, Total: 11, Population: 42}
	lines := s.Lines()
	for _, want := range []string{"engine incremental", "rule   2,3,3,3", "world  50x50", "gen    3/10", "alive  42", "playing"} {
		if !slices.Contains(lines, want) {
			t.Fatalf("missing %q in %q", want, lines)
		}
	}
	if slices.Contains(lines, "run extinct") {
		t.Fatal("termination shown before the last generation")
	}

	s.Generation, s.Termination, s.Paused = 10, "extinct", true
	lines = s.Lines()
	if !slices.Contains(lines, "run extinct") || !slices.Contains(lines, "paused") {
		t.Fatalf("final frame lines %q", lines)
	}
}

func TestStatusZeroDimensional(t *testing.T) {
	if lines := (Status{Total: 1}).Lines(); !slices.Contains(lines, "world  point") {
		t.Fatalf("lines %q", lines)
	}
}
