package life

import (
	"testing"

	"torus-life/pkg/core"
)

func blinker(t *testing.T) *core.Grid {
	t.Helper()
	g := core.MustGrid(4, 4)
	g.Set(1, 0, 1)
	g.Set(1, 1, 1)
	g.Set(1, 2, 1)
	return g
}

func TestBlinkerOscillation(t *testing.T) {
	start := blinker(t)
	other := core.MustGrid(4, 4)
	other.Set(1, 1, 0)
	other.Set(1, 1, 1)
	other.Set(1, 1, 2)

	runs := map[string]func() (core.Result[*core.Grid], error){
		"generic": func() (core.Result[*core.Grid], error) {
			return RunGeneric(start, core.Classic, 4)
		},
		"incremental": func() (core.Result[*core.Grid], error) {
			eng, err := core.NewEngine("incremental", core.Classic)
			if err != nil {
				return core.Result[*core.Grid]{}, err
			}
			return eng.Run(start, 4)
		},
	}

	for name, run := range runs {
		t.Run(name, func(t *testing.T) {
			res, err := run()
			if err != nil {
				t.Fatalf("run: %v", err)
			}
			if len(res.Generations) != 5 {
				t.Fatalf("expected 5 generations, got %d", len(res.Generations))
			}
			if res.Termination != core.TerminationExhausted {
				t.Fatalf("expected exhausted termination, got %s", res.Termination)
			}
			for gen, g := range res.Generations {
				want := start
				if gen%2 == 1 {
					want = other
				}
				if !g.Equal(want) {
					t.Fatalf("generation %d:\n%s\nexpected:\n%s", gen, g, want)
				}
			}
		})
	}
}

func TestAllDeadStaysDead(t *testing.T) {
	cases := []struct {
		shape []int
		rule  core.Rule
	}{
		{[]int{6, 6}, core.Classic},
		{[]int{3, 4, 5}, core.Classic},
		{[]int{7}, core.Rule{ELow: 1, EHigh: 2, FLow: 1, FHigh: 1}},
	}
	for _, tc := range cases {
		g := core.MustGrid(tc.shape...)
		s, err := NewGeneric(tc.rule, len(tc.shape))
		if err != nil {
			t.Fatalf("NewGeneric(%v): %v", tc.shape, err)
		}
		if next := s.Step(g); !next.Extinct() {
			t.Fatalf("shape %v: dead grid came alive:\n%s", tc.shape, next)
		}
	}

	enc, err := Encode(core.MustGrid(6, 6))
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if next := NewIncremental().Step(enc); !next.Extinct() {
		t.Fatal("incremental step revived a dead grid")
	}
}

func TestEarlyTerminationOnDeadStart(t *testing.T) {
	g := core.MustGrid(5, 5)

	res, err := RunGeneric(g, core.Classic, 10)
	if err != nil {
		t.Fatalf("generic run: %v", err)
	}
	if len(res.Generations) != 1 || res.Termination != core.TerminationExtinct {
		t.Fatalf("generic: got %d generations (%s), want 1 (extinct)", len(res.Generations), res.Termination)
	}

	eres, err := RunIncremental(g, 10)
	if err != nil {
		t.Fatalf("incremental run: %v", err)
	}
	if len(eres.Generations) != 1 || eres.Termination != core.TerminationExtinct {
		t.Fatalf("incremental: got %d generations (%s), want 1 (extinct)", len(eres.Generations), eres.Termination)
	}
}

func TestDyingPatternTerminatesEarly(t *testing.T) {
	// Two isolated cells die of underpopulation in one step.
	g := core.MustGrid(8, 8)
	g.Set(1, 1, 1)
	g.Set(1, 5, 5)

	res, err := RunIncremental(g, 10)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(res.Generations) != 2 {
		t.Fatalf("expected 2 generations, got %d", len(res.Generations))
	}
	if res.Termination != core.TerminationExtinct {
		t.Fatalf("expected extinct termination, got %s", res.Termination)
	}
	if sum := res.Last().Sum(); sum != 0 {
		t.Fatalf("expected packed sum 0, got %d", sum)
	}
}
