package core

import (
	"errors"
	"testing"
)

// countdown is a snapshot that dies when it reaches zero.
type countdown int

func (c countdown) Extinct() bool { return c == 0 }

type decrement struct {
	checkErr error
	calls    int
}

func (d *decrement) Name() string                  { return "decrement" }
func (d *decrement) Check(initial countdown) error { return d.checkErr }
func (d *decrement) Step(prev countdown) countdown {
	d.calls++
	return prev - 1
}

func TestRunExhaustsBudget(t *testing.T) {
	st := &decrement{}
	res, err := Run[countdown](countdown(10), st, 4)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.Termination != TerminationExhausted {
		t.Fatalf("termination = %s, want exhausted", res.Termination)
	}
	if len(res.Generations) != 5 || res.Steps() != 4 || st.calls != 4 {
		t.Fatalf("got %d generations after %d calls", len(res.Generations), st.calls)
	}
	if res.Generations[0] != 10 || res.Last() != 6 {
		t.Fatalf("unexpected sequence %v", res.Generations)
	}
}

func TestRunStopsWhenExtinct(t *testing.T) {
	st := &decrement{}
	res, err := Run[countdown](countdown(3), st, 10)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.Termination != TerminationExtinct {
		t.Fatalf("termination = %s, want extinct", res.Termination)
	}
	if len(res.Generations) != 4 || st.calls != 3 {
		t.Fatalf("got %d generations after %d calls", len(res.Generations), st.calls)
	}
}

func TestRunExtinctInitialState(t *testing.T) {
	st := &decrement{}
	res, err := Run[countdown](countdown(0), st, 10)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(res.Generations) != 1 || res.Termination != TerminationExtinct || st.calls != 0 {
		t.Fatalf("got %d generations (%s) after %d calls", len(res.Generations), res.Termination, st.calls)
	}
}

func TestRunNegativeBudget(t *testing.T) {
	res, err := Run[countdown](countdown(5), &decrement{}, -3)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(res.Generations) != 1 || res.Termination != TerminationExhausted {
		t.Fatalf("got %d generations (%s)", len(res.Generations), res.Termination)
	}
}

func TestRunCheckFailsBeforeStepping(t *testing.T) {
	st := &decrement{checkErr: ErrDimensionMismatch}
	_, err := Run[countdown](countdown(5), st, 3)
	if !errors.Is(err, ErrDimensionMismatch) {
		t.Fatalf("expected ErrDimensionMismatch, got %v", err)
	}
	if st.calls != 0 {
		t.Fatalf("stepper ran %d times after failed check", st.calls)
	}
}

func TestTerminationString(t *testing.T) {
	if TerminationExhausted.String() != "exhausted" || TerminationExtinct.String() != "extinct" {
		t.Fatal("unexpected termination names")
	}
	if Termination(7).String() != "Termination(7)" {
		t.Fatalf("got %q", Termination(7).String())
	}
}
