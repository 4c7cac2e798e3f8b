package core

import "fmt"

// Termination explains why a run stopped. Both values are normal outcomes.
type Termination int

const (
	// TerminationExhausted means the iteration budget was used up.
	TerminationExhausted Termination = iota
	// TerminationExtinct means a generation had no live cells.
	TerminationExtinct
)

func (t Termination) String() string {
	switch t {
	case TerminationExhausted:
		return "exhausted"
	case TerminationExtinct:
		return "extinct"
	default:
		return fmt.Sprintf("Termination(%d)", int(t))
	}
}

// Result is the generation sequence of one run. Generations[0] is the
// initial state.
type Result[S any] struct {
	Generations []S
	Termination Termination
}

// Last returns the final generation.
func (r Result[S]) Last() S { return r.Generations[len(r.Generations)-1] }

// Steps returns how many generations were computed after the initial one.
func (r Result[S]) Steps() int { return len(r.Generations) - 1 }

// Run applies st to initial up to maxIterations times and collects every
// generation. It stops early, with TerminationExtinct, as soon as a
// generation (including the initial one) is extinct. A negative budget is
// treated as zero. The only error comes from st.Check.
func Run[S Snapshot](initial S, st Stepper[S], maxIterations int) (Result[S], error) {
	if err := st.Check(initial); err != nil {
		return Result[S]{}, fmt.Errorf("%s: %w", st.Name(), err)
	}
	maxIterations = max(maxIterations, 0)

	gens := make([]S, 1, min(maxIterations, 1024)+1)
	gens[0] = initial
	if initial.Extinct() {
		return Result[S]{Generations: gens, Termination: TerminationExtinct}, nil
	}

	cur := initial
	for i := 0; i < maxIterations; i++ {
		cur = st.Step(cur)
		gens = append(gens, cur)
		if cur.Extinct() {
			return Result[S]{Generations: gens, Termination: TerminationExtinct}, nil
		}
	}
	return Result[S]{Generations: gens, Termination: TerminationExhausted}, nil
}
