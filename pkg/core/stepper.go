package core

// Snapshot is one immutable generation produced by a Stepper.
type Snapshot interface {
	// Extinct reports the all-dead terminal condition.
	Extinct() bool
}

// Stepper advances a generation of type S by one synchronous update.
type Stepper[S Snapshot] interface {
	Name() string
	// Check rejects an initial state the stepper cannot run. It is called
	// once, before the first step.
	Check(initial S) error
	// Step returns the next generation. prev is never modified.
	Step(prev S) S
}
