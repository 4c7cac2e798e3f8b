package core

import "errors"

var (
	// ErrInvalidShape reports a grid extent that is not a positive integer.
	ErrInvalidShape = errors.New("invalid shape")
	// ErrDimensionMismatch reports a grid whose dimension or extents an
	// engine cannot accept.
	ErrDimensionMismatch = errors.New("dimension mismatch")
	// ErrRuleOutOfRange reports a rule threshold that is negative, inverted
	// or larger than the neighborhood allows.
	ErrRuleOutOfRange = errors.New("rule out of range")
	// ErrUnknownEngine is returned when no engine is registered under a name.
	ErrUnknownEngine = errors.New("unknown engine")
)
