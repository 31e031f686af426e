package ca

import "errors"

// Errors reported by the engine. Call sites wrap them with detail, so compare
// with errors.Is.
var (
	ErrDimensionMismatch = errors.New("dimension mismatch")
	ErrInvalidShape      = errors.New("invalid shape")
	ErrInvalidOffset     = errors.New("invalid wrap offset")
	ErrSizeMismatch      = errors.New("neighbor state count does not match neighborhood size")
	ErrInvalidState      = errors.New("invalid cell state")
	ErrRange             = errors.New("count out of range")
	ErrUnconfigured      = errors.New("rule has no transition function")
	ErrInvalidSteps      = errors.New("steps must be at least 1")

	ErrEmptyNeighborhood = errors.New("neighborhood has no offsets")
	ErrInvalidDimension  = errors.New("dimension must be at least 1")
	ErrInvalidRadius     = errors.New("radius must not be negative")
	ErrOutOfBounds       = errors.New("address outside the grid")
	ErrIndexOutOfRange   = errors.New("neighbor index out of range")
	ErrSyntax            = errors.New("syntax error")
)
