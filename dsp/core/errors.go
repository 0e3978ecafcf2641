package core

import "errors"

var (
	// ErrShapeMismatch is returned when declared dimensions do not match the
	// data, when a grid is ragged, or when operand shapes are incompatible.
	ErrShapeMismatch = errors.New("core: shape mismatch")

	// ErrInvalidDimensions is returned for non-positive shapes.
	ErrInvalidDimensions = errors.New("core: dimensions must be > 0")
)
