package tensor

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	// ErrInvalidArgument reports malformed input such as a coordinate vector
	// whose length differs from the tensor rank.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrOutOfRange reports a coordinate or index outside the tensor extents.
	ErrOutOfRange = errors.New("out of range")

	// ErrContractViolation reports an access the caller was responsible for
	// preventing: a linear index past the last element, or an access to a
	// tensor with no bound data.
	ErrContractViolation = errors.New("contract violation")
)

// CoordinateError describes a coordinate that does not fit its axis.
type CoordinateError struct {
	Axis   int
	Coord  uint64
	Extent uint64
}

// Error implements the error interface.
func (e *CoordinateError) Error() string {
	return fmt.Sprintf("%v: coordinate %d on axis %d (extent %d)", ErrOutOfRange, e.Coord, e.Axis, e.Extent)
}

// Unwrap lets errors.Is match ErrOutOfRange.
func (e *CoordinateError) Unwrap() error {
	return ErrOutOfRange
}
