package point

import "errors"

var (
	// ErrOutOfRange indicates that a coordinate index is outside the
	// point's current size. SetValue returns this instead of panicking.
	ErrOutOfRange = errors.New("point: index out of range")

	// ErrDimensionMismatch indicates that an operand point is too short
	// for the requested operation (e.g. subtracting a larger point from
	// a smaller one).
	ErrDimensionMismatch = errors.New("point: dimension mismatch")
)
