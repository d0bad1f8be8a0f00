package icp

import "errors"

var (
	// ErrNilMatrix indicates that a required matrix argument was nil.
	ErrNilMatrix = errors.New("icp: nil matrix")

	// ErrEmptyInput indicates a point matrix with zero rows or columns.
	ErrEmptyInput = errors.New("icp: empty input")

	// ErrShapeMismatch indicates that the reference and target matrices
	// do not share a shape.
	ErrShapeMismatch = errors.New("icp: shape mismatch")

	// ErrInvalidDim indicates an Options.Dim other than Dim2D or Dim3D,
	// or input matrices whose column count does not match it.
	ErrInvalidDim = errors.New("icp: invalid dimension")

	// ErrBadIterations indicates a non-positive Options.MaxIterations.
	ErrBadIterations = errors.New("icp: iteration budget must be positive")
)
