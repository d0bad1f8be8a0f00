package kabsch

import "errors"

var (
	// ErrNilMatrix indicates that a required matrix argument was nil.
	ErrNilMatrix = errors.New("kabsch: nil matrix")

	// ErrEmptyInput indicates a matrix with zero rows or zero columns.
	ErrEmptyInput = errors.New("kabsch: empty input")

	// ErrShapeMismatch indicates that two matrices that must share a
	// shape (or a rotation/translation with the wrong dimensions) do not.
	ErrShapeMismatch = errors.New("kabsch: shape mismatch")

	// ErrSVDFailed indicates that the singular value decomposition of
	// the cross-covariance matrix did not converge.
	ErrSVDFailed = errors.New("kabsch: svd failed to converge")
)
