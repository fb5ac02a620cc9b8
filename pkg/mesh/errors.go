package mesh

import "errors"

var (
	// ErrUnsupportedTopology is returned when a face is not a triangle
	ErrUnsupportedTopology = errors.New("unsupported topology")
	// ErrInvalidInput is returned for a missing mesh, a non-finite vertex, an
	// out-of-range vertex index or a non-positive unit scale
	ErrInvalidInput = errors.New("invalid input")
)
