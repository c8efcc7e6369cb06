package tracer

import "errors"

var (
	ErrSceneNotDefined  = errors.New("tracer: no scene defined")
	ErrInvalidMaxDepth  = errors.New("tracer: max recursion depth must not be negative")
	ErrInvalidBias      = errors.New("tracer: shadow bias must be non-negative and finite")
	ErrInvalidBlock     = errors.New("tracer: block request exceeds frame bounds")
	ErrImagePlaneNotSet = errors.New("tracer: no image plane defined")
)
