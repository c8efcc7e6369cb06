package renderer

import "errors"

var (
	ErrInvalidFrameDims = errors.New("renderer: frame width and height must be positive")
	ErrSceneNotDefined  = errors.New("renderer: no scene defined")
	ErrCameraNotDefined = errors.New("renderer: no camera defined")
	ErrFrameNotRendered = errors.New("renderer: frame has not been rendered yet")
)
