package scene

import "errors"

var (
	ErrInvalidFrameDims  = errors.New("scene: frame width and height must be positive")
	ErrInvalidFOV        = errors.New("scene: camera field of view must be in the (0, 180) degree range")
	ErrDegenerateCamera  = errors.New("scene: camera basis vectors are degenerate")
	ErrInvalidRadius     = errors.New("scene: sphere radius must be positive and finite")
	ErrDegenerateShape   = errors.New("scene: shape geometry is degenerate")
	ErrNoMaterial        = errors.New("scene: no material assigned to shape")
	ErrInvalidMaterial   = errors.New("scene: material specular fraction must be in [0, 1] and phong exponent non-negative")
	ErrDegenerateLight   = errors.New("scene: light direction is degenerate")
	ErrCoincidentLight   = errors.New("scene: point light coincides with the shaded point")
	ErrDuplicateMaterial = errors.New("scene: material already added")
)
