package types

import "github.com/chewxy/math32"

const Pi = math32.Pi

// Convert an angle in degrees to radians.
func Radians(deg float32) float32 {
	return deg * Pi / 180.0
}

// Returns true if f is neither NaN nor infinite.
func IsFinite(f float32) bool {
	return isFinite(f)
}
