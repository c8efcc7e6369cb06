package types

import (
	"errors"

	"github.com/chewxy/math32"
	"golang.org/x/image/math/f32"
)

// Vectors whose length falls below this threshold cannot be normalized.
const floatCmpEpsilon = 1e-12

var ErrDegenerateVector = errors.New("types: cannot normalize zero-length or non-finite vector")

type Vec3 f32.Vec3

// Define a 3 component vector.
func XYZ(x, y, z float32) Vec3 {
	return Vec3{x, y, z}
}

// Add a vector.
func (v Vec3) Add(v2 Vec3) Vec3 {
	return Vec3{v[0] + v2[0], v[1] + v2[1], v[2] + v2[2]}
}

// Subtract a vector.
func (v Vec3) Sub(v2 Vec3) Vec3 {
	return Vec3{v[0] - v2[0], v[1] - v2[1], v[2] - v2[2]}
}

// Multiply a 3 component vector with a scalar.
func (v Vec3) Mul(s float32) Vec3 {
	return Vec3{v[0] * s, v[1] * s, v[2] * s}
}

// Negate vector.
func (v Vec3) Neg() Vec3 {
	return Vec3{-v[0], -v[1], -v[2]}
}

// Get 3 component vector length.
func (v Vec3) Len() float32 {
	return math32.Sqrt(v.Dot(v))
}

// Normalize 3 component vector. Zero-length and non-finite vectors
// normalize to the zero vector; use TryNormalize when the caller needs to
// detect that case.
func (v Vec3) Normalize() Vec3 {
	n, err := v.TryNormalize()
	if err != nil {
		return Vec3{}
	}
	return n
}

// Normalize 3 component vector or return ErrDegenerateVector if its length
// is zero or not finite.
func (v Vec3) TryNormalize() (Vec3, error) {
	l := v.Len()
	if l < floatCmpEpsilon || !isFinite(l) {
		return Vec3{}, ErrDegenerateVector
	}
	l = 1.0 / l
	return Vec3{v[0] * l, v[1] * l, v[2] * l}, nil
}

// Calculate dot product of 2 vectors
func (v Vec3) Dot(v2 Vec3) float32 {
	return v[0]*v2[0] + v[1]*v2[1] + v[2]*v2[2]
}

// Calculate cross product of 2 vectors.
func (v Vec3) Cross(v2 Vec3) Vec3 {
	return Vec3{v[1]*v2[2] - v[2]*v2[1], v[2]*v2[0] - v[0]*v2[2], v[0]*v2[1] - v[1]*v2[0]}
}

// Reflect v about the (unit) normal n: v - 2(v·n)n.
func (v Vec3) Reflect(n Vec3) Vec3 {
	return v.Sub(n.Mul(2 * v.Dot(n)))
}

// Returns true if all vector components are finite.
func (v Vec3) IsFinite() bool {
	return isFinite(v[0]) && isFinite(v[1]) && isFinite(v[2])
}

func isFinite(f float32) bool {
	return !math32.IsNaN(f) && !math32.IsInf(f, 0)
}
