package scene

import (
	"fmt"

	"github.com/SummersBrian/cmsc427ps3/types"
	"github.com/chewxy/math32"
)

type ShapeType uint8

const (
	SphereShape ShapeType = iota
	PlaneShape
	TriangleShape
)

func (st ShapeType) String() string {
	switch st {
	case SphereShape:
		return "sphere"
	case PlaneShape:
		return "plane"
	case TriangleShape:
		return "triangle"
	}
	return fmt.Sprintf("ShapeType(%d)", uint8(st))
}

// Rays that are almost parallel to a plane or triangle never hit it.
const parallelEpsilon = 1e-8

// Defines a scene shape. The Type field selects which of the geometry
// fields are meaningful:
//   - SphereShape: Origin (center) and Radius.
//   - PlaneShape: Origin (a point on the plane) and Normal.
//   - TriangleShape: Vertices and Normal.
//
// Shapes are compared by identity; two shapes with the same geometry are
// still different shapes.
type Shape struct {
	Type ShapeType

	Origin   types.Vec3
	Radius   float32
	Normal   types.Vec3
	Vertices [3]types.Vec3

	// Cached triangle edges (v1-v0, v2-v0).
	edge1, edge2 types.Vec3

	Material *Material
}

// Create new sphere shape.
func NewSphere(center types.Vec3, radius float32, material *Material) (*Shape, error) {
	if !(radius > 0) || !types.IsFinite(radius) || !center.IsFinite() {
		return nil, ErrInvalidRadius
	}
	if material == nil {
		return nil, ErrNoMaterial
	}
	return &Shape{
		Type:     SphereShape,
		Origin:   center,
		Radius:   radius,
		Material: material,
	}, nil
}

// Create new infinite plane shape passing through point with the given normal.
func NewPlane(point, normal types.Vec3, material *Material) (*Shape, error) {
	n, err := normal.TryNormalize()
	if err != nil || !point.IsFinite() {
		return nil, ErrDegenerateShape
	}
	if material == nil {
		return nil, ErrNoMaterial
	}
	return &Shape{
		Type:     PlaneShape,
		Origin:   point,
		Normal:   n,
		Material: material,
	}, nil
}

// Create new triangle shape. The outward normal follows the right-hand rule
// for the vertex order v0, v1, v2.
func NewTriangle(v0, v1, v2 types.Vec3, material *Material) (*Shape, error) {
	if !v0.IsFinite() || !v1.IsFinite() || !v2.IsFinite() {
		return nil, ErrDegenerateShape
	}
	e1 := v1.Sub(v0)
	e2 := v2.Sub(v0)
	n, err := e1.Cross(e2).TryNormalize()
	if err != nil {
		return nil, ErrDegenerateShape
	}
	if material == nil {
		return nil, ErrNoMaterial
	}
	return &Shape{
		Type:     TriangleShape,
		Vertices: [3]types.Vec3{v0, v1, v2},
		Normal:   n,
		edge1:    e1,
		edge2:    e2,
		Material: material,
	}, nil
}

// Returns true if other refers to this exact shape.
func (s *Shape) Equals(other *Shape) bool {
	return s == other
}

// Intersect the shape with a ray. A hit is only reported when the hit
// distance t is finite and satisfies 0 < t < tMax. The returned normal is
// the outward surface normal at the hit point; it is not flipped to face
// the ray.
func (s *Shape) Intersect(ray types.Ray, tMax float32) (float32, types.Vec3, bool) {
	var t float32
	var normal types.Vec3
	var ok bool

	switch s.Type {
	case SphereShape:
		t, normal, ok = s.intersectSphere(ray, tMax)
	case PlaneShape:
		t, normal, ok = s.intersectPlane(ray, tMax)
	case TriangleShape:
		t, normal, ok = s.intersectTriangle(ray, tMax)
	}

	if !ok || !types.IsFinite(t) {
		return 0, types.Vec3{}, false
	}
	return t, normal, true
}

func (s *Shape) intersectSphere(ray types.Ray, tMax float32) (float32, types.Vec3, bool) {
	oc := ray.Origin.Sub(s.Origin)

	// Solve at² + 2bt + c = 0
	a := ray.Dir.Dot(ray.Dir)
	halfB := oc.Dot(ray.Dir)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 || a == 0 {
		return 0, types.Vec3{}, false
	}

	sqrtD := math32.Sqrt(discriminant)

	// Try the nearest root first; fall back to the far root when the ray
	// starts inside the sphere.
	t := (-halfB - sqrtD) / a
	if !inRange(t, tMax) {
		t = (-halfB + sqrtD) / a
		if !inRange(t, tMax) {
			return 0, types.Vec3{}, false
		}
	}

	normal := ray.At(t).Sub(s.Origin).Mul(1.0 / s.Radius)
	return t, normal, true
}

func (s *Shape) intersectPlane(ray types.Ray, tMax float32) (float32, types.Vec3, bool) {
	denominator := ray.Dir.Dot(s.Normal)
	if math32.Abs(denominator) < parallelEpsilon {
		return 0, types.Vec3{}, false
	}

	t := s.Origin.Sub(ray.Origin).Dot(s.Normal) / denominator
	if !inRange(t, tMax) {
		return 0, types.Vec3{}, false
	}
	return t, s.Normal, true
}

// Möller-Trumbore ray/triangle intersection.
func (s *Shape) intersectTriangle(ray types.Ray, tMax float32) (float32, types.Vec3, bool) {
	h := ray.Dir.Cross(s.edge2)
	a := s.edge1.Dot(h)
	if math32.Abs(a) < parallelEpsilon {
		return 0, types.Vec3{}, false
	}

	f := 1.0 / a
	sv := ray.Origin.Sub(s.Vertices[0])
	u := f * sv.Dot(h)
	if u < 0 || u > 1 {
		return 0, types.Vec3{}, false
	}

	q := sv.Cross(s.edge1)
	v := f * ray.Dir.Dot(q)
	if v < 0 || u+v > 1 {
		return 0, types.Vec3{}, false
	}

	t := f * s.edge2.Dot(q)
	if !inRange(t, tMax) {
		return 0, types.Vec3{}, false
	}
	return t, s.Normal, true
}

func inRange(t, tMax float32) bool {
	return t > 0 && t < tMax
}
