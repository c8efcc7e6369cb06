package types

// A ray with an origin and a (unit) direction.
type Ray struct {
	Origin Vec3
	Dir    Vec3
}

// Get the point at distance t along the ray.
func (r Ray) At(t float32) Vec3 {
	return r.Origin.Add(r.Dir.Mul(t))
}
