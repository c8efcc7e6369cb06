package tracer

import (
	"github.com/SummersBrian/cmsc427ps3/scene"
	"github.com/SummersBrian/cmsc427ps3/types"
	"github.com/chewxy/math32"
)

// A ray/shape intersection.
type Hit struct {
	Shape *scene.Shape
	T     float32
	Point types.Vec3

	// The surface normal, flipped when needed so it points against the
	// incoming ray.
	Normal types.Vec3
}

// Find the nearest shape hit by ray, skipping exclude (which may be nil).
// Shapes are tested in scene order; a later shape only replaces the current
// best hit if it is strictly closer.
func (tr *Tracer) FindClosestHit(ray types.Ray, exclude *scene.Shape) (Hit, bool) {
	var hit Hit
	best := math32.Inf(1)
	found := false

	for _, shape := range tr.scene.Shapes {
		if shape.Equals(exclude) {
			continue
		}

		t, normal, ok := shape.Intersect(ray, best)
		if !ok || !(t > 0) || !(t < best) {
			continue
		}

		best = t
		hit.Shape = shape
		hit.T = t
		hit.Normal = normal
		found = true
	}

	if !found {
		return Hit{}, false
	}

	hit.Point = ray.At(hit.T)
	if ray.Dir.Dot(hit.Normal) > 0 {
		hit.Normal = hit.Normal.Neg()
	}
	return hit, true
}
