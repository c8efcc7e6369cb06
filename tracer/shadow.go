package tracer

import (
	"github.com/SummersBrian/cmsc427ps3/scene"
	"github.com/SummersBrian/cmsc427ps3/types"
	"github.com/chewxy/math32"
)

// Returns true if any shape other than exclude lies along the ray from point
// towards lightDir.
func (tr *Tracer) IsOccluded(point, lightDir types.Vec3, exclude *scene.Shape) bool {
	return tr.IsOccludedWithin(point, lightDir, exclude, math32.Inf(1))
}

// Like IsOccluded but only shapes closer than maxT block the light.
func (tr *Tracer) IsOccludedWithin(point, lightDir types.Vec3, exclude *scene.Shape, maxT float32) bool {
	tr.stats.ShadowRays++

	ray := types.Ray{Origin: point, Dir: lightDir}
	for _, shape := range tr.scene.Shapes {
		if shape.Equals(exclude) {
			continue
		}
		if _, _, ok := shape.Intersect(ray, maxT); ok {
			return true
		}
	}
	return false
}
