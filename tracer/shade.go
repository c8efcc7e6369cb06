package tracer

import (
	"github.com/SummersBrian/cmsc427ps3/scene"
	"github.com/SummersBrian/cmsc427ps3/types"
	"github.com/chewxy/math32"
)

// Shade evaluates the color seen along ray. Primary rays start at depth 0.
// The result is clamped to [0, 1].
func (tr *Tracer) Shade(ray types.Ray, depth int) types.Color {
	return tr.shade(ray, depth, nil)
}

func (tr *Tracer) shade(ray types.Ray, depth int, exclude *scene.Shape) types.Color {
	if depth > tr.stats.MaxDepthReached {
		tr.stats.MaxDepthReached = depth
	}

	hit, ok := tr.FindClosestHit(ray, exclude)
	if !ok {
		return types.Color{}
	}

	mat := hit.Shape.Material
	out := mat.Color.MulColor(tr.scene.Ambient)

	origin := hit.Point.Add(hit.Normal.Mul(tr.opts.ShadowBias))
	for _, light := range tr.scene.Lights {
		lightDir, dist, err := light.Illuminate(hit.Point)
		if err != nil {
			continue
		}

		var occluded bool
		if light.Type == scene.PointLight {
			occluded = tr.IsOccludedWithin(origin, lightDir, hit.Shape, dist)
		} else {
			occluded = tr.IsOccluded(origin, lightDir, hit.Shape)
		}
		if occluded {
			continue
		}

		nDotL := hit.Normal.Dot(lightDir)
		diffuse := light.Color.MulColor(mat.Color).Mul(math32.Max(0, nDotL) * light.Falloff(dist))

		reflection := hit.Normal.Mul(2 * nDotL).Sub(lightDir)
		specAngle := math32.Max(0, reflection.Dot(ray.Dir.Neg()))
		specular := mat.Color.Mul(mat.SpecularFrac * math32.Pow(specAngle, mat.PhongExp))

		out = out.Add(diffuse).Add(specular)
	}

	if mat.IsReflective() && depth < tr.opts.MaxDepth {
		tr.stats.ReflectionRays++
		reflected := tr.shade(
			types.Ray{Origin: origin, Dir: ray.Dir.Reflect(hit.Normal).Normalize()},
			depth+1,
			hit.Shape,
		)
		out = out.Add(reflected.Mul(mat.SpecularFrac))
	}

	return out.Clamp()
}
