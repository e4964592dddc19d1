package material

import (
	"github.com/df07/go-scene-raytracer/pkg/core"
)

// ScatterDiffuse bounces the ray in a cosine-weighted direction around the normal
func (m *Material) ScatterDiffuse(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (Scatter, bool) {
	direction := hit.Normal.Add(core.RandomUnitVector(sampler))

	// Catch degenerate scatter direction
	if direction.NearZero() {
		direction = hit.Normal
	}

	return Scatter{
		Ray:         core.NewRay(hit.Point, direction),
		Attenuation: m.Color(hit),
		Weight:      m.Diffuse,
	}, true
}
