package material

import (
	"github.com/df07/go-scene-raytracer/pkg/core"
)

// ScatterReflective mirrors the ray about the normal, perturbed by Fuzz.
// It fails when the perturbed direction points into the surface.
func (m *Material) ScatterReflective(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (Scatter, bool) {
	reflected := core.Reflect(rayIn.Direction.Normalize(), hit.Normal)

	if m.Fuzz > 0 {
		reflected = reflected.Add(core.RandomUnitVector(sampler).Multiply(m.Fuzz))
	}
	if reflected.NearZero() {
		reflected = hit.Normal
	}

	// Only scatter if the ray is above the surface (not absorbed)
	if reflected.Dot(hit.Normal) <= 0 {
		return Scatter{}, false
	}

	return Scatter{
		Ray:         core.NewRay(hit.Point, reflected),
		Attenuation: m.Color(hit),
		Weight:      m.Reflective,
	}, true
}
