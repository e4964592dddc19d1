package material

import (
	"math"

	"github.com/df07/go-scene-raytracer/pkg/core"
)

// ScatterRefractive either refracts through the surface or reflects off it,
// choosing reflection on total internal reflection or with Schlick probability
func (m *Material) ScatterRefractive(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (Scatter, bool) {
	// Dielectrics always attenuate by 1.0 (no color absorption for clear glass)
	attenuation := core.NewVec3(1.0, 1.0, 1.0)

	var refractionRatio float64
	if hit.FrontFace {
		refractionRatio = 1.0 / m.RefractionIndex
	} else {
		refractionRatio = m.RefractionIndex
	}

	unitDirection := rayIn.Direction.Normalize()

	cosTheta := math.Min(unitDirection.Negate().Dot(hit.Normal), 1.0)
	sinTheta := math.Sqrt(1.0 - cosTheta*cosTheta)

	cannotRefract := refractionRatio*sinTheta > 1.0

	var direction core.Vec3
	if cannotRefract || Reflectance(cosTheta, refractionRatio) > sampler.Get1D() {
		direction = core.Reflect(unitDirection, hit.Normal)
	} else {
		direction = core.Refract(unitDirection, hit.Normal, refractionRatio)
	}

	return Scatter{
		Ray:         core.NewRay(hit.Point, direction),
		Attenuation: attenuation,
		Weight:      m.Refractive,
	}, true
}

// Reflectance calculates the Fresnel reflectance using Schlick's approximation
func Reflectance(cosine, refractionRatio float64) float64 {
	r0 := (1 - refractionRatio) / (1 + refractionRatio)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}
