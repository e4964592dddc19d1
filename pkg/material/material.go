package material

import (
	"github.com/df07/go-scene-raytracer/pkg/core"
)

// Material mixes an ambient term with diffuse, reflective and refractive lobes.
// All coefficients are in [0,1]; RefractionIndex must be positive.
type Material struct {
	Texture          ColorSource
	Ambient          float64
	Diffuse          float64
	Specular         float64 // Carried from scene files, not evaluated
	SpecularExponent float64 // Carried from scene files, not evaluated
	Reflective       float64
	Fuzz             float64 // 0.0 = perfect mirror, 1.0 = very fuzzy
	Refractive       float64
	RefractionIndex  float64
}

// Coefficients groups the scalar parameters of a Material
type Coefficients struct {
	Ambient          float64
	Diffuse          float64
	Specular         float64
	SpecularExponent float64
	Reflective       float64
	Fuzz             float64
	Refractive       float64
	RefractionIndex  float64
}

// NewMaterial creates a material over texture. Fuzz is clamped to [0,1] and a
// non-positive refraction index falls back to 1.
func NewMaterial(texture ColorSource, c Coefficients) *Material {
	fuzz := core.NewInterval(0, 1).Clamp(c.Fuzz)
	ior := c.RefractionIndex
	if ior <= 0 {
		ior = 1.0
	}
	return &Material{
		Texture:          texture,
		Ambient:          c.Ambient,
		Diffuse:          c.Diffuse,
		Specular:         c.Specular,
		SpecularExponent: c.SpecularExponent,
		Reflective:       c.Reflective,
		Fuzz:             fuzz,
		Refractive:       c.Refractive,
		RefractionIndex:  ior,
	}
}

// NewLambertian creates a purely diffuse material
func NewLambertian(texture ColorSource) *Material {
	return NewMaterial(texture, Coefficients{Diffuse: 1, RefractionIndex: 1})
}

// NewMetal creates a purely reflective material
func NewMetal(texture ColorSource, fuzz float64) *Material {
	return NewMaterial(texture, Coefficients{Reflective: 1, Fuzz: fuzz, RefractionIndex: 1})
}

// NewDielectric creates a clear material that only refracts
func NewDielectric(refractionIndex float64) *Material {
	return NewMaterial(NewSolidColor(core.NewVec3(1, 1, 1)), Coefficients{Refractive: 1, RefractionIndex: refractionIndex})
}

// Color returns the texture color at the hit
func (m *Material) Color(hit HitRecord) core.Vec3 {
	if m.Texture == nil {
		return core.Vec3{}
	}
	return m.Texture.Evaluate(hit.UV, hit.Point)
}

// AmbientColor is the unconditional ambient contribution at the hit
func (m *Material) AmbientColor(hit HitRecord) core.Vec3 {
	return m.Color(hit).Multiply(m.Ambient)
}

// Scatter appends to dst every lobe with positive weight that produced a ray
// and returns the extended slice. Lobes are appended in diffuse, reflective,
// refractive order.
func (m *Material) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler, dst []Scatter) []Scatter {
	if m.Diffuse > 0 {
		if s, ok := m.ScatterDiffuse(rayIn, hit, sampler); ok {
			dst = append(dst, s)
		}
	}
	if m.Reflective > 0 {
		if s, ok := m.ScatterReflective(rayIn, hit, sampler); ok {
			dst = append(dst, s)
		}
	}
	if m.Refractive > 0 {
		if s, ok := m.ScatterRefractive(rayIn, hit, sampler); ok {
			dst = append(dst, s)
		}
	}
	return dst
}
