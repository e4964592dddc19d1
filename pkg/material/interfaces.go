package material

import (
	"github.com/df07/go-scene-raytracer/pkg/core"
)

// Scatter is one lobe's contribution: the ray to trace next, how much the
// surface tints it and how strongly the lobe is weighted in the mix
type Scatter struct {
	Ray         core.Ray  // The scattered ray
	Attenuation core.Vec3 // Color attenuation
	Weight      float64   // Mixing coefficient of the lobe
}

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	Point     core.Vec3 // Point of intersection
	Normal    core.Vec3 // Surface normal at intersection, always facing the ray
	T         float64   // Parameter t along the ray
	FrontFace bool      // Whether ray hit the front face
	UV        core.Vec2 // Surface texture coordinates
	Material  *Material // Material of the hit object, nil for lights
	IsLight   bool      // Whether the hit object is an emitter
	Light     *Light    // Emitter of the hit object when IsLight is set
}

// SetFaceNormal sets the normal vector and determines front/back face
func (h *HitRecord) SetFaceNormal(ray core.Ray, outwardNormal core.Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}
