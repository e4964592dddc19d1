package material

import (
	"github.com/df07/go-scene-raytracer/pkg/core"
)

// Light is an emitter. Rays that hit it terminate with its emission.
type Light struct {
	Emission core.Vec3
}

// NewLight creates a light emitting color scaled by intensity
func NewLight(color core.Vec3, intensity float64) *Light {
	return &Light{Emission: color.Multiply(intensity)}
}

// Emitted returns the emitted radiance
func (l *Light) Emitted() core.Vec3 {
	return l.Emission
}
