package geometry

import (
	"math"

	"github.com/df07/go-scene-raytracer/pkg/core"
	"github.com/df07/go-scene-raytracer/pkg/material"
)

// Bulb is a spherical emitter. Its hit records carry the light, not a material.
type Bulb struct {
	Center core.Vec3
	Radius float64
	Light  *material.Light
}

// NewBulb creates a new spherical light
func NewBulb(center core.Vec3, radius float64, light *material.Light) *Bulb {
	return &Bulb{
		Center: center,
		Radius: math.Max(0, radius),
		Light:  light,
	}
}

// Hit tests if a ray intersects with the bulb
func (b *Bulb) Hit(ray core.Ray, rayT core.Interval) (material.HitRecord, bool) {
	t, ok := intersectSphere(b.Center, b.Radius, ray, rayT)
	if !ok {
		return material.HitRecord{}, false
	}

	rec := material.HitRecord{
		T:       t,
		Point:   ray.At(t),
		IsLight: true,
		Light:   b.Light,
	}
	outwardNormal := rec.Point.Subtract(b.Center).Multiply(1.0 / b.Radius)
	rec.SetFaceNormal(ray, outwardNormal)
	rec.UV = SphereUV(outwardNormal)

	return rec, true
}
