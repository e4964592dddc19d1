package geometry

import (
	"math"

	"github.com/df07/go-scene-raytracer/pkg/core"
	"github.com/df07/go-scene-raytracer/pkg/material"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material *material.Material
}

// NewSphere creates a new sphere. Negative radii are clamped to zero.
func NewSphere(center core.Vec3, radius float64, mat *material.Material) *Sphere {
	return &Sphere{
		Center:   center,
		Radius:   math.Max(0, radius),
		Material: mat,
	}
}

// Hit tests if a ray intersects with the sphere
func (s *Sphere) Hit(ray core.Ray, rayT core.Interval) (material.HitRecord, bool) {
	t, ok := intersectSphere(s.Center, s.Radius, ray, rayT)
	if !ok {
		return material.HitRecord{}, false
	}

	rec := material.HitRecord{
		T:        t,
		Point:    ray.At(t),
		Material: s.Material,
	}
	outwardNormal := rec.Point.Subtract(s.Center).Multiply(1.0 / s.Radius)
	rec.SetFaceNormal(ray, outwardNormal)
	rec.UV = SphereUV(outwardNormal)

	return rec, true
}

// intersectSphere solves the half-b quadratic and returns the nearest root
// surrounded by rayT
func intersectSphere(center core.Vec3, radius float64, ray core.Ray, rayT core.Interval) (float64, bool) {
	if radius <= 0 {
		return 0, false
	}

	oc := center.Subtract(ray.Origin)
	a := ray.Direction.LengthSquared()
	if a == 0 {
		return 0, false
	}
	h := ray.Direction.Dot(oc)
	c := oc.LengthSquared() - radius*radius

	discriminant := h*h - a*c
	if discriminant < 0 {
		return 0, false
	}
	sqrtD := math.Sqrt(discriminant)

	// Try the closer intersection point first
	root := (h - sqrtD) / a
	if !rayT.Surrounds(root) {
		root = (h + sqrtD) / a
		if !rayT.Surrounds(root) {
			return 0, false
		}
	}
	return root, true
}

// SphereUV maps a point on the unit sphere to texture coordinates.
// u runs around the y axis starting at -x, v runs from -y (0) to +y (1).
func SphereUV(p core.Vec3) core.Vec2 {
	theta := math.Acos(-p.Y)
	phi := math.Atan2(-p.Z, p.X) + math.Pi

	return core.NewVec2(phi/(2*math.Pi), theta/math.Pi)
}
