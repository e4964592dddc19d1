package geometry

import (
	"math"

	"github.com/df07/go-scene-raytracer/pkg/core"
)

// Plane is the boundary of the half-space dot(Normal, p) + Offset <= 0.
// Normal points out of the half-space.
type Plane struct {
	Normal core.Vec3
	Offset float64
}

// NewPlane creates the plane a*x + b*y + c*z + d = 0, rescaled so the normal
// has unit length. A zero normal is kept as is and never intersects.
func NewPlane(a, b, c, d float64) Plane {
	n := core.NewVec3(a, b, c)
	length := n.Length()
	if length == 0 {
		return Plane{Normal: n, Offset: d}
	}
	return Plane{Normal: n.Multiply(1 / length), Offset: d / length}
}

// SignedDistance is negative inside the half-space, positive outside
func (p Plane) SignedDistance(point core.Vec3) float64 {
	return p.Normal.Dot(point) + p.Offset
}

// Intersect returns the ray parameter where the ray crosses the plane
func (p Plane) Intersect(ray core.Ray) (float64, bool) {
	denominator := p.Normal.Dot(ray.Direction)

	// If denominator is close to zero, ray is parallel to plane (no intersection)
	if math.Abs(denominator) < 1e-8 {
		return 0, false
	}

	return (-p.Offset - p.Normal.Dot(ray.Origin)) / denominator, true
}
