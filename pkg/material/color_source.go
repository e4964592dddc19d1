package material

import (
	"math"

	"github.com/df07/go-scene-raytracer/pkg/core"
)

// ColorSource provides spatially-varying colors for materials
type ColorSource interface {
	// Evaluate returns color at given UV coordinates and 3D point
	// UV is used for image textures, point for procedural textures
	Evaluate(uv core.Vec2, point core.Vec3) core.Vec3
}

// SolidColor provides uniform color
type SolidColor struct {
	Color core.Vec3
}

// NewSolidColor creates a new solid color source
func NewSolidColor(color core.Vec3) *SolidColor {
	return &SolidColor{Color: color}
}

// Evaluate returns the solid color regardless of UV or position
func (s *SolidColor) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	return s.Color
}

// CheckerTexture alternates two colors on a 3D lattice of cubes
type CheckerTexture struct {
	InvScale float64
	Even     core.Vec3
	Odd      core.Vec3
}

// NewCheckerTexture creates a checker pattern whose cubes have edge length scale
func NewCheckerTexture(scale float64, even, odd core.Vec3) *CheckerTexture {
	return &CheckerTexture{InvScale: 1.0 / scale, Even: even, Odd: odd}
}

// Evaluate picks Even or Odd from the parity of the lattice cell containing point
func (c *CheckerTexture) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	x := int(math.Floor(c.InvScale * point.X))
	y := int(math.Floor(c.InvScale * point.Y))
	z := int(math.Floor(c.InvScale * point.Z))

	if (x+y+z)%2 == 0 {
		return c.Even
	}
	return c.Odd
}
