package geometry

import (
	"cmp"
	"math"
	"slices"

	"github.com/df07/go-scene-raytracer/pkg/core"
	"github.com/df07/go-scene-raytracer/pkg/material"
)

// faceEpsilon is the slack allowed when classifying a point against a face
const faceEpsilon = 1e-8

// Polyhedron is a convex solid bounded by the intersection of half-spaces
type Polyhedron struct {
	Planes   []Plane
	Material *material.Material
}

// NewPolyhedron creates a polyhedron from its bounding planes
func NewPolyhedron(planes []Plane, mat *material.Material) *Polyhedron {
	return &Polyhedron{Planes: planes, Material: mat}
}

type faceHit struct {
	t     float64
	face  int
	point core.Vec3
	dist2 float64
}

// Hit intersects the ray with every face plane and returns the candidate
// nearest the ray origin that lies on the solid
func (p *Polyhedron) Hit(ray core.Ray, rayT core.Interval) (material.HitRecord, bool) {
	candidates := make([]faceHit, 0, len(p.Planes))
	for i, plane := range p.Planes {
		t, ok := plane.Intersect(ray)
		if !ok || !rayT.Surrounds(t) {
			continue
		}
		point := ray.At(t)
		candidates = append(candidates, faceHit{t: t, face: i, point: point, dist2: point.SquaredDistance(ray.Origin)})
	}

	slices.SortFunc(candidates, func(a, b faceHit) int {
		return cmp.Compare(a.dist2, b.dist2)
	})

	for _, c := range candidates {
		onSolid, inward := p.classify(c.point)
		if !onSolid {
			continue
		}

		rec := material.HitRecord{
			T:        c.t,
			Point:    c.point,
			Material: p.Material,
		}
		normal := p.Planes[c.face].Normal
		if inward {
			normal = normal.Negate()
		}
		rec.SetFaceNormal(ray, normal)
		rec.UV = faceUV(normal, c.point)
		return rec, true
	}

	return material.HitRecord{}, false
}

// Contains reports whether point lies on the solid. A point counts when it is
// inside-or-on every face, or outside-or-on every face; both tests admit
// points on the seam between neighbouring faces.
func (p *Polyhedron) Contains(point core.Vec3) bool {
	onSolid, _ := p.classify(point)
	return onSolid
}

// classify reports whether point lies on the solid and whether it was
// accepted with the face normals pointing into the solid
func (p *Polyhedron) classify(point core.Vec3) (onSolid, inward bool) {
	if len(p.Planes) == 0 {
		return false, false
	}

	insideOrOn, outsideOrOn := 0, 0
	for _, plane := range p.Planes {
		s := plane.SignedDistance(point)
		if s <= faceEpsilon {
			insideOrOn++
		}
		if s >= -faceEpsilon {
			outsideOrOn++
		}
	}

	if insideOrOn == len(p.Planes) {
		return true, false
	}
	return outsideOrOn == len(p.Planes), outsideOrOn == len(p.Planes)
}

// faceUV projects point onto a tangent basis of the face and wraps into [0,1)²
func faceUV(normal, point core.Vec3) core.Vec2 {
	seed := core.NewVec3(1, 0, 0)
	if math.Abs(normal.X) > 0.9 {
		seed = core.NewVec3(0, 1, 0)
	}
	tangent := seed.Cross(normal).Normalize()
	bitangent := normal.Cross(tangent)

	u := point.Dot(tangent)
	v := point.Dot(bitangent)
	return core.NewVec2(u-math.Floor(u), v-math.Floor(v))
}

// NewBox creates an axis-aligned box polyhedron spanning min to max
func NewBox(min, max core.Vec3, mat *material.Material) *Polyhedron {
	return NewPolyhedron([]Plane{
		NewPlane(1, 0, 0, -max.X),
		NewPlane(-1, 0, 0, min.X),
		NewPlane(0, 1, 0, -max.Y),
		NewPlane(0, -1, 0, min.Y),
		NewPlane(0, 0, 1, -max.Z),
		NewPlane(0, 0, -1, min.Z),
	}, mat)
}
