package geometry

import (
	"github.com/df07/go-scene-raytracer/pkg/core"
	"github.com/df07/go-scene-raytracer/pkg/material"
)

// World is an ordered collection of shapes queried by linear scan
type World struct {
	Shapes []Shape
}

// NewWorld creates a world holding shapes
func NewWorld(shapes ...Shape) *World {
	return &World{Shapes: shapes}
}

// Add appends a shape
func (w *World) Add(shape Shape) {
	w.Shapes = append(w.Shapes, shape)
}

// Len returns the number of shapes
func (w *World) Len() int {
	if w == nil {
		return 0
	}
	return len(w.Shapes)
}

// Hit returns the nearest intersection over all shapes. Each hit narrows the
// upper bound of the search interval so later shapes only report closer hits.
func (w *World) Hit(ray core.Ray, rayT core.Interval) (material.HitRecord, bool) {
	if w == nil {
		return material.HitRecord{}, false
	}
	var closest material.HitRecord
	hitAnything := false
	closestSoFar := rayT.Max

	for _, shape := range w.Shapes {
		if rec, ok := shape.Hit(ray, core.NewInterval(rayT.Min, closestSoFar)); ok {
			hitAnything = true
			closestSoFar = rec.T
			closest = rec
		}
	}

	return closest, hitAnything
}
