package scene

import (
	"github.com/df07/go-scene-raytracer/pkg/core"
	"github.com/df07/go-scene-raytracer/pkg/geometry"
	"github.com/df07/go-scene-raytracer/pkg/loaders"
	"github.com/df07/go-scene-raytracer/pkg/material"
)

// NewDefaultScene creates a small scene exercising every material lobe and
// both shape kinds
func NewDefaultScene() *loaders.Scene {
	world := geometry.NewWorld()

	checker := material.NewCheckerTexture(0.5, core.NewVec3(0.2, 0.3, 0.1), core.NewVec3(0.9, 0.9, 0.9))
	ground := material.NewMaterial(checker, material.Coefficients{Ambient: 0.1, Diffuse: 0.9})

	matte := material.NewMaterial(
		material.NewSolidColor(core.NewVec3(0.65, 0.25, 0.2)),
		material.Coefficients{Ambient: 0.1, Diffuse: 0.9},
	)
	mirror := material.NewMetal(material.NewSolidColor(core.NewVec3(0.8, 0.8, 0.8)), 0.0)
	brushed := material.NewMetal(material.NewSolidColor(core.NewVec3(0.8, 0.6, 0.2)), 0.3)
	glass := material.NewDielectric(1.5)
	cube := material.NewMaterial(
		material.NewSolidColor(core.NewVec3(0.1, 0.2, 0.5)),
		material.Coefficients{Ambient: 0.05, Diffuse: 0.6, Reflective: 0.35, Fuzz: 0.1},
	)

	// Ground is a huge sphere so it stays inside the sphere/polyhedron model
	world.Add(geometry.NewSphere(core.NewVec3(0, -1000, -1), 1000, ground))

	world.Add(geometry.NewSphere(core.NewVec3(0, 0.5, -1), 0.5, matte))
	world.Add(geometry.NewSphere(core.NewVec3(-1.1, 0.5, -1), 0.5, mirror))
	world.Add(geometry.NewSphere(core.NewVec3(1.1, 0.5, -1), 0.5, brushed))
	world.Add(geometry.NewSphere(core.NewVec3(0.45, 0.2, -0.3), 0.2, glass))
	world.Add(geometry.NewBox(core.NewVec3(-0.75, 0, -0.55), core.NewVec3(-0.35, 0.4, -0.15), cube))

	world.Add(geometry.NewBulb(core.NewVec3(30, 30.5, 15), 10, material.NewLight(core.NewVec3(1, 0.95, 0.9), 4)))

	return &loaders.Scene{
		Eye:        core.NewVec3(0, 0.75, 2),
		LookAt:     core.NewVec3(0, 0.5, -1),
		Up:         up,
		VFov:       40,
		Background: core.NewVec3(0.7, 0.8, 1.0),
		World:      world,
		Lights:     1,
	}
}

// NewAmbientTestScene holds one sphere whose material only has an ambient
// term, so sphere pixels are pure red and every other pixel is the background
func NewAmbientTestScene() *loaders.Scene {
	flat := material.NewMaterial(
		material.NewSolidColor(core.NewVec3(1, 0, 0)),
		material.Coefficients{Ambient: 1},
	)

	return &loaders.Scene{
		Eye:        core.NewVec3(0, 0, 0),
		LookAt:     core.NewVec3(0, 0, -1),
		Up:         up,
		VFov:       90,
		Background: core.NewVec3(1, 1, 1),
		World:      geometry.NewWorld(geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, flat)),
	}
}
