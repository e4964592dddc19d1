package scene

import (
	"github.com/df07/go-scene-raytracer/pkg/core"
	"github.com/df07/go-scene-raytracer/pkg/geometry"
	"github.com/df07/go-scene-raytracer/pkg/loaders"
	"github.com/df07/go-scene-raytracer/pkg/material"
)

// NewTextureTestScene maps generated images onto spheres and a box to check
// the UV conventions of each shape
func NewTextureTestScene() *loaders.Scene {
	uvDebug := material.NewImageTexture(material.NewUVDebugImage(256, 256))
	checker := material.NewImageTexture(material.NewCheckerboardImage(256, 256, 32,
		core.NewVec3(0.9, 0.9, 0.9), core.NewVec3(0.1, 0.1, 0.6)))

	textured := func(texture material.ColorSource) *material.Material {
		return material.NewMaterial(texture, material.Coefficients{Ambient: 0.3, Diffuse: 0.7})
	}

	world := geometry.NewWorld(
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, textured(material.NewCheckerTexture(1,
			core.NewVec3(0.3, 0.3, 0.3), core.NewVec3(0.8, 0.8, 0.8)))),
		geometry.NewSphere(core.NewVec3(-1.1, 0, -1.5), 0.5, textured(uvDebug)),
		geometry.NewSphere(core.NewVec3(1.1, 0, -1.5), 0.5, textured(checker)),
		geometry.NewBox(core.NewVec3(-0.4, -0.5, -1.9), core.NewVec3(0.4, 0.3, -1.1), textured(uvDebug)),
		geometry.NewBulb(core.NewVec3(-10, 20, 10), 5, material.NewLight(core.NewVec3(1, 1, 1), 3)),
	)

	return &loaders.Scene{
		Eye:        core.NewVec3(0, 1, 1.5),
		LookAt:     core.NewVec3(0, 0, -1.5),
		Up:         up,
		VFov:       50,
		Background: core.NewVec3(0.5, 0.6, 0.7),
		World:      world,
		Lights:     1,
	}
}
