package renderer

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/df07/go-scene-raytracer/pkg/core"
	"github.com/df07/go-scene-raytracer/pkg/geometry"
	"github.com/df07/go-scene-raytracer/pkg/material"
)

var (
	sphereColor     = core.NewVec3(1, 0, 0)
	backgroundColor = core.NewVec3(0, 0, 1)
)

// ambientScene is a single ambient-only sphere filling the middle of a
// 90° view at focus distance 1
func ambientScene(width int) (*Camera, *geometry.World) {
	config := DefaultCameraConfig()
	config.Center = core.NewVec3(0, 0, 0)
	config.LookAt = core.NewVec3(0, 0, -1)
	config.Up = core.NewVec3(0, 1, 0)
	config.Width = width
	config.AspectRatio = 1
	config.VFov = 90
	config.FocusDistance = 1
	config.SamplesPerPixel = 4
	config.MaxDepth = 5
	config.Background = backgroundColor

	mat := material.NewMaterial(material.NewSolidColor(sphereColor), material.Coefficients{Ambient: 1, RefractionIndex: 1})
	world := geometry.NewWorld(geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, mat))

	return NewCamera(config), world
}

func TestRender_AmbientDisk(t *testing.T) {
	camera, world := ambientScene(9)

	frame, err := camera.Render(context.Background(), world)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	if got := frame.At(4, 4); got != sphereColor {
		t.Errorf("Expected center pixel %v, got %v", sphereColor, got)
	}
	for _, corner := range [][2]int{{0, 0}, {8, 0}, {0, 8}, {8, 8}} {
		if got := frame.At(corner[0], corner[1]); got != backgroundColor {
			t.Errorf("Expected corner %v to be background, got %v", corner, got)
		}
	}
}

func TestRender_SingleSamplePixelsArePure(t *testing.T) {
	camera, world := ambientScene(2)
	camera.Config.SamplesPerPixel = 1

	frame, err := camera.Render(context.Background(), world)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	if len(frame.Pixels) != 4 {
		t.Fatalf("Expected 4 pixels, got %d", len(frame.Pixels))
	}
	for i, p := range frame.Pixels {
		if p != sphereColor && p != backgroundColor {
			t.Errorf("Pixel %d: expected sphere or background color, got %v", i, p)
		}
	}
}

func TestRender_IndependentOfWorkerCount(t *testing.T) {
	ground := material.NewLambertian(material.NewCheckerTexture(0.5, core.NewVec3(0.9, 0.9, 0.9), core.NewVec3(0.2, 0.3, 0.1)))
	glass := material.NewDielectric(1.5)
	mirror := material.NewMetal(material.NewSolidColor(core.NewVec3(0.8, 0.6, 0.2)), 0.3)

	world := geometry.NewWorld(
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, ground),
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, glass),
		geometry.NewBox(core.NewVec3(0.6, -0.5, -1.5), core.NewVec3(1.4, 0.3, -0.7), mirror),
	)

	config := DefaultCameraConfig()
	config.Width = 24
	config.SamplesPerPixel = 3
	config.MaxDepth = 6

	render := func(workers int) *Frame {
		cfg := config
		cfg.Workers = workers
		frame, err := NewCamera(cfg).Render(context.Background(), world)
		if err != nil {
			t.Fatalf("Render with %d workers failed: %v", workers, err)
		}
		return frame
	}

	sequential := render(1)
	for _, workers := range []int{2, 4} {
		parallel := render(workers)
		for i := range sequential.Pixels {
			if sequential.Pixels[i] != parallel.Pixels[i] {
				t.Fatalf("Workers=%d: pixel %d differs: %v vs %v", workers, i, sequential.Pixels[i], parallel.Pixels[i])
			}
		}
	}
}

func TestRender_Cancelled(t *testing.T) {
	camera, world := ambientScene(9)

	for _, workers := range []int{1, 3} {
		camera.Config.Workers = workers
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		frame, err := camera.Render(ctx, world)
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Workers=%d: expected context.Canceled, got %v", workers, err)
		}
		if frame != nil {
			t.Errorf("Workers=%d: expected no frame on cancellation", workers)
		}
	}
}

func TestRender_ReportsProgress(t *testing.T) {
	camera, world := ambientScene(9)
	calls := 0

	_, stats, err := camera.RenderWithStats(context.Background(), world, func(done, total int) {
		calls++
		if total != 9 {
			t.Errorf("Expected total 9, got %d", total)
		}
	})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	if calls != 9 {
		t.Errorf("Expected 9 progress calls, got %d", calls)
	}
	if stats.TotalSamples() != 9*9*4 {
		t.Errorf("Expected %d samples, got %d", 9*9*4, stats.TotalSamples())
	}
}

func TestRayColor_DepthZeroIsBlack(t *testing.T) {
	camera, world := ambientScene(9)
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))

	ray := core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1))
	if got := camera.RayColor(ray, 0, world, sampler); got != (core.Vec3{}) {
		t.Errorf("Expected black at depth 0, got %v", got)
	}
}

func TestRayColor_MissReturnsBackground(t *testing.T) {
	camera, world := ambientScene(9)
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))

	ray := core.NewRay(core.Vec3{}, core.NewVec3(0, 0, 1))
	if got := camera.RayColor(ray, 5, world, sampler); got != backgroundColor {
		t.Errorf("Expected background %v, got %v", backgroundColor, got)
	}
}

func TestRayColor_LightReturnsEmission(t *testing.T) {
	camera, _ := ambientScene(9)
	light := material.NewLight(core.NewVec3(1, 1, 1), 4)
	world := geometry.NewWorld(geometry.NewBulb(core.NewVec3(0, 0, -3), 1, light))
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))

	got := camera.RayColor(core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1)), 5, world, sampler)
	if got != core.NewVec3(4, 4, 4) {
		t.Errorf("Expected emission (4,4,4), got %v", got)
	}
}

func TestRayColor_CombinesAmbientAndDiffuse(t *testing.T) {
	camera, _ := ambientScene(9)
	camera.Config.Background = core.NewVec3(1, 1, 1)

	mat := material.NewMaterial(material.NewSolidColor(core.NewVec3(1, 1, 1)), material.Coefficients{
		Ambient:         0.1,
		Diffuse:         0.5,
		RefractionIndex: 1,
	})
	world := geometry.NewWorld(geometry.NewSphere(core.NewVec3(0, -100, 0), 99, mat))
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))

	// The bounce leaves a convex surface and escapes to the background
	got := camera.RayColor(core.NewRay(core.NewVec3(0, 5, 0), core.NewVec3(0, -1, 0)), 2, world, sampler)

	const tolerance = 1e-12
	expected := core.NewVec3(0.6, 0.6, 0.6)
	if got.Subtract(expected).Length() > tolerance {
		t.Errorf("Expected %v, got %v", expected, got)
	}
}

func TestRender_NilWorld(t *testing.T) {
	camera, _ := ambientScene(9)
	if _, err := camera.Render(context.Background(), nil); !errors.Is(err, ErrNilWorld) {
		t.Errorf("Expected ErrNilWorld, got %v", err)
	}

	var world *geometry.World
	if _, err := camera.Render(context.Background(), world); !errors.Is(err, ErrNilWorld) {
		t.Errorf("Expected ErrNilWorld for typed nil world, got %v", err)
	}
}
