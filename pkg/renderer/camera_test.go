package renderer

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-scene-raytracer/pkg/core"
)

func TestCamera_InitializeRejectsInvalidConfig(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*CameraConfig)
		expected error
	}{
		{"zero width", func(c *CameraConfig) { c.Width = 0 }, ErrInvalidImageSize},
		{"negative aspect", func(c *CameraConfig) { c.AspectRatio = -1 }, ErrInvalidImageSize},
		{"zero samples", func(c *CameraConfig) { c.SamplesPerPixel = 0 }, ErrInvalidSamples},
		{"negative depth", func(c *CameraConfig) { c.MaxDepth = -1 }, ErrInvalidDepth},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultCameraConfig()
			tt.mutate(&config)
			err := NewCamera(config).Initialize()
			if !errors.Is(err, tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, err)
			}
		})
	}
}

func TestCamera_ImageHeight(t *testing.T) {
	tests := []struct {
		name     string
		width    int
		aspect   float64
		expected int
	}{
		{"16:9", 400, 16.0 / 9.0, 225},
		{"square", 9, 1.0, 9},
		{"very wide clamps to one row", 10, 100, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultCameraConfig()
			config.Width = tt.width
			config.AspectRatio = tt.aspect
			camera := NewCamera(config)
			if err := camera.Initialize(); err != nil {
				t.Fatalf("Initialize failed: %v", err)
			}
			if camera.ImageHeight() != tt.expected {
				t.Errorf("Expected height %d, got %d", tt.expected, camera.ImageHeight())
			}
		})
	}
}

func TestCamera_CenterRayLooksForward(t *testing.T) {
	config := DefaultCameraConfig()
	config.Width = 9
	config.AspectRatio = 1
	config.FocusDistance = 1
	camera := NewCamera(config)
	if err := camera.Initialize(); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}

	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))
	pixelSize := 2.0 / 9.0
	for i := 0; i < 100; i++ {
		ray := camera.GetRay(4, 4, sampler)
		if !ray.Origin.Equals(config.Center) {
			t.Fatalf("Expected pinhole origin %v, got %v", config.Center, ray.Origin)
		}
		if ray.Direction.Z != -1 {
			t.Fatalf("Expected direction to reach the focus plane z=-1, got %v", ray.Direction)
		}
		if math.Abs(ray.Direction.X) > pixelSize/2 || math.Abs(ray.Direction.Y) > pixelSize/2 {
			t.Fatalf("Jitter %v leaves the center pixel", ray.Direction)
		}
	}
}

func TestCamera_TopLeftPixelIsUpAndLeft(t *testing.T) {
	config := DefaultCameraConfig()
	config.Width = 9
	config.AspectRatio = 1
	config.FocusDistance = 1
	camera := NewCamera(config)
	if err := camera.Initialize(); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}

	ray := camera.GetRay(0, 0, core.NewRandomSampler(rand.New(rand.NewSource(1))))
	if ray.Direction.X >= 0 || ray.Direction.Y <= 0 {
		t.Errorf("Expected pixel (0,0) to look up and left, got %v", ray.Direction)
	}
}

func TestCamera_DefocusOriginsStayOnDisk(t *testing.T) {
	config := DefaultCameraConfig()
	config.DefocusAngle = 10
	config.FocusDistance = 2
	camera := NewCamera(config)
	if err := camera.Initialize(); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}

	radius := 2 * math.Tan(core.DegreesToRadians(5))
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))
	moved := false
	for i := 0; i < 200; i++ {
		ray := camera.GetRay(10, 10, sampler)
		offset := ray.Origin.Subtract(config.Center)
		if offset.Length() > radius+1e-9 {
			t.Fatalf("Origin %v outside defocus disk of radius %f", ray.Origin, radius)
		}
		if math.Abs(offset.Z) > 1e-12 {
			t.Fatalf("Origin %v leaves the lens plane", ray.Origin)
		}
		if offset.Length() > 0 {
			moved = true
		}
	}
	if !moved {
		t.Error("Expected defocus to move ray origins")
	}
}
