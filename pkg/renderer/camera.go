package renderer

import (
	"fmt"
	"math"

	"github.com/df07/go-scene-raytracer/pkg/core"
)

// CameraConfig describes the view and the sampling budget of a render
type CameraConfig struct {
	Center          core.Vec3 // Eye position
	LookAt          core.Vec3 // Point the camera looks at
	Up              core.Vec3 // Camera-relative up direction
	Width           int       // Image width in pixels
	AspectRatio     float64   // Width over height
	VFov            float64   // Vertical field of view in degrees
	DefocusAngle    float64   // Aperture cone angle in degrees, 0 for a pinhole
	FocusDistance   float64   // Distance to the plane of perfect focus
	SamplesPerPixel int       // Number of rays per pixel
	MaxDepth        int       // Maximum ray bounce depth
	Background      core.Vec3 // Color returned by rays that escape the scene
	Gamma           bool      // Apply gamma-2 encoding on output
	Seed            int64     // Base seed of the per-scanline samplers
	Workers         int       // Scanlines rendered concurrently, <= 1 is sequential
}

// DefaultCameraConfig returns sensible default values
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		Center:          core.NewVec3(0, 0, 0),
		LookAt:          core.NewVec3(0, 0, -1),
		Up:              core.NewVec3(0, 1, 0),
		Width:           400,
		AspectRatio:     16.0 / 9.0,
		VFov:            90,
		DefocusAngle:    0,
		FocusDistance:   10,
		SamplesPerPixel: 10,
		MaxDepth:        10,
		Background:      core.NewVec3(0.7, 0.8, 1.0),
		Seed:            42,
		Workers:         1,
	}
}

// Camera generates rays for rendering
type Camera struct {
	Config CameraConfig

	initialized       bool
	imageHeight       int
	pixelSamplesScale float64
	center            core.Vec3
	pixel00           core.Vec3 // Center of the upper-left pixel
	pixelDeltaU       core.Vec3 // Offset to the pixel to the right
	pixelDeltaV       core.Vec3 // Offset to the pixel below
	u, v, w           core.Vec3 // Camera frame basis vectors
	defocusDiskU      core.Vec3
	defocusDiskV      core.Vec3
}

// NewCamera creates a camera; call Initialize before generating rays
func NewCamera(config CameraConfig) *Camera {
	return &Camera{Config: config}
}

// Initialize validates the configuration and derives the viewport geometry.
// It must be called again after Config changes.
func (c *Camera) Initialize() error {
	cfg := c.Config
	if cfg.Width <= 0 || cfg.AspectRatio <= 0 || math.IsNaN(cfg.AspectRatio) {
		return fmt.Errorf("%w: width=%d aspect=%v", ErrInvalidImageSize, cfg.Width, cfg.AspectRatio)
	}
	if cfg.SamplesPerPixel <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidSamples, cfg.SamplesPerPixel)
	}
	if cfg.MaxDepth < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidDepth, cfg.MaxDepth)
	}

	c.imageHeight = max(int(float64(cfg.Width)/cfg.AspectRatio), 1)
	c.pixelSamplesScale = 1.0 / float64(cfg.SamplesPerPixel)
	c.center = cfg.Center

	focusDistance := cfg.FocusDistance
	if focusDistance <= 0 {
		focusDistance = cfg.Center.Subtract(cfg.LookAt).Length()
	}
	if focusDistance <= 0 {
		focusDistance = 1
	}

	// Determine viewport dimensions
	theta := core.DegreesToRadians(cfg.VFov)
	h := math.Tan(theta / 2)
	viewportHeight := 2 * h * focusDistance
	viewportWidth := viewportHeight * (float64(cfg.Width) / float64(c.imageHeight))

	// Calculate the u,v,w unit basis vectors for the camera coordinate frame
	c.w = cfg.Center.Subtract(cfg.LookAt).Normalize()
	c.u = cfg.Up.Cross(c.w).Normalize()
	c.v = c.w.Cross(c.u)

	// Vectors across the horizontal and down the vertical viewport edges
	viewportU := c.u.Multiply(viewportWidth)
	viewportV := c.v.Negate().Multiply(viewportHeight)

	c.pixelDeltaU = viewportU.Multiply(1.0 / float64(cfg.Width))
	c.pixelDeltaV = viewportV.Multiply(1.0 / float64(c.imageHeight))

	viewportUpperLeft := c.center.
		Subtract(c.w.Multiply(focusDistance)).
		Subtract(viewportU.Multiply(0.5)).
		Subtract(viewportV.Multiply(0.5))
	c.pixel00 = viewportUpperLeft.Add(c.pixelDeltaU.Add(c.pixelDeltaV).Multiply(0.5))

	defocusRadius := focusDistance * math.Tan(core.DegreesToRadians(cfg.DefocusAngle/2))
	c.defocusDiskU = c.u.Multiply(defocusRadius)
	c.defocusDiskV = c.v.Multiply(defocusRadius)

	c.initialized = true
	return nil
}

// ImageWidth returns the image width in pixels
func (c *Camera) ImageWidth() int {
	return c.Config.Width
}

// ImageHeight returns the derived image height; valid after Initialize
func (c *Camera) ImageHeight() int {
	return c.imageHeight
}

// GetRay returns a ray through a random point inside pixel (i, j), starting
// on the defocus disk when depth of field is enabled
func (c *Camera) GetRay(i, j int, sampler core.Sampler) core.Ray {
	offset := core.SampleSquare(sampler)
	pixelSample := c.pixel00.
		Add(c.pixelDeltaU.Multiply(float64(i) + offset.X)).
		Add(c.pixelDeltaV.Multiply(float64(j) + offset.Y))

	origin := c.center
	if c.Config.DefocusAngle > 0 {
		origin = c.defocusDiskSample(sampler)
	}

	return core.NewRay(origin, pixelSample.Subtract(origin))
}

func (c *Camera) defocusDiskSample(sampler core.Sampler) core.Vec3 {
	p := core.SamplePointInUnitDisk(sampler.Get2D())
	return c.center.Add(c.defocusDiskU.Multiply(p.X)).Add(c.defocusDiskV.Multiply(p.Y))
}
