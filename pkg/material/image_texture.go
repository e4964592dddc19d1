package material

import (
	"github.com/df07/go-scene-raytracer/pkg/core"
)

// PixelSource is a read-only RGB8 raster
type PixelSource interface {
	Width() int
	Height() int
	Pixel(x, y int) (r, g, b uint8)
}

// PixelBuffer is an in-memory PixelSource with tightly packed RGB rows
type PixelBuffer struct {
	W, H int
	Pix  []uint8 // Row-major: Pix[3*(y*W + x)]
}

// NewPixelBuffer allocates a black width×height buffer
func NewPixelBuffer(width, height int) *PixelBuffer {
	return &PixelBuffer{W: width, H: height, Pix: make([]uint8, 3*width*height)}
}

func (b *PixelBuffer) Width() int  { return b.W }
func (b *PixelBuffer) Height() int { return b.H }

// Pixel returns the color at (x, y); coordinates are clamped to the raster
func (b *PixelBuffer) Pixel(x, y int) (uint8, uint8, uint8) {
	x = clampIndex(x, b.W)
	y = clampIndex(y, b.H)
	i := 3 * (y*b.W + x)
	return b.Pix[i], b.Pix[i+1], b.Pix[i+2]
}

// Set writes the color at (x, y)
func (b *PixelBuffer) Set(x, y int, r, g, bl uint8) {
	i := 3 * (y*b.W + x)
	b.Pix[i], b.Pix[i+1], b.Pix[i+2] = r, g, bl
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

// missingTexture is returned for textures without pixel data
var missingTexture = core.NewVec3(0, 1, 1)

// ImageTexture provides color from a 2D image
type ImageTexture struct {
	Pixels PixelSource
}

// NewImageTexture creates a new image texture
func NewImageTexture(pixels PixelSource) *ImageTexture {
	return &ImageTexture{Pixels: pixels}
}

// Evaluate samples the texture at given UV coordinates using nearest-neighbor filtering.
// UVs are clamped to [0,1] and V is flipped so v=1 is the top row.
func (t *ImageTexture) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	if t.Pixels == nil || t.Pixels.Height() <= 0 || t.Pixels.Width() <= 0 {
		return missingTexture
	}

	unit := core.NewInterval(0, 1)
	u := unit.Clamp(uv.X)
	v := 1.0 - unit.Clamp(uv.Y)

	x := clampIndex(int(u*float64(t.Pixels.Width())), t.Pixels.Width())
	y := clampIndex(int(v*float64(t.Pixels.Height())), t.Pixels.Height())

	r, g, b := t.Pixels.Pixel(x, y)
	return core.NewVec3(float64(r)/255.0, float64(g)/255.0, float64(b)/255.0)
}
