package material

import (
	"github.com/df07/go-scene-raytracer/pkg/core"
)

// NewCheckerboardImage rasterizes a checkerboard pattern into a pixel buffer,
// for image textures that need no file on disk
func NewCheckerboardImage(width, height, checkSize int, color1, color2 core.Vec3) *PixelBuffer {
	buf := NewPixelBuffer(width, height)
	r1, g1, b1 := toRGB8(color1)
	r2, g2, b2 := toRGB8(color2)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if (x/checkSize+y/checkSize)%2 == 0 {
				buf.Set(x, y, r1, g1, b1)
			} else {
				buf.Set(x, y, r2, g2, b2)
			}
		}
	}

	return buf
}

// NewUVDebugImage creates a raster showing UV coordinates as colors.
// U maps to red, V maps to green with v=1 on the top row.
func NewUVDebugImage(width, height int) *PixelBuffer {
	buf := NewPixelBuffer(width, height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			u := float64(x) / float64(max(width-1, 1))
			v := 1.0 - float64(y)/float64(max(height-1, 1))
			r, g, b := toRGB8(core.NewVec3(u, v, 0))
			buf.Set(x, y, r, g, b)
		}
	}

	return buf
}

func toRGB8(c core.Vec3) (uint8, uint8, uint8) {
	unit := core.NewInterval(0, 1)
	return uint8(unit.Clamp(c.X)*255 + 0.5), uint8(unit.Clamp(c.Y)*255 + 0.5), uint8(unit.Clamp(c.Z)*255 + 0.5)
}
