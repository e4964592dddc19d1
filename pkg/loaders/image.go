package loaders

import (
	"fmt"
	"image"
	_ "image/gif"  // GIF decoder
	_ "image/jpeg" // JPEG decoder
	_ "image/png"  // PNG decoder
	"io"
	"path/filepath"

	lru "github.com/hashicorp/golang-lru"
	"golang.org/x/exp/mmap"
	_ "golang.org/x/image/bmp"  // BMP decoder
	_ "golang.org/x/image/tiff" // TIFF decoder
	_ "golang.org/x/image/webp" // WebP decoder

	"github.com/df07/go-scene-raytracer/pkg/log"
	"github.com/df07/go-scene-raytracer/pkg/material"
)

var logger = log.New("loaders")

// LoadImage memory-maps an image file and decodes it into an RGB8 pixel buffer.
// Any format registered with image.Decode is accepted.
func LoadImage(filename string) (*material.PixelBuffer, error) {
	reader, err := mmap.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}
	defer reader.Close()

	return DecodeImage(io.NewSectionReader(reader, 0, int64(reader.Len())))
}

// DecodeImage decodes an image stream into an RGB8 pixel buffer, dropping alpha
func DecodeImage(r io.Reader) (*material.PixelBuffer, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	buf := material.NewPixelBuffer(width, height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			// RGBA returns uint32 in [0, 65535]
			r, g, b, _ := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			buf.Set(x, y, uint8(r>>8), uint8(g>>8), uint8(b>>8))
		}
	}

	logger.Debugf("decoded %s image %dx%d", format, width, height)
	return buf, nil
}

// ImageCache keeps recently decoded textures so a scene that references the
// same file from several pigments decodes it once
type ImageCache struct {
	cache *lru.Cache // absolute path -> *material.PixelBuffer
}

// DefaultImageCacheSize is the number of decoded images kept by NewImageCache(0)
const DefaultImageCacheSize = 16

// NewImageCache creates a cache holding up to size decoded images
func NewImageCache(size int) (*ImageCache, error) {
	if size <= 0 {
		size = DefaultImageCacheSize
	}
	cache, err := lru.New(size)
	if err != nil {
		return nil, fmt.Errorf("failed to create image cache: %w", err)
	}
	return &ImageCache{cache: cache}, nil
}

// Load returns the decoded image at filename, decoding it on first use
func (c *ImageCache) Load(filename string) (*material.PixelBuffer, error) {
	key, err := filepath.Abs(filename)
	if err != nil {
		key = filepath.Clean(filename)
	}

	if cached, ok := c.cache.Get(key); ok {
		return cached.(*material.PixelBuffer), nil
	}

	buf, err := LoadImage(filename)
	if err != nil {
		return nil, err
	}
	c.cache.Add(key, buf)
	return buf, nil
}

// Len returns the number of cached images
func (c *ImageCache) Len() int {
	return c.cache.Len()
}
