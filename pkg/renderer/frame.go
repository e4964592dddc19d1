package renderer

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"strings"

	"github.com/df07/go-scene-raytracer/pkg/core"
)

// Frame holds the linear color of every pixel, row-major from the top-left
type Frame struct {
	Width  int
	Height int
	Pixels []core.Vec3
}

// NewFrame allocates a black frame
func NewFrame(width, height int) *Frame {
	return &Frame{Width: width, Height: height, Pixels: make([]core.Vec3, width*height)}
}

// At returns the color of pixel (x, y)
func (f *Frame) At(x, y int) core.Vec3 {
	return f.Pixels[y*f.Width+x]
}

// Set stores the color of pixel (x, y)
func (f *Frame) Set(x, y int, c core.Vec3) {
	f.Pixels[y*f.Width+x] = c
}

// intensity keeps byte values strictly below 256
var intensity = core.NewInterval(0, 0.999)

func linearToGamma(component float64) float64 {
	if component > 0 {
		return math.Sqrt(component)
	}
	return 0
}

// ToByte converts one linear color component to an 8-bit value
func ToByte(component float64, gamma bool) uint8 {
	if gamma {
		component = linearToGamma(component)
	}
	if math.IsNaN(component) {
		component = 0
	}
	return uint8(int(256 * intensity.Clamp(component)))
}

// Bytes returns the frame as packed RGB8 triples in row-major order
func (f *Frame) Bytes(gamma bool) []uint8 {
	out := make([]uint8, 0, 3*len(f.Pixels))
	for _, p := range f.Pixels {
		out = append(out, ToByte(p.X, gamma), ToByte(p.Y, gamma), ToByte(p.Z, gamma))
	}
	return out
}

// Image converts the frame to an opaque NRGBA image
func (f *Frame) Image(gamma bool) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, f.Width, f.Height))
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			p := f.At(x, y)
			img.SetNRGBA(x, y, color.NRGBA{
				R: ToByte(p.X, gamma),
				G: ToByte(p.Y, gamma),
				B: ToByte(p.Z, gamma),
				A: 255,
			})
		}
	}
	return img
}

// Format names an output encoding
type Format string

const (
	FormatPPM       Format = "ppm"
	FormatPPMBinary Format = "ppm-binary"
	FormatPNG       Format = "png"
)

// ErrUnknownFormat is returned for an unsupported output format
var ErrUnknownFormat = errors.New("renderer: unknown output format")

// ParseFormat accepts a format name or a file extension such as ".png"
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(name, ".")) {
	case "ppm", "p3", "":
		return FormatPPM, nil
	case "ppm-binary", "p6", "pnm":
		return FormatPPMBinary, nil
	case "png":
		return FormatPNG, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// Encode writes the frame in the given format
func Encode(w io.Writer, f *Frame, format Format, gamma bool) error {
	switch format {
	case FormatPPM:
		return EncodePPM(w, f, gamma)
	case FormatPPMBinary:
		return EncodePPMBinary(w, f, gamma)
	case FormatPNG:
		return EncodePNG(w, f, gamma)
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

// EncodePPM writes an ASCII (P3) PPM with one pixel per line
func EncodePPM(w io.Writer, f *Frame, gamma bool) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "P3\n%d %d\n255\n", f.Width, f.Height)

	data := f.Bytes(gamma)
	for i := 0; i < len(data); i += 3 {
		fmt.Fprintf(bw, "%d %d %d\n", data[i], data[i+1], data[i+2])
	}

	return bw.Flush()
}

// EncodePPMBinary writes a binary (P6) PPM
func EncodePPMBinary(w io.Writer, f *Frame, gamma bool) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "P6\n%d %d\n255\n", f.Width, f.Height)
	if _, err := bw.Write(f.Bytes(gamma)); err != nil {
		return err
	}
	return bw.Flush()
}

// EncodePNG writes the frame as PNG
func EncodePNG(w io.Writer, f *Frame, gamma bool) error {
	return (&png.Encoder{CompressionLevel: png.BestSpeed}).Encode(w, f.Image(gamma))
}
