package renderer

import "time"

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	Width           int
	Height          int
	RowsRendered    int // Scanlines completed, less than Height when cancelled
	SamplesPerPixel int
	MaxDepth        int
	Workers         int
	Elapsed         time.Duration
}

// TotalPixels returns the number of pixels rendered
func (s RenderStats) TotalPixels() int {
	return s.Width * s.RowsRendered
}

// TotalSamples returns the number of camera rays traced
func (s RenderStats) TotalSamples() int {
	return s.TotalPixels() * s.SamplesPerPixel
}

// SamplesPerSecond returns the camera ray throughput
func (s RenderStats) SamplesPerSecond() float64 {
	if s.Elapsed <= 0 {
		return 0
	}
	return float64(s.TotalSamples()) / s.Elapsed.Seconds()
}
