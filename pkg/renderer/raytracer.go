package renderer

import (
	"context"
	"math"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/df07/go-scene-raytracer/pkg/core"
	"github.com/df07/go-scene-raytracer/pkg/geometry"
	"github.com/df07/go-scene-raytracer/pkg/log"
	"github.com/df07/go-scene-raytracer/pkg/material"
)

var logger = log.New("renderer")

// hitRange excludes hits right at the ray origin to avoid shadow acne
var hitRange = core.NewInterval(0.001, math.Inf(1))

// ProgressFunc is called after each finished scanline. It may be called
// from several goroutines at once.
type ProgressFunc func(rowsDone, rowsTotal int)

// RayColor returns the radiance carried back along ray
func (c *Camera) RayColor(ray core.Ray, depth int, world geometry.Shape, sampler core.Sampler) core.Vec3 {
	// If we've exceeded the ray bounce limit, no more light is gathered
	if depth <= 0 {
		return core.Vec3{}
	}

	hit, isHit := world.Hit(ray, hitRange)
	if !isHit {
		return c.Config.Background
	}

	if hit.IsLight {
		if hit.Light == nil {
			return core.Vec3{}
		}
		return hit.Light.Emitted()
	}
	if hit.Material == nil {
		return core.Vec3{}
	}

	color := hit.Material.AmbientColor(hit)

	var buf [3]material.Scatter
	for _, s := range hit.Material.Scatter(ray, hit, sampler, buf[:0]) {
		incoming := c.RayColor(s.Ray, depth-1, world, sampler)
		color = color.Add(s.Attenuation.MultiplyVec(incoming).Multiply(s.Weight))
	}

	return color
}

// Render traces the world into a new frame
func (c *Camera) Render(ctx context.Context, world geometry.Shape) (*Frame, error) {
	frame, _, err := c.RenderWithStats(ctx, world, nil)
	return frame, err
}

// RenderWithStats traces the world into a new frame, reporting per-scanline
// progress and returning timing statistics. Rows are rendered independently,
// each with its own sampler, so the frame does not depend on Config.Workers.
func (c *Camera) RenderWithStats(ctx context.Context, world geometry.Shape, progress ProgressFunc) (*Frame, RenderStats, error) {
	if w, ok := world.(*geometry.World); world == nil || (ok && w == nil) {
		return nil, RenderStats{}, ErrNilWorld
	}
	if err := c.Initialize(); err != nil {
		return nil, RenderStats{}, err
	}

	width, height := c.Config.Width, c.imageHeight
	frame := NewFrame(width, height)
	workers := max(c.Config.Workers, 1)

	logger.Infof("rendering %dx%d, %d samples per pixel, max depth %d, %d workers",
		width, height, c.Config.SamplesPerPixel, c.Config.MaxDepth, workers)
	start := time.Now()

	var rowsDone atomic.Int64
	finishRow := func() {
		done := int(rowsDone.Add(1))
		logger.Debugf("scanlines remaining: %d", height-done)
		if progress != nil {
			progress(done, height)
		}
	}

	var err error
	if workers == 1 {
		for j := 0; j < height; j++ {
			if err = ctx.Err(); err != nil {
				break
			}
			c.renderRow(frame, j, world)
			finishRow()
		}
	} else {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(workers)
		for j := 0; j < height; j++ {
			if gctx.Err() != nil {
				break
			}
			row := j
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				c.renderRow(frame, row, world)
				finishRow()
				return nil
			})
		}
		err = g.Wait()
		if err == nil {
			err = ctx.Err()
		}
	}

	stats := RenderStats{
		Width:           width,
		Height:          height,
		RowsRendered:    int(rowsDone.Load()),
		SamplesPerPixel: c.Config.SamplesPerPixel,
		MaxDepth:        c.Config.MaxDepth,
		Workers:         workers,
		Elapsed:         time.Since(start),
	}
	if err != nil {
		logger.Warningf("render stopped after %d of %d scanlines: %v", stats.RowsRendered, height, err)
		return nil, stats, err
	}

	logger.Infof("render finished in %s", stats.Elapsed)
	return frame, stats, nil
}

// renderRow fills scanline j of frame. The row owns its sampler.
func (c *Camera) renderRow(frame *Frame, j int, world geometry.Shape) {
	sampler := core.NewScanlineSampler(c.Config.Seed, j)

	for i := 0; i < frame.Width; i++ {
		colorAccum := core.Vec3{}
		for sample := 0; sample < c.Config.SamplesPerPixel; sample++ {
			ray := c.GetRay(i, j, sampler)
			colorAccum = colorAccum.Add(c.RayColor(ray, c.Config.MaxDepth, world, sampler))
		}
		frame.Set(i, j, colorAccum.Multiply(c.pixelSamplesScale))
	}
}
