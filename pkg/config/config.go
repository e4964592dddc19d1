// Package config loads render settings from TOML or YAML files.
package config

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/df07/go-scene-raytracer/pkg/core"
	"github.com/df07/go-scene-raytracer/pkg/loaders"
	"github.com/df07/go-scene-raytracer/pkg/renderer"
)

var (
	ErrUnsupportedFormat = errors.New("config: unsupported file format")
	ErrInvalid           = errors.New("config: invalid value")
)

// RenderConfig holds every tunable of a render that is not part of the scene
type RenderConfig struct {
	Width          int     `toml:"width" yaml:"width"`
	AspectRatio    float64 `toml:"aspect_ratio" yaml:"aspect_ratio"`
	Samples        int     `toml:"samples" yaml:"samples"`
	MaxDepth       int     `toml:"max_depth" yaml:"max_depth"`
	DefocusAngle   float64 `toml:"defocus_angle" yaml:"defocus_angle"`
	FocusDistance  float64 `toml:"focus_distance" yaml:"focus_distance"`
	Gamma          bool    `toml:"gamma" yaml:"gamma"`
	Seed           int64   `toml:"seed" yaml:"seed"`
	Workers        int     `toml:"workers" yaml:"workers"`
	Background     string  `toml:"background" yaml:"background"` // "#rrggbb", overrides the scene's ambient color
	BulbRadius     float64 `toml:"bulb_radius" yaml:"bulb_radius"`
	BulbIntensity  float64 `toml:"bulb_intensity" yaml:"bulb_intensity"`
	StrictTextures bool    `toml:"strict_textures" yaml:"strict_textures"`
	TextureCache   int     `toml:"texture_cache" yaml:"texture_cache"`
	Format         string  `toml:"format" yaml:"format"`
	LogLevel       string  `toml:"log_level" yaml:"log_level"`
}

// Default returns the settings used when no file or flag overrides them
func Default() RenderConfig {
	return RenderConfig{
		Width:         800,
		AspectRatio:   4.0 / 3.0,
		Samples:       10,
		MaxDepth:      3,
		DefocusAngle:  0,
		FocusDistance: 10,
		Seed:          42,
		Workers:       1,
		BulbRadius:    10,
		BulbIntensity: 4,
		TextureCache:  loaders.DefaultImageCacheSize,
		Format:        string(renderer.FormatPPM),
		LogLevel:      "notice",
	}
}

// decoder is satisfied by both the TOML and the YAML decoders
type decoder interface {
	Decode(v any) error
}

type decoderFunc func(r io.Reader) decoder

func newDecoderFunc[T decoder](f func(r io.Reader) T) decoderFunc {
	return func(r io.Reader) decoder { return f(r) }
}

func decoderFor(filename string) (decoderFunc, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".toml":
		return newDecoderFunc(toml.NewDecoder), nil
	case ".yaml", ".yml":
		return newDecoderFunc(yaml.NewDecoder), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(filename))
}

// Load reads filename over the defaults; keys absent from the file keep
// their default values
func Load(filename string) (RenderConfig, error) {
	cfg := Default()

	newDecoder, err := decoderFor(filename)
	if err != nil {
		return cfg, err
	}

	f, err := os.Open(filename)
	if err != nil {
		return cfg, fmt.Errorf("failed to open config file: %w", err)
	}
	defer f.Close()

	if err := newDecoder(bufio.NewReader(f)).Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("failed to decode %s: %w", filename, err)
	}

	return cfg, cfg.Validate()
}

// Validate reports the first out-of-range setting
func (c RenderConfig) Validate() error {
	switch {
	case c.Width <= 0:
		return fmt.Errorf("%w: width %d", ErrInvalid, c.Width)
	case c.AspectRatio <= 0:
		return fmt.Errorf("%w: aspect ratio %v", ErrInvalid, c.AspectRatio)
	case c.Samples <= 0:
		return fmt.Errorf("%w: samples %d", ErrInvalid, c.Samples)
	case c.MaxDepth < 0:
		return fmt.Errorf("%w: max depth %d", ErrInvalid, c.MaxDepth)
	case c.BulbIntensity < 0:
		return fmt.Errorf("%w: bulb intensity %v", ErrInvalid, c.BulbIntensity)
	}
	if _, _, err := c.BackgroundColor(); err != nil {
		return err
	}
	if _, err := renderer.ParseFormat(c.Format); err != nil {
		return err
	}
	return nil
}

// BackgroundColor parses the background override. ok is false when none is set.
func (c RenderConfig) BackgroundColor() (color core.Vec3, ok bool, err error) {
	if c.Background == "" {
		return core.Vec3{}, false, nil
	}
	parsed, err := colorful.Hex(c.Background)
	if err != nil {
		return core.Vec3{}, false, fmt.Errorf("%w: background %q: %v", ErrInvalid, c.Background, err)
	}
	return core.NewVec3(parsed.R, parsed.G, parsed.B), true, nil
}

// CameraConfig applies the render settings to base, which normally carries
// the view loaded from a scene
func (c RenderConfig) CameraConfig(base renderer.CameraConfig) renderer.CameraConfig {
	base.Width = c.Width
	base.AspectRatio = c.AspectRatio
	base.SamplesPerPixel = c.Samples
	base.MaxDepth = c.MaxDepth
	base.DefocusAngle = c.DefocusAngle
	base.FocusDistance = c.FocusDistance
	base.Gamma = c.Gamma
	base.Seed = c.Seed
	base.Workers = c.Workers
	if bg, ok, err := c.BackgroundColor(); err == nil && ok {
		base.Background = bg
	}
	return base
}

// SceneOptions returns the loader options for scene files
func (c RenderConfig) SceneOptions() (loaders.SceneOptions, error) {
	images, err := loaders.NewImageCache(c.TextureCache)
	if err != nil {
		return loaders.SceneOptions{}, err
	}
	return loaders.SceneOptions{
		BulbRadius:     c.BulbRadius,
		BulbIntensity:  c.BulbIntensity,
		Images:         images,
		StrictTextures: c.StrictTextures,
	}, nil
}
