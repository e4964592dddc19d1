package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/urfave/cli"

	"github.com/df07/go-scene-raytracer/pkg/config"
	"github.com/df07/go-scene-raytracer/pkg/loaders"
	"github.com/df07/go-scene-raytracer/pkg/renderer"
	"github.com/df07/go-scene-raytracer/pkg/scene"
)

// RenderFlags are the flags accepted by the render command. Any flag that is
// set overrides the value from --config.
var RenderFlags = []cli.Flag{
	cli.StringFlag{Name: "config, c", Usage: "TOML or YAML file with render settings"},
	cli.StringFlag{Name: "scene, s", Value: "default", Usage: "built-in scene used when no scene file is given"},
	cli.StringFlag{Name: "out, o", Value: "-", Usage: "output image filename, - for stdout"},
	cli.StringFlag{Name: "format, f", Usage: "output format: ppm, ppm-binary or png (default from --out extension)"},
	cli.IntFlag{Name: "width", Usage: "image width in pixels"},
	cli.Float64Flag{Name: "aspect", Usage: "width / height ratio"},
	cli.IntFlag{Name: "spp", Usage: "samples per pixel"},
	cli.IntFlag{Name: "depth", Usage: "maximum recursion depth"},
	cli.IntFlag{Name: "workers, j", Usage: "scanlines rendered in parallel"},
	cli.Int64Flag{Name: "seed", Usage: "sampler seed"},
	cli.Float64Flag{Name: "defocus-angle", Usage: "aperture cone angle in degrees, 0 disables depth of field"},
	cli.Float64Flag{Name: "focus-distance", Usage: "distance to the plane in focus"},
	cli.BoolFlag{Name: "gamma", Usage: "apply gamma 2 correction to the output"},
	cli.StringFlag{Name: "background", Usage: "ambient color override as #rrggbb"},
	cli.Float64Flag{Name: "bulb-radius", Usage: "radius of the spheres standing in for point lights"},
	cli.Float64Flag{Name: "bulb-intensity", Usage: "emission scale of point lights"},
	cli.BoolFlag{Name: "strict-textures", Usage: "fail on unreadable textures instead of rendering them cyan"},
	cli.StringFlag{Name: "log-level", Usage: "debug, info, notice, warning or error"},
	cli.BoolFlag{Name: "no-progress", Usage: "disable the progress bar"},
}

// Render renders a scene file or a built-in scene to an image.
func Render(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}
	if err := setupLogging(ctx, cfg.LogLevel); err != nil {
		return cli.NewExitError(err.Error(), 1)
	}

	format, err := outputFormat(ctx.String("out"), cfg.Format, ctx.IsSet("format"))
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}

	opts, err := cfg.SceneOptions()
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}

	name := ctx.String("scene")
	if ctx.NArg() > 0 {
		name = ctx.Args().First()
	}
	sc, err := LoadScene(name, opts)
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}

	camera := renderer.NewCamera(cfg.CameraConfig(sc.Apply(renderer.DefaultCameraConfig())))
	if err := camera.Initialize(); err != nil {
		return cli.NewExitError(err.Error(), 1)
	}

	renderCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger.Noticef("rendering %s at %dx%d", name, camera.ImageWidth(), camera.ImageHeight())
	progress := newProgressBar(os.Stderr, !ctx.Bool("no-progress"))
	frame, stats, err := camera.RenderWithStats(renderCtx, sc.World, progress.Update)
	if err != nil {
		return cli.NewExitError(fmt.Sprintf("render failed: %v", err), 1)
	}
	displayRenderStats(stats)

	if err := writeFrame(ctx.String("out"), frame, format, cfg.Gamma); err != nil {
		return cli.NewExitError(err.Error(), 1)
	}
	return nil
}

// LoadScene treats name as a scene file when it exists on disk or carries the
// scene file extension, and as a built-in scene otherwise
func LoadScene(name string, opts loaders.SceneOptions) (*loaders.Scene, error) {
	if name == "" {
		return nil, errors.New("no scene given")
	}
	if _, err := os.Stat(name); err == nil || filepath.Ext(name) == scene.SceneExtension {
		return loaders.LoadSceneFile(name, opts)
	}
	return scene.Lookup(name)
}

// loadConfig starts from the defaults or --config and applies any set flags
func loadConfig(ctx *cli.Context) (config.RenderConfig, error) {
	cfg := config.Default()
	if path := ctx.String("config"); path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return cfg, err
		}
	}

	if ctx.IsSet("width") {
		cfg.Width = ctx.Int("width")
	}
	if ctx.IsSet("aspect") {
		cfg.AspectRatio = ctx.Float64("aspect")
	}
	if ctx.IsSet("spp") {
		cfg.Samples = ctx.Int("spp")
	}
	if ctx.IsSet("depth") {
		cfg.MaxDepth = ctx.Int("depth")
	}
	if ctx.IsSet("workers") {
		cfg.Workers = ctx.Int("workers")
	}
	if ctx.IsSet("seed") {
		cfg.Seed = ctx.Int64("seed")
	}
	if ctx.IsSet("defocus-angle") {
		cfg.DefocusAngle = ctx.Float64("defocus-angle")
	}
	if ctx.IsSet("focus-distance") {
		cfg.FocusDistance = ctx.Float64("focus-distance")
	}
	if ctx.IsSet("gamma") {
		cfg.Gamma = ctx.Bool("gamma")
	}
	if ctx.IsSet("background") {
		cfg.Background = ctx.String("background")
	}
	if ctx.IsSet("bulb-radius") {
		cfg.BulbRadius = ctx.Float64("bulb-radius")
	}
	if ctx.IsSet("bulb-intensity") {
		cfg.BulbIntensity = ctx.Float64("bulb-intensity")
	}
	if ctx.IsSet("strict-textures") {
		cfg.StrictTextures = ctx.Bool("strict-textures")
	}
	if ctx.IsSet("format") {
		cfg.Format = ctx.String("format")
	}
	if ctx.IsSet("log-level") {
		cfg.LogLevel = ctx.String("log-level")
	}

	return cfg, cfg.Validate()
}

// outputFormat picks the encoder. An explicit --format wins, then a .png
// output name, then the configured format.
func outputFormat(out, configured string, explicit bool) (renderer.Format, error) {
	if !explicit && strings.EqualFold(filepath.Ext(out), ".png") {
		return renderer.FormatPNG, nil
	}
	return renderer.ParseFormat(configured)
}

func writeFrame(out string, frame *renderer.Frame, format renderer.Format, gamma bool) error {
	var w io.Writer = os.Stdout
	if out != "-" {
		if dir := filepath.Dir(out); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}
		}
		file, err := os.Create(out)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer file.Close()
		w = file
	}

	buf := bufio.NewWriter(w)
	if err := renderer.Encode(buf, frame, format, gamma); err != nil {
		return fmt.Errorf("failed to encode %s: %w", format, err)
	}
	if err := buf.Flush(); err != nil {
		return err
	}

	if out != "-" {
		logger.Noticef("wrote %s", out)
	}
	return nil
}
