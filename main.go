package main

import (
	"os"

	"github.com/urfave/cli"

	"github.com/df07/go-scene-raytracer/cmd"
	"github.com/df07/go-scene-raytracer/pkg/log"
)

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "raytracer"
	app.Usage = "render sphere and polyhedron scenes with a distribution ray tracer"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a scene to an image",
			Description: `
Render a scene file, or a built-in scene selected with --scene, and write
the image as ASCII PPM, binary PPM or PNG. Settings come from --config and
may be overridden by individual flags.`,
			ArgsUsage: "[scene_file.scn]",
			Flags:     cmd.RenderFlags,
			Action:    cmd.Render,
		},
		{
			Name:  "scenes",
			Usage: "list built-in scenes and scene files",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "dir, d",
					Value: "scenes",
					Usage: "directory searched for scene files",
				},
				cli.BoolFlag{
					Name:  "yaml",
					Usage: "print the list as YAML",
				},
			},
			Action: cmd.ListScenes,
		},
	}
	return app
}

func main() {
	log.SetColor(cmd.ColorsEnabled(os.Stderr))
	if err := newApp().Run(os.Args); err != nil {
		os.Exit(1)
	}
}
