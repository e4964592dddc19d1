package cmd

import (
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
	"gopkg.in/yaml.v3"

	"github.com/df07/go-scene-raytracer/pkg/scene"
)

// ListScenes prints the built-in scenes and the scene files found in --dir.
func ListScenes(ctx *cli.Context) error {
	if err := setupLogging(ctx, "notice"); err != nil {
		return cli.NewExitError(err.Error(), 1)
	}

	files, err := scene.ListSceneFiles(ctx.String("dir"))
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}
	scenes := append(scene.ListBuiltinScenes(), files...)

	if ctx.Bool("yaml") {
		enc := yaml.NewEncoder(os.Stdout)
		enc.SetIndent(2)
		defer enc.Close()
		return enc.Encode(scenes)
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Name", "Title", "Type", "Description"})
	for _, s := range scenes {
		name := s.Name
		if s.FilePath != "" {
			name = s.FilePath
		}
		table.Append([]string{name, s.DisplayName, s.Type, s.Description})
	}
	table.Render()
	return nil
}
