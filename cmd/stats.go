package cmd

import (
	"bytes"
	"fmt"

	"github.com/olekukonko/tablewriter"

	"github.com/df07/go-scene-raytracer/pkg/renderer"
)

func displayRenderStats(stats renderer.RenderStats) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Resolution", "Samples/pixel", "Max depth", "Workers", "Rows", "Render time"})
	table.Append([]string{
		fmt.Sprintf("%dx%d", stats.Width, stats.Height),
		fmt.Sprintf("%d", stats.SamplesPerPixel),
		fmt.Sprintf("%d", stats.MaxDepth),
		fmt.Sprintf("%d", stats.Workers),
		fmt.Sprintf("%d", stats.RowsRendered),
		stats.Elapsed.String(),
	})
	table.SetFooter([]string{"", "", "", "", "SAMPLES/SEC", fmt.Sprintf("%.0f", stats.SamplesPerSecond())})

	table.Render()
	logger.Noticef("render statistics\n%s", buf.String())
}
