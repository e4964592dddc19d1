package cmd

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"
)

const progressWidth = 40

var (
	progressStart, _ = colorful.Hex("#d1495b")
	progressEnd, _   = colorful.Hex("#66a182")
)

// progressBar draws a single self-overwriting line of scanline progress
type progressBar struct {
	out *termenv.Output

	mu      sync.Mutex
	drawn   int
	enabled bool
}

func newProgressBar(w io.Writer, enabled bool) *progressBar {
	out := termenv.NewOutput(w)
	return &progressBar{
		out:     out,
		enabled: enabled && out.ColorProfile() != termenv.Ascii,
	}
}

// ColorsEnabled reports whether w understands ANSI escapes
func ColorsEnabled(w io.Writer) bool {
	return termenv.NewOutput(w).ColorProfile() != termenv.Ascii
}

// Update has the signature of renderer.ProgressFunc
func (p *progressBar) Update(rowsDone, rowsTotal int) {
	if !p.enabled || rowsTotal <= 0 {
		return
	}

	filled := rowsDone * progressWidth / rowsTotal

	p.mu.Lock()
	defer p.mu.Unlock()
	// Rows finish out of order across workers; only redraw on forward progress
	if filled <= p.drawn && rowsDone != rowsTotal {
		return
	}
	p.drawn = filled

	fraction := float64(rowsDone) / float64(rowsTotal)
	color := progressStart.BlendLab(progressEnd, fraction).Clamped()
	bar := p.out.String(strings.Repeat("█", filled)).Foreground(p.out.Color(color.Hex()))

	p.out.ClearLine()
	fmt.Fprintf(p.out, "\r%s%s %3.0f%%", bar, strings.Repeat("░", progressWidth-filled), 100*fraction)
	if rowsDone == rowsTotal {
		fmt.Fprintln(p.out)
	}
}
