// Package export renders recorded runs for use outside the terminal.
package export

import (
	"fmt"
	"math"
	"strings"

	"github.com/san-kum/wanderer/internal/sim"
)

type SVGOptions struct {
	// Width and Height are the container size the trace was recorded in.
	Width, Height float64
	// MoverSize offsets the path to the mover's center.
	MoverSize   float64
	StrokeColor string
	// Markers draws a dot at every wall hit and pointer escape.
	Markers bool
}

func DefaultSVGOptions() SVGOptions {
	return SVGOptions{
		Width:       800,
		Height:      600,
		MoverSize:   50,
		StrokeColor: "#00ff00",
		Markers:     true,
	}
}

// TrajectoryToSVG draws the path of a trace in container coordinates, with
// y growing downwards like the screen it was recorded on. A jump longer than
// half the container, as produced by wrapping, starts a new subpath.
func TrajectoryToSVG(trace []sim.Sample, opts SVGOptions) string {
	if len(trace) < 2 || opts.Width <= 0 || opts.Height <= 0 {
		return ""
	}
	half := opts.MoverSize / 2
	jump := math.Max(opts.Width, opts.Height) / 2

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="#0a0a0a" stroke="#444444"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="`,
		opts.Width, opts.Height, opts.Width, opts.Height, opts.StrokeColor))

	for i, s := range trace {
		x, y := s.X+half, s.Y+half
		if i == 0 || math.Hypot(s.X-trace[i-1].X, s.Y-trace[i-1].Y) > jump {
			if i > 0 {
				sb.WriteString(" ")
			}
			sb.WriteString(fmt.Sprintf("M%.1f,%.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}
	sb.WriteString(`"/>
`)

	if opts.Markers {
		for _, s := range trace {
			switch {
			case s.Escape:
				sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="3" fill="#ff5f5f"/>
`, s.X+half, s.Y+half))
			case s.Wall:
				sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="2" fill="#ffaf00"/>
`, s.X+half, s.Y+half))
			}
		}
	}

	first, last := trace[0], trace[len(trace)-1]
	sb.WriteString(fmt.Sprintf(`<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="none" stroke="#5fafff" stroke-dasharray="4 2"/>
`, first.X, first.Y, opts.MoverSize, opts.MoverSize))
	sb.WriteString(fmt.Sprintf(`<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="none" stroke="#ffffff"/>
`, last.X, last.Y, opts.MoverSize, opts.MoverSize))

	sb.WriteString("</svg>")
	return sb.String()
}
