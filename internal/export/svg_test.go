package export

import (
	"strings"
	"testing"

	"github.com/san-kum/wanderer/internal/sim"
)

func TestTrajectoryToSVG(t *testing.T) {
	trace := []sim.Sample{
		{X: 0, Y: 0},
		{X: 10, Y: 5, Wall: true},
		{X: 20, Y: 10, Escape: true},
	}
	opts := DefaultSVGOptions()
	svg := TrajectoryToSVG(trace, opts)

	if !strings.HasPrefix(svg, "<?xml") || !strings.HasSuffix(svg, "</svg>") {
		t.Fatalf("not an svg document: %q", svg)
	}
	if !strings.Contains(svg, `d="M25.0,25.0 L35.0,30.0 L45.0,35.0"`) {
		t.Errorf("unexpected path in %s", svg)
	}
	if !strings.Contains(svg, `viewBox="0 0 800 600"`) {
		t.Error("viewBox should match the container")
	}
	if strings.Count(svg, "<circle") != 2 {
		t.Errorf("expected one wall and one escape marker")
	}

	opts.Markers = false
	if strings.Contains(TrajectoryToSVG(trace, opts), "<circle") {
		t.Error("markers drawn while disabled")
	}
}

func TestTrajectoryToSVGSplitsWraps(t *testing.T) {
	trace := []sim.Sample{
		{X: 748, Y: 100},
		{X: 750, Y: 100},
		{X: 0, Y: 100},
		{X: 2, Y: 100},
	}
	svg := TrajectoryToSVG(trace, SVGOptions{Width: 800, Height: 600, StrokeColor: "#fff"})
	if strings.Count(svg, "M") != 2 {
		t.Errorf("wrap should start a new subpath: %s", svg)
	}
}

func TestTrajectoryToSVGDegenerate(t *testing.T) {
	if TrajectoryToSVG(nil, DefaultSVGOptions()) != "" {
		t.Error("expected empty output for empty trace")
	}
	if TrajectoryToSVG([]sim.Sample{{}}, DefaultSVGOptions()) != "" {
		t.Error("expected empty output for a single sample")
	}
	if TrajectoryToSVG([]sim.Sample{{}, {X: 1}}, SVGOptions{}) != "" {
		t.Error("expected empty output without a container size")
	}
}
