package experiment

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/san-kum/wanderer/internal/dynamo"
)

// Path scripts the pointer for a headless run. ok is false while the pointer
// is outside the container.
type Path interface {
	At(elapsed time.Duration, width, height float64) (p dynamo.Vec2, ok bool)
}

type PathFunc func(elapsed time.Duration, width, height float64) (dynamo.Vec2, bool)

func (f PathFunc) At(elapsed time.Duration, width, height float64) (dynamo.Vec2, bool) {
	return f(elapsed, width, height)
}

const (
	orbitPeriod = 4 * time.Second
	sweepPeriod = 6 * time.Second
)

var paths = map[string]Path{
	"none": PathFunc(func(time.Duration, float64, float64) (dynamo.Vec2, bool) {
		return dynamo.Vec2{}, false
	}),
	"center": PathFunc(func(_ time.Duration, w, h float64) (dynamo.Vec2, bool) {
		return dynamo.Vec2{X: w / 2, Y: h / 2}, true
	}),
	"orbit": PathFunc(func(t time.Duration, w, h float64) (dynamo.Vec2, bool) {
		r := math.Min(w, h) / 3
		a := 2 * math.Pi * t.Seconds() / orbitPeriod.Seconds()
		return dynamo.Vec2{X: w/2 + r*math.Cos(a), Y: h/2 + r*math.Sin(a)}, true
	}),
	"sweep": PathFunc(func(t time.Duration, w, h float64) (dynamo.Vec2, bool) {
		phase := math.Mod(t.Seconds(), sweepPeriod.Seconds()) / sweepPeriod.Seconds()
		// out and back along the horizontal midline
		x := 2 * phase * w
		if phase > 0.5 {
			x = 2 * (1 - phase) * w
		}
		return dynamo.Vec2{X: x, Y: h / 2}, true
	}),
}

// Paths lists the named pointer scripts.
func Paths() []string {
	names := make([]string, 0, len(paths))
	for name := range paths {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ParsePath resolves a named script or a fixed "x,y" point.
func ParsePath(s string) (Path, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return paths["none"], nil
	}
	if p, ok := paths[s]; ok {
		return p, nil
	}

	var x, y float64
	if _, err := fmt.Sscanf(s, "%g,%g", &x, &y); err != nil {
		return nil, fmt.Errorf("unknown pointer path %q (want one of %s or x,y)", s, strings.Join(Paths(), ", "))
	}
	fixed := dynamo.Vec2{X: x, Y: y}
	return PathFunc(func(time.Duration, float64, float64) (dynamo.Vec2, bool) {
		return fixed, true
	}), nil
}

// scripted adapts a Path to sim.PointerSource by reading a clock.
type scripted struct {
	path          Path
	clock         dynamo.Clock
	start         time.Time
	width, height float64
}

func (s *scripted) Pointer() (dynamo.Vec2, bool) {
	return s.path.At(s.clock.Now().Sub(s.start), s.width, s.height)
}
