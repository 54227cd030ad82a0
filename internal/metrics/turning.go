package metrics

import (
	"math"

	"github.com/san-kum/wanderer/internal/sim"
)

// Turning is the mean absolute heading change between ticks, in radians.
// Ticks where either velocity is zero carry no heading and are skipped.
type Turning struct {
	name    string
	sum     float64
	samples int
	last    float64
	valid   bool
}

func NewTurning() *Turning {
	return &Turning{name: "turning"}
}

func (t *Turning) Name() string { return t.name }

func (t *Turning) Observe(s sim.MoverState) {
	if s.Velocity.IsZero() {
		t.valid = false
		return
	}
	h := s.Velocity.Heading()
	if t.valid {
		t.sum += math.Abs(wrapAngle(h - t.last))
		t.samples++
	}
	t.last, t.valid = h, true
}

func (t *Turning) Value() float64 {
	if t.samples == 0 {
		return 0
	}
	return t.sum / float64(t.samples)
}

func (t *Turning) Reset() {
	t.sum = 0
	t.samples = 0
	t.valid = false
}

// wrapAngle maps a into (-π, π].
func wrapAngle(a float64) float64 {
	a = math.Mod(a+math.Pi, 2*math.Pi)
	if a <= 0 {
		a += 2 * math.Pi
	}
	return a - math.Pi
}
