package metrics

import (
	"github.com/san-kum/wanderer/internal/dynamo"
	"github.com/san-kum/wanderer/internal/sim"
)

// Distance is the path length covered, in pixels. Teleports from wrapping
// count like any other displacement.
type Distance struct {
	name  string
	total float64
	last  dynamo.Vec2
	seen  bool
}

func NewDistance() *Distance {
	return &Distance{name: "distance"}
}

func (d *Distance) Name() string { return d.name }

func (d *Distance) Observe(s sim.MoverState) {
	if d.seen {
		d.total += dynamo.Distance(d.last.X, d.last.Y, s.Position.X, s.Position.Y)
	}
	d.last, d.seen = s.Position, true
}

func (d *Distance) Value() float64 { return d.total }

func (d *Distance) Reset() {
	d.total = 0
	d.seen = false
}

// MeanSpeed averages the velocity magnitude per tick.
type MeanSpeed struct {
	name    string
	sum     float64
	samples int
}

func NewMeanSpeed() *MeanSpeed {
	return &MeanSpeed{name: "mean_speed"}
}

func (m *MeanSpeed) Name() string { return m.name }

func (m *MeanSpeed) Observe(s sim.MoverState) {
	m.sum += s.Velocity.Magnitude()
	m.samples++
}

func (m *MeanSpeed) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return m.sum / float64(m.samples)
}

func (m *MeanSpeed) Reset() {
	m.sum = 0
	m.samples = 0
}
