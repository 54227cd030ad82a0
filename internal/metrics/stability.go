package metrics

import "github.com/san-kum/wanderer/internal/sim"

// DefaultSpeedLimit is the speed above which a tick counts as a burst.
const DefaultSpeedLimit = 10.0

// Stability is the fraction of ticks spent at or below a speed limit.
type Stability struct {
	name       string
	threshold  float64
	violations int
	samples    int
}

func NewStability(threshold float64) *Stability {
	return &Stability{
		name:      "stability",
		threshold: threshold,
	}
}

func (s *Stability) Name() string {
	return s.name
}

func (s *Stability) Observe(st sim.MoverState) {
	s.samples++
	if st.Velocity.Magnitude() > s.threshold {
		s.violations++
	}
}

func (s *Stability) Value() float64 {
	if s.samples == 0 {
		return 1.0
	}
	return 1.0 - float64(s.violations)/float64(s.samples)
}

func (s *Stability) Reset() {
	s.violations = 0
	s.samples = 0
}
