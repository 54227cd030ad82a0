package sim

import "time"

// Sample is one row of a recorded run.
type Sample struct {
	Tick   uint64  `csv:"tick" json:"tick"`
	Time   float64 `csv:"time" json:"time"`
	X      float64 `csv:"x" json:"x"`
	Y      float64 `csv:"y" json:"y"`
	DX     float64 `csv:"dx" json:"dx"`
	DY     float64 `csv:"dy" json:"dy"`
	Speed  float64 `csv:"speed" json:"speed"`
	Spin   float64 `csv:"spin" json:"spin"`
	Wall   bool    `csv:"wall" json:"wall"`
	Escape bool    `csv:"escape" json:"escape"`
}

// SampleOf flattens a committed state and the events of its tick. elapsed is
// the simulated time since the run started.
func SampleOf(s MoverState, events []Event, elapsed time.Duration) Sample {
	out := Sample{
		Tick:  s.Tick,
		Time:  elapsed.Seconds(),
		X:     s.Position.X,
		Y:     s.Position.Y,
		DX:    s.Velocity.DX,
		DY:    s.Velocity.DY,
		Speed: s.Velocity.Magnitude(),
		Spin:  s.SpinDuration,
	}
	for _, e := range events {
		switch e.Kind {
		case WallCollision:
			out.Wall = true
		case MouseCollision:
			out.Escape = true
		}
	}
	return out
}
