package metrics

import (
	"math"

	"github.com/san-kum/wanderer/internal/sim"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary describes a recorded trace.
type Summary struct {
	Samples    int     `json:"samples"`
	Duration   float64 `json:"duration"`
	Distance   float64 `json:"distance"`
	MeanSpeed  float64 `json:"mean_speed"`
	StdSpeed   float64 `json:"std_speed"`
	MinSpeed   float64 `json:"min_speed"`
	MaxSpeed   float64 `json:"max_speed"`
	MedianSpin float64 `json:"median_spin"`
	Walls      int     `json:"walls"`
	Escapes    int     `json:"escapes"`
	// Spread is the standard deviation of the position around its mean, a
	// rough measure of how much of the container the mover covered.
	Spread float64 `json:"spread"`
}

// Summarize computes trace statistics. An empty trace yields a zero Summary.
func Summarize(trace []sim.Sample) Summary {
	if len(trace) == 0 {
		return Summary{}
	}

	n := len(trace)
	speeds := make([]float64, n)
	spins := make([]float64, n)
	xs := make([]float64, n)
	ys := make([]float64, n)
	steps := make([]float64, 0, n-1)

	var out Summary
	for i, s := range trace {
		speeds[i], spins[i] = s.Speed, s.Spin
		xs[i], ys[i] = s.X, s.Y
		if i > 0 {
			steps = append(steps, math.Hypot(s.X-trace[i-1].X, s.Y-trace[i-1].Y))
		}
		if s.Wall {
			out.Walls++
		}
		if s.Escape {
			out.Escapes++
		}
	}

	out.Samples = n
	out.Duration = trace[n-1].Time - trace[0].Time
	out.Distance = floats.Sum(steps)
	out.MeanSpeed, out.StdSpeed = stat.MeanStdDev(speeds, nil)
	if n < 2 {
		out.StdSpeed = 0
	}
	out.MinSpeed, out.MaxSpeed = floats.Min(speeds), floats.Max(speeds)

	stat.SortWeighted(spins, nil)
	out.MedianSpin = stat.Quantile(0.5, stat.Empirical, spins, nil)

	_, sx := stat.PopMeanStdDev(xs, nil)
	_, sy := stat.PopMeanStdDev(ys, nil)
	out.Spread = math.Hypot(sx, sy)

	return out
}

// Series extracts one column of a trace for plotting.
func Series(trace []sim.Sample, field string) ([]float64, bool) {
	pick, ok := columns[field]
	if !ok {
		return nil, false
	}
	out := make([]float64, len(trace))
	for i, s := range trace {
		out[i] = pick(s)
	}
	return out, true
}

var columns = map[string]func(sim.Sample) float64{
	"x":     func(s sim.Sample) float64 { return s.X },
	"y":     func(s sim.Sample) float64 { return s.Y },
	"dx":    func(s sim.Sample) float64 { return s.DX },
	"dy":    func(s sim.Sample) float64 { return s.DY },
	"speed": func(s sim.Sample) float64 { return s.Speed },
	"spin":  func(s sim.Sample) float64 { return s.Spin },
}
