// Package metrics turns a mover's events and states into numbers.
package metrics

import "github.com/san-kum/wanderer/internal/sim"

// Metric accumulates one figure over the committed states of a run.
type Metric interface {
	Name() string
	Observe(s sim.MoverState)
	Value() float64
	Reset()
}

// Observer feeds every committed state to ms.
func Observer(ms ...Metric) sim.Observer {
	return sim.ObserverFunc(func(s sim.MoverState) {
		for _, m := range ms {
			m.Observe(s)
		}
	})
}

// Values collects the current value of each metric by name.
func Values(ms ...Metric) map[string]float64 {
	out := make(map[string]float64, len(ms))
	for _, m := range ms {
		out[m.Name()] = m.Value()
	}
	return out
}

// Standard is the metric set recorded with every run.
func Standard() []Metric {
	return []Metric{
		NewDistance(),
		NewMeanSpeed(),
		NewTurning(),
		NewStability(DefaultSpeedLimit),
	}
}
