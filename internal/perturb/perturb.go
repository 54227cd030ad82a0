// Package perturb decides when a mover randomly changes its speed or its spin
// cadence, and draws the new values.
package perturb

import (
	"math"

	"github.com/san-kum/wanderer/internal/dynamo"
)

const (
	minSpeedFactor = 0.8
	maxSpeedFactor = 3.2

	// FallbackSpinDuration is used when no durations are configured.
	FallbackSpinDuration = 1.0
	// InitialSpinDuration is the spin duration of a freshly built mover.
	InitialSpinDuration = 2.0
)

// ShouldChange is a Bernoulli trial with success probability frequency.
// It always consumes exactly one draw.
func ShouldChange(src dynamo.Source, frequency float64) bool {
	return src.Float64() < frequency
}

// SpeedChange is the outcome of a speed perturbation.
type SpeedChange struct {
	Velocity dynamo.Velocity
	Speed    float64
	Changed  bool
}

// ChangeSpeed draws a new speed in baseSpeed·[0.8, 3.2) and re-derives the
// velocity around the current heading. With randomSpeed off it is a no-op.
func ChangeSpeed(src dynamo.Source, v dynamo.Velocity, baseSpeed, variation float64, randomSpeed bool) SpeedChange {
	if !randomSpeed {
		return SpeedChange{Velocity: v}
	}

	speed := baseSpeed * dynamo.Uniform(src, minSpeedFactor, maxSpeedFactor)
	heading := math.Atan2(v.DY, v.DX)
	return SpeedChange{
		Velocity: dynamo.RandomVelocity(src, speed, variation, &heading, randomSpeed),
		Speed:    speed,
		Changed:  true,
	}
}

// SpinDuration picks one of durations uniformly.
func SpinDuration(src dynamo.Source, durations []float64) float64 {
	if len(durations) == 0 {
		return FallbackSpinDuration
	}
	i := int(math.Floor(src.Float64() * float64(len(durations))))
	if i >= len(durations) {
		i = len(durations) - 1
	}
	return durations[i]
}
