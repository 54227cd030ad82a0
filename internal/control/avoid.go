package control

import (
	"math"
	"time"

	"github.com/san-kum/wanderer/internal/dynamo"
)

const (
	DefaultDetectionDistance     = 60.0
	DefaultSafetyZone            = 30.0
	DefaultEscapeSpeedMultiplier = 2.0
	DefaultEscapeAngleVariation  = math.Pi / 3
	DefaultThrottleDelay         = 100 * time.Millisecond

	// MinEscapeSpeed is the floor of a detection-zone escape.
	MinEscapeSpeed = 5.0
	// minDistanceFactor keeps the escape boost alive up to the detection edge.
	minDistanceFactor = 0.2
	distanceBoost     = 6.0
	// safetySpread is the full width of the jitter on an emergency escape.
	safetySpread = math.Pi / 2
)

// Avoidance steers the mover away from the pointer.
type Avoidance struct {
	Enabled               bool
	DetectionDistance     float64
	SafetyZone            float64
	EscapeSpeedMultiplier float64
	EscapeAngleVariation  float64
	ThrottleDelay         time.Duration
}

func NewAvoidance() Avoidance {
	return Avoidance{
		Enabled:               true,
		DetectionDistance:     DefaultDetectionDistance,
		SafetyZone:            DefaultSafetyZone,
		EscapeSpeedMultiplier: DefaultEscapeSpeedMultiplier,
		EscapeAngleVariation:  DefaultEscapeAngleVariation,
		ThrottleDelay:         DefaultThrottleDelay,
	}
}

// Escape is the outcome of one avoidance check.
type Escape struct {
	Velocity   dynamo.Velocity
	LastEscape time.Time
	Fired      bool
	// Emergency marks an escape triggered inside the safety zone.
	Emergency bool
}

// Resolve returns the velocity after reacting to the pointer at now.
//
// Inside the safety zone the mover always escapes at twice the boosted base
// speed. Inside the detection zone it escapes at [EscapeSpeed], but at most
// once per ThrottleDelay. Anywhere else v passes through unchanged.
func (a Avoidance) Resolve(src dynamo.Source, pos, pointer dynamo.Vec2, v dynamo.Velocity, baseSpeed float64, now, lastEscape time.Time) Escape {
	pass := Escape{Velocity: v, LastEscape: lastEscape}
	if !a.Enabled {
		return pass
	}

	d := dynamo.Distance(pos.X, pos.Y, pointer.X, pointer.Y)
	away := dynamo.Angle(pointer.X, pointer.Y, pos.X, pos.Y)

	switch {
	case d < a.SafetyZone:
		speed := baseSpeed * a.EscapeSpeedMultiplier * 2
		angle := away + dynamo.Uniform(src, -safetySpread/2, safetySpread/2)
		return Escape{
			Velocity:   dynamo.FromPolar(angle, speed),
			LastEscape: latest(lastEscape, now),
			Fired:      true,
			Emergency:  true,
		}

	case d < a.DetectionDistance:
		if now.Sub(lastEscape) < a.ThrottleDelay {
			return pass
		}
		speed := EscapeSpeed(baseSpeed, a.EscapeSpeedMultiplier, d, a.DetectionDistance)
		angle := away + dynamo.Uniform(src, -a.EscapeAngleVariation/2, a.EscapeAngleVariation/2)
		return Escape{
			Velocity:   dynamo.FromPolar(angle, speed),
			LastEscape: latest(lastEscape, now),
			Fired:      true,
		}
	}

	return pass
}

// EscapeSpeed is non-increasing in distance and never below MinEscapeSpeed.
func EscapeSpeed(baseSpeed, multiplier, distance, detectionDistance float64) float64 {
	factor := math.Max(minDistanceFactor, 1-distance/detectionDistance)
	return math.Max(baseSpeed*multiplier+factor*distanceBoost, MinEscapeSpeed)
}

func latest(a, b time.Time) time.Time {
	if b.Before(a) {
		return a
	}
	return b
}
