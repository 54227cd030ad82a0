package dynamo

import "math"

// bounceSpread is the half-width of the cone a preferred heading is jittered in.
const bounceSpread = math.Pi / 8

// Distance returns the Euclidean distance between (ax, ay) and (bx, by).
func Distance(ax, ay, bx, by float64) float64 {
	return math.Hypot(bx-ax, by-ay)
}

// Angle returns the direction from (ax, ay) towards (bx, by) in (-π, π].
func Angle(ax, ay, bx, by float64) float64 {
	return math.Atan2(by-ay, bx-ax)
}

// RandomVelocity synthesizes a velocity of roughly baseSpeed.
//
// With a nil baseAngle the heading is uniform over the full circle, otherwise
// it is uniform in *baseAngle ± π/8. The magnitude is exactly baseSpeed unless
// randomSpeed is set, in which case it is baseSpeed + U(-1,1)·variation.
// The heading is drawn before the magnitude.
func RandomVelocity(src Source, baseSpeed, variation float64, baseAngle *float64, randomSpeed bool) Velocity {
	var angle float64
	if baseAngle != nil {
		angle = *baseAngle + Uniform(src, -bounceSpread, bounceSpread)
	} else {
		angle = src.Float64() * 2 * math.Pi
	}

	speed := baseSpeed
	if randomSpeed {
		speed += Uniform(src, -1, 1) * variation
	}

	return Velocity{
		DX: math.Cos(angle) * speed,
		DY: math.Sin(angle) * speed,
	}
}

// FromPolar builds a velocity with the given heading and magnitude.
func FromPolar(angle, speed float64) Velocity {
	return Velocity{DX: math.Cos(angle) * speed, DY: math.Sin(angle) * speed}
}
