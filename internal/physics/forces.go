package physics

import "github.com/san-kum/wanderer/internal/dynamo"

const (
	DefaultGravityStrength     = 0.1
	DefaultFrictionCoefficient = 0.98
)

// Forces selects which forces act on the mover each tick.
type Forces struct {
	Gravity             bool
	GravityStrength     float64
	Friction            bool
	FrictionCoefficient float64
}

// ApplyForces adds gravity to DY and then scales both components by the
// friction coefficient. A disabled force is an identity step.
func ApplyForces(v dynamo.Velocity, f Forces) dynamo.Velocity {
	if f.Gravity {
		v.DY += f.GravityStrength
	}
	if f.Friction {
		v.DX *= f.FrictionCoefficient
		v.DY *= f.FrictionCoefficient
	}
	return v
}
