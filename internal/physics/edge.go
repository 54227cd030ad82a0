package physics

import (
	"fmt"
	"math"

	"github.com/san-kum/wanderer/internal/dynamo"
)

// EdgeBehavior is the policy applied when the mover leaves the container.
type EdgeBehavior string

const (
	EdgeBounce  EdgeBehavior = "bounce"
	EdgeWrap    EdgeBehavior = "wrap"
	EdgeStop    EdgeBehavior = "stop"
	EdgeReverse EdgeBehavior = "reverse"
)

var edgeBehaviors = []EdgeBehavior{EdgeBounce, EdgeWrap, EdgeStop, EdgeReverse}

// EdgeBehaviors lists the supported policies.
func EdgeBehaviors() []EdgeBehavior {
	out := make([]EdgeBehavior, len(edgeBehaviors))
	copy(out, edgeBehaviors)
	return out
}

func ParseEdgeBehavior(s string) (EdgeBehavior, error) {
	for _, b := range edgeBehaviors {
		if string(b) == s {
			return b, nil
		}
	}
	return "", fmt.Errorf("unknown boundary behavior: %q", s)
}

func (b EdgeBehavior) Valid() bool {
	_, err := ParseEdgeBehavior(string(b))
	return err == nil
}

// EdgeResult is the outcome of an edge check.
//
// Angle is only meaningful when HasAngle is set: it is the heading of the
// reflected velocity and seeds a random bounce.
type EdgeResult struct {
	Position  dynamo.Vec2
	Velocity  dynamo.Velocity
	Rebounded bool
	Angle     float64
	HasAngle  bool
}

// ResolveEdge applies behavior to a post-integration position. A coordinate
// exactly on 0 or the bound is in bounds; only strictly outside collides.
func ResolveEdge(p dynamo.Vec2, v dynamo.Velocity, b dynamo.Bounds, behavior EdgeBehavior, bounceEnabled bool) EdgeResult {
	res := EdgeResult{Position: p, Velocity: v}
	outX := p.X < 0 || p.X > b.MaxX
	outY := p.Y < 0 || p.Y > b.MaxY

	switch behavior {
	case EdgeBounce:
		if !bounceEnabled {
			break
		}
		reflect(&res, b, outX, outY)
		if res.Rebounded {
			// both axes hitting in one tick yields the heading after both reflections
			res.Angle = math.Atan2(res.Velocity.DY, res.Velocity.DX)
			res.HasAngle = true
		}

	case EdgeWrap:
		switch {
		case p.X < 0:
			res.Position.X = b.MaxX
		case p.X > b.MaxX:
			res.Position.X = 0
		}
		switch {
		case p.Y < 0:
			res.Position.Y = b.MaxY
		case p.Y > b.MaxY:
			res.Position.Y = 0
		}

	case EdgeStop:
		res.Position = dynamo.Vec2{X: clamp(p.X, b.MaxX), Y: clamp(p.Y, b.MaxY)}
		if outX || outY {
			res.Velocity = dynamo.Velocity{}
		}

	case EdgeReverse:
		reflect(&res, b, outX, outY)
	}

	return res
}

func reflect(res *EdgeResult, b dynamo.Bounds, outX, outY bool) {
	if outX {
		res.Position.X = clamp(res.Position.X, b.MaxX)
		res.Velocity.DX = -res.Velocity.DX
		res.Rebounded = true
	}
	if outY {
		res.Position.Y = clamp(res.Position.Y, b.MaxY)
		res.Velocity.DY = -res.Velocity.DY
		res.Rebounded = true
	}
}

// clamp restricts x to [0, max]. A negative max pins x to 0.
func clamp(x, max float64) float64 {
	return math.Max(0, math.Min(max, x))
}
