package sim

import (
	"time"

	"github.com/san-kum/wanderer/internal/config"
	"github.com/san-kum/wanderer/internal/dynamo"
	"github.com/san-kum/wanderer/internal/perturb"
	"github.com/san-kum/wanderer/internal/physics"
)

// Input is what a tick reads from its collaborators.
type Input struct {
	Bounds     dynamo.Bounds
	Pointer    dynamo.Vec2
	HasPointer bool
	Now        time.Time
	Source     dynamo.Source
}

// Step advances an initialized mover by one tick. The order is fixed:
// forces, integration, edge policy, pointer avoidance, random bounce, speed
// perturbation, spin perturbation, commit.
func Step(s MoverState, cfg *config.Config, in Input) (MoverState, []Event) {
	var events []Event
	emit := func(e Event) {
		e.Tick = s.Tick + 1
		events = append(events, e)
	}

	v := physics.ApplyForces(s.Velocity, cfg.Forces())
	p := s.Position.Add(v)

	edge := physics.ResolveEdge(p, v, in.Bounds, cfg.Behavior.BoundaryBehavior, cfg.Bounce.Enabled)
	p, v = edge.Position, edge.Velocity
	if edge.Rebounded {
		emit(Event{Kind: WallCollision, Position: p})
	}

	if in.HasPointer {
		esc := cfg.Avoidance().Resolve(in.Source, p, in.Pointer, v, cfg.Movement.BaseSpeed, in.Now, s.LastEscape)
		v, s.LastEscape = esc.Velocity, esc.LastEscape
		if esc.Fired {
			emit(Event{Kind: MouseCollision, Position: p})
		}
	}

	if edge.Rebounded && cfg.Bounce.EnableRandomBounce {
		// reverse carries no angle, so its rebound heading is drawn from the full circle
		var angle *float64
		if edge.HasAngle {
			angle = &edge.Angle
		}
		v = dynamo.RandomVelocity(in.Source, cfg.Movement.BaseSpeed, cfg.Movement.SpeedVariation, angle, cfg.Movement.EnableRandomSpeed)
	}

	if perturb.ShouldChange(in.Source, cfg.Movement.SpeedChangeFrequency) {
		ch := perturb.ChangeSpeed(in.Source, v, cfg.Movement.BaseSpeed, cfg.Movement.SpeedVariation, cfg.Movement.EnableRandomSpeed)
		if ch.Changed {
			v, s.Speed = ch.Velocity, ch.Speed
			emit(Event{Kind: SpeedChanged, Position: p, Speed: ch.Speed})
		}
	}

	if perturb.ShouldChange(in.Source, cfg.Rotation.ChangeFrequency) {
		s.SpinDuration = perturb.SpinDuration(in.Source, cfg.Rotation.Durations)
		emit(Event{Kind: SpinChanged, Position: p, Spin: s.SpinDuration})
	}

	s.Position, s.Velocity = p, v
	emit(Event{Kind: PositionChanged, Position: p})
	s.Tick++

	return s, events
}

// Place performs the one-time placement of a fresh mover.
func Place(s MoverState, cfg *config.Config, src dynamo.Source, containerW, containerH, moverW, moverH float64) (MoverState, Event) {
	s.Position = physics.Place(src, cfg.Behavior.StartPosition, containerW, containerH, moverW, moverH)
	s.Velocity = dynamo.RandomVelocity(src, cfg.Movement.BaseSpeed, cfg.Movement.SpeedVariation, nil, cfg.Movement.EnableRandomSpeed)
	s.Speed = cfg.Movement.BaseSpeed
	s.Initialized = true
	return s, Event{Kind: PositionChanged, Tick: s.Tick, Position: s.Position}
}
