// Package physics provides the per-tick physical rules a mover obeys.
//
// The rules are pure functions over [dynamo] values:
//
//   - [ApplyForces]: gravity then friction on a velocity
//   - [ResolveEdge]: what happens when a position leaves the container
//   - [Place]: the starting position for a placement policy
//
// None of them hold state; the caller owns position and velocity and replaces
// them wholesale with the returned values.
//
//	v = physics.ApplyForces(v, physics.Forces{Gravity: true, GravityStrength: 0.1})
//	p = p.Add(v)
//	res := physics.ResolveEdge(p, v, bounds, physics.EdgeBounce, true)
package physics
