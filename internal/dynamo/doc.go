// Package dynamo provides the core primitives shared by every part of the
// mover simulation.
//
// The package defines the value types and collaborator contracts the tick is
// expressed in:
//
//   - [Vec2]: a position in container-local pixel coordinates
//   - [Velocity]: a signed per-tick displacement
//   - [Bounds]: the largest in-bounds position for the current container
//   - [Source]: the uniform random source every randomized decision draws from
//   - [Clock]: the monotonic clock throttle comparisons are made against
//
// # Example
//
//	src := dynamo.NewSeeded(42)
//	v := dynamo.RandomVelocity(src, 2, 0, nil, false)
//	fmt.Println(v.Magnitude()) // 2
//
// # Determinism
//
// All randomness flows through a [Source]. Substituting a seeded source and a
// [ManualClock] makes a whole simulation run reproducible.
package dynamo
