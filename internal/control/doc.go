// Package control provides the steering responses a mover applies on top of
// its physics.
//
//   - [Avoidance]: flee from a nearby pointer, with an unthrottled safety zone
//     and a throttled detection zone
//
// # Usage
//
//	av := control.Avoidance{Enabled: true, DetectionDistance: 60, SafetyZone: 30,
//	    EscapeSpeedMultiplier: 2, EscapeAngleVariation: math.Pi / 3,
//	    ThrottleDelay: 100 * time.Millisecond}
//	esc := av.Resolve(src, pos, pointer, v, baseSpeed, clock.Now(), lastEscape)
//	if esc.Fired {
//	    // emit a pointer collision
//	}
package control
