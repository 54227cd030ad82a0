// Package viz is the live terminal view of a mover.
//
// The view runs on Bubble Tea: every frame tick advances the mover once, the
// terminal mouse drives the pointer and the canvas is the container. The
// mover is drawn on a braille [Canvas], so one terminal cell holds 2x4 dots
// and each dot covers [Options].Scale container pixels.
//
// # Key Bindings
//
//	Space - Pause/Resume
//	R     - Restart from placement
//	P     - Next preset
//	B     - Next boundary behavior
//	S     - Save an SVG snapshot
//	G     - Toggle GIF recording
//	T     - Cycle color themes
//	?     - Show help overlay
package viz
