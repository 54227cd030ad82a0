package dynamo

import (
	"fmt"
	"math"
)

// Vec2 is a position in container-local pixel coordinates.
type Vec2 struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

func (v Vec2) Add(d Velocity) Vec2 {
	return Vec2{X: v.X + d.DX, Y: v.Y + d.DY}
}

func (v Vec2) IsValid() bool {
	return isFinite(v.X) && isFinite(v.Y)
}

func (v Vec2) String() string {
	return fmt.Sprintf("(%.2f, %.2f)", v.X, v.Y)
}

// Velocity is the displacement applied to a position on every tick.
type Velocity struct {
	DX float64 `json:"dx" yaml:"dx"`
	DY float64 `json:"dy" yaml:"dy"`
}

func (v Velocity) Scale(factor float64) Velocity {
	return Velocity{DX: v.DX * factor, DY: v.DY * factor}
}

func (v Velocity) Magnitude() float64 {
	return math.Hypot(v.DX, v.DY)
}

// Heading returns the direction of travel in radians.
func (v Velocity) Heading() float64 {
	return math.Atan2(v.DY, v.DX)
}

func (v Velocity) IsZero() bool {
	return v.DX == 0 && v.DY == 0
}

func (v Velocity) IsValid() bool {
	return isFinite(v.DX) && isFinite(v.DY)
}

// Bounds is the largest position the mover may occupy: container size minus
// mover size. Either component may be negative when the mover does not fit.
type Bounds struct {
	MaxX float64
	MaxY float64
}

// BoundsFor derives the bounds for a container and mover size.
func BoundsFor(containerW, containerH, moverW, moverH float64) Bounds {
	return Bounds{MaxX: containerW - moverW, MaxY: containerH - moverH}
}

// Contains reports whether p lies in [0, MaxX] × [0, MaxY].
func (b Bounds) Contains(p Vec2) bool {
	return p.X >= 0 && p.X <= b.MaxX && p.Y >= 0 && p.Y <= b.MaxY
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
