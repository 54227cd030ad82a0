package sim

import (
	"fmt"
	"time"

	"github.com/san-kum/wanderer/internal/dynamo"
)

// MoverState is everything a mover carries from one tick to the next.
type MoverState struct {
	Position     dynamo.Vec2
	Velocity     dynamo.Velocity
	Speed        float64
	SpinDuration float64
	LastEscape   time.Time
	Initialized  bool
	Tick         uint64
}

type EventKind uint8

const (
	WallCollision EventKind = iota + 1
	MouseCollision
	SpeedChanged
	SpinChanged
	PositionChanged
)

var eventNames = map[EventKind]string{
	WallCollision:   "wall_collision",
	MouseCollision:  "mouse_collision",
	SpeedChanged:    "speed_changed",
	SpinChanged:     "spin_changed",
	PositionChanged: "position_changed",
}

func (k EventKind) String() string {
	if name, ok := eventNames[k]; ok {
		return name
	}
	return fmt.Sprintf("event(%d)", uint8(k))
}

// Event is emitted by a tick. Only the field matching Kind is set, except
// Position which always holds the position at emission.
type Event struct {
	Kind     EventKind
	Tick     uint64
	Position dynamo.Vec2
	Speed    float64
	Spin     float64
}

// EventSink receives events. Calls are fire-and-forget and happen on the
// ticking goroutine; a sink must not call back into the mover.
type EventSink interface {
	HandleEvent(e Event)
}

type SinkFunc func(e Event)

func (f SinkFunc) HandleEvent(e Event) { f(e) }

// Observer sees the committed state after every tick.
type Observer interface {
	OnTick(s MoverState)
}

type ObserverFunc func(s MoverState)

func (f ObserverFunc) OnTick(s MoverState) { f(s) }

// Container reports the current container size. ok is false while the
// container is not mounted.
type Container interface {
	Size() (width, height float64, ok bool)
}

// FixedContainer never changes size.
type FixedContainer struct {
	Width, Height float64
}

func (c FixedContainer) Size() (float64, float64, bool) { return c.Width, c.Height, true }

// PointerSource supplies the latest pointer position relative to the
// container. ok is false when no pointer has been seen.
type PointerSource interface {
	Pointer() (p dynamo.Vec2, ok bool)
}
