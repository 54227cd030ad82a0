package sim

import (
	"sync/atomic"

	"github.com/san-kum/wanderer/internal/dynamo"
)

// PointerTracker holds the latest pointer position. Writers and the ticking
// reader never block each other.
type PointerTracker struct {
	p atomic.Pointer[dynamo.Vec2]
}

func NewPointerTracker() *PointerTracker {
	return &PointerTracker{}
}

func (t *PointerTracker) Set(x, y float64) {
	t.p.Store(&dynamo.Vec2{X: x, Y: y})
}

// Clear forgets the pointer, e.g. when it leaves the container.
func (t *PointerTracker) Clear() {
	t.p.Store(nil)
}

func (t *PointerTracker) Pointer() (dynamo.Vec2, bool) {
	p := t.p.Load()
	if p == nil {
		return dynamo.Vec2{}, false
	}
	return *p, true
}
