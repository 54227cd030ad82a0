package metrics

import (
	"sync"

	"github.com/san-kum/wanderer/internal/sim"
)

// Counter tallies events by kind. It is safe to read while a runner feeds it.
type Counter struct {
	mu     sync.Mutex
	counts map[sim.EventKind]int
}

func NewCounter() *Counter {
	return &Counter{counts: make(map[sim.EventKind]int)}
}

func (c *Counter) HandleEvent(e sim.Event) {
	c.mu.Lock()
	c.counts[e.Kind]++
	c.mu.Unlock()
}

func (c *Counter) Count(kind sim.EventKind) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.counts[kind]
}

// Counts is keyed by the event name, e.g. "wall_collision".
func (c *Counter) Counts() map[string]int {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make(map[string]int, len(c.counts))
	for k, n := range c.counts {
		out[k.String()] = n
	}
	return out
}

func (c *Counter) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	clear(c.counts)
}
