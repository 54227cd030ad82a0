package sim

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/san-kum/wanderer/internal/dynamo"
)

var ErrRunnerStarted = errors.New("sim: runner already started")

// Runner drives a mover at its configured frame rate until stopped. Stopping
// the runner, or cancelling the context it was started with, tears the mover
// down.
type Runner struct {
	mover *Mover

	mu       sync.Mutex
	cancel   context.CancelFunc
	done     chan struct{}
	interval time.Duration
}

func NewRunner(m *Mover) *Runner {
	cfg := m.Config()
	return &Runner{mover: m, interval: cfg.FrameInterval()}
}

// Interval is the period between ticks.
func (r *Runner) Interval() time.Duration {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.interval
}

func (r *Runner) Start(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.done != nil {
		return ErrRunnerStarted
	}
	if r.mover.Stopped() {
		return dynamo.ErrMoverStopped
	}

	cfg := r.mover.Config()
	r.interval = cfg.FrameInterval()

	ctx, cancel := context.WithCancel(ctx)
	r.cancel = cancel
	r.done = make(chan struct{})
	go r.loop(ctx, r.interval, r.done)
	return nil
}

func (r *Runner) loop(ctx context.Context, interval time.Duration, done chan struct{}) {
	defer close(done)
	defer r.mover.Stop()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	r.mover.Init()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.mover.Tick()
		}
	}
}

// Stop halts the schedule and waits for the in-flight tick, if any.
func (r *Runner) Stop() {
	r.mu.Lock()
	cancel, done := r.cancel, r.done
	r.mu.Unlock()

	if cancel == nil {
		r.mover.Stop()
		return
	}
	cancel()
	<-done
}

// Done is closed once the runner has stopped. It is nil before Start.
func (r *Runner) Done() <-chan struct{} {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.done
}
