package sim

import (
	"fmt"
	"math"
	"sync"

	"github.com/san-kum/wanderer/internal/config"
	"github.com/san-kum/wanderer/internal/dynamo"
	"github.com/san-kum/wanderer/internal/perturb"
	"go.uber.org/zap"
)

// Mover owns one simulated element. Ticks are serialized by an internal lock,
// so a Mover may be driven from any goroutine.
type Mover struct {
	mu sync.Mutex

	cfg           config.Config
	width, height float64
	container     Container
	pointer       PointerSource
	src           dynamo.Source
	clock         dynamo.Clock
	sinks         []EventSink
	observers     []Observer
	log           *zap.Logger

	state   MoverState
	stopped bool
}

type Option func(*Mover)

// WithSize sets the mover's own width and height in pixels.
func WithSize(width, height float64) Option {
	return func(m *Mover) { m.width, m.height = width, height }
}

func WithContainer(c Container) Option   { return func(m *Mover) { m.container = c } }
func WithPointer(p PointerSource) Option { return func(m *Mover) { m.pointer = p } }
func WithSource(src dynamo.Source) Option {
	return func(m *Mover) { m.src = src }
}
func WithClock(c dynamo.Clock) Option   { return func(m *Mover) { m.clock = c } }
func WithSink(s EventSink) Option       { return func(m *Mover) { m.sinks = append(m.sinks, s) } }
func WithObserver(o Observer) Option    { return func(m *Mover) { m.observers = append(m.observers, o) } }
func WithLogger(log *zap.Logger) Option { return func(m *Mover) { m.log = log } }

// New builds a mover from cfg. The configuration is resolved once here; an
// unusable configuration or a negative size is reported as
// dynamo.ErrInvalidConfiguration.
func New(cfg config.Config, opts ...Option) (*Mover, error) {
	resolved, err := cfg.Resolve()
	if err != nil {
		return nil, err
	}

	m := &Mover{
		cfg:    resolved,
		width:  config.DefaultMoverSize,
		height: config.DefaultMoverSize,
		src:    dynamo.Global{},
		clock:  dynamo.SystemClock{},
		log:    zap.NewNop(),
		state: MoverState{
			Speed:        resolved.Movement.BaseSpeed,
			SpinDuration: perturb.InitialSpinDuration,
		},
	}
	for _, opt := range opts {
		opt(m)
	}

	if !validDimension(m.width) || !validDimension(m.height) {
		return nil, &dynamo.ConfigError{
			Field:  "mover.size",
			Value:  [2]float64{m.width, m.height},
			Reason: fmt.Sprintf("size %vx%v must be non-negative", m.width, m.height),
		}
	}
	if m.container != nil {
		if w, h, ok := m.container.Size(); ok && (!validDimension(w) || !validDimension(h)) {
			return nil, &dynamo.ConfigError{
				Field:  "container.size",
				Value:  [2]float64{w, h},
				Reason: fmt.Sprintf("size %vx%v must be non-negative", w, h),
			}
		}
	}

	return m, nil
}

// Init places the mover if it has not been placed yet and its container is
// available. It reports whether placement happened on this call.
func (m *Mover) Init() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.stopped || m.state.Initialized {
		return false
	}
	w, h, ok := m.containerSize()
	if !ok {
		return false
	}
	m.place(w, h)
	return true
}

// Tick advances the mover by one step and returns the events it emitted.
// A tick on an unmounted container or a stopped mover does nothing. The
// first tick that finds the container places the mover instead of moving it.
func (m *Mover) Tick() []Event {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.stopped {
		return nil
	}
	w, h, ok := m.containerSize()
	if !ok {
		return nil
	}
	if !m.state.Initialized {
		return []Event{m.place(w, h)}
	}

	in := Input{
		Bounds: dynamo.BoundsFor(w, h, m.width, m.height),
		Now:    m.clock.Now(),
		Source: m.src,
	}
	if m.pointer != nil {
		in.Pointer, in.HasPointer = m.pointer.Pointer()
	}

	next, events := Step(m.state, &m.cfg, in)
	m.state = next
	m.dispatch(events)

	if m.cfg.Advanced.EnableDebug {
		m.log.Debug("mover position",
			zap.Uint64("tick", next.Tick),
			zap.Float64("x", next.Position.X),
			zap.Float64("y", next.Position.Y))
	}
	return events
}

func (m *Mover) place(w, h float64) Event {
	next, ev := Place(m.state, &m.cfg, m.src, w, h, m.width, m.height)
	m.state = next
	m.dispatch([]Event{ev})
	m.log.Debug("mover placed",
		zap.Stringer("start", m.cfg.Behavior.StartPosition),
		zap.Stringer("position", next.Position))
	return ev
}

func (m *Mover) dispatch(events []Event) {
	for _, e := range events {
		for _, s := range m.sinks {
			s.HandleEvent(e)
		}
	}
	for _, o := range m.observers {
		o.OnTick(m.state)
	}
}

func (m *Mover) containerSize() (float64, float64, bool) {
	if m.container == nil {
		return 0, 0, false
	}
	w, h, ok := m.container.Size()
	if !ok || !validDimension(w) || !validDimension(h) {
		return 0, 0, false
	}
	return w, h, true
}

// Reconfigure applies fn to a copy of the configuration between ticks. The
// change is discarded if the result does not resolve.
func (m *Mover) Reconfigure(fn func(*config.Config)) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.stopped {
		return dynamo.ErrMoverStopped
	}
	next := m.cfg.Clone()
	fn(&next)
	resolved, err := next.Resolve()
	if err != nil {
		return err
	}
	m.cfg = resolved
	return nil
}

// Stop tears the mover down. Once Stop returns no tick will mutate state or
// reach a sink.
func (m *Mover) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.stopped {
		return
	}
	m.stopped = true
	m.log.Debug("mover stopped", zap.Uint64("ticks", m.state.Tick))
}

func (m *Mover) Stopped() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.stopped
}

func (m *Mover) State() MoverState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

func (m *Mover) Config() config.Config {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cfg.Clone()
}

// Size returns the mover's own dimensions.
func (m *Mover) Size() (width, height float64) {
	return m.width, m.height
}

func validDimension(f float64) bool {
	return f >= 0 && !math.IsInf(f, 0)
}
