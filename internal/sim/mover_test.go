package sim_test

import (
	"errors"
	"math"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/wanderer/internal/config"
	"github.com/san-kum/wanderer/internal/dynamo"
	"github.com/san-kum/wanderer/internal/physics"
	"github.com/san-kum/wanderer/internal/sim"
)

// mountable is a container that can appear and disappear between ticks.
type mountable struct {
	w, h    float64
	mounted bool
}

func (c *mountable) Size() (float64, float64, bool) { return c.w, c.h, c.mounted }

type recorder struct{ events []sim.Event }

func (r *recorder) HandleEvent(e sim.Event) { r.events = append(r.events, e) }

func (r *recorder) count(kind sim.EventKind) int {
	n := 0
	for _, e := range r.events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

var _ = Describe("Mover", func() {
	var (
		cfg       config.Config
		container *mountable
		rec       *recorder
		clock     *dynamo.ManualClock
	)

	BeforeEach(func() {
		cfg = config.Default()
		cfg.Behavior.StartPosition = physics.CenterStart()
		container = &mountable{w: 800, h: 600, mounted: true}
		rec = &recorder{}
		clock = dynamo.NewManualClock(time.Unix(0, 0))
	})

	build := func(opts ...sim.Option) *sim.Mover {
		base := []sim.Option{
			sim.WithContainer(container),
			sim.WithSink(rec),
			sim.WithSource(dynamo.NewSeeded(3)),
			sim.WithClock(clock),
		}
		m, err := sim.New(cfg, append(base, opts...)...)
		Expect(err).NotTo(HaveOccurred())
		return m
	}

	Describe("construction", func() {
		It("rejects a negative mover size", func() {
			_, err := sim.New(cfg, sim.WithSize(-1, 50))
			Expect(errors.Is(err, dynamo.ErrInvalidConfiguration)).To(BeTrue())
		})

		It("rejects a negative container", func() {
			_, err := sim.New(cfg, sim.WithContainer(&mountable{w: -10, h: 600, mounted: true}))
			Expect(errors.Is(err, dynamo.ErrInvalidConfiguration)).To(BeTrue())
		})

		It("rejects a non-finite base speed", func() {
			cfg.Movement.BaseSpeed = math.NaN()
			_, err := sim.New(cfg)
			Expect(errors.Is(err, dynamo.ErrInvalidConfiguration)).To(BeTrue())
		})

		It("starts unplaced with the initial spin", func() {
			m := build()
			Expect(m.State().Initialized).To(BeFalse())
			Expect(m.State().SpinDuration).To(Equal(2.0))
			w, h := m.Size()
			Expect([]float64{w, h}).To(Equal([]float64{50, 50}))
		})
	})

	Describe("placement", func() {
		It("places on the first tick without moving", func() {
			m := build()
			events := m.Tick()
			Expect(events).To(HaveLen(1))
			Expect(events[0].Kind).To(Equal(sim.PositionChanged))
			Expect(m.State().Position).To(Equal(dynamo.Vec2{X: 375, Y: 275}))
			Expect(m.State().Tick).To(BeZero())
		})

		It("places exactly once", func() {
			m := build()
			Expect(m.Init()).To(BeTrue())
			Expect(m.Init()).To(BeFalse())
			m.Tick()
			Expect(m.State().Tick).To(Equal(uint64(1)))
		})

		It("waits for the container to mount", func() {
			container.mounted = false
			m := build()
			Expect(m.Init()).To(BeFalse())
			Expect(m.Tick()).To(BeNil())
			Expect(rec.events).To(BeEmpty())

			container.mounted = true
			Expect(m.Tick()).To(HaveLen(1))
			Expect(m.State().Initialized).To(BeTrue())
		})

		It("does nothing while a placed mover's container is gone", func() {
			m := build()
			m.Tick()
			before := m.State()
			container.mounted = false
			Expect(m.Tick()).To(BeNil())
			Expect(m.State()).To(Equal(before))
		})
	})

	Describe("ticking", func() {
		It("keeps the mover inside a shrinking container", func() {
			m := build()
			m.Tick()
			container.w, container.h = 120, 90
			for i := 0; i < 200; i++ {
				m.Tick()
				p := m.State().Position
				Expect(p.X).To(BeNumerically(">=", 0))
				Expect(p.X).To(BeNumerically("<=", 70))
				Expect(p.Y).To(BeNumerically(">=", 0))
				Expect(p.Y).To(BeNumerically("<=", 40))
			}
			Expect(rec.count(sim.WallCollision)).To(BeNumerically(">", 0))
		})

		It("reports the pointer when one is present", func() {
			pointer := sim.NewPointerTracker()
			m := build(sim.WithPointer(pointer))
			m.Tick()
			p := m.State().Position
			pointer.Set(p.X+5, p.Y+5)
			clock.Advance(time.Second)
			m.Tick()
			Expect(rec.count(sim.MouseCollision)).To(Equal(1))
		})

		It("notifies observers after the sinks", func() {
			var seen []uint64
			m := build(sim.WithObserver(sim.ObserverFunc(func(s sim.MoverState) {
				Expect(rec.events).NotTo(BeEmpty())
				seen = append(seen, s.Tick)
			})))
			m.Tick()
			m.Tick()
			m.Tick()
			Expect(seen).To(Equal([]uint64{0, 1, 2}))
		})
	})

	Describe("reconfiguration", func() {
		It("applies a valid change to subsequent ticks", func() {
			m := build()
			m.Tick()
			Expect(m.Reconfigure(func(c *config.Config) {
				c.Behavior.BoundaryBehavior = physics.EdgeWrap
			})).To(Succeed())
			Expect(m.Config().Behavior.BoundaryBehavior).To(Equal(physics.EdgeWrap))
		})

		It("discards a change that does not resolve", func() {
			m := build()
			err := m.Reconfigure(func(c *config.Config) {
				c.Behavior.BoundaryBehavior = "sideways"
			})
			Expect(errors.Is(err, dynamo.ErrInvalidConfiguration)).To(BeTrue())
			Expect(m.Config().Behavior.BoundaryBehavior).To(Equal(physics.EdgeBounce))
		})
	})

	Describe("teardown", func() {
		It("emits nothing after Stop", func() {
			m := build()
			m.Tick()
			m.Tick()
			n := len(rec.events)
			before := m.State()

			m.Stop()
			Expect(m.Stopped()).To(BeTrue())
			for i := 0; i < 10; i++ {
				Expect(m.Tick()).To(BeNil())
			}
			Expect(rec.events).To(HaveLen(n))
			Expect(m.State()).To(Equal(before))
			Expect(m.Init()).To(BeFalse())
			Expect(m.Reconfigure(func(*config.Config) {})).To(MatchError(dynamo.ErrMoverStopped))
		})

		It("tolerates repeated stops", func() {
			m := build()
			m.Stop()
			m.Stop()
			Expect(m.Stopped()).To(BeTrue())
		})
	})
})

var _ = Describe("PointerTracker", func() {
	It("is absent until set", func() {
		pt := sim.NewPointerTracker()
		_, ok := pt.Pointer()
		Expect(ok).To(BeFalse())

		pt.Set(12, 34)
		p, ok := pt.Pointer()
		Expect(ok).To(BeTrue())
		Expect(p).To(Equal(dynamo.Vec2{X: 12, Y: 34}))

		pt.Clear()
		_, ok = pt.Pointer()
		Expect(ok).To(BeFalse())
	})
})
