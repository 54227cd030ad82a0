// Package experiment runs movers headlessly and deterministically: a seeded
// random source, a manual clock advanced by one frame per tick, a fixed
// container and a scripted pointer.
package experiment

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/san-kum/wanderer/internal/config"
	"github.com/san-kum/wanderer/internal/dynamo"
	"github.com/san-kum/wanderer/internal/metrics"
	"github.com/san-kum/wanderer/internal/sim"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// epoch anchors the manual clock so runs are reproducible.
var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

type Config struct {
	Preset    string
	Mover     config.Config
	Seed      int64
	Ticks     int
	Width     float64
	Height    float64
	MoverSize float64
	Pointer   string
	Logger    *zap.Logger
}

// DefaultConfig is a ten second run of the default preset on an 800x600 stage.
func DefaultConfig() Config {
	return Config{
		Preset:    "default",
		Mover:     config.Default(),
		Seed:      42,
		Ticks:     600,
		Width:     config.DefaultContainerWidth,
		Height:    config.DefaultContainerHeight,
		MoverSize: config.DefaultMoverSize,
		Pointer:   "none",
	}
}

type Result struct {
	Seed    int64              `json:"seed"`
	Trace   []sim.Sample       `json:"-"`
	Counts  map[string]int     `json:"counts"`
	Metrics map[string]float64 `json:"metrics"`
	Summary metrics.Summary    `json:"summary"`
	Final   sim.MoverState     `json:"-"`
}

// Run simulates setup.Ticks ticks after placement. The trace holds the
// placement sample followed by one sample per tick. A cancelled context stops
// the run early and returns the partial result with the context error.
func Run(ctx context.Context, setup Config) (*Result, error) {
	if setup.Ticks < 0 {
		return nil, fmt.Errorf("experiment: negative tick count %d", setup.Ticks)
	}
	path, err := ParsePath(setup.Pointer)
	if err != nil {
		return nil, err
	}
	log := setup.Logger
	if log == nil {
		log = zap.NewNop()
	}

	clock := dynamo.NewManualClock(epoch)
	pointer := &scripted{path: path, clock: clock, start: epoch, width: setup.Width, height: setup.Height}
	counter := metrics.NewCounter()
	ms := metrics.Standard()

	m, err := sim.New(setup.Mover,
		sim.WithContainer(sim.FixedContainer{Width: setup.Width, Height: setup.Height}),
		sim.WithSize(setup.MoverSize, setup.MoverSize),
		sim.WithPointer(pointer),
		sim.WithSource(dynamo.NewSeeded(setup.Seed)),
		sim.WithClock(clock),
		sim.WithSink(counter),
		sim.WithObserver(metrics.Observer(ms...)),
		sim.WithLogger(log),
	)
	if err != nil {
		return nil, err
	}
	defer m.Stop()

	cfg := m.Config()
	interval := cfg.FrameInterval()
	res := &Result{Seed: setup.Seed, Trace: make([]sim.Sample, 0, setup.Ticks+1)}

	events := m.Tick()
	if len(events) == 0 {
		return nil, fmt.Errorf("experiment: mover could not be placed in %vx%v", setup.Width, setup.Height)
	}
	res.Trace = append(res.Trace, sim.SampleOf(m.State(), events, 0))

	log.Info("experiment started",
		zap.String("preset", setup.Preset),
		zap.Int64("seed", setup.Seed),
		zap.Int("ticks", setup.Ticks),
		zap.String("pointer", setup.Pointer))

	for i := 1; i <= setup.Ticks; i++ {
		if err := ctx.Err(); err != nil {
			finish(res, m, counter, ms)
			return res, err
		}
		clock.Advance(interval)
		events := m.Tick()
		res.Trace = append(res.Trace, sim.SampleOf(m.State(), events, time.Duration(i)*interval))
	}

	finish(res, m, counter, ms)
	log.Info("experiment finished",
		zap.Int64("seed", setup.Seed),
		zap.Float64("distance", res.Summary.Distance),
		zap.Int("walls", res.Summary.Walls))
	return res, nil
}

func finish(res *Result, m *sim.Mover, counter *metrics.Counter, ms []metrics.Metric) {
	res.Final = m.State()
	res.Counts = counter.Counts()
	res.Metrics = metrics.Values(ms...)
	res.Summary = metrics.Summarize(res.Trace)
}

// Ensemble runs n copies of setup with seeds seed0, seed0+1, ... in parallel.
// Results are ordered by seed. The first failure cancels the rest.
func Ensemble(ctx context.Context, setup Config, n int, seed0 int64) ([]*Result, error) {
	if n <= 0 {
		return nil, fmt.Errorf("experiment: ensemble size must be positive, got %d", n)
	}

	results := make([]*Result, n)
	g, groupCtx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i := 0; i < n; i++ {
		s := setup
		s.Seed = seed0 + int64(i)
		s.Mover = setup.Mover.Clone()
		g.Go(func() error {
			res, err := Run(groupCtx, s)
			if err != nil {
				return fmt.Errorf("seed %d: %w", s.Seed, err)
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
