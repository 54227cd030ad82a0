package dynamo

import (
	"math/rand/v2"
	"sync"
)

// Source yields uniform draws in [0, 1).
type Source interface {
	Float64() float64
}

// Uniform draws from U(lo, hi) using a single draw from src.
func Uniform(src Source, lo, hi float64) float64 {
	return lo + src.Float64()*(hi-lo)
}

// Seeded is a deterministic Source backed by a PCG generator.
type Seeded struct {
	rng *rand.Rand
}

func NewSeeded(seed int64) *Seeded {
	return &Seeded{rng: rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15))}
}

func (s *Seeded) Float64() float64 { return s.rng.Float64() }

// Global draws from the process-wide generator.
type Global struct{}

func (Global) Float64() float64 { return rand.Float64() }

// Sequence replays a fixed list of draws, cycling when exhausted.
// An empty sequence always yields 0.
type Sequence struct {
	mu     sync.Mutex
	values []float64
	next   int
}

func NewSequence(values ...float64) *Sequence {
	return &Sequence{values: values}
}

func (s *Sequence) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.values) == 0 {
		return 0
	}
	v := s.values[s.next%len(s.values)]
	s.next++
	return v
}

// Draws reports how many values have been consumed.
func (s *Sequence) Draws() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.next
}
