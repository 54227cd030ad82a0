package dynamo

import (
	"errors"
	"math"
	"testing"
	"time"
)

func TestDistance(t *testing.T) {
	tests := []struct {
		ax, ay, bx, by float64
		expected       float64
	}{
		{0, 0, 3, 4, 5},
		{1, 1, 1, 1, 0},
		{-2, 0, 2, 0, 4},
		{100, 100, 130, 100, 30},
	}

	for _, tt := range tests {
		got := Distance(tt.ax, tt.ay, tt.bx, tt.by)
		if math.Abs(got-tt.expected) > 1e-12 {
			t.Errorf("Distance(%v,%v,%v,%v) = %v, want %v", tt.ax, tt.ay, tt.bx, tt.by, got, tt.expected)
		}
		back := Distance(tt.bx, tt.by, tt.ax, tt.ay)
		if got != back {
			t.Errorf("Distance not symmetric: %v vs %v", got, back)
		}
	}
}

func TestAngle(t *testing.T) {
	tests := []struct {
		name           string
		ax, ay, bx, by float64
		expected       float64
	}{
		{"east", 0, 0, 1, 0, 0},
		{"south (y down)", 0, 0, 0, 1, math.Pi / 2},
		{"west", 0, 0, -1, 0, math.Pi},
		{"north", 0, 0, 0, -1, -math.Pi / 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Angle(tt.ax, tt.ay, tt.bx, tt.by); math.Abs(got-tt.expected) > 1e-12 {
				t.Errorf("Angle() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestRandomVelocity_ConstantSpeed(t *testing.T) {
	src := NewSeeded(7)
	for _, variation := range []float64{0, 1, 5, 100} {
		for i := 0; i < 50; i++ {
			v := RandomVelocity(src, 3, variation, nil, false)
			if math.Abs(v.Magnitude()-3) > 1e-9 {
				t.Fatalf("variation %v: magnitude %v, want 3", variation, v.Magnitude())
			}
		}
	}
}

func TestRandomVelocity_RandomSpeed(t *testing.T) {
	// heading draw 0.25 -> π/2, speed draw 1.0 would be exclusive so use 0.75 -> +0.5
	src := NewSequence(0.25, 0.75)
	v := RandomVelocity(src, 2, 2, nil, true)
	if math.Abs(v.Magnitude()-3) > 1e-9 {
		t.Errorf("magnitude = %v, want 3", v.Magnitude())
	}
	if math.Abs(v.Heading()-math.Pi/2) > 1e-9 {
		t.Errorf("heading = %v, want π/2", v.Heading())
	}
}

func TestRandomVelocity_ZeroVariation(t *testing.T) {
	src := NewSeeded(1)
	v := RandomVelocity(src, 4, 0, nil, true)
	if math.Abs(v.Magnitude()-4) > 1e-9 {
		t.Errorf("magnitude = %v, want 4", v.Magnitude())
	}
}

func TestRandomVelocity_ZeroSpeed(t *testing.T) {
	v := RandomVelocity(NewSeeded(3), 0, 0, nil, false)
	if !v.IsZero() && v.Magnitude() > 1e-12 {
		t.Errorf("expected zero vector, got %+v", v)
	}
}

func TestRandomVelocity_BaseAngleCone(t *testing.T) {
	base := 1.0
	src := NewSeeded(11)
	for i := 0; i < 200; i++ {
		v := RandomVelocity(src, 2, 0, &base, false)
		delta := math.Abs(v.Heading() - base)
		if delta > math.Pi/8+1e-9 {
			t.Fatalf("heading %v outside base ± π/8", v.Heading())
		}
	}

	edges := NewSequence(0, 0.5)
	low := RandomVelocity(edges, 1, 0, &base, false)
	if math.Abs(low.Heading()-(base-math.Pi/8)) > 1e-9 {
		t.Errorf("draw 0 heading = %v, want %v", low.Heading(), base-math.Pi/8)
	}
	mid := RandomVelocity(edges, 1, 0, &base, false)
	if math.Abs(mid.Heading()-base) > 1e-9 {
		t.Errorf("draw 0.5 heading = %v, want %v", mid.Heading(), base)
	}
}

func TestSequence(t *testing.T) {
	s := NewSequence(0.1, 0.2)
	got := []float64{s.Float64(), s.Float64(), s.Float64()}
	want := []float64{0.1, 0.2, 0.1}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("draw %d = %v, want %v", i, got[i], want[i])
		}
	}
	if s.Draws() != 3 {
		t.Errorf("Draws() = %d, want 3", s.Draws())
	}

	if NewSequence().Float64() != 0 {
		t.Error("empty sequence should yield 0")
	}
}

func TestSeededDeterministic(t *testing.T) {
	a, b := NewSeeded(99), NewSeeded(99)
	for i := 0; i < 10; i++ {
		if a.Float64() != b.Float64() {
			t.Fatal("same seed produced different draws")
		}
	}
}

func TestManualClock(t *testing.T) {
	start := time.Unix(1000, 0)
	c := NewManualClock(start)
	c.Advance(150 * time.Millisecond)
	if got := c.Now().Sub(start); got != 150*time.Millisecond {
		t.Errorf("elapsed = %v, want 150ms", got)
	}
}

func TestBounds(t *testing.T) {
	b := BoundsFor(800, 600, 50, 50)
	if b.MaxX != 750 || b.MaxY != 550 {
		t.Fatalf("BoundsFor = %+v", b)
	}
	if !b.Contains(Vec2{0, 550}) {
		t.Error("edge point should be contained")
	}
	if b.Contains(Vec2{-0.1, 10}) {
		t.Error("point left of bounds should not be contained")
	}
}

func TestConfigError(t *testing.T) {
	err := &ConfigError{Field: "behavior.boundary_behavior", Value: "melt", Reason: "unknown behavior"}
	if !errors.Is(err, ErrInvalidConfiguration) {
		t.Error("ConfigError should unwrap to ErrInvalidConfiguration")
	}
	want := "dynamo: invalid configuration: behavior.boundary_behavior: unknown behavior"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
