package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/san-kum/wanderer/internal/dynamo"
	"github.com/san-kum/wanderer/internal/physics"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Movement.BaseSpeed != 2 {
		t.Errorf("expected base speed 2, got %v", cfg.Movement.BaseSpeed)
	}
	if cfg.Pointer.ThrottleDelay != 100*time.Millisecond {
		t.Errorf("expected throttle 100ms, got %v", cfg.Pointer.ThrottleDelay)
	}
	if cfg.Behavior.BoundaryBehavior != physics.EdgeBounce {
		t.Errorf("expected bounce, got %s", cfg.Behavior.BoundaryBehavior)
	}
	if cfg.Behavior.StartPosition.Mode != physics.StartRandom {
		t.Errorf("expected random start, got %v", cfg.Behavior.StartPosition)
	}
	if cfg.FrameInterval() != time.Second/60 {
		t.Errorf("frame interval = %v", cfg.FrameInterval())
	}
}

func TestDefault_DoesNotShareDurations(t *testing.T) {
	a := Default()
	a.Rotation.Durations[0] = 99
	if Default().Rotation.Durations[0] == 99 {
		t.Error("Default() leaked the shared durations slice")
	}
}

func TestLoad_PartialOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wanderer.yaml")
	doc := `
movement:
  base_speed: 4
pointer:
  throttle_delay: 250ms
behavior:
  start_position: {x: 10, y: 20}
  boundary_behavior: wrap
`
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Movement.BaseSpeed != 4 {
		t.Errorf("base speed = %v, want 4", cfg.Movement.BaseSpeed)
	}
	if cfg.Pointer.ThrottleDelay != 250*time.Millisecond {
		t.Errorf("throttle = %v, want 250ms", cfg.Pointer.ThrottleDelay)
	}
	if cfg.Behavior.StartPosition != physics.PointStart(10, 20) {
		t.Errorf("start = %+v", cfg.Behavior.StartPosition)
	}
	if cfg.Behavior.BoundaryBehavior != physics.EdgeWrap {
		t.Errorf("boundary = %s", cfg.Behavior.BoundaryBehavior)
	}
	// untouched groups keep defaults
	if !cfg.Pointer.Enabled || cfg.Pointer.DetectionDistance != 60 {
		t.Errorf("pointer defaults lost: %+v", cfg.Pointer)
	}
	if len(cfg.Rotation.Durations) != 5 {
		t.Errorf("durations = %v", cfg.Rotation.Durations)
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yaml")
	cfg := GetPreset("chaotic")
	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	back, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if back.Movement != cfg.Movement || back.Pointer != cfg.Pointer || back.Behavior != cfg.Behavior {
		t.Errorf("round trip mismatch:\n%+v\n%+v", back, cfg)
	}
}

func TestResolve_Fallbacks(t *testing.T) {
	cfg := Default()
	cfg.Advanced.FrameRate = -5
	cfg.Rotation.Durations = []float64{0, -1}
	cfg.Rotation.ChangeFrequency = 3
	cfg.Movement.SpeedChangeFrequency = -1
	cfg.Behavior.FrictionCoefficient = 1.5
	cfg.Pointer.ThrottleDelay = -time.Second
	cfg.Visual.HoverScale = 0

	out, err := cfg.Resolve()
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if out.Advanced.FrameRate != DefaultFrameRate {
		t.Errorf("frame rate = %d", out.Advanced.FrameRate)
	}
	if len(out.Rotation.Durations) != 0 {
		t.Errorf("durations = %v, want empty", out.Rotation.Durations)
	}
	if out.Rotation.ChangeFrequency != 1 || out.Movement.SpeedChangeFrequency != 0 {
		t.Errorf("frequencies not clamped: %v %v", out.Rotation.ChangeFrequency, out.Movement.SpeedChangeFrequency)
	}
	if out.Behavior.FrictionCoefficient != 1 {
		t.Errorf("friction = %v, want 1", out.Behavior.FrictionCoefficient)
	}
	if out.Pointer.ThrottleDelay != 0 {
		t.Errorf("throttle = %v", out.Pointer.ThrottleDelay)
	}
	if out.Visual.HoverScale != 1 {
		t.Errorf("hover scale = %v", out.Visual.HoverScale)
	}
	// input untouched
	if cfg.Advanced.FrameRate != -5 || len(cfg.Rotation.Durations) != 2 {
		t.Error("Resolve mutated its receiver")
	}
}

func TestResolve_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"unknown boundary", func(c *Config) { c.Behavior.BoundaryBehavior = "melt" }},
		{"unknown start", func(c *Config) { c.Behavior.StartPosition = physics.StartPosition{Mode: "diagonal"} }},
		{"nan start point", func(c *Config) { c.Behavior.StartPosition = physics.PointStart(math.NaN(), 0) }},
		{"nan speed", func(c *Config) { c.Movement.BaseSpeed = math.NaN() }},
		{"inf gravity", func(c *Config) { c.Behavior.GravityStrength = math.Inf(1) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			_, err := cfg.Resolve()
			if !errors.Is(err, dynamo.ErrInvalidConfiguration) {
				t.Errorf("expected ErrInvalidConfiguration, got %v", err)
			}
		})
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("fast")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Movement.BaseSpeed != 5 || !cfg.Bounce.EnableRandomBounce {
		t.Errorf("fast preset = %+v", cfg.Movement)
	}

	if GetPreset("nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestListPresets(t *testing.T) {
	names := ListPresets()
	want := []string{"calm", "chaotic", "default", "fast", "slow"}
	if len(names) != len(want) {
		t.Fatalf("presets = %v", names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("presets[%d] = %s, want %s", i, names[i], want[i])
		}
	}
	for _, name := range names {
		if _, err := GetPreset(name).Resolve(); err != nil {
			t.Errorf("preset %s does not resolve: %v", name, err)
		}
	}
}
