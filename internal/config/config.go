package config

import (
	"fmt"
	"math"
	"os"
	"time"

	"github.com/san-kum/wanderer/internal/control"
	"github.com/san-kum/wanderer/internal/dynamo"
	"github.com/san-kum/wanderer/internal/physics"
	"gopkg.in/yaml.v3"
)

const (
	DefaultBaseSpeed       = 2.0
	DefaultRotationFreq    = 0.005
	DefaultHoverScale      = 1.1
	DefaultTransition      = 0.3
	DefaultFrameRate       = 60
	DefaultGlyph           = "●"
	DefaultMoverSize       = 50.0
	DefaultContainerWidth  = 800.0
	DefaultContainerHeight = 600.0
)

// DefaultRotationDurations are the spin periods, in seconds, a mover cycles through.
var DefaultRotationDurations = []float64{6, 4, 2, 1, 0.5}

// Config is the fully resolved set of option groups a mover runs with.
type Config struct {
	Movement MovementConfig `yaml:"movement"`
	Pointer  PointerConfig  `yaml:"pointer"`
	Rotation RotationConfig `yaml:"rotation"`
	Bounce   BounceConfig   `yaml:"bounce"`
	Visual   VisualConfig   `yaml:"visual"`
	Behavior BehaviorConfig `yaml:"behavior"`
	Advanced AdvancedConfig `yaml:"advanced"`
}

type MovementConfig struct {
	BaseSpeed            float64 `yaml:"base_speed"`
	SpeedVariation       float64 `yaml:"speed_variation"`
	SpeedChangeFrequency float64 `yaml:"speed_change_frequency"`
	EnableRandomSpeed    bool    `yaml:"enable_random_speed"`
}

type PointerConfig struct {
	Enabled               bool          `yaml:"enabled"`
	DetectionDistance     float64       `yaml:"detection_distance"`
	SafetyZone            float64       `yaml:"safety_zone"`
	EscapeSpeedMultiplier float64       `yaml:"escape_speed_multiplier"`
	EscapeAngleVariation  float64       `yaml:"escape_angle_variation"`
	ThrottleDelay         time.Duration `yaml:"throttle_delay"`
}

type RotationConfig struct {
	EnableRotation  bool      `yaml:"enable_rotation"`
	Durations       []float64 `yaml:"durations"`
	ChangeFrequency float64   `yaml:"change_frequency"`
	// EnableSpinVariation only affects the displayed spin; the mover still
	// redraws its spin duration at ChangeFrequency.
	EnableSpinVariation bool `yaml:"enable_spin_variation"`
}

type BounceConfig struct {
	Enabled bool `yaml:"enabled"`
	// AngleVariation is accepted in config files but does not widen the
	// random rebound cone, which stays at ±π/8.
	AngleVariation     float64 `yaml:"angle_variation"`
	EnableRandomBounce bool    `yaml:"enable_random_bounce"`
}

// VisualConfig only affects presentation.
type VisualConfig struct {
	EnableHoverEffects bool    `yaml:"enable_hover_effects"`
	HoverScale         float64 `yaml:"hover_scale"`
	TransitionDuration float64 `yaml:"transition_duration"`
	Glyph              string  `yaml:"glyph"`
}

type BehaviorConfig struct {
	StartPosition       physics.StartPosition `yaml:"start_position"`
	BoundaryBehavior    physics.EdgeBehavior  `yaml:"boundary_behavior"`
	EnableGravity       bool                  `yaml:"enable_gravity"`
	GravityStrength     float64               `yaml:"gravity_strength"`
	EnableFriction      bool                  `yaml:"enable_friction"`
	FrictionCoefficient float64               `yaml:"friction_coefficient"`
}

type AdvancedConfig struct {
	FrameRate             int  `yaml:"frame_rate"`
	EnableDebug           bool `yaml:"enable_debug"`
	EnablePerformanceMode bool `yaml:"enable_performance_mode"`
}

func Default() Config {
	durations := make([]float64, len(DefaultRotationDurations))
	copy(durations, DefaultRotationDurations)

	return Config{
		Movement: MovementConfig{
			BaseSpeed: DefaultBaseSpeed,
		},
		Pointer: PointerConfig{
			Enabled:               true,
			DetectionDistance:     control.DefaultDetectionDistance,
			SafetyZone:            control.DefaultSafetyZone,
			EscapeSpeedMultiplier: control.DefaultEscapeSpeedMultiplier,
			EscapeAngleVariation:  control.DefaultEscapeAngleVariation,
			ThrottleDelay:         control.DefaultThrottleDelay,
		},
		Rotation: RotationConfig{
			EnableRotation:      true,
			Durations:           durations,
			ChangeFrequency:     DefaultRotationFreq,
			EnableSpinVariation: true,
		},
		Bounce: BounceConfig{
			Enabled: true,
		},
		Visual: VisualConfig{
			HoverScale:         DefaultHoverScale,
			TransitionDuration: DefaultTransition,
			Glyph:              DefaultGlyph,
		},
		Behavior: BehaviorConfig{
			StartPosition:       physics.RandomStart(),
			BoundaryBehavior:    physics.EdgeBounce,
			GravityStrength:     physics.DefaultGravityStrength,
			FrictionCoefficient: physics.DefaultFrictionCoefficient,
		},
		Advanced: AdvancedConfig{
			FrameRate: DefaultFrameRate,
		},
	}
}

// Load reads a partial yaml document over the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := Default()
	if err := Overlay(&cfg, data); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &cfg, nil
}

// Overlay merges a partial yaml document into cfg. Fields the document does
// not mention keep their current values.
func Overlay(cfg *Config, data []byte) error {
	return yaml.Unmarshal(data, cfg)
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Clone returns a copy that shares no slices with c.
func (c Config) Clone() Config {
	out := c
	out.Rotation.Durations = append([]float64(nil), c.Rotation.Durations...)
	return out
}

// Resolve returns a copy with out-of-range values replaced by their fallbacks.
// Only structurally unusable values are reported, wrapping
// dynamo.ErrInvalidConfiguration.
func (c Config) Resolve() (Config, error) {
	out := c.Clone()

	numbers := map[string]float64{
		"movement.base_speed":             out.Movement.BaseSpeed,
		"movement.speed_variation":        out.Movement.SpeedVariation,
		"movement.speed_change_frequency": out.Movement.SpeedChangeFrequency,
		"pointer.detection_distance":      out.Pointer.DetectionDistance,
		"pointer.safety_zone":             out.Pointer.SafetyZone,
		"pointer.escape_speed_multiplier": out.Pointer.EscapeSpeedMultiplier,
		"pointer.escape_angle_variation":  out.Pointer.EscapeAngleVariation,
		"rotation.change_frequency":       out.Rotation.ChangeFrequency,
		"bounce.angle_variation":          out.Bounce.AngleVariation,
		"visual.hover_scale":              out.Visual.HoverScale,
		"behavior.gravity_strength":       out.Behavior.GravityStrength,
		"behavior.friction_coefficient":   out.Behavior.FrictionCoefficient,
	}
	for field, v := range numbers {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Config{}, &dynamo.ConfigError{Field: field, Value: v, Reason: "not a finite number"}
		}
	}
	if !out.Behavior.BoundaryBehavior.Valid() {
		return Config{}, &dynamo.ConfigError{
			Field:  "behavior.boundary_behavior",
			Value:  out.Behavior.BoundaryBehavior,
			Reason: fmt.Sprintf("unknown behavior %q", out.Behavior.BoundaryBehavior),
		}
	}
	if !out.Behavior.StartPosition.Valid() {
		return Config{}, &dynamo.ConfigError{
			Field:  "behavior.start_position",
			Value:  out.Behavior.StartPosition,
			Reason: fmt.Sprintf("unusable start position %q", out.Behavior.StartPosition),
		}
	}

	durations := out.Rotation.Durations[:0]
	for _, d := range out.Rotation.Durations {
		if d > 0 && !math.IsInf(d, 0) {
			durations = append(durations, d)
		}
	}
	out.Rotation.Durations = durations

	out.Movement.SpeedChangeFrequency = clampUnit(out.Movement.SpeedChangeFrequency)
	out.Movement.SpeedVariation = math.Max(0, out.Movement.SpeedVariation)
	out.Rotation.ChangeFrequency = clampUnit(out.Rotation.ChangeFrequency)
	out.Pointer.DetectionDistance = math.Max(0, out.Pointer.DetectionDistance)
	out.Pointer.SafetyZone = math.Max(0, out.Pointer.SafetyZone)
	if out.Pointer.ThrottleDelay < 0 {
		out.Pointer.ThrottleDelay = 0
	}
	if f := out.Behavior.FrictionCoefficient; f <= 0 || f > 1 {
		out.Behavior.FrictionCoefficient = 1
	}
	if out.Visual.HoverScale <= 0 {
		out.Visual.HoverScale = 1
	}
	if out.Visual.Glyph == "" {
		out.Visual.Glyph = DefaultGlyph
	}
	if out.Advanced.FrameRate <= 0 {
		out.Advanced.FrameRate = DefaultFrameRate
	}

	return out, nil
}

// FrameInterval is the scheduler period, 1000/frameRate milliseconds.
func (c *Config) FrameInterval() time.Duration {
	rate := c.Advanced.FrameRate
	if rate <= 0 {
		rate = DefaultFrameRate
	}
	return time.Second / time.Duration(rate)
}

func (c *Config) Forces() physics.Forces {
	return physics.Forces{
		Gravity:             c.Behavior.EnableGravity,
		GravityStrength:     c.Behavior.GravityStrength,
		Friction:            c.Behavior.EnableFriction,
		FrictionCoefficient: c.Behavior.FrictionCoefficient,
	}
}

func (c *Config) Avoidance() control.Avoidance {
	return control.Avoidance{
		Enabled:               c.Pointer.Enabled,
		DetectionDistance:     c.Pointer.DetectionDistance,
		SafetyZone:            c.Pointer.SafetyZone,
		EscapeSpeedMultiplier: c.Pointer.EscapeSpeedMultiplier,
		EscapeAngleVariation:  c.Pointer.EscapeAngleVariation,
		ThrottleDelay:         c.Pointer.ThrottleDelay,
	}
}

func clampUnit(f float64) float64 {
	return math.Max(0, math.Min(1, f))
}

// LoggerConfig controls the process logger. It is not part of a mover's
// configuration.
type LoggerConfig struct {
	Level       string `yaml:"level"`
	Format      string `yaml:"format"`
	File        string `yaml:"file"`
	MaxSizeMB   int    `yaml:"max_size_mb"`
	MaxBackups  int    `yaml:"max_backups"`
	ServiceName string `yaml:"service_name"`
}

func DefaultLogger() LoggerConfig {
	return LoggerConfig{
		Level:       "info",
		Format:      "console",
		MaxSizeMB:   10,
		MaxBackups:  3,
		ServiceName: "wanderer",
	}
}
