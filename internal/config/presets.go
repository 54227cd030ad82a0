package config

import (
	"math"
	"sort"
	"time"

	"github.com/san-kum/wanderer/internal/physics"
)

// Presets are complete configurations for the classic mover personalities.
var Presets = map[string]func() Config{
	"default": Default,
	"fast": func() Config {
		c := Default()
		c.Movement = MovementConfig{BaseSpeed: 5, SpeedVariation: 2, SpeedChangeFrequency: 0.02, EnableRandomSpeed: true}
		c.Pointer = PointerConfig{Enabled: true, DetectionDistance: 80, SafetyZone: 20, EscapeSpeedMultiplier: 3, EscapeAngleVariation: math.Pi / 2, ThrottleDelay: 50 * time.Millisecond}
		c.Rotation.Durations = []float64{2, 1, 0.5, 0.3, 0.1}
		c.Rotation.ChangeFrequency = 0.01
		c.Bounce = BounceConfig{Enabled: true, AngleVariation: math.Pi / 6, EnableRandomBounce: true}
		c.Visual.EnableHoverEffects, c.Visual.HoverScale, c.Visual.TransitionDuration = true, 1.3, 0.2
		return c
	},
	"slow": func() Config {
		c := Default()
		c.Movement = MovementConfig{BaseSpeed: 0.8, SpeedVariation: 0.3, SpeedChangeFrequency: 0.005, EnableRandomSpeed: true}
		c.Pointer = PointerConfig{Enabled: true, DetectionDistance: 100, SafetyZone: 50, EscapeSpeedMultiplier: 1.5, EscapeAngleVariation: math.Pi / 4, ThrottleDelay: 200 * time.Millisecond}
		c.Rotation.Durations = []float64{10, 8, 6, 4, 2}
		c.Rotation.ChangeFrequency = 0.002
		c.Visual.EnableHoverEffects, c.Visual.HoverScale, c.Visual.TransitionDuration = true, 1.05, 0.5
		c.Behavior.StartPosition = physics.CenterStart()
		c.Behavior.EnableFriction, c.Behavior.FrictionCoefficient = true, 0.99
		c.Advanced = AdvancedConfig{FrameRate: 30, EnablePerformanceMode: true}
		return c
	},
	"chaotic": func() Config {
		c := Default()
		c.Movement = MovementConfig{BaseSpeed: 3, SpeedVariation: 4, SpeedChangeFrequency: 0.05, EnableRandomSpeed: true}
		c.Pointer = PointerConfig{Enabled: true, DetectionDistance: 120, SafetyZone: 10, EscapeSpeedMultiplier: 4, EscapeAngleVariation: math.Pi, ThrottleDelay: 30 * time.Millisecond}
		c.Rotation.Durations = []float64{0.5, 0.3, 0.1, 0.05, 0.02}
		c.Rotation.ChangeFrequency = 0.02
		c.Bounce = BounceConfig{Enabled: true, AngleVariation: math.Pi / 2, EnableRandomBounce: true}
		c.Visual.EnableHoverEffects, c.Visual.HoverScale, c.Visual.TransitionDuration = true, 1.5, 0.1
		c.Behavior.EnableGravity, c.Behavior.GravityStrength = true, 0.3
		c.Behavior.FrictionCoefficient = 0.95
		c.Advanced = AdvancedConfig{FrameRate: 120, EnableDebug: true}
		return c
	},
	"calm": func() Config {
		c := Default()
		c.Movement = MovementConfig{BaseSpeed: 1.2, SpeedVariation: 0.1, SpeedChangeFrequency: 0.001}
		c.Pointer.Enabled = false
		c.Rotation.Durations = []float64{8, 6, 4, 2, 1}
		c.Rotation.ChangeFrequency = 0.001
		c.Rotation.EnableSpinVariation = false
		c.Visual.TransitionDuration = 0.4
		c.Behavior.StartPosition = physics.CenterStart()
		c.Behavior.EnableFriction, c.Behavior.FrictionCoefficient = true, 0.995
		c.Advanced = AdvancedConfig{FrameRate: 45, EnablePerformanceMode: true}
		return c
	},
}

func GetPreset(name string) *Config {
	fn, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := fn()
	return &cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
