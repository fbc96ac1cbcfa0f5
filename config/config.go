// Package config loads per-character locomotion tuning from YAML files.
// Values absent from the file keep their defaults.
package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/strideworks/stride/game"
	"github.com/strideworks/stride/locomotion"
	"github.com/strideworks/stride/serror"
)

type Config struct {
	Movement MovementConfig `yaml:"movement"`
	Rotation RotationConfig `yaml:"rotation"`
	Look     LookConfig     `yaml:"look"`
	Capsule  CapsuleConfig  `yaml:"capsule"`
}

type MovementConfig struct {
	WalkAcceleration   float32 `yaml:"walk_acceleration"`
	RunAcceleration    float32 `yaml:"run_acceleration"`
	SprintAcceleration float32 `yaml:"sprint_acceleration"`
	AirAcceleration    float32 `yaml:"air_acceleration"`

	WalkSpeed   float32 `yaml:"walk_speed"`
	RunSpeed    float32 `yaml:"run_speed"`
	SprintSpeed float32 `yaml:"sprint_speed"`

	Gravity          float32 `yaml:"gravity"`
	JumpHeightFactor float32 `yaml:"jump_height_factor"`
	TerminalVelocity float32 `yaml:"terminal_velocity"`
	Drag             float32 `yaml:"drag"`

	MovementThreshold float32 `yaml:"movement_threshold"`
}

type RotationConfig struct {
	Speed         float32 `yaml:"speed"`
	IdleTolerance float32 `yaml:"idle_tolerance"`
	CatchUpTime   float32 `yaml:"catch_up_time"`
}

type LookConfig struct {
	SensitivityH float32 `yaml:"sensitivity_h"`
	SensitivityV float32 `yaml:"sensitivity_v"`
	PitchLimit   float32 `yaml:"pitch_limit"`
}

type CapsuleConfig struct {
	Radius     float32 `yaml:"radius"`
	HalfHeight float32 `yaml:"half_height"`
	StepOffset float32 `yaml:"step_offset"`
	SlopeLimit float32 `yaml:"slope_limit"`
	GroundMask uint32  `yaml:"ground_mask"`
}

// Default returns a config populated with the stock tuning values.
func Default() *Config {
	return &Config{
		Movement: MovementConfig{
			WalkAcceleration:   game.DefaultWalkAcceleration,
			RunAcceleration:    game.DefaultRunAcceleration,
			SprintAcceleration: game.DefaultSprintAcceleration,
			AirAcceleration:    game.DefaultAirAcceleration,
			WalkSpeed:          game.DefaultWalkSpeed,
			RunSpeed:           game.DefaultRunSpeed,
			SprintSpeed:        game.DefaultSprintSpeed,
			Gravity:            game.DefaultGravity,
			JumpHeightFactor:   game.DefaultJumpHeightFactor,
			TerminalVelocity:   game.DefaultTerminalVelocity,
			Drag:               game.DefaultDrag,
			MovementThreshold:  game.DefaultMovementThreshold,
		},
		Rotation: RotationConfig{
			Speed:         game.DefaultRotationSpeed,
			IdleTolerance: game.DefaultIdleRotationTolerance,
			CatchUpTime:   game.DefaultRotateToTargetTime,
		},
		Look: LookConfig{
			SensitivityH: game.DefaultLookSensitivityH,
			SensitivityV: game.DefaultLookSensitivityV,
			PitchLimit:   game.DefaultPitchLimit,
		},
		Capsule: CapsuleConfig{
			Radius:     game.DefaultCapsuleRadius,
			HalfHeight: game.DefaultCapsuleHalfHeight,
			StepOffset: game.DefaultStepOffset,
			SlopeLimit: game.DefaultSlopeLimit,
			GroundMask: game.DefaultGroundMask,
		},
	}
}

// Load reads a YAML tuning file over the defaults and validates the result.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the ranges the simulator depends on.
func (c *Config) Validate() error {
	m := c.Movement
	switch {
	case m.Gravity <= 0:
		return serror.New("config: movement.gravity must be positive, got %v", m.Gravity)
	case m.TerminalVelocity <= 0:
		return serror.New("config: movement.terminal_velocity must be positive, got %v", m.TerminalVelocity)
	case m.WalkSpeed <= 0 || m.RunSpeed <= 0 || m.SprintSpeed <= 0:
		return serror.New("config: speed caps must be positive")
	case m.Drag < 0:
		return serror.New("config: movement.drag must not be negative, got %v", m.Drag)
	case m.MovementThreshold < 0:
		return serror.New("config: movement.movement_threshold must not be negative, got %v", m.MovementThreshold)
	}
	if c.Rotation.Speed <= 0 {
		return serror.New("config: rotation.speed must be positive, got %v", c.Rotation.Speed)
	}
	if c.Rotation.CatchUpTime <= 0 {
		return serror.New("config: rotation.catch_up_time must be positive, got %v", c.Rotation.CatchUpTime)
	}
	cc := c.Capsule
	if cc.Radius <= 0 || cc.HalfHeight <= 0 {
		return serror.New("config: capsule dimensions must be positive")
	}
	if cc.Radius > cc.HalfHeight {
		return serror.New("config: capsule.radius %v exceeds capsule.half_height %v", cc.Radius, cc.HalfHeight)
	}
	if c.Look.PitchLimit <= 0 || c.Look.PitchLimit > 90 {
		return serror.New("config: look.pitch_limit must be in (0, 90], got %v", c.Look.PitchLimit)
	}
	return nil
}

// Tuning converts the config into the simulator's tuning block.
func (c *Config) Tuning() locomotion.Tuning {
	return locomotion.Tuning{
		WalkAcceleration:   c.Movement.WalkAcceleration,
		RunAcceleration:    c.Movement.RunAcceleration,
		SprintAcceleration: c.Movement.SprintAcceleration,
		AirAcceleration:    c.Movement.AirAcceleration,

		WalkSpeed:   c.Movement.WalkSpeed,
		RunSpeed:    c.Movement.RunSpeed,
		SprintSpeed: c.Movement.SprintSpeed,

		Gravity:          c.Movement.Gravity,
		JumpHeightFactor: c.Movement.JumpHeightFactor,
		TerminalVelocity: c.Movement.TerminalVelocity,
		Drag:             c.Movement.Drag,

		MovementThreshold: c.Movement.MovementThreshold,

		RotationSpeed:         c.Rotation.Speed,
		IdleRotationTolerance: c.Rotation.IdleTolerance,
		RotateToTargetTime:    c.Rotation.CatchUpTime,

		LookSensitivityH: c.Look.SensitivityH,
		LookSensitivityV: c.Look.SensitivityV,
		PitchLimit:       c.Look.PitchLimit,
	}
}

// CapsuleDimensions converts the config into the simulator's capsule.
func (c *Config) CapsuleDimensions() locomotion.Capsule {
	return locomotion.Capsule{
		Radius:     c.Capsule.Radius,
		HalfHeight: c.Capsule.HalfHeight,
		StepOffset: c.Capsule.StepOffset,
		SlopeLimit: c.Capsule.SlopeLimit,
		Mask:       c.Capsule.GroundMask,
	}
}
