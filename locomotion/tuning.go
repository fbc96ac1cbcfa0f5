package locomotion

import "github.com/strideworks/stride/game"

// Tuning holds the per-character locomotion constants. Accelerations are in
// units/s^2, speeds in units/s, angles in degrees and durations in seconds.
type Tuning struct {
	WalkAcceleration   float32
	RunAcceleration    float32
	SprintAcceleration float32
	AirAcceleration    float32

	WalkSpeed   float32
	RunSpeed    float32
	SprintSpeed float32

	Gravity          float32
	JumpHeightFactor float32
	TerminalVelocity float32
	Drag             float32

	MovementThreshold float32

	RotationSpeed         float32
	IdleRotationTolerance float32
	RotateToTargetTime    float32

	LookSensitivityH float32
	LookSensitivityV float32
	PitchLimit       float32
}

// DefaultTuning returns the stock tuning values.
func DefaultTuning() Tuning {
	return Tuning{
		WalkAcceleration:   game.DefaultWalkAcceleration,
		RunAcceleration:    game.DefaultRunAcceleration,
		SprintAcceleration: game.DefaultSprintAcceleration,
		AirAcceleration:    game.DefaultAirAcceleration,

		WalkSpeed:   game.DefaultWalkSpeed,
		RunSpeed:    game.DefaultRunSpeed,
		SprintSpeed: game.DefaultSprintSpeed,

		Gravity:          game.DefaultGravity,
		JumpHeightFactor: game.DefaultJumpHeightFactor,
		TerminalVelocity: game.DefaultTerminalVelocity,
		Drag:             game.DefaultDrag,

		MovementThreshold: game.DefaultMovementThreshold,

		RotationSpeed:         game.DefaultRotationSpeed,
		IdleRotationTolerance: game.DefaultIdleRotationTolerance,
		RotateToTargetTime:    game.DefaultRotateToTargetTime,

		LookSensitivityH: game.DefaultLookSensitivityH,
		LookSensitivityV: game.DefaultLookSensitivityV,
		PitchLimit:       game.DefaultPitchLimit,
	}
}

// AntiBump is the downward velocity floor applied while grounded. It keeps
// the capsule pressed to sloped ground instead of micro-launching off it.
func (t Tuning) AntiBump() float32 {
	return t.SprintSpeed
}

// DefaultCapsule returns the stock capsule dimensions.
func DefaultCapsule() Capsule {
	return Capsule{
		Radius:     game.DefaultCapsuleRadius,
		HalfHeight: game.DefaultCapsuleHalfHeight,
		StepOffset: game.DefaultStepOffset,
		SlopeLimit: game.DefaultSlopeLimit,
		Mask:       game.DefaultGroundMask,
	}
}
