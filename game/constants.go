package game

// Default locomotion tuning. Every value here can be overridden per
// character through the config package.
const (
	DefaultWalkAcceleration   = 20.0
	DefaultRunAcceleration    = 30.0
	DefaultSprintAcceleration = 40.0
	DefaultAirAcceleration    = 15.0

	DefaultWalkSpeed   = 2.0
	DefaultRunSpeed    = 4.5
	DefaultSprintSpeed = 7.0

	DefaultGravity          = 25.0
	DefaultJumpHeightFactor = 1.0
	DefaultTerminalVelocity = 50.0
	DefaultDrag             = 10.0

	DefaultMovementThreshold = 0.05

	// Rotation speeds and the look sensitivities are in degrees.
	DefaultRotationSpeed         = 540.0
	DefaultIdleRotationTolerance = 90.0
	DefaultRotateToTargetTime    = 0.35

	DefaultLookSensitivityH = 0.15
	DefaultLookSensitivityV = 0.12
	DefaultPitchLimit       = 80.0

	DefaultCapsuleRadius     = 0.35
	DefaultCapsuleHalfHeight = 0.9
	DefaultStepOffset        = 0.3
	DefaultSlopeLimit        = 50.0
)

// DefaultGroundMask is the collision layer characters stand on unless a
// capsule overrides it.
const DefaultGroundMask uint32 = 1
