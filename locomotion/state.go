package locomotion

import "github.com/go-gl/mathgl/mgl32"

// Capsule describes the character's collision volume and its ground limits.
type Capsule struct {
	Radius     float32
	HalfHeight float32

	// StepOffset is the maximum ledge height the capsule can climb without
	// jumping. It is disabled mid-air to prevent false grounded readings.
	StepOffset float32

	// SlopeLimit is the steepest standable surface angle in degrees.
	SlopeLimit float32

	// Mask selects the collision layers ground queries run against.
	Mask uint32
}

// GroundContact is the result of a single ground query. It is recomputed
// every frame and never cached across frames.
type GroundContact struct {
	Grounded   bool
	Normal     mgl32.Vec3
	SlopeAngle float32
}

// BodyState holds the movement state for a single character. Velocity is the
// sole memory of motion across frames; everything else is either recomputed
// or a one-frame latch.
type BodyState struct {
	// Pos is the capsule center.
	Pos, LastPos mgl32.Vec3

	// Vel holds the lateral velocity in X/Z and the vertical velocity in Y.
	Vel, LastVel mgl32.Vec3

	// Mov is the displacement applied to the capsule last frame.
	Mov mgl32.Vec3

	// Yaw is the body facing in degrees. TargetYaw is the yaw the rotation
	// passes steer toward; it follows camera panning while the body is not
	// actively rotating and snaps to the camera yaw while it is.
	Yaw       float32
	TargetYaw float32

	CameraYaw   float32
	CameraPitch float32

	State     MoveState
	LastState MoveState

	Ground   GroundContact
	OnGround bool

	// Supported is the collision system's own grounded flag, set by the
	// displacement step when the capsule comes to rest on a collider.
	Supported bool

	// JumpedLastFrame makes the state machine treat a jump as airborne before
	// the ground probe reports separation. It clears the frame it is consumed.
	JumpedLastFrame bool

	// StepOffset is the live step offset on the capsule; zero while airborne,
	// restored to the configured value while grounded.
	StepOffset float32

	// Idle rotation catch-up window.
	RotateRemaining   float32
	RotatingClockwise bool
	Rotating          bool

	// Mismatch is the signed angle in degrees between the body facing and the
	// camera forward projected onto the ground plane. LastMismatchSign backs
	// the sign when the vectors are collinear.
	Mismatch         float32
	LastMismatchSign float32

	// InputMagnitude is the blended 2D input magnitude polled by the
	// animation binder.
	InputMagnitude float32
}

// NewBodyState returns a grounded, idle body state at the given capsule
// center position.
func NewBodyState(pos mgl32.Vec3, capsule Capsule) *BodyState {
	return &BodyState{
		Pos:        pos,
		LastPos:    pos,
		OnGround:   true,
		Supported:  true,
		StepOffset: capsule.StepOffset,
		Ground:     GroundContact{Grounded: true, Normal: worldUp},
	}
}

// SetPos moves the capsule center, keeping the previous position.
func (st *BodyState) SetPos(pos mgl32.Vec3) {
	st.LastPos = st.Pos
	st.Pos = pos
}

// SetVel replaces the body velocity, keeping the previous velocity.
func (st *BodyState) SetVel(vel mgl32.Vec3) {
	st.LastVel = st.Vel
	st.Vel = vel
}
