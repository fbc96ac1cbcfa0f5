package locomotion

import (
	"github.com/chewxy/math32"

	"github.com/strideworks/stride/game"
)

// DeriveMoveState classifies the frame's movement state from input, velocity
// and ground contact. Walking takes priority over sprinting so a player
// cannot sprint sideways, and airborne states always win over the lateral
// classification.
func (s *Simulator) DeriveMoveState(in InputState, st *BodyState, contact GroundContact) MoveState {
	// Running is only permitted when moving forward or strafing at 45 degrees
	// or less.
	canRun := in.MoveVector.Y() >= math32.Abs(in.MoveVector.X())

	threshold := s.Tuning.MovementThreshold
	moving := game.Vec3HzDistSqr(st.Vel) > threshold*threshold

	sprinting := in.Sprinting && moving
	walking := (moving && !canRun) || in.Walking

	state := MoveStateIdle
	switch {
	case walking:
		state = MoveStateWalking
	case sprinting:
		state = MoveStateSprinting
	case moving || in.MoveVector.LenSqr() > 0:
		state = MoveStateRunning
	}

	if !contact.Grounded || st.JumpedLastFrame {
		if st.Vel.Y() > 0 {
			state = MoveStateJumping
		} else {
			state = MoveStateFalling
		}
	}
	return state
}
