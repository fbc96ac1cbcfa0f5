package locomotion

import "github.com/strideworks/stride/assert"

// Simulate runs the movement half of the frame in the fixed component order:
// ground probe, state machine, vertical integration, lateral integration, and
// the capsule displacement. Orientation is deliberately left to
// SimulateOrientation so callers can late-update the camera after movement
// has been applied; Step runs both in order.
func (s *Simulator) Simulate(dt float32, in *InputState, basis CameraBasis, st *BodyState) FrameResult {
	assert.IsTrue(st != nil, "body state is nil")
	assert.IsTrue(in != nil, "input state is nil")
	if dt <= 0 {
		return s.resultFromState(st)
	}

	contact := s.ProbeGround(st)
	st.Ground = contact
	st.OnGround = contact.Grounded
	s.debugf("ground probe: grounded=%v slope=%.1f°", contact.Grounded, contact.SlopeAngle)

	newState := s.DeriveMoveState(*in, st, contact)
	// The latch is consumed by the state machine above and clears here; a
	// jump this frame re-arms it inside StepVertical.
	st.JumpedLastFrame = false
	st.LastState = st.State
	st.State = newState
	s.debugf("state: %v (was %v)", st.State, st.LastState)

	// The stepping aid is disabled mid-air and restored on the ground. This
	// mutates the capsule configuration, not the state value.
	if newState.Airborne() {
		st.StepOffset = 0
	} else {
		st.StepOffset = s.Capsule.StepOffset
	}

	s.StepVertical(dt, in, st, contact)
	s.StepLateral(dt, *in, basis, st, contact)
	s.applyDisplacement(dt, st)
	s.debugf("vel=%v pos=%v", st.Vel, st.Pos)

	return s.resultFromState(st)
}

// SimulateOrientation runs the orientation half of the frame. It must be
// called after Simulate with the same delta-time sample.
func (s *Simulator) SimulateOrientation(dt float32, in *InputState, st *BodyState) {
	assert.IsTrue(st != nil, "body state is nil")
	assert.IsTrue(in != nil, "input state is nil")
	if dt <= 0 {
		return
	}
	s.StepOrientation(dt, *in, st)
}

// Step advances one whole frame: movement first, then orientation against
// the already-moved position.
func (s *Simulator) Step(dt float32, in *InputState, basis CameraBasis, st *BodyState) FrameResult {
	res := s.Simulate(dt, in, basis, st)
	s.SimulateOrientation(dt, in, st)
	res.MismatchDeg = st.Mismatch
	res.Rotating = st.Rotating
	return res
}
