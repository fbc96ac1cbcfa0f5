package component

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/strideworks/stride/locomotion"
)

// Movement mirrors the body state the simulator produced this frame for
// collaborators that must not mutate the simulation directly.
type Movement struct {
	pos, lastPos mgl32.Vec3
	vel, lastVel mgl32.Vec3
	mov          mgl32.Vec3

	yaw float32

	state     locomotion.MoveState
	lastState locomotion.MoveState

	onGround bool
	ground   locomotion.GroundContact
}

// Pos returns the capsule center position.
func (mc *Movement) Pos() mgl32.Vec3 {
	return mc.pos
}

// LastPos returns the previous frame's position.
func (mc *Movement) LastPos() mgl32.Vec3 {
	return mc.lastPos
}

// Vel returns the body velocity.
func (mc *Movement) Vel() mgl32.Vec3 {
	return mc.vel
}

// LastVel returns the previous frame's velocity.
func (mc *Movement) LastVel() mgl32.Vec3 {
	return mc.lastVel
}

// Mov returns the displacement applied to the capsule this frame.
func (mc *Movement) Mov() mgl32.Vec3 {
	return mc.mov
}

// Yaw returns the body facing in degrees.
func (mc *Movement) Yaw() float32 {
	return mc.yaw
}

// State returns the movement state for the current frame.
func (mc *Movement) State() locomotion.MoveState {
	return mc.state
}

// LastState returns the previous frame's movement state.
func (mc *Movement) LastState() locomotion.MoveState {
	return mc.lastState
}

// OnGround returns true if the ground probe reported contact this frame.
func (mc *Movement) OnGround() bool {
	return mc.onGround
}

// Ground returns this frame's ground contact.
func (mc *Movement) Ground() locomotion.GroundContact {
	return mc.ground
}

// Sync pulls the frame's results from the body state.
func (mc *Movement) Sync(st *locomotion.BodyState) {
	mc.lastPos = mc.pos
	mc.pos = st.Pos
	mc.lastVel = mc.vel
	mc.vel = st.Vel
	mc.mov = st.Mov
	mc.yaw = st.Yaw
	mc.lastState = mc.state
	mc.state = st.State
	mc.onGround = st.OnGround
	mc.ground = st.Ground
}
