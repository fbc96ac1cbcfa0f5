package locomotion

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/strideworks/stride/game"
)

// StepLateral computes the camera-relative horizontal acceleration, applies
// drag, clamps to the active state's speed cap and projects the velocity off
// steep surfaces while descending airborne.
func (s *Simulator) StepLateral(dt float32, in InputState, basis CameraBasis, st *BodyState, contact GroundContact) {
	t := s.Tuning

	// Airborne always uses in-air acceleration with a sprint-speed cap, which
	// deliberately allows fast air control distinct from the ground caps.
	accel, speedCap := t.AirAcceleration, t.SprintSpeed
	if contact.Grounded && !st.State.Airborne() {
		switch st.State {
		case MoveStateWalking:
			accel, speedCap = t.WalkAcceleration, t.WalkSpeed
		case MoveStateSprinting:
			accel, speedCap = t.SprintAcceleration, t.SprintSpeed
		default:
			accel, speedCap = t.RunAcceleration, t.RunSpeed
		}
	}

	hz := game.Vec3Hz(st.Vel)
	if hz.LenSqr() < residualVelocityEpsilon {
		hz = mgl32.Vec2{}
	}

	dir := basis.Right.Mul(in.MoveVector.X()).Add(basis.Forward.Mul(in.MoveVector.Y()))
	hz = hz.Add(dir.Mul(accel * dt))

	// Drag either shortens the velocity or snaps it to zero, so the character
	// never oscillates around zero from drag overshoot.
	if decay := t.Drag * dt; hz.Len() > decay {
		hz = hz.Sub(game.SafeNormalizeVec2(hz).Mul(decay))
	} else {
		hz = mgl32.Vec2{}
	}

	if speed := hz.Len(); speed > speedCap {
		hz = hz.Mul(speedCap / speed)
	}

	vel := mgl32.Vec3{hz.X(), st.Vel.Y(), hz.Y()}

	// Slide along surfaces steeper than the slope limit instead of sticking
	// to them while falling.
	if !contact.Grounded && vel.Y() < 0 && contact.SlopeAngle > s.Capsule.SlopeLimit {
		vel = game.ProjectOnPlane(vel, contact.Normal)
		s.debugf("steep surface (%.1f°), velocity projected onto plane", contact.SlopeAngle)
	}

	st.SetVel(vel)
	st.InputMagnitude = math32.Min(in.MoveVector.Len(), 1)
}

// applyDisplacement moves the capsule by velocity*dt and resolves the move
// against the support surface. The frame's descent is swept with the
// capsule's feet sphere: the displacement clamps at the first contact and
// the velocity component pointing into the surface is cancelled, so the
// capsule comes to rest on geometry instead of tunneling through it. The
// support flag is refreshed beneath the resolved position.
func (s *Simulator) applyDisplacement(dt float32, st *BodyState) {
	mov := st.Vel.Mul(dt)

	if dy := mov.Y(); dy < 0 {
		feet := st.Pos.Sub(mgl32.Vec3{0, s.Capsule.HalfHeight - s.Capsule.Radius, 0})
		if hit, ok := s.Geometry.SphereCast(feet, s.Capsule.Radius, worldDown, -dy, s.Capsule.Mask); ok {
			mov[1] = -hit.Distance
			if into := st.Vel.Dot(hit.Normal); into < 0 {
				st.Vel = st.Vel.Sub(hit.Normal.Mul(into))
				s.debugf("descent resolved against surface (dist=%.3f)", hit.Distance)
			}
		}
	}

	st.Mov = mov
	st.SetPos(st.Pos.Add(mov))
	st.Supported = s.Geometry.SphereOverlap(s.feetCenter(st), s.Capsule.Radius, s.Capsule.Mask)
}
