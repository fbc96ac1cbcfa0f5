package locomotion

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/strideworks/stride/game"
)

// StepOrientation advances the camera angles and rotates the body toward its
// facing target. It runs as the frame's late update, after the displacement
// has been applied, so the camera always reflects the moved position.
func (s *Simulator) StepOrientation(dt float32, in InputState, st *BodyState) {
	t := s.Tuning

	// Camera yaw accumulates unbounded; pitch clamps to the vertical limit.
	pan := in.LookDelta.X() * t.LookSensitivityH
	st.CameraYaw += pan
	st.CameraPitch = game.ClampFloat(st.CameraPitch+in.LookDelta.Y()*t.LookSensitivityV, -t.PitchLimit, t.PitchLimit)

	// The facing target follows camera panning even while the body is not
	// actively rotating; the rotation passes below steer toward it.
	st.TargetYaw += pan

	st.Mismatch = s.mismatch(st)

	if st.State != MoveStateIdle {
		// Constant pursuit of the camera facing, no threshold.
		st.Rotating = false
		st.RotateRemaining = 0
		st.TargetYaw = st.CameraYaw
		st.Yaw = game.RotateYawTowards(st.Yaw, st.TargetYaw, t.RotationSpeed*dt)
		return
	}

	if !st.Rotating && math32.Abs(st.Mismatch) > t.IdleRotationTolerance {
		st.Rotating = true
		st.RotateRemaining = t.RotateToTargetTime
		st.RotatingClockwise = st.Mismatch > 0
		st.TargetYaw = st.CameraYaw
		s.debugf("idle rotation armed (mismatch=%.1f°, clockwise=%v)", st.Mismatch, st.RotatingClockwise)
	}

	if !st.Rotating {
		return
	}

	st.RotateRemaining -= dt
	// Rotation continues only while the timer is active and the live mismatch
	// still points in the armed direction, so the body stops the instant it
	// crosses past the target.
	crossed := (st.Mismatch > 0) != st.RotatingClockwise
	if st.RotateRemaining <= 0 || crossed {
		st.Rotating = false
		st.RotateRemaining = 0
		return
	}
	st.Yaw = game.RotateYawTowards(st.Yaw, st.TargetYaw, t.RotationSpeed*dt)
}

// mismatch returns the signed angle between the body forward and the camera
// forward projected onto the ground plane. The sign comes from the cross
// product relative to world up, keeping the angle continuous through ±180°;
// when the vectors are collinear the previous frame's sign is reused.
func (s *Simulator) mismatch(st *BodyState) float32 {
	bodyFwd := game.DirectionFromYaw(st.Yaw)
	camFwd := game.DirectionFromYaw(st.CameraYaw)

	dot := game.ClampFloat(bodyFwd.Dot(camFwd), -1, 1)
	angle := mgl32.RadToDeg(math32.Acos(dot))

	cross := bodyFwd.Y()*camFwd.X() - bodyFwd.X()*camFwd.Y()
	sign := st.LastMismatchSign
	if math32.Abs(cross) > crossEpsilon {
		if cross > 0 {
			sign = 1
		} else {
			sign = -1
		}
		st.LastMismatchSign = sign
	} else if sign == 0 {
		sign = 1
	}

	return angle * sign
}
