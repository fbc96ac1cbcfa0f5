package locomotion

import "github.com/chewxy/math32"

// StepVertical advances the vertical velocity under gravity, jump impulses,
// anti-bump stabilization and the terminal clamp. The jump edge flag is
// consumed here regardless of whether the jump was accepted.
func (s *Simulator) StepVertical(dt float32, in *InputState, st *BodyState, contact GroundContact) {
	t := s.Tuning
	v := st.Vel.Y() - t.Gravity*dt

	// Grounded downward velocity floors at -antiBump, keeping the capsule
	// pressed to slopes without accumulating fall speed. Regaining ground
	// after airborne frames releases the floored amount back upward so the
	// landing frame settles at rest instead of slamming into the surface.
	if contact.Grounded && v < -t.AntiBump() {
		v = -t.AntiBump()
		if st.LastState.Airborne() {
			v += t.AntiBump()
			s.debugf("ground reacquired, anti-bump released (v=%.3f)", v)
		}
	}

	if in.JumpEdge {
		if contact.Grounded {
			v += math32.Sqrt(t.JumpHeightFactor * 3 * t.Gravity)
			st.JumpedLastFrame = true
			s.debugf("jump impulse applied (v=%.3f)", v)
		}
		in.JumpEdge = false
	}

	if v > t.TerminalVelocity {
		// A net-positive overshoot should not occur; surface it instead of
		// silently reinterpreting the sign.
		s.debugf("vertical velocity %.3f exceeds terminal velocity upward", v)
		v = t.TerminalVelocity
	} else if v < -t.TerminalVelocity {
		v = -t.TerminalVelocity
	}

	st.Vel[1] = v
}
