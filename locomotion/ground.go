package locomotion

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// ProbeGround queries the geometry beneath the capsule and produces the
// frame's ground contact. Two calling conventions are used on purpose: while
// grounded a cheap sphere overlap at the feet avoids jitter at the
// grounded/airborne boundary, and while airborne a downward sphere cast is
// combined with the collision system's own support flag and the slope limit.
// A miss is a valid result with an up-facing normal.
func (s *Simulator) ProbeGround(st *BodyState) GroundContact {
	contact := GroundContact{Normal: worldUp}
	castDist := s.Capsule.HalfHeight + st.StepOffset + groundProbeEpsilon

	if st.OnGround {
		contact.Grounded = s.Geometry.SphereOverlap(s.feetCenter(st), s.Capsule.Radius, s.Capsule.Mask)
		if contact.Grounded {
			if hit, ok := s.Geometry.SphereCast(st.Pos, s.Capsule.Radius, worldDown, castDist, s.Capsule.Mask); ok {
				contact.Normal = hit.Normal
			}
		}
		contact.SlopeAngle = slopeAngle(contact.Normal)
		return contact
	}

	hit, ok := s.Geometry.SphereCast(st.Pos, s.Capsule.Radius, worldDown, castDist, s.Capsule.Mask)
	if ok {
		contact.Normal = hit.Normal
	}
	contact.SlopeAngle = slopeAngle(contact.Normal)
	// The cast alone reads true through the whole near-ground band, including
	// the first frames of a jump's ascent. The collision system's support flag
	// decides actual contact; the cast contributes the normal for the slope
	// filter.
	contact.Grounded = ok && st.Supported && contact.SlopeAngle <= s.Capsule.SlopeLimit
	return contact
}

// feetCenter returns the center of the sphere at the bottom of the capsule.
func (s *Simulator) feetCenter(st *BodyState) mgl32.Vec3 {
	return st.Pos.Sub(mgl32.Vec3{0, s.Capsule.HalfHeight - s.Capsule.Radius + groundProbeEpsilon, 0})
}

// slopeAngle returns the angle in degrees between a surface normal and world
// up. Degenerate normals read as flat ground.
func slopeAngle(normal mgl32.Vec3) float32 {
	if normal.LenSqr() < 1e-12 {
		return 0
	}
	cos := normal.Y() / normal.Len()
	if cos > 1 {
		cos = 1
	} else if cos < -1 {
		cos = -1
	}
	return mgl32.RadToDeg(math32.Acos(cos))
}
