package locomotion

import "github.com/go-gl/mathgl/mgl32"

const (
	// groundProbeEpsilon pads the downward probe so a capsule resting exactly
	// on a surface still registers contact.
	groundProbeEpsilon = 0.02

	// crossEpsilon is the degenerate-cross-product threshold below which the
	// mismatch sign falls back to the previous frame's sign.
	crossEpsilon = 1e-4

	// residualVelocityEpsilon zeroes insignificant lateral velocity so drag
	// arithmetic cannot oscillate around zero.
	residualVelocityEpsilon = 1e-12
)

var worldUp = mgl32.Vec3{0, 1, 0}

var worldDown = mgl32.Vec3{0, -1, 0}
