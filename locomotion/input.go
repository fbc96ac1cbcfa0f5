package locomotion

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/strideworks/stride/game"
)

// InputState represents a single frame's directional and look input. The
// input collaborator owns and mutates it; the simulator only reads it, except
// for JumpEdge which is reset the frame it is observed.
type InputState struct {
	// MoveVector is the movement axis in [-1,1]^2. X is the strafe component
	// and Y the forward component.
	MoveVector mgl32.Vec2

	// LookDelta is the accumulated look input for the frame.
	LookDelta mgl32.Vec2

	// JumpEdge is true for exactly one frame per physical press. The simulator
	// clears it after consuming it.
	JumpEdge bool

	Sprinting bool
	Walking   bool
}

// CameraBasis is the Y-stripped, renormalized forward/right pair read from the
// camera transform at the start of the frame.
type CameraBasis struct {
	Forward mgl32.Vec2
	Right   mgl32.Vec2
}

// BasisFromYaw derives a camera basis from a yaw angle in degrees.
func BasisFromYaw(yaw float32) CameraBasis {
	return CameraBasis{
		Forward: game.DirectionFromYaw(yaw),
		Right:   game.DirectionFromYaw(yaw + 90),
	}
}
