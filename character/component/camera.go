package component

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/strideworks/stride/game"
	"github.com/strideworks/stride/locomotion"
)

// Camera owns the look orientation the simulator writes back each frame and
// exposes the Y-stripped forward/right basis it consumes.
type Camera struct {
	yaw, pitch float32
}

// Yaw returns the camera yaw in degrees. It accumulates unbounded.
func (c *Camera) Yaw() float32 {
	return c.yaw
}

// Pitch returns the camera pitch in degrees, clamped to the vertical limit.
func (c *Camera) Pitch() float32 {
	return c.pitch
}

// Basis returns the horizontal forward/right pair for camera-relative
// movement.
func (c *Camera) Basis() locomotion.CameraBasis {
	return locomotion.BasisFromYaw(c.yaw)
}

// Forward returns the camera forward projected onto the ground plane.
func (c *Camera) Forward() mgl32.Vec2 {
	return game.DirectionFromYaw(c.yaw)
}

// Sync pulls the orientation the simulator produced this frame.
func (c *Camera) Sync(st *locomotion.BodyState) {
	c.yaw = st.CameraYaw
	c.pitch = st.CameraPitch
}
