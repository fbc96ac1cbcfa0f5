// Package character assembles the locomotion simulator with the camera,
// movement and animation components a game object needs, behind explicit
// dependency passing instead of global manager lookups.
package character

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/sirupsen/logrus"

	"github.com/strideworks/stride/character/component"
	"github.com/strideworks/stride/locomotion"
	"github.com/strideworks/stride/serror"
)

// Character is a single simulated character. All mutation happens through
// Tick; the components expose read-only views for external collaborators.
type Character struct {
	log *logrus.Logger
	Dbg *Debugger

	sim  *locomotion.Simulator
	body *locomotion.BodyState

	movement  *component.Movement
	camera    *component.Camera
	animation *component.Animation
}

// New builds a character at the given capsule-center spawn position. A nil
// geometry provider is a fatal configuration error reported once here, never
// per frame.
func New(geometry locomotion.GeometryProvider, capsule locomotion.Capsule, tuning locomotion.Tuning, spawn mgl32.Vec3, log *logrus.Logger) (*Character, error) {
	if log == nil {
		return nil, serror.New("character: logger is nil")
	}
	sim, err := locomotion.New(geometry, capsule, tuning)
	if err != nil {
		return nil, err
	}

	c := &Character{
		log:       log,
		Dbg:       NewDebugger(log),
		sim:       sim,
		body:      locomotion.NewBodyState(spawn, capsule),
		movement:  &component.Movement{},
		camera:    &component.Camera{},
		animation: component.NewAnimation(),
	}
	sim.Options.Debugf = func(format string, args ...interface{}) {
		c.Dbg.Notify(DebugModeMovement, true, format, args...)
	}
	c.movement.Sync(c.body)
	return c, nil
}

// Tick advances the character one frame. Movement runs first, orientation
// runs against the already-moved position, and the component views are
// refreshed last. Edge flags on the input are consumed exactly once.
func (c *Character) Tick(dt float32, in *locomotion.InputState) locomotion.FrameResult {
	basis := c.camera.Basis()

	res := c.sim.Simulate(dt, in, basis, c.body)
	c.sim.SimulateOrientation(dt, in, c.body)
	res.MismatchDeg = c.body.Mismatch
	res.Rotating = c.body.Rotating

	c.camera.Sync(c.body)
	c.movement.Sync(c.body)
	c.animation.Sync(res)

	c.Dbg.Notify(DebugModeGround, true, "ground: grounded=%v slope=%.1f°", c.body.OnGround, c.body.Ground.SlopeAngle)
	c.Dbg.Notify(DebugModeOrientation, c.body.Rotating, "rotating toward camera (mismatch=%.1f°)", c.body.Mismatch)
	return res
}

// Movement returns the read-only movement component.
func (c *Character) Movement() *component.Movement {
	return c.movement
}

// Camera returns the camera component.
func (c *Character) Camera() *component.Camera {
	return c.camera
}

// Animation returns the animation binder surface.
func (c *Character) Animation() *component.Animation {
	return c.animation
}

// Body exposes the underlying body state for collaborators that own
// teleports and spawn placement.
func (c *Character) Body() *locomotion.BodyState {
	return c.body
}

// Log returns the character's logger.
func (c *Character) Log() *logrus.Logger {
	return c.log
}
