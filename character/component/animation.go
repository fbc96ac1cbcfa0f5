package component

import (
	"github.com/elliotchance/orderedmap/v2"

	"github.com/strideworks/stride/locomotion"
)

// Animation parameter keys, in the order the binder iterates them.
const (
	ParamState          = "state"
	ParamGrounded       = "grounded"
	ParamMismatchDeg    = "mismatch_deg"
	ParamRotating       = "rotating"
	ParamInputMagnitude = "input_magnitude"
)

// Animation is the read-only surface the animation binder polls each frame.
// Parameters keep insertion order so the binder's iteration is deterministic.
type Animation struct {
	params *orderedmap.OrderedMap[string, any]
}

func NewAnimation() *Animation {
	a := &Animation{params: orderedmap.NewOrderedMap[string, any]()}
	a.params.Set(ParamState, locomotion.MoveStateIdle.String())
	a.params.Set(ParamGrounded, true)
	a.params.Set(ParamMismatchDeg, float32(0))
	a.params.Set(ParamRotating, false)
	a.params.Set(ParamInputMagnitude, float32(0))
	return a
}

// Param returns a single animation parameter by key.
func (a *Animation) Param(key string) (any, bool) {
	return a.params.Get(key)
}

// Each visits every parameter in insertion order.
func (a *Animation) Each(f func(key string, value any)) {
	for el := a.params.Front(); el != nil; el = el.Next() {
		f(el.Key, el.Value)
	}
}

// Sync publishes the frame's results to the binder surface.
func (a *Animation) Sync(res locomotion.FrameResult) {
	a.params.Set(ParamState, res.State.String())
	a.params.Set(ParamGrounded, res.Grounded)
	a.params.Set(ParamMismatchDeg, res.MismatchDeg)
	a.params.Set(ParamRotating, res.Rotating)
	a.params.Set(ParamInputMagnitude, res.InputMagnitude)
}
