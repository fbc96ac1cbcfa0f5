package locomotion

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

// flatWorld is a mock geometry provider with an infinite floor whose top
// surface sits at floorY.
type flatWorld struct {
	floorY float32
}

func (w flatWorld) SphereOverlap(center mgl32.Vec3, radius float32, mask uint32) bool {
	return center.Y()-radius <= w.floorY
}

func (w flatWorld) SphereCast(origin mgl32.Vec3, radius float32, dir mgl32.Vec3, dist float32, mask uint32) (SphereCastHit, bool) {
	if dir.Y() >= 0 {
		return SphereCastHit{}, false
	}
	gap := origin.Y() - radius - w.floorY
	if gap < 0 {
		gap = 0
	}
	if gap > dist {
		return SphereCastHit{}, false
	}
	return SphereCastHit{Distance: gap, Normal: mgl32.Vec3{0, 1, 0}}, true
}

// emptyWorld is a mock geometry provider with no colliders at all.
type emptyWorld struct{}

func (emptyWorld) SphereOverlap(mgl32.Vec3, float32, uint32) bool {
	return false
}

func (emptyWorld) SphereCast(mgl32.Vec3, float32, mgl32.Vec3, float32, uint32) (SphereCastHit, bool) {
	return SphereCastHit{}, false
}

// slopedWorld is a mock geometry provider whose downward casts always hit a
// surface with the given normal.
type slopedWorld struct {
	normal mgl32.Vec3
}

func (slopedWorld) SphereOverlap(mgl32.Vec3, float32, uint32) bool {
	return false
}

func (w slopedWorld) SphereCast(origin mgl32.Vec3, radius float32, dir mgl32.Vec3, dist float32, mask uint32) (SphereCastHit, bool) {
	if dir.Y() >= 0 {
		return SphereCastHit{}, false
	}
	return SphereCastHit{Distance: 0.1, Normal: w.normal}, true
}

func newTestSimulator(t *testing.T, geometry GeometryProvider) *Simulator {
	t.Helper()
	sim, err := New(geometry, DefaultCapsule(), DefaultTuning())
	if err != nil {
		t.Fatalf("creating simulator: %v", err)
	}
	return sim
}

// groundedState returns a body resting on the flat floor at height zero.
func groundedState(sim *Simulator) *BodyState {
	return NewBodyState(mgl32.Vec3{0, sim.Capsule.HalfHeight, 0}, sim.Capsule)
}

func groundedContact() GroundContact {
	return GroundContact{Grounded: true, Normal: mgl32.Vec3{0, 1, 0}}
}

func airborneContact() GroundContact {
	return GroundContact{Grounded: false, Normal: mgl32.Vec3{0, 1, 0}}
}
