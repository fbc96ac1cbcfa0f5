package geometry

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
)

var down = mgl32.Vec3{0, -1, 0}

func TestSphereOverlapFloor(t *testing.T) {
	w := NewWorld()
	w.AddFloor(0, 1)

	if !w.SphereOverlap(mgl32.Vec3{0, 0.3, 0}, 0.35, 1) {
		t.Error("sphere touching the floor should overlap")
	}
	if w.SphereOverlap(mgl32.Vec3{0, 0.4, 0}, 0.35, 1) {
		t.Error("sphere above the floor should not overlap")
	}
}

func TestSphereCastDownOntoFloor(t *testing.T) {
	w := NewWorld()
	w.AddFloor(0, 1)

	hit, ok := w.SphereCast(mgl32.Vec3{0, 2, 0}, 0.35, down, 3, 1)
	if !ok {
		t.Fatal("downward cast over the floor should hit")
	}
	// The sphere bottom meets the floor once the center travels 2 - 0.35.
	if want := float32(1.65); math32.Abs(hit.Distance-want) > 0.01 {
		t.Errorf("hit distance = %v, want ≈ %v", hit.Distance, want)
	}
	if hit.Normal != (mgl32.Vec3{0, 1, 0}) {
		t.Errorf("floor normal = %v, want up", hit.Normal)
	}
}

func TestSphereCastRangeLimit(t *testing.T) {
	w := NewWorld()
	w.AddFloor(0, 1)

	if _, ok := w.SphereCast(mgl32.Vec3{0, 2, 0}, 0.35, down, 1, 1); ok {
		t.Error("cast shorter than the gap should miss")
	}
}

func TestSphereCastEmptyWorld(t *testing.T) {
	w := NewWorld()
	if _, ok := w.SphereCast(mgl32.Vec3{0, 2, 0}, 0.35, down, 10, 1); ok {
		t.Error("cast in an empty world should miss")
	}
}

func TestLayerMaskFiltering(t *testing.T) {
	w := NewWorld()
	w.AddFloor(0, 2)

	if w.SphereOverlap(mgl32.Vec3{0, 0.3, 0}, 0.35, 1) {
		t.Error("overlap should ignore colliders outside the mask")
	}
	if _, ok := w.SphereCast(mgl32.Vec3{0, 2, 0}, 0.35, down, 3, 1); ok {
		t.Error("cast should ignore colliders outside the mask")
	}
	if !w.SphereOverlap(mgl32.Vec3{0, 0.3, 0}, 0.35, 3) {
		t.Error("overlap should see colliders on any masked layer")
	}
}

func TestSphereCastSideFaceNormal(t *testing.T) {
	w := NewWorld()
	w.AddBox(cube.Box(1, -1, -1, 2, 1, 1), 1)

	hit, ok := w.SphereCast(mgl32.Vec3{-1, 0, 0}, 0.35, mgl32.Vec3{1, 0, 0}, 3, 1)
	if !ok {
		t.Fatal("cast toward the wall should hit")
	}
	if want := float32(1.65); math32.Abs(hit.Distance-want) > 0.01 {
		t.Errorf("hit distance = %v, want ≈ %v", hit.Distance, want)
	}
	if hit.Normal != (mgl32.Vec3{-1, 0, 0}) {
		t.Errorf("wall normal = %v, want -X", hit.Normal)
	}
}

func TestSphereCastStartInsideReportsZero(t *testing.T) {
	w := NewWorld()
	w.AddFloor(0, 1)

	hit, ok := w.SphereCast(mgl32.Vec3{0, 0.2, 0}, 0.35, down, 1, 1)
	if !ok {
		t.Fatal("cast starting in contact should hit")
	}
	if hit.Distance != 0 {
		t.Errorf("cast starting in contact should report distance 0, got %v", hit.Distance)
	}
}

func TestCollidersAccessor(t *testing.T) {
	w := NewWorld()
	w.AddFloor(0, 1)
	w.AddBox(cube.Box(0, 0, 0, 1, 1, 1), 2)

	cs := w.Colliders()
	if len(cs) != 2 {
		t.Fatalf("got %d colliders, want 2", len(cs))
	}
	if cs[1].Mask != 2 {
		t.Errorf("collider mask = %v, want 2", cs[1].Mask)
	}
}
