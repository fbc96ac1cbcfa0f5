package locomotion

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/strideworks/stride/game"
)

func stepLateralFrames(sim *Simulator, st *BodyState, in InputState, contact GroundContact, frames int) {
	basis := BasisFromYaw(st.CameraYaw)
	for i := 0; i < frames; i++ {
		sim.StepLateral(1.0/60.0, in, basis, st, contact)
	}
}

func TestLateralSpeedCapsPerState(t *testing.T) {
	cases := []struct {
		name  string
		state MoveState
		cap   float32
	}{
		{"walking", MoveStateWalking, game.DefaultWalkSpeed},
		{"running", MoveStateRunning, game.DefaultRunSpeed},
		{"sprinting", MoveStateSprinting, game.DefaultSprintSpeed},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			sim := newTestSimulator(t, flatWorld{})
			st := groundedState(sim)
			st.State = c.state

			in := InputState{MoveVector: mgl32.Vec2{0, 1}}
			basis := BasisFromYaw(st.CameraYaw)
			for i := 0; i < 180; i++ {
				sim.StepLateral(1.0/60.0, in, basis, st, groundedContact())
				if speed := game.Vec3Hz(st.Vel).Len(); speed > c.cap+1e-3 {
					t.Fatalf("frame %d: speed %v exceeds %v cap", i, speed, c.cap)
				}
			}
			if speed := game.Vec3Hz(st.Vel).Len(); math32.Abs(speed-c.cap) > 0.1 {
				t.Errorf("sustained input should saturate at the cap, got %v want %v", speed, c.cap)
			}
		})
	}
}

func TestLateralDragSnapsToZero(t *testing.T) {
	sim := newTestSimulator(t, flatWorld{})
	st := groundedState(sim)
	st.State = MoveStateRunning
	st.Vel = mgl32.Vec3{3, 0, 1}

	stepLateralFrames(sim, st, InputState{}, groundedContact(), 600)

	if hz := game.Vec3Hz(st.Vel); hz.X() != 0 || hz.Y() != 0 {
		t.Errorf("drag should bring horizontal velocity exactly to zero, got %v", hz)
	}
}

func TestLateralAirborneUsesSprintCap(t *testing.T) {
	sim := newTestSimulator(t, emptyWorld{})
	st := groundedState(sim)
	st.State = MoveStateFalling
	st.OnGround = false

	in := InputState{MoveVector: mgl32.Vec2{0, 1}}
	stepLateralFrames(sim, st, in, airborneContact(), 300)

	speed := game.Vec3Hz(st.Vel).Len()
	if speed > sim.Tuning.SprintSpeed+1e-3 {
		t.Errorf("airborne speed %v exceeds sprint cap", speed)
	}
	if speed <= sim.Tuning.RunSpeed {
		t.Errorf("airborne control should allow speeds beyond the run cap, got %v", speed)
	}
}

func TestLateralVerticalUntouched(t *testing.T) {
	sim := newTestSimulator(t, flatWorld{})
	st := groundedState(sim)
	st.State = MoveStateRunning
	st.Vel = mgl32.Vec3{0, -4.2, 0}

	in := InputState{MoveVector: mgl32.Vec2{1, 0}}
	sim.StepLateral(1.0/60.0, in, BasisFromYaw(0), st, groundedContact())

	if st.Vel.Y() != -4.2 {
		t.Errorf("lateral integration must not touch the vertical component, got %v", st.Vel.Y())
	}
}

func TestLateralSteepSlopeProjection(t *testing.T) {
	normal := game.SafeNormalizeVec3(mgl32.Vec3{0.9, 0.435, 0})
	sim := newTestSimulator(t, slopedWorld{normal: normal})
	st := groundedState(sim)
	st.State = MoveStateFalling
	st.OnGround = false
	st.Vel = mgl32.Vec3{-2, -10, 0}

	contact := GroundContact{Grounded: false, Normal: normal, SlopeAngle: slopeAngle(normal)}
	if contact.SlopeAngle <= sim.Capsule.SlopeLimit {
		t.Fatalf("test surface at %v° is not past the %v° slope limit", contact.SlopeAngle, sim.Capsule.SlopeLimit)
	}

	sim.StepLateral(1.0/60.0, InputState{}, BasisFromYaw(0), st, contact)

	if dot := st.Vel.Dot(normal); math32.Abs(dot) > 1e-4 {
		t.Errorf("velocity should be projected off the steep surface, residual dot %v", dot)
	}
}

func TestDisplacementRestsOnFloor(t *testing.T) {
	sim := newTestSimulator(t, flatWorld{})
	st := groundedState(sim)
	st.Vel = mgl32.Vec3{3, -9, 0}

	sim.applyDisplacement(1.0/60.0, st)

	if st.Pos.Y() < sim.Capsule.HalfHeight-1e-4 {
		t.Errorf("descent should clamp at the floor, got y=%v", st.Pos.Y())
	}
	if st.Vel.Y() != 0 {
		t.Errorf("into-surface velocity should cancel on contact, got %v", st.Vel.Y())
	}
	if st.Vel.X() != 3 {
		t.Errorf("lateral velocity must survive the resolution, got %v", st.Vel.X())
	}
	if !st.Supported {
		t.Error("resolved contact should set the support flag")
	}
}

func TestDisplacementLandsExactlyOnFloor(t *testing.T) {
	sim := newTestSimulator(t, flatWorld{})
	st := NewBodyState(mgl32.Vec3{0, 0.95, 0}, sim.Capsule)
	st.Vel = mgl32.Vec3{0, -9, 0}

	// The feet are 0.05 above the floor and the frame travels 0.15; the move
	// clamps at contact instead of tunneling through.
	sim.applyDisplacement(1.0/60.0, st)

	if !mgl32.FloatEqualThreshold(st.Pos.Y(), sim.Capsule.HalfHeight, 1e-4) {
		t.Errorf("landing should stop on the floor surface, got y=%v", st.Pos.Y())
	}
	if st.Vel.Y() != 0 {
		t.Errorf("fall speed should cancel on landing, got %v", st.Vel.Y())
	}
}

func TestDisplacementFreeFallAboveFloor(t *testing.T) {
	sim := newTestSimulator(t, flatWorld{})
	st := NewBodyState(mgl32.Vec3{0, 5, 0}, sim.Capsule)
	st.Vel = mgl32.Vec3{0, -9, 0}

	sim.applyDisplacement(1.0/60.0, st)

	if want := float32(5 - 9.0/60.0); !mgl32.FloatEqualThreshold(st.Pos.Y(), want, 1e-4) {
		t.Errorf("free fall should apply the full displacement, got %v want %v", st.Pos.Y(), want)
	}
	if st.Vel.Y() != -9 {
		t.Errorf("velocity must be untouched without contact, got %v", st.Vel.Y())
	}
}

func TestLateralInputMagnitudeClamped(t *testing.T) {
	sim := newTestSimulator(t, flatWorld{})
	st := groundedState(sim)

	in := InputState{MoveVector: mgl32.Vec2{1, 1}}
	sim.StepLateral(1.0/60.0, in, BasisFromYaw(0), st, groundedContact())

	if st.InputMagnitude != 1 {
		t.Errorf("diagonal input magnitude should clamp to 1, got %v", st.InputMagnitude)
	}
}
