package locomotion

import "github.com/go-gl/mathgl/mgl32"

// FrameResult captures the outcome of a single simulated frame. The
// animation binder polls it read-only.
type FrameResult struct {
	State    MoveState
	Grounded bool

	Position     mgl32.Vec3
	Velocity     mgl32.Vec3
	Displacement mgl32.Vec3

	MismatchDeg    float32
	Rotating       bool
	InputMagnitude float32
}

func (s *Simulator) resultFromState(st *BodyState) FrameResult {
	return FrameResult{
		State:          st.State,
		Grounded:       st.OnGround,
		Position:       st.Pos,
		Velocity:       st.Vel,
		Displacement:   st.Mov,
		MismatchDeg:    st.Mismatch,
		Rotating:       st.Rotating,
		InputMagnitude: st.InputMagnitude,
	}
}
