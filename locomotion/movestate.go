package locomotion

// MoveState is the discrete movement classification recomputed from scratch
// every frame. It is a pure function of the frame's inputs and physics, not a
// persisted state with entry or exit actions.
type MoveState uint8

const (
	MoveStateIdle MoveState = iota
	MoveStateWalking
	MoveStateRunning
	MoveStateSprinting
	MoveStateJumping
	MoveStateFalling
	// MoveStateStrafing is declared for animation binder compatibility but is
	// never produced by the state machine.
	MoveStateStrafing
)

// Airborne returns true for the states that classify vertical motion.
func (s MoveState) Airborne() bool {
	return s == MoveStateJumping || s == MoveStateFalling
}

func (s MoveState) String() string {
	switch s {
	case MoveStateIdle:
		return "idle"
	case MoveStateWalking:
		return "walking"
	case MoveStateRunning:
		return "running"
	case MoveStateSprinting:
		return "sprinting"
	case MoveStateJumping:
		return "jumping"
	case MoveStateFalling:
		return "falling"
	case MoveStateStrafing:
		return "strafing"
	}
	return "unknown"
}
