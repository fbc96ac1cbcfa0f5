package locomotion

import "github.com/strideworks/stride/serror"

// Options define optional simulator behavior.
type Options struct {
	// Debugf receives internal simulation trace logs for callers that need
	// deep diagnostics.
	Debugf func(format string, args ...interface{})
}

// Simulator advances a character's locomotion one frame at a time. It is
// single-threaded and cooperative: every pass runs once per frame, in a fixed
// order, against the same delta-time sample.
type Simulator struct {
	Geometry GeometryProvider
	Capsule  Capsule
	Tuning   Tuning
	Options  Options
}

// New validates the collaborators once at construction. A missing geometry
// provider is a fatal configuration error; it is not retried per frame.
func New(geometry GeometryProvider, capsule Capsule, tuning Tuning) (*Simulator, error) {
	if geometry == nil {
		return nil, serror.New("locomotion: geometry provider is nil")
	}
	if capsule.Radius <= 0 || capsule.HalfHeight <= 0 {
		return nil, serror.New("locomotion: capsule dimensions must be positive (radius=%v, halfHeight=%v)", capsule.Radius, capsule.HalfHeight)
	}
	if capsule.Radius > capsule.HalfHeight {
		return nil, serror.New("locomotion: capsule radius %v exceeds half-height %v", capsule.Radius, capsule.HalfHeight)
	}
	if tuning.Gravity <= 0 || tuning.TerminalVelocity <= 0 {
		return nil, serror.New("locomotion: gravity and terminal velocity must be positive")
	}
	return &Simulator{Geometry: geometry, Capsule: capsule, Tuning: tuning}, nil
}

func (s *Simulator) debugf(format string, args ...interface{}) {
	if s.Options.Debugf != nil {
		s.Options.Debugf(format, args...)
	}
}
