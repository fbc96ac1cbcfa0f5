package character

import "github.com/sirupsen/logrus"

const (
	DebugModeMovement = iota
	DebugModeGround
	DebugModeOrientation
)

// Debugger routes per-frame trace output to the character's logger, gated by
// toggleable modes so a single subsystem can be inspected in isolation.
type Debugger struct {
	log   *logrus.Logger
	modes uint32
}

func NewDebugger(log *logrus.Logger) *Debugger {
	return &Debugger{log: log}
}

// Toggle flips the given debug mode.
func (d *Debugger) Toggle(mode int) {
	d.modes ^= 1 << uint(mode)
}

// Enabled returns true if the given debug mode is active.
func (d *Debugger) Enabled(mode int) bool {
	return d.modes&(1<<uint(mode)) != 0
}

// Notify logs the given message when the mode is enabled and the condition
// holds.
func (d *Debugger) Notify(mode int, cond bool, format string, args ...interface{}) {
	if !cond || !d.Enabled(mode) {
		return
	}
	d.log.Debugf(format, args...)
}
