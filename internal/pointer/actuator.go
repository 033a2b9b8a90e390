// Package pointer abstracts the system pointer: an Actuator performs
// cursor moves, clicks, drags, and scrolls, and a Mapper converts
// frame-normalized hand motion into screen-pixel deltas.
package pointer

import "github.com/chetana/airpoint/internal/gesture"

// Actuator performs pointer actions on the host system. Implementations
// must be safe to call from the frame loop goroutine; they need not be
// safe for concurrent use.
type Actuator interface {
	// MoveBy moves the cursor by a relative pixel offset.
	MoveBy(dx, dy int) error

	// Click presses and releases the given button at the current
	// cursor position.
	Click(button gesture.Button) error

	// DragStart presses and holds the left button.
	DragStart() error

	// DragMoveBy moves the cursor while the left button is held.
	DragMoveBy(dx, dy int) error

	// DragEnd releases the left button.
	DragEnd() error

	// ScrollBy scrolls vertically by the given number of steps.
	// Positive steps scroll up.
	ScrollBy(steps int) error

	// ScreenSize returns the primary display size in pixels.
	ScreenSize() (width, height int)
}

// Config holds the motion mapping parameters.
type Config struct {
	// Sensitivity scales frame-normalized hand movement to screen
	// movement. 1.0 maps a full-frame sweep to a full-screen sweep.
	Sensitivity float64

	// Smoothing is the exponential moving average factor applied to
	// cursor deltas, between 0 (none) and 1. Higher values are
	// smoother but laggier.
	Smoothing float64

	// JumpThreshold is the largest frame-normalized per-frame movement
	// treated as real. Larger jumps are detection glitches and are
	// dropped.
	JumpThreshold float64
}

// DefaultConfig returns mapping parameters tuned for a webcam at arm's
// length.
func DefaultConfig() Config {
	return Config{
		Sensitivity:   2.5,
		Smoothing:     0.65,
		JumpThreshold: 0.25,
	}
}
