package pointer

import (
	"fmt"

	"github.com/go-vgo/robotgo"

	"github.com/chetana/airpoint/internal/gesture"
)

// SystemActuator drives the real pointer through robotgo.
type SystemActuator struct{}

// NewSystemActuator creates an actuator for the host pointer.
func NewSystemActuator() *SystemActuator {
	return &SystemActuator{}
}

// MoveBy moves the cursor by a relative pixel offset. The OS clamps the
// resulting position to the screen bounds.
func (a *SystemActuator) MoveBy(dx, dy int) error {
	robotgo.MoveRelative(dx, dy)
	return nil
}

// Click presses and releases the given button.
func (a *SystemActuator) Click(button gesture.Button) error {
	switch button {
	case gesture.ButtonLeft:
		robotgo.Click("left")
	case gesture.ButtonRight:
		robotgo.Click("right")
	default:
		return fmt.Errorf("unknown button %q", button)
	}
	return nil
}

// DragStart presses and holds the left button.
func (a *SystemActuator) DragStart() error {
	if err := robotgo.Toggle("left"); err != nil {
		return fmt.Errorf("press left button: %w", err)
	}
	return nil
}

// DragMoveBy moves the cursor while the left button is held.
func (a *SystemActuator) DragMoveBy(dx, dy int) error {
	robotgo.MoveRelative(dx, dy)
	return nil
}

// DragEnd releases the left button.
func (a *SystemActuator) DragEnd() error {
	if err := robotgo.Toggle("left", "up"); err != nil {
		return fmt.Errorf("release left button: %w", err)
	}
	return nil
}

// ScrollBy scrolls vertically. Positive steps scroll up.
func (a *SystemActuator) ScrollBy(steps int) error {
	robotgo.Scroll(0, steps)
	return nil
}

// ScreenSize returns the primary display size in pixels.
func (a *SystemActuator) ScreenSize() (int, int) {
	return robotgo.GetScreenSize()
}
