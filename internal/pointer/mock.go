package pointer

import (
	"fmt"

	"github.com/chetana/airpoint/internal/gesture"
)

// MockActuator is a test implementation of the Actuator interface that
// records every call instead of touching the system pointer.
type MockActuator struct {
	Calls []string

	Width  int
	Height int

	err error
}

// NewMockActuator creates a mock reporting a 1920x1080 screen.
func NewMockActuator() *MockActuator {
	return &MockActuator{Width: 1920, Height: 1080}
}

// SetError makes every subsequent action return err.
func (m *MockActuator) SetError(err error) {
	m.err = err
}

func (m *MockActuator) record(call string) error {
	if m.err != nil {
		return m.err
	}
	m.Calls = append(m.Calls, call)
	return nil
}

func (m *MockActuator) MoveBy(dx, dy int) error {
	return m.record(fmt.Sprintf("move(%d,%d)", dx, dy))
}

func (m *MockActuator) Click(button gesture.Button) error {
	return m.record(fmt.Sprintf("click(%s)", button))
}

func (m *MockActuator) DragStart() error {
	return m.record("dragStart")
}

func (m *MockActuator) DragMoveBy(dx, dy int) error {
	return m.record(fmt.Sprintf("dragMove(%d,%d)", dx, dy))
}

func (m *MockActuator) DragEnd() error {
	return m.record("dragEnd")
}

func (m *MockActuator) ScrollBy(steps int) error {
	return m.record(fmt.Sprintf("scroll(%d)", steps))
}

func (m *MockActuator) ScreenSize() (int, int) {
	return m.Width, m.Height
}
