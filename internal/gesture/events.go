package gesture

// Kind identifies an intent event emitted by the Tracker.
type Kind string

const (
	// KindCursorDelta moves the cursor by a frame-normalized delta.
	KindCursorDelta Kind = "cursor_delta"
	// KindClick is a single click of the given button.
	KindClick Kind = "click"
	// KindDragStart presses and holds the left button.
	KindDragStart Kind = "drag_start"
	// KindDragMove moves the cursor while the left button is held.
	KindDragMove Kind = "drag_move"
	// KindDragEnd releases the left button.
	KindDragEnd Kind = "drag_end"
	// KindScrollDelta scrolls vertically by DY steps.
	KindScrollDelta Kind = "scroll_delta"
)

// Button identifies a mouse button.
type Button string

const (
	ButtonLeft  Button = "left"
	ButtonRight Button = "right"
)

// Event is one discrete user intent. Deltas are in frame-normalized
// units except for scroll, where DY is a signed step count. Events are
// ephemeral: emitted, dispatched to the actuator, and discarded.
type Event struct {
	Kind   Kind
	DX, DY float64
	Button Button
}
