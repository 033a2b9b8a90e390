package gesture

import (
	"time"

	"github.com/chetana/airpoint/internal/detector"
)

// State is the tracker's current interaction mode.
type State string

const (
	// StateIdle waits for a gesture; open hand moves the cursor.
	StateIdle State = "idle"
	// StatePinchPending times a pinch to decide click versus drag.
	StatePinchPending State = "pinch_pending"
	// StateDragging holds the left button and follows the hand.
	StateDragging State = "dragging"
	// StateScrolling maps vertical hand movement to scroll steps.
	StateScrolling State = "scrolling"
)

// Tracker is the gesture state machine. It consumes one classifier label
// per frame plus the hand center and wall-clock time, and emits debounced
// intent events. All interaction state lives here and nowhere else; the
// tracker is owned by the frame loop and must not be shared across
// goroutines.
//
// Timing uses elapsed wall-clock time, not frame counts, so behavior does
// not change with the camera frame rate. The one exception is the scroll
// exit grace, which is deliberately frame-counted: it absorbs transient
// per-frame misclassification, which scales with frames, not seconds.
type Tracker struct {
	cfg   Config
	state State

	pinchStart time.Time
	lastAction time.Time

	lastCenter detector.Point
	hasLast    bool

	scrollRefY  float64
	scrollAccum float64
	scrollExit  int

	// prevLabel makes the fist right-click edge-triggered: it fires on
	// the idle-to-fist transition, never repeatedly while the fist is
	// held.
	prevLabel Label
}

// NewTracker creates a Tracker in the idle state.
func NewTracker(cfg Config) *Tracker {
	return &Tracker{
		cfg:       cfg,
		state:     StateIdle,
		prevLabel: LabelNone,
	}
}

// State returns the current interaction mode.
func (t *Tracker) State() State {
	return t.state
}

// Step advances the state machine by one frame and returns the intent
// events to dispatch. hasHand must be false when no hand was detected;
// center is ignored in that case.
func (t *Tracker) Step(label Label, center detector.Point, hasHand bool, now time.Time) []Event {
	if !hasHand || label == LabelNone {
		return t.handLost()
	}

	var dx, dy float64
	if t.hasLast {
		dx = center.X - t.lastCenter.X
		dy = center.Y - t.lastCenter.Y
	}

	var events []Event

	switch t.state {
	case StateIdle:
		events = t.stepIdle(label, center, dx, dy, now)
	case StatePinchPending:
		events = t.stepPinchPending(label, now)
	case StateDragging:
		events = t.stepDragging(label, dx, dy)
	case StateScrolling:
		events = t.stepScrolling(label, center)
	}

	t.lastCenter = center
	t.hasLast = true
	t.prevLabel = label

	return events
}

func (t *Tracker) stepIdle(label Label, center detector.Point, dx, dy float64, now time.Time) []Event {
	switch label {
	case LabelPinch:
		t.state = StatePinchPending
		t.pinchStart = now
		return nil

	case LabelFist:
		if t.prevLabel != LabelFist && now.Sub(t.lastAction) > t.cfg.ActionCooldown {
			t.lastAction = now
			return []Event{{Kind: KindClick, Button: ButtonRight}}
		}
		return nil

	case LabelTwoFinger:
		t.state = StateScrolling
		t.scrollRefY = center.Y
		t.scrollAccum = 0
		t.scrollExit = 0
		return nil

	case LabelOpenHand:
		if t.hasLast && (dx != 0 || dy != 0) {
			return []Event{{Kind: KindCursorDelta, DX: dx, DY: dy}}
		}
	}
	return nil
}

func (t *Tracker) stepPinchPending(label Label, now time.Time) []Event {
	held := now.Sub(t.pinchStart)

	if label == LabelPinch {
		if held >= t.cfg.DragHold {
			t.state = StateDragging
			return []Event{{Kind: KindDragStart}}
		}
		return nil
	}

	// Pinch released. A short pinch is a left click; a release after the
	// hold threshold without the machine having reached dragging (a long
	// gap between frames) produces nothing.
	t.state = StateIdle
	if held < t.cfg.DragHold && now.Sub(t.lastAction) > t.cfg.ActionCooldown {
		t.lastAction = now
		return []Event{{Kind: KindClick, Button: ButtonLeft}}
	}
	return nil
}

func (t *Tracker) stepDragging(label Label, dx, dy float64) []Event {
	if label == LabelPinch {
		if dx != 0 || dy != 0 {
			return []Event{{Kind: KindDragMove, DX: dx, DY: dy}}
		}
		return nil
	}

	t.state = StateIdle
	return []Event{{Kind: KindDragEnd}}
}

func (t *Tracker) stepScrolling(label Label, center detector.Point) []Event {
	if label != LabelTwoFinger {
		t.scrollExit++
		if t.scrollExit > t.cfg.ScrollStickyFrames {
			t.state = StateIdle
			t.scrollAccum = 0
			t.scrollExit = 0
		}
		return nil
	}
	t.scrollExit = 0

	movement := center.Y - t.scrollRefY
	if movement > -t.cfg.ScrollDeadZone && movement < t.cfg.ScrollDeadZone {
		return nil
	}

	t.scrollAccum += movement
	if t.scrollAccum < t.cfg.ScrollThreshold && t.scrollAccum > -t.cfg.ScrollThreshold {
		return nil
	}

	// Fingers moved down (Y grows downward) scrolls down; up scrolls up.
	steps := float64(t.cfg.ScrollAmount)
	if t.scrollAccum > 0 {
		steps = -steps
	}

	// Re-anchor so continuous movement keeps scrolling at a steady rate.
	t.scrollAccum = 0
	t.scrollRefY = center.Y

	return []Event{{Kind: KindScrollDelta, DY: steps}}
}

// handLost handles a frame with no hand: any active drag ends cleanly,
// everything else resets silently.
func (t *Tracker) handLost() []Event {
	events := t.Reset()
	return events
}

// Reset forces the machine back to idle, emitting a DragEnd first if a
// drag is active so the button is never left stuck down. Used when the
// hand is lost, when the gaze gate blocks input, and when detection is
// disabled mid-gesture.
func (t *Tracker) Reset() []Event {
	var events []Event
	if t.state == StateDragging {
		events = []Event{{Kind: KindDragEnd}}
	}

	t.state = StateIdle
	t.pinchStart = time.Time{}
	t.hasLast = false
	t.scrollAccum = 0
	t.scrollExit = 0
	t.prevLabel = LabelNone

	return events
}
