// Package gesture classifies per-frame hand poses and turns them into
// debounced user intents via a small state machine.
package gesture

import "time"

// Config collects every gesture threshold as a named, tunable value.
// All distance thresholds are ratios relative to the wrist to middle-MCP
// distance, which keeps classification invariant to how far the hand is
// from the camera.
type Config struct {
	// PinchRatio is the maximum thumb-tip to index-tip distance, as a
	// fraction of the hand scale, that still counts as a pinch.
	PinchRatio float64

	// FistFoldRatio is the maximum average fingertip to palm distance,
	// as a fraction of the hand scale, that still counts as a fist.
	FistFoldRatio float64

	// ExtensionRatio scales the MCP-to-wrist distance to form the minimum
	// tip-to-MCP distance for a finger to count as extended.
	ExtensionRatio float64

	// DragHold is how long a pinch must be held before a drag starts.
	// A pinch released earlier produces a left click instead.
	DragHold time.Duration

	// ActionCooldown is the minimum interval between consecutive clicks.
	ActionCooldown time.Duration

	// ScrollDeadZone is the minimum vertical hand movement (from the
	// scroll reference) before movement starts accumulating.
	ScrollDeadZone float64

	// ScrollThreshold is the accumulated movement magnitude required to
	// emit one scroll event.
	ScrollThreshold float64

	// ScrollAmount is the number of scroll steps emitted per event.
	ScrollAmount int

	// ScrollStickyFrames is how many consecutive non-two-finger frames
	// are tolerated before scroll mode exits.
	ScrollStickyFrames int

	// DwellRadius is the hand-center radius (frame-normalized) within
	// which the hand must stay for a dwell click to arm.
	DwellRadius float64

	// DwellDuration is how long the hand must stay within DwellRadius
	// before a dwell click fires.
	DwellDuration time.Duration
}

// DefaultConfig returns the stock thresholds. They suit an average adult
// hand at typical webcam distance; all of them are heuristic and meant
// to be tuned per user.
func DefaultConfig() Config {
	return Config{
		PinchRatio:         0.25,
		FistFoldRatio:      0.5,
		ExtensionRatio:     0.7,
		DragHold:           400 * time.Millisecond,
		ActionCooldown:     150 * time.Millisecond,
		ScrollDeadZone:     0.015,
		ScrollThreshold:    0.035,
		ScrollAmount:       2,
		ScrollStickyFrames: 3,
		DwellRadius:        0.04,
		DwellDuration:      1500 * time.Millisecond,
	}
}
