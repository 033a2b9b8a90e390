package gesture

import (
	"github.com/chetana/airpoint/internal/detector"
)

// Label is the per-frame gesture classification. It is stateless: the
// classifier has no memory of prior frames, debouncing belongs to the
// Tracker.
type Label string

const (
	// LabelNone means no hand was detected in the frame.
	LabelNone Label = "none"
	// LabelOpenHand drives relative cursor movement.
	LabelOpenHand Label = "open_hand"
	// LabelPinch produces a left click when brief, a drag when held.
	LabelPinch Label = "pinch"
	// LabelFist produces an edge-triggered right click.
	LabelFist Label = "fist"
	// LabelTwoFinger drives vertical scrolling.
	LabelTwoFinger Label = "two_finger"
)

// fingers indexes the per-finger state arrays: thumb through pinky.
const (
	fingerThumb = iota
	fingerIndex
	fingerMiddle
	fingerRing
	fingerPinky
	numFingers
)

var fingerTips = [numFingers]int{
	detector.ThumbTip, detector.IndexTip, detector.MiddleTip,
	detector.RingTip, detector.PinkyTip,
}

var fingerMCPs = [numFingers]int{
	detector.ThumbMCP, detector.IndexMCP, detector.MiddleMCP,
	detector.RingMCP, detector.PinkyMCP,
}

// FingerExtended reports whether a finger is extended: the tip-to-MCP
// distance must exceed ratio times the MCP-to-wrist distance. Comparing
// against the MCP-to-wrist span makes the test scale-invariant.
func FingerExtended(tip, mcp, wrist detector.Point, ratio float64) bool {
	return detector.Distance(tip, mcp) > ratio*detector.Distance(mcp, wrist)
}

// FingerStates computes the extended/folded state of all five fingers.
func FingerStates(h *detector.HandLandmarks, ratio float64) [numFingers]bool {
	var states [numFingers]bool
	wrist := h.Points[detector.Wrist]
	for f := 0; f < numFingers; f++ {
		states[f] = FingerExtended(h.Points[fingerTips[f]], h.Points[fingerMCPs[f]], wrist, ratio)
	}
	return states
}

// Classify maps one frame's landmarks to a gesture label. It is pure:
// the same landmarks and config always produce the same label.
//
// Precedence, first match wins:
//  1. fist: every finger folded, fingertips curled in to the palm
//  2. pinch: thumb tip and index tip close together
//  3. two-finger: index and middle up, ring and pinky down, thumb ignored
//  4. open hand: anything else while a hand is present
//
// Checking fist before pinch is a heuristic choice, not a necessity:
// a closed fist usually brings the thumb and index tips within pinch
// range, and fist is the more deliberate pose.
func Classify(h *detector.HandLandmarks, cfg Config) Label {
	if h == nil {
		return LabelNone
	}

	scale := h.Scale()
	if scale <= 0 {
		return LabelNone
	}

	states := FingerStates(h, cfg.ExtensionRatio)

	if isFist(h, states, scale, cfg) {
		return LabelFist
	}

	pinchDist := detector.Distance(h.Points[detector.ThumbTip], h.Points[detector.IndexTip])
	if pinchDist < cfg.PinchRatio*scale {
		return LabelPinch
	}

	// Thumb state deliberately excluded: thumb classification is noisy
	// when the other fingers are raised.
	if states[fingerIndex] && states[fingerMiddle] && !states[fingerRing] && !states[fingerPinky] {
		return LabelTwoFinger
	}

	return LabelOpenHand
}

// isFist requires every finger folded and the average fingertip to palm
// distance under the fold threshold. The double test keeps a loosely
// curled hand from registering as a fist.
func isFist(h *detector.HandLandmarks, states [numFingers]bool, scale float64, cfg Config) bool {
	for f := 0; f < numFingers; f++ {
		if states[f] {
			return false
		}
	}

	palm := h.Points[detector.MiddleMCP]
	var sum float64
	for f := 0; f < numFingers; f++ {
		sum += detector.Distance(h.Points[fingerTips[f]], palm)
	}
	avg := sum / numFingers

	return avg < cfg.FistFoldRatio*scale
}
