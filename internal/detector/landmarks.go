// Package detector provides hand and face detection interfaces and types
// for the AirPoint gesture pipeline.
package detector

import "math"

// Hand landmark indices following MediaPipe convention.
// See: https://developers.google.com/mediapipe/solutions/vision/hand_landmarker
const (
	Wrist        = 0
	ThumbCMC     = 1
	ThumbMCP     = 2
	ThumbIP      = 3
	ThumbTip     = 4
	IndexMCP     = 5
	IndexPIP     = 6
	IndexDIP     = 7
	IndexTip     = 8
	MiddleMCP    = 9
	MiddlePIP    = 10
	MiddleDIP    = 11
	MiddleTip    = 12
	RingMCP      = 13
	RingPIP      = 14
	RingDIP      = 15
	RingTip      = 16
	PinkyMCP     = 17
	PinkyPIP     = 18
	PinkyDIP     = 19
	PinkyTip     = 20
	NumLandmarks = 21
)

// Point represents a 2D point in frame-normalized coordinates,
// where both axes run from 0.0 to 1.0 across the frame.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// HandLandmarks represents the 21 hand landmarks detected for a single hand.
type HandLandmarks struct {
	Points [NumLandmarks]Point `json:"points"`
	Score  float64             `json:"score"`
}

// FaceOrientation is a coarse estimate of where the user is looking.
type FaceOrientation struct {
	FacingScreen bool `json:"facing_screen"`
}

// Distance returns the Euclidean distance between two points.
func Distance(a, b Point) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Scale returns the wrist to middle-MCP distance, used to normalize
// gesture thresholds so they are invariant to how far the hand is
// from the camera.
func (h *HandLandmarks) Scale() float64 {
	return Distance(h.Points[Wrist], h.Points[MiddleMCP])
}

// Center computes a jitter-resistant hand center as the arithmetic mean
// of the wrist and the four finger MCP joints. The same landmark subset
// is used every frame so the center does not jump when fingertips move.
// Returns false if the receiver is nil.
func (h *HandLandmarks) Center() (Point, bool) {
	if h == nil {
		return Point{}, false
	}

	anchors := [5]int{Wrist, IndexMCP, MiddleMCP, RingMCP, PinkyMCP}

	var sumX, sumY float64
	for _, idx := range anchors {
		sumX += h.Points[idx].X
		sumY += h.Points[idx].Y
	}

	return Point{X: sumX / 5, Y: sumY / 5}, true
}
