package detector

import (
	"gocv.io/x/gocv"
)

// MockDetector is a test implementation of the Detector interface.
// It allows tests to control detection results per call.
type MockDetector struct {
	hand  *HandLandmarks
	face  *FaceOrientation
	err   error
	queue []*HandLandmarks
}

// NewMockDetector creates a new MockDetector instance.
func NewMockDetector() *MockDetector {
	return &MockDetector{}
}

// SetHand sets the hand returned by DetectHand. Pass nil for "no hand".
func (m *MockDetector) SetHand(hand *HandLandmarks) {
	m.hand = hand
}

// SetFace sets the face orientation returned by DetectFace.
// Pass nil for "no face detected".
func (m *MockDetector) SetFace(face *FaceOrientation) {
	m.face = face
}

// SetError sets the error returned by both detection methods.
func (m *MockDetector) SetError(err error) {
	m.err = err
}

// QueueHands sets a per-frame sequence of hands. Each DetectHand call
// consumes one entry; once drained, the static hand set via SetHand is
// returned again.
func (m *MockDetector) QueueHands(hands []*HandLandmarks) {
	m.queue = hands
}

// DetectHand returns the next queued hand, or the pre-configured one.
func (m *MockDetector) DetectHand(frame *gocv.Mat) (*HandLandmarks, error) {
	if m.err != nil {
		return nil, m.err
	}
	if len(m.queue) > 0 {
		hand := m.queue[0]
		m.queue = m.queue[1:]
		return hand, nil
	}
	return m.hand, nil
}

// DetectFace returns the pre-configured face orientation.
func (m *MockDetector) DetectFace(frame *gocv.Mat) (*FaceOrientation, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.face, nil
}

// Close is a no-op for the mock detector.
func (m *MockDetector) Close() error {
	return nil
}

// Fixture hands below share one palm layout so that derived quantities
// (hand center, normalization scale) are identical across poses; only the
// finger joints differ. The wrist sits at (0.5, 0.8) with the MCP row
// above it, matching a right hand held palm-out in front of the camera.

func baseHand() HandLandmarks {
	h := HandLandmarks{Score: 0.95}

	h.Points[Wrist] = Point{X: 0.50, Y: 0.80}
	h.Points[ThumbCMC] = Point{X: 0.45, Y: 0.76}
	h.Points[ThumbMCP] = Point{X: 0.40, Y: 0.72}
	h.Points[IndexMCP] = Point{X: 0.44, Y: 0.60}
	h.Points[MiddleMCP] = Point{X: 0.50, Y: 0.58}
	h.Points[RingMCP] = Point{X: 0.56, Y: 0.60}
	h.Points[PinkyMCP] = Point{X: 0.62, Y: 0.63}

	return h
}

func extendThumb(h *HandLandmarks) {
	h.Points[ThumbIP] = Point{X: 0.32, Y: 0.67}
	h.Points[ThumbTip] = Point{X: 0.24, Y: 0.62}
}

func foldThumb(h *HandLandmarks) {
	h.Points[ThumbIP] = Point{X: 0.42, Y: 0.70}
	h.Points[ThumbTip] = Point{X: 0.44, Y: 0.68}
}

func extendIndex(h *HandLandmarks) {
	h.Points[IndexPIP] = Point{X: 0.43, Y: 0.52}
	h.Points[IndexDIP] = Point{X: 0.42, Y: 0.43}
	h.Points[IndexTip] = Point{X: 0.42, Y: 0.35}
}

func foldIndex(h *HandLandmarks) {
	h.Points[IndexPIP] = Point{X: 0.45, Y: 0.58}
	h.Points[IndexDIP] = Point{X: 0.46, Y: 0.62}
	h.Points[IndexTip] = Point{X: 0.46, Y: 0.66}
}

func extendMiddle(h *HandLandmarks) {
	h.Points[MiddlePIP] = Point{X: 0.50, Y: 0.48}
	h.Points[MiddleDIP] = Point{X: 0.50, Y: 0.38}
	h.Points[MiddleTip] = Point{X: 0.50, Y: 0.30}
}

func foldMiddle(h *HandLandmarks) {
	h.Points[MiddlePIP] = Point{X: 0.50, Y: 0.56}
	h.Points[MiddleDIP] = Point{X: 0.50, Y: 0.60}
	h.Points[MiddleTip] = Point{X: 0.50, Y: 0.64}
}

func extendRing(h *HandLandmarks) {
	h.Points[RingPIP] = Point{X: 0.57, Y: 0.51}
	h.Points[RingDIP] = Point{X: 0.58, Y: 0.42}
	h.Points[RingTip] = Point{X: 0.58, Y: 0.34}
}

func foldRing(h *HandLandmarks) {
	h.Points[RingPIP] = Point{X: 0.56, Y: 0.58}
	h.Points[RingDIP] = Point{X: 0.55, Y: 0.62}
	h.Points[RingTip] = Point{X: 0.55, Y: 0.66}
}

func extendPinky(h *HandLandmarks) {
	h.Points[PinkyPIP] = Point{X: 0.63, Y: 0.55}
	h.Points[PinkyDIP] = Point{X: 0.65, Y: 0.47}
	h.Points[PinkyTip] = Point{X: 0.66, Y: 0.40}
}

func foldPinky(h *HandLandmarks) {
	h.Points[PinkyPIP] = Point{X: 0.61, Y: 0.62}
	h.Points[PinkyDIP] = Point{X: 0.60, Y: 0.65}
	h.Points[PinkyTip] = Point{X: 0.60, Y: 0.68}
}

// OpenHandLandmarks returns a preset hand with all five fingers extended.
func OpenHandLandmarks() HandLandmarks {
	h := baseHand()
	extendThumb(&h)
	extendIndex(&h)
	extendMiddle(&h)
	extendRing(&h)
	extendPinky(&h)
	return h
}

// FistLandmarks returns a preset hand with all five fingers folded and
// every fingertip curled in close to the palm.
func FistLandmarks() HandLandmarks {
	h := baseHand()
	foldThumb(&h)
	foldIndex(&h)
	foldMiddle(&h)
	foldRing(&h)
	foldPinky(&h)
	return h
}

// PinchLandmarks returns a preset hand with the thumb tip and index tip
// touching, the middle finger raised, and ring/pinky folded.
func PinchLandmarks() HandLandmarks {
	h := baseHand()
	h.Points[ThumbIP] = Point{X: 0.38, Y: 0.58}
	h.Points[ThumbTip] = Point{X: 0.43, Y: 0.47}
	h.Points[IndexPIP] = Point{X: 0.43, Y: 0.52}
	h.Points[IndexDIP] = Point{X: 0.44, Y: 0.48}
	h.Points[IndexTip] = Point{X: 0.44, Y: 0.45}
	extendMiddle(&h)
	foldRing(&h)
	foldPinky(&h)
	return h
}

// TwoFingerLandmarks returns a preset hand with index and middle extended
// and ring/pinky folded. The thumb is folded; tests that need the
// thumb-extended variant can overwrite the thumb joints directly.
func TwoFingerLandmarks() HandLandmarks {
	h := baseHand()
	foldThumb(&h)
	extendIndex(&h)
	extendMiddle(&h)
	foldRing(&h)
	foldPinky(&h)
	return h
}
