package detector

import "gocv.io/x/gocv"

// Detector defines the interface for hand and face detection implementations.
// Both queries are synchronous and frame-local: results describe only the
// frame passed in and carry no state between calls.
type Detector interface {
	// DetectHand analyzes a video frame and returns the landmarks of the
	// detected hand, or nil if no hand is present.
	DetectHand(frame *gocv.Mat) (*HandLandmarks, error)

	// DetectFace returns a coarse face orientation estimate for the frame,
	// or nil if no face is visible.
	DetectFace(frame *gocv.Mat) (*FaceOrientation, error)

	// Close releases any resources held by the detector.
	Close() error
}

// Config holds configuration options for detection.
type Config struct {
	// MinConfidence is the minimum detection confidence threshold (0.0-1.0).
	MinConfidence float64

	// MinTrackingConf is the minimum tracking confidence threshold (0.0-1.0).
	MinTrackingConf float64
}

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() Config {
	return Config{
		MinConfidence:   0.7,
		MinTrackingConf: 0.7,
	}
}
