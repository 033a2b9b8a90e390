// Package gaze gates gesture input on whether the user is facing the
// screen. Per-frame face detection is noisy, so the gate votes over a
// short sliding window instead of trusting single frames.
package gaze

import "github.com/chetana/airpoint/internal/detector"

// Config holds the gate's voting parameters.
type Config struct {
	// WindowSize is the number of recent frames considered.
	WindowSize int

	// MinFaceFrames is the minimum number of frames in the window in
	// which a face was detected at all.
	MinFaceFrames int

	// MinFacingFrames is the minimum number of frames in the window in
	// which the face was oriented toward the screen.
	MinFacingFrames int
}

// DefaultConfig returns the default voting parameters.
func DefaultConfig() Config {
	return Config{
		WindowSize:      5,
		MinFaceFrames:   3,
		MinFacingFrames: 2,
	}
}

type observation struct {
	faceSeen bool
	facing   bool
}

// Gate accumulates per-frame face observations and decides whether
// gestures should currently drive the pointer. It is owned by the frame
// loop and is not safe for concurrent use.
type Gate struct {
	cfg    Config
	window []observation
	next   int
	filled int
}

// NewGate creates a Gate with an empty window. Until the window holds
// enough face frames, input is blocked. A non-positive window size
// falls back to the default.
func NewGate(cfg Config) *Gate {
	if cfg.WindowSize <= 0 {
		cfg.WindowSize = DefaultConfig().WindowSize
	}
	return &Gate{
		cfg:    cfg,
		window: make([]observation, cfg.WindowSize),
	}
}

// Observe records one frame's face result (nil means no face detected)
// and returns whether input is allowed.
func (g *Gate) Observe(face *detector.FaceOrientation) bool {
	obs := observation{}
	if face != nil {
		obs.faceSeen = true
		obs.facing = face.FacingScreen
	}

	g.window[g.next] = obs
	g.next = (g.next + 1) % len(g.window)
	if g.filled < len(g.window) {
		g.filled++
	}

	return g.Allowed()
}

// Allowed reports the current vote without recording a new observation.
func (g *Gate) Allowed() bool {
	var faceCount, facingCount int
	for i := 0; i < g.filled; i++ {
		if g.window[i].faceSeen {
			faceCount++
		}
		if g.window[i].facing {
			facingCount++
		}
	}
	return faceCount >= g.cfg.MinFaceFrames && facingCount >= g.cfg.MinFacingFrames
}

// Reset clears the window, blocking input until fresh face frames
// arrive.
func (g *Gate) Reset() {
	g.next = 0
	g.filled = 0
}
