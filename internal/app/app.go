// Package app wires the capture, detection, gesture, and pointer layers
// into the AirPoint control loop.
package app

import (
	"log"
	"sync"

	"github.com/chetana/airpoint/internal/capture"
	"github.com/chetana/airpoint/internal/detector"
	"github.com/chetana/airpoint/internal/gaze"
	"github.com/chetana/airpoint/internal/gesture"
	"github.com/chetana/airpoint/internal/pointer"
)

// Config holds configuration options for the application.
type Config struct {
	Camera  capture.Config
	Gesture gesture.Config
	Gaze    gaze.Config
	Pointer pointer.Config

	// MotionThresh is the percentage of changed pixels that counts as
	// motion for the idle/active frame rate switch.
	MotionThresh float64

	// GazeEnabled requires the user to face the screen before gestures
	// drive the pointer.
	GazeEnabled bool

	// DwellEnabled clicks when the cursor rests in place.
	DwellEnabled bool
}

// DefaultConfig returns the application defaults.
func DefaultConfig() Config {
	return Config{
		Camera:       capture.DefaultConfig(),
		Gesture:      gesture.DefaultConfig(),
		Gaze:         gaze.DefaultConfig(),
		Pointer:      pointer.DefaultConfig(),
		MotionThresh: 1.0,
		GazeEnabled:  true,
		DwellEnabled: false,
	}
}

// App orchestrates the frame loop: capture, detection, gesture
// tracking, and pointer actuation.
type App struct {
	config   Config
	camera   capture.Camera
	motion   *capture.MotionDetector
	detector detector.Detector
	tracker  *gesture.Tracker
	dwell    *gesture.DwellClicker
	gate     *gaze.Gate
	actuator pointer.Actuator
	mapper   *pointer.Mapper

	enabled      bool
	gazeEnabled  bool
	dwellEnabled bool

	// onIntent receives a short human-readable description of each
	// click, drag, or scroll, for display in the tray.
	onIntent func(string)

	mu     sync.RWMutex
	stopCh chan struct{}
}

// New creates a new App instance with the given configuration.
func New(config Config) *App {
	if config.MotionThresh <= 0 {
		config.MotionThresh = 1.0
	}

	a := &App{
		config:       config,
		camera:       capture.NewCamera(config.Camera),
		motion:       capture.NewMotionDetector(config.MotionThresh),
		tracker:      gesture.NewTracker(config.Gesture),
		dwell:        gesture.NewDwellClicker(config.Gesture.DwellRadius, config.Gesture.DwellDuration),
		gate:         gaze.NewGate(config.Gaze),
		actuator:     pointer.NewSystemActuator(),
		enabled:      false,
		gazeEnabled:  config.GazeEnabled,
		dwellEnabled: config.DwellEnabled,
	}

	// Try MediaPipe first, fall back to the mock detector so the app
	// still starts on machines without the Python runtime.
	if mp, err := detector.NewMediaPipeDetector(detector.DefaultConfig()); err == nil {
		a.detector = mp
		log.Println("Using MediaPipe hand detection")
	} else {
		log.Printf("MediaPipe not available (%v), using mock detector", err)
		a.detector = detector.NewMockDetector()
	}

	return a
}

// SetEnabled enables or disables pointer control.
func (a *App) SetEnabled(enabled bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.enabled = enabled
}

// IsEnabled returns whether pointer control is currently enabled.
func (a *App) IsEnabled() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.enabled
}

// SetGazeEnabled toggles the gaze gate at runtime.
func (a *App) SetGazeEnabled(enabled bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.gazeEnabled = enabled
}

// IsGazeEnabled returns whether the gaze gate is active.
func (a *App) IsGazeEnabled() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.gazeEnabled
}

// SetDwellEnabled toggles dwell clicking at runtime.
func (a *App) SetDwellEnabled(enabled bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.dwellEnabled = enabled
}

// IsDwellEnabled returns whether dwell clicking is active.
func (a *App) IsDwellEnabled() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.dwellEnabled
}

// SetDetector sets the hand detector implementation to use.
func (a *App) SetDetector(d detector.Detector) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.detector = d
}

// SetCamera sets the camera implementation to use.
func (a *App) SetCamera(c capture.Camera) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.camera = c
}

// SetActuator sets the pointer actuator implementation to use.
func (a *App) SetActuator(act pointer.Actuator) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.actuator = act
}

// OnIntent registers a callback invoked with a description of each
// performed click, drag, or scroll.
func (a *App) OnIntent(fn func(string)) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.onIntent = fn
}

// Start opens the camera and begins the control loop.
func (a *App) Start() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.stopCh != nil {
		return nil
	}

	if err := a.camera.Open(); err != nil {
		return err
	}
	a.camera.SetFPS(capture.IdleFPS)

	width, height := a.actuator.ScreenSize()
	a.mapper = pointer.NewMapper(a.config.Pointer, width, height)

	a.stopCh = make(chan struct{})
	go a.runLoop()

	log.Println("Control loop started")
	return nil
}

// Stop halts the control loop and releases resources. Any held drag is
// released before shutdown.
func (a *App) Stop() {
	a.mu.Lock()
	if a.stopCh != nil {
		close(a.stopCh)
		a.stopCh = nil
	}
	events := a.tracker.Reset()
	a.mu.Unlock()

	// Dispatch outside the lock: notify re-acquires it.
	for _, ev := range events {
		a.dispatch(ev)
	}

	if err := a.Camera().Close(); err != nil {
		log.Printf("Error closing camera: %v", err)
	}

	a.motion.Close()

	if det := a.Detector(); det != nil {
		if err := det.Close(); err != nil {
			log.Printf("Error closing detector: %v", err)
		}
	}

	log.Println("Control loop stopped")
}

// Camera returns the camera instance.
func (a *App) Camera() capture.Camera {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.camera
}

// Tracker returns the gesture state machine.
func (a *App) Tracker() *gesture.Tracker {
	return a.tracker
}

// Detector returns the hand detector.
func (a *App) Detector() detector.Detector {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.detector
}
