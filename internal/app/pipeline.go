package app

import (
	"fmt"
	"log"
	"time"

	"gocv.io/x/gocv"

	"github.com/chetana/airpoint/internal/capture"
	"github.com/chetana/airpoint/internal/gesture"
)

// idleTimeout is how long motion must be absent before capture drops
// back to the idle frame rate.
const idleTimeout = 2 * time.Second

// runLoop is the main control loop. It reads frames on a ticker,
// switches the capture rate between idle and active based on motion,
// gates input on gaze, and turns classified gestures into pointer
// actions.
func (a *App) runLoop() {
	activeMode := false
	lastMotionTime := time.Now()

	frameInterval := time.Second / time.Duration(capture.IdleFPS)
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	for {
		select {
		case <-a.stopCh:
			return
		case <-ticker.C:
			if !a.IsEnabled() {
				// Release any in-flight gesture so disabling mid-drag
				// does not leave the button held.
				for _, ev := range a.tracker.Reset() {
					a.dispatch(ev)
				}
				a.resetFilters()
				continue
			}

			frame, err := a.Camera().ReadFrame()
			if err != nil {
				log.Printf("Error reading frame: %v", err)
				continue
			}

			motionDetected, _ := a.motion.Detect(frame)
			if motionDetected {
				lastMotionTime = time.Now()
				if !activeMode {
					activeMode = true
					a.Camera().SetFPS(capture.ActiveFPS)
					ticker.Reset(time.Second / time.Duration(capture.ActiveFPS))
					log.Println("Switched to active mode")
				}
			} else if activeMode && time.Since(lastMotionTime) > idleTimeout {
				activeMode = false
				a.Camera().SetFPS(capture.IdleFPS)
				ticker.Reset(time.Second / time.Duration(capture.IdleFPS))
				log.Println("Switched to idle mode")
			}

			if !activeMode {
				frame.Close()
				continue
			}

			a.processFrame(frame, time.Now())
			frame.Close()
		}
	}
}

// processFrame runs detection, gating, and gesture tracking for one
// frame and dispatches the resulting pointer actions.
func (a *App) processFrame(frame *gocv.Mat, now time.Time) {
	det := a.Detector()

	if a.IsGazeEnabled() {
		face, err := det.DetectFace(frame)
		if err != nil {
			log.Printf("Error detecting face: %v", err)
			face = nil
		}
		if !a.gate.Observe(face) {
			// Input is blocked: end any held drag and drop filter
			// state so nothing jumps when the user looks back.
			for _, ev := range a.tracker.Reset() {
				a.dispatch(ev)
			}
			a.resetFilters()
			return
		}
	}

	hand, err := det.DetectHand(frame)
	if err != nil {
		// A failing detector is treated like a lost hand so a held
		// drag is not left stuck down while errors persist.
		log.Printf("Error detecting hand: %v", err)
		for _, ev := range a.tracker.Reset() {
			a.dispatch(ev)
		}
		a.resetFilters()
		return
	}

	label := gesture.Classify(hand, a.config.Gesture)
	center, hasHand := hand.Center()

	for _, ev := range a.tracker.Step(label, center, hasHand, now) {
		a.dispatch(ev)
	}

	if a.IsDwellEnabled() {
		if hasHand && a.tracker.State() == gesture.StateIdle {
			if a.dwell.Observe(center, now) {
				a.dispatch(gesture.Event{Kind: gesture.KindClick, Button: gesture.ButtonLeft})
			}
		} else {
			a.dwell.Reset()
		}
	}

	if !hasHand {
		a.resetFilters()
	}
}

// dispatch performs one gesture event on the actuator. Actuator errors
// are logged and do not stop the loop.
func (a *App) dispatch(ev gesture.Event) {
	var err error

	switch ev.Kind {
	case gesture.KindCursorDelta:
		dx, dy := a.mapper.Map(ev.DX, ev.DY)
		if dx != 0 || dy != 0 {
			err = a.actuator.MoveBy(dx, dy)
		}

	case gesture.KindClick:
		err = a.actuator.Click(ev.Button)
		a.notify(fmt.Sprintf("%s click", ev.Button))

	case gesture.KindDragStart:
		err = a.actuator.DragStart()
		a.notify("drag start")

	case gesture.KindDragMove:
		dx, dy := a.mapper.Map(ev.DX, ev.DY)
		if dx != 0 || dy != 0 {
			err = a.actuator.DragMoveBy(dx, dy)
		}

	case gesture.KindDragEnd:
		err = a.actuator.DragEnd()
		a.notify("drag end")

	case gesture.KindScrollDelta:
		err = a.actuator.ScrollBy(int(ev.DY))
		a.notify("scroll")
	}

	if err != nil {
		log.Printf("Pointer action %s failed: %v", ev.Kind, err)
	}
}

// resetFilters clears the per-hand smoothing and dwell state.
func (a *App) resetFilters() {
	if a.mapper != nil {
		a.mapper.Reset()
	}
	a.dwell.Reset()
}

// notify forwards an intent description to the registered callback.
func (a *App) notify(intent string) {
	a.mu.RLock()
	fn := a.onIntent
	a.mu.RUnlock()

	if fn != nil {
		fn(intent)
	}
}
