package gesture

import (
	"testing"
	"time"

	"github.com/chetana/airpoint/internal/detector"
)

var trackerEpoch = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func at(ms int) time.Time {
	return trackerEpoch.Add(time.Duration(ms) * time.Millisecond)
}

func pt(x, y float64) detector.Point {
	return detector.Point{X: x, Y: y}
}

func kinds(events []Event) []Kind {
	out := make([]Kind, len(events))
	for i, ev := range events {
		out[i] = ev.Kind
	}
	return out
}

func TestTrackerCursorDelta(t *testing.T) {
	tr := NewTracker(DefaultConfig())

	// The first frame has no previous center to diff against.
	if events := tr.Step(LabelOpenHand, pt(0.50, 0.50), true, at(0)); len(events) != 0 {
		t.Fatalf("first frame: got %v, want no events", kinds(events))
	}

	events := tr.Step(LabelOpenHand, pt(0.53, 0.48), true, at(33))
	if len(events) != 1 || events[0].Kind != KindCursorDelta {
		t.Fatalf("got %v, want one CursorDelta", kinds(events))
	}
	if events[0].DX < 0.0299 || events[0].DX > 0.0301 {
		t.Errorf("DX = %v, want 0.03", events[0].DX)
	}
	if events[0].DY > -0.0199 || events[0].DY < -0.0201 {
		t.Errorf("DY = %v, want -0.02", events[0].DY)
	}
}

func TestTrackerShortPinchClicks(t *testing.T) {
	tr := NewTracker(DefaultConfig())

	if events := tr.Step(LabelPinch, pt(0.5, 0.5), true, at(0)); len(events) != 0 {
		t.Fatalf("pinch entry: got %v, want no events", kinds(events))
	}
	if tr.State() != StatePinchPending {
		t.Fatalf("state = %q, want %q", tr.State(), StatePinchPending)
	}
	if events := tr.Step(LabelPinch, pt(0.5, 0.5), true, at(100)); len(events) != 0 {
		t.Fatalf("pinch held: got %v, want no events", kinds(events))
	}

	events := tr.Step(LabelOpenHand, pt(0.5, 0.5), true, at(200))
	if len(events) != 1 || events[0].Kind != KindClick || events[0].Button != ButtonLeft {
		t.Fatalf("release: got %+v, want one left Click", events)
	}
	if tr.State() != StateIdle {
		t.Errorf("state = %q, want %q", tr.State(), StateIdle)
	}
}

func TestTrackerLongPinchDrags(t *testing.T) {
	tr := NewTracker(DefaultConfig())

	tr.Step(LabelPinch, pt(0.50, 0.50), true, at(0))
	tr.Step(LabelPinch, pt(0.50, 0.50), true, at(200))

	events := tr.Step(LabelPinch, pt(0.50, 0.50), true, at(450))
	if len(events) != 1 || events[0].Kind != KindDragStart {
		t.Fatalf("hold elapsed: got %v, want one DragStart", kinds(events))
	}
	if tr.State() != StateDragging {
		t.Fatalf("state = %q, want %q", tr.State(), StateDragging)
	}

	events = tr.Step(LabelPinch, pt(0.54, 0.52), true, at(483))
	if len(events) != 1 || events[0].Kind != KindDragMove {
		t.Fatalf("drag move: got %v, want one DragMove", kinds(events))
	}
	if events[0].DX < 0.0399 || events[0].DX > 0.0401 {
		t.Errorf("DX = %v, want 0.04", events[0].DX)
	}

	events = tr.Step(LabelOpenHand, pt(0.54, 0.52), true, at(516))
	if len(events) != 1 || events[0].Kind != KindDragEnd {
		t.Fatalf("release: got %v, want one DragEnd", kinds(events))
	}

	// The release of a drag must never double as a click.
	for _, ev := range events {
		if ev.Kind == KindClick {
			t.Errorf("drag release produced a click")
		}
	}
}

func TestTrackerLateReleaseWithoutDrag(t *testing.T) {
	tr := NewTracker(DefaultConfig())

	tr.Step(LabelPinch, pt(0.5, 0.5), true, at(0))

	// A frame gap longer than the hold threshold, then a release: the
	// machine never reached dragging, so nothing fires.
	events := tr.Step(LabelOpenHand, pt(0.5, 0.5), true, at(600))
	if len(events) != 0 {
		t.Fatalf("got %v, want no events", kinds(events))
	}
	if tr.State() != StateIdle {
		t.Errorf("state = %q, want %q", tr.State(), StateIdle)
	}
}

func TestTrackerFistRightClickEdgeTriggered(t *testing.T) {
	tr := NewTracker(DefaultConfig())

	events := tr.Step(LabelFist, pt(0.5, 0.5), true, at(0))
	if len(events) != 1 || events[0].Kind != KindClick || events[0].Button != ButtonRight {
		t.Fatalf("fist onset: got %+v, want one right Click", events)
	}

	// Holding the fist must not repeat the click.
	for ms := 33; ms <= 330; ms += 33 {
		if events := tr.Step(LabelFist, pt(0.5, 0.5), true, at(ms)); len(events) != 0 {
			t.Fatalf("fist held at %dms: got %v, want no events", ms, kinds(events))
		}
	}

	tr.Step(LabelOpenHand, pt(0.5, 0.5), true, at(400))
	events = tr.Step(LabelFist, pt(0.5, 0.5), true, at(450))
	if len(events) != 1 || events[0].Kind != KindClick || events[0].Button != ButtonRight {
		t.Fatalf("second fist: got %+v, want one right Click", events)
	}
}

func TestTrackerActionCooldown(t *testing.T) {
	tr := NewTracker(DefaultConfig())

	// Left click at 100ms.
	tr.Step(LabelPinch, pt(0.5, 0.5), true, at(0))
	events := tr.Step(LabelOpenHand, pt(0.5, 0.5), true, at(100))
	if len(events) != 1 || events[0].Kind != KindClick {
		t.Fatalf("setup click: got %v", kinds(events))
	}

	// A fist 50ms later lands inside the cooldown window.
	if events := tr.Step(LabelFist, pt(0.5, 0.5), true, at(150)); len(events) != 0 {
		t.Fatalf("inside cooldown: got %v, want no events", kinds(events))
	}

	// After the window, a fresh fist onset fires again.
	tr.Step(LabelOpenHand, pt(0.5, 0.5), true, at(200))
	events = tr.Step(LabelFist, pt(0.5, 0.5), true, at(300))
	if len(events) != 1 || events[0].Button != ButtonRight {
		t.Fatalf("after cooldown: got %+v, want one right Click", events)
	}
}

func TestTrackerHandLostWhileDragging(t *testing.T) {
	tr := NewTracker(DefaultConfig())

	tr.Step(LabelPinch, pt(0.5, 0.5), true, at(0))
	tr.Step(LabelPinch, pt(0.5, 0.5), true, at(450))
	if tr.State() != StateDragging {
		t.Fatalf("setup: state = %q, want %q", tr.State(), StateDragging)
	}

	events := tr.Step(LabelNone, detector.Point{}, false, at(483))
	if len(events) != 1 || events[0].Kind != KindDragEnd {
		t.Fatalf("hand lost: got %v, want one DragEnd", kinds(events))
	}

	// Further empty frames stay quiet.
	if events := tr.Step(LabelNone, detector.Point{}, false, at(516)); len(events) != 0 {
		t.Fatalf("still lost: got %v, want no events", kinds(events))
	}

	// The reacquired hand starts a fresh delta baseline.
	if events := tr.Step(LabelOpenHand, pt(0.9, 0.9), true, at(549)); len(events) != 0 {
		t.Fatalf("reacquired: got %v, want no events", kinds(events))
	}
}

func TestTrackerScroll(t *testing.T) {
	cfg := DefaultConfig()

	t.Run("movement inside dead zone is ignored", func(t *testing.T) {
		tr := NewTracker(cfg)
		tr.Step(LabelTwoFinger, pt(0.5, 0.50), true, at(0))
		for i := 1; i <= 10; i++ {
			events := tr.Step(LabelTwoFinger, pt(0.5, 0.51), true, at(i*33))
			if len(events) != 0 {
				t.Fatalf("frame %d: got %v, want no events", i, kinds(events))
			}
		}
	})

	t.Run("downward movement scrolls down once per threshold", func(t *testing.T) {
		tr := NewTracker(cfg)
		tr.Step(LabelTwoFinger, pt(0.5, 0.50), true, at(0))

		events := tr.Step(LabelTwoFinger, pt(0.5, 0.54), true, at(33))
		if len(events) != 1 || events[0].Kind != KindScrollDelta {
			t.Fatalf("got %v, want one ScrollDelta", kinds(events))
		}
		if events[0].DY != -float64(cfg.ScrollAmount) {
			t.Errorf("DY = %v, want %v", events[0].DY, -float64(cfg.ScrollAmount))
		}

		// The reference re-anchors on emit, so holding still is quiet.
		if events := tr.Step(LabelTwoFinger, pt(0.5, 0.54), true, at(66)); len(events) != 0 {
			t.Fatalf("after emit: got %v, want no events", kinds(events))
		}
	})

	t.Run("upward movement scrolls up", func(t *testing.T) {
		tr := NewTracker(cfg)
		tr.Step(LabelTwoFinger, pt(0.5, 0.50), true, at(0))

		events := tr.Step(LabelTwoFinger, pt(0.5, 0.46), true, at(33))
		if len(events) != 1 || events[0].DY != float64(cfg.ScrollAmount) {
			t.Fatalf("got %+v, want one ScrollDelta with DY %v", events, float64(cfg.ScrollAmount))
		}
	})

	t.Run("movement accumulates across frames", func(t *testing.T) {
		tr := NewTracker(cfg)
		tr.Step(LabelTwoFinger, pt(0.5, 0.50), true, at(0))

		// Each frame clears the dead zone but not the emit threshold on
		// its own.
		if events := tr.Step(LabelTwoFinger, pt(0.5, 0.52), true, at(33)); len(events) != 0 {
			t.Fatalf("first step: got %v, want no events", kinds(events))
		}
		events := tr.Step(LabelTwoFinger, pt(0.5, 0.54), true, at(66))
		if len(events) != 1 || events[0].Kind != KindScrollDelta {
			t.Fatalf("second step: got %v, want one ScrollDelta", kinds(events))
		}
	})

	t.Run("scrolling never moves the cursor", func(t *testing.T) {
		tr := NewTracker(cfg)
		tr.Step(LabelTwoFinger, pt(0.5, 0.50), true, at(0))
		events := tr.Step(LabelTwoFinger, pt(0.6, 0.54), true, at(33))
		for _, ev := range events {
			if ev.Kind == KindCursorDelta {
				t.Errorf("scroll frame emitted a CursorDelta")
			}
		}
	})
}

func TestTrackerScrollStickyExit(t *testing.T) {
	cfg := DefaultConfig()
	tr := NewTracker(cfg)

	tr.Step(LabelTwoFinger, pt(0.5, 0.50), true, at(0))

	// Misclassified frames within the grace window keep the scroll
	// session alive and stay quiet.
	for i := 1; i <= cfg.ScrollStickyFrames; i++ {
		events := tr.Step(LabelOpenHand, pt(0.5, 0.5), true, at(i*33))
		if len(events) != 0 {
			t.Fatalf("grace frame %d: got %v, want no events", i, kinds(events))
		}
		if tr.State() != StateScrolling {
			t.Fatalf("grace frame %d: state = %q, want %q", i, tr.State(), StateScrolling)
		}
	}

	// A two-finger frame resets the grace counter.
	tr.Step(LabelTwoFinger, pt(0.5, 0.50), true, at(200))
	if tr.State() != StateScrolling {
		t.Fatalf("state = %q, want %q", tr.State(), StateScrolling)
	}

	// One past the grace window leaves scrolling.
	for i := 0; i <= cfg.ScrollStickyFrames; i++ {
		tr.Step(LabelOpenHand, pt(0.5, 0.5), true, at(233+i*33))
	}
	if tr.State() != StateIdle {
		t.Errorf("state = %q, want %q", tr.State(), StateIdle)
	}
}

func TestTrackerReset(t *testing.T) {
	t.Run("while dragging emits DragEnd", func(t *testing.T) {
		tr := NewTracker(DefaultConfig())
		tr.Step(LabelPinch, pt(0.5, 0.5), true, at(0))
		tr.Step(LabelPinch, pt(0.5, 0.5), true, at(450))

		events := tr.Reset()
		if len(events) != 1 || events[0].Kind != KindDragEnd {
			t.Fatalf("got %v, want one DragEnd", kinds(events))
		}
		if tr.State() != StateIdle {
			t.Errorf("state = %q, want %q", tr.State(), StateIdle)
		}
	})

	t.Run("while idle is silent", func(t *testing.T) {
		tr := NewTracker(DefaultConfig())
		if events := tr.Reset(); len(events) != 0 {
			t.Fatalf("got %v, want no events", kinds(events))
		}
	})
}
