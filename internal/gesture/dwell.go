package gesture

import (
	"time"

	"github.com/chetana/airpoint/internal/detector"
)

// DwellClicker fires a click when the hand center stays inside a small
// radius for a sustained duration. After firing it stays disarmed until
// the center leaves the radius, so a resting hand produces exactly one
// click.
type DwellClicker struct {
	radius   float64
	duration time.Duration

	anchor    detector.Point
	hasAnchor bool
	since     time.Time
	armed     bool
}

// NewDwellClicker creates a clicker with the given radius (frame
// normalized) and hold duration.
func NewDwellClicker(radius float64, duration time.Duration) *DwellClicker {
	return &DwellClicker{
		radius:   radius,
		duration: duration,
		armed:    true,
	}
}

// Observe feeds one frame's hand center and reports whether a dwell
// click should fire now.
func (d *DwellClicker) Observe(center detector.Point, now time.Time) bool {
	if !d.hasAnchor || detector.Distance(center, d.anchor) > d.radius {
		d.anchor = center
		d.hasAnchor = true
		d.since = now
		d.armed = true
		return false
	}

	if d.armed && now.Sub(d.since) >= d.duration {
		d.armed = false
		return true
	}
	return false
}

// Reset clears the dwell anchor, e.g. when the hand is lost.
func (d *DwellClicker) Reset() {
	d.hasAnchor = false
	d.armed = true
}
