package pointer

import "math"

// Mapper converts frame-normalized hand deltas into screen-pixel deltas.
// It scales by sensitivity and screen size, smooths with an exponential
// moving average, and drops single-frame jumps too large to be real hand
// movement.
type Mapper struct {
	cfg    Config
	width  float64
	height float64

	lastX  float64
	lastY  float64
	primed bool
}

// NewMapper creates a Mapper for a screen of the given pixel size.
func NewMapper(cfg Config, screenWidth, screenHeight int) *Mapper {
	return &Mapper{
		cfg:    cfg,
		width:  float64(screenWidth),
		height: float64(screenHeight),
	}
}

// Map converts one frame's hand-center delta into a pixel delta. An
// implausibly large delta resets the smoothing state and maps to zero.
func (m *Mapper) Map(dx, dy float64) (int, int) {
	if math.Abs(dx) > m.cfg.JumpThreshold || math.Abs(dy) > m.cfg.JumpThreshold {
		m.Reset()
		return 0, 0
	}

	rawX := dx * m.width * m.cfg.Sensitivity
	rawY := dy * m.height * m.cfg.Sensitivity

	if !m.primed {
		m.lastX = rawX
		m.lastY = rawY
		m.primed = true
	} else {
		f := m.cfg.Smoothing
		m.lastX = rawX*(1-f) + m.lastX*f
		m.lastY = rawY*(1-f) + m.lastY*f
	}

	return int(math.Round(m.lastX)), int(math.Round(m.lastY))
}

// Reset clears the smoothing state, e.g. when the hand is lost or the
// gaze gate blocks input.
func (m *Mapper) Reset() {
	m.lastX = 0
	m.lastY = 0
	m.primed = false
}
