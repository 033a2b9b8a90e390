package detector

import (
	"bufio"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"time"

	"gocv.io/x/gocv"
)

// MediaPipeDetector implements Detector using a Python MediaPipe subprocess.
// One inference request is made per frame; hand and face results arrive in
// the same response, so calling DetectHand and DetectFace on the same frame
// costs a single round trip.
type MediaPipeDetector struct {
	config    Config
	cmd       *exec.Cmd
	stdin     io.WriteCloser
	stdout    *bufio.Reader
	mu        sync.Mutex
	started   bool
	lastUsed  time.Time
	idleTimer *time.Timer

	// Per-frame response cache keyed by frame identity.
	lastFrame *gocv.Mat
	lastResp  frameResponse
}

// NewMediaPipeDetector creates a new MediaPipe detector.
// The Python process is started lazily on first detection.
func NewMediaPipeDetector(config Config) (*MediaPipeDetector, error) {
	scriptPath := findMediaPipeScript()
	if scriptPath == "" {
		return nil, fmt.Errorf("mediapipe_service.py not found")
	}

	return &MediaPipeDetector{
		config: config,
	}, nil
}

// DetectHand analyzes a frame and returns the detected hand landmarks,
// or nil when no hand is visible.
func (d *MediaPipeDetector) DetectHand(frame *gocv.Mat) (*HandLandmarks, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	resp, err := d.process(frame)
	if err != nil {
		return nil, err
	}
	if resp.Hand == nil {
		return nil, nil
	}

	hand := resp.Hand.toHandLandmarks()
	return &hand, nil
}

// DetectFace returns the forward-facing estimate for the frame, or nil
// when no face is visible.
func (d *MediaPipeDetector) DetectFace(frame *gocv.Mat) (*FaceOrientation, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	resp, err := d.process(frame)
	if err != nil {
		return nil, err
	}
	if resp.Face == nil {
		return nil, nil
	}

	return &FaceOrientation{FacingScreen: resp.Face.Facing}, nil
}

// Close shuts down the Python process.
func (d *MediaPipeDetector) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.shutdown()
}

// process runs one inference round trip for the frame. Repeated calls with
// the same frame reuse the cached response, so the hand and face queries
// issued by the pipeline for a single frame cost one subprocess exchange.
func (d *MediaPipeDetector) process(frame *gocv.Mat) (frameResponse, error) {
	if frame == d.lastFrame {
		return d.lastResp, nil
	}

	if err := d.ensureStarted(); err != nil {
		return frameResponse{}, err
	}

	// Encode frame as JPEG
	buf, err := gocv.IMEncode(".jpg", *frame)
	if err != nil {
		return frameResponse{}, fmt.Errorf("encode frame: %w", err)
	}
	defer buf.Close()

	data := buf.GetBytes()

	// Write length (4 bytes big-endian) + data
	length := make([]byte, 4)
	binary.BigEndian.PutUint32(length, uint32(len(data)))

	if _, err := d.stdin.Write(length); err != nil {
		return frameResponse{}, fmt.Errorf("write length: %w", err)
	}
	if _, err := d.stdin.Write(data); err != nil {
		return frameResponse{}, fmt.Errorf("write data: %w", err)
	}

	// Read JSON response
	line, err := d.stdout.ReadString('\n')
	if err != nil {
		return frameResponse{}, fmt.Errorf("read response: %w", err)
	}

	var resp frameResponse
	if err := json.Unmarshal([]byte(line), &resp); err != nil {
		return frameResponse{}, fmt.Errorf("parse response: %w", err)
	}

	d.lastFrame = frame
	d.lastResp = resp
	d.lastUsed = time.Now()
	d.resetIdleTimer()

	return resp, nil
}

func (d *MediaPipeDetector) ensureStarted() error {
	if d.started {
		return nil
	}

	scriptPath := findMediaPipeScript()
	if scriptPath == "" {
		return fmt.Errorf("mediapipe_service.py not found")
	}

	// Use virtual environment Python if available
	pythonPath := findVenvPython()
	if pythonPath == "" {
		pythonPath = "python3"
	}

	d.cmd = exec.Command(pythonPath, scriptPath)

	stdin, err := d.cmd.StdinPipe()
	if err != nil {
		return fmt.Errorf("create stdin pipe: %w", err)
	}

	stdout, err := d.cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("create stdout pipe: %w", err)
	}

	// Capture stderr for debugging
	d.cmd.Stderr = os.Stderr

	if err := d.cmd.Start(); err != nil {
		return fmt.Errorf("start mediapipe service: %w", err)
	}

	d.stdin = stdin
	d.stdout = bufio.NewReader(stdout)
	d.started = true
	d.lastUsed = time.Now()

	return nil
}

func (d *MediaPipeDetector) shutdown() error {
	if !d.started {
		return nil
	}

	if d.idleTimer != nil {
		d.idleTimer.Stop()
		d.idleTimer = nil
	}

	if d.stdin != nil {
		d.stdin.Close()
	}

	err := d.cmd.Wait()
	d.started = false
	d.cmd = nil
	d.stdin = nil
	d.stdout = nil
	d.lastFrame = nil

	return err
}

func (d *MediaPipeDetector) resetIdleTimer() {
	if d.idleTimer != nil {
		d.idleTimer.Stop()
	}
	d.idleTimer = time.AfterFunc(30*time.Second, func() {
		d.mu.Lock()
		defer d.mu.Unlock()
		d.shutdown()
	})
}

func findMediaPipeScript() string {
	// Get executable directory
	execPath, err := os.Executable()
	var execDir string
	if err == nil {
		execDir = filepath.Dir(execPath)
	}

	candidates := []string{
		"scripts/mediapipe_service.py",
		"../scripts/mediapipe_service.py",
		filepath.Join(execDir, "scripts/mediapipe_service.py"),
		filepath.Join(os.Getenv("HOME"), ".airpoint/scripts/mediapipe_service.py"),
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			absPath, err := filepath.Abs(path)
			if err == nil {
				return absPath
			}
			return path
		}
	}
	return ""
}

// findVenvPython looks for a Python interpreter in a virtual environment.
// It checks for venv/bin/python relative to the project directory.
func findVenvPython() string {
	execPath, err := os.Executable()
	if err != nil {
		return ""
	}
	execDir := filepath.Dir(execPath)

	candidates := []string{
		"venv/bin/python",
		"../venv/bin/python",
		"../../venv/bin/python",
		filepath.Join(execDir, "venv/bin/python"),
		filepath.Join(os.Getenv("HOME"), ".airpoint/venv/bin/python"),
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			absPath, err := filepath.Abs(path)
			if err == nil {
				return absPath
			}
			return path
		}
	}
	return ""
}

// frameResponse is the JSON structure returned by the Python service for
// one frame: at most one hand plus an optional face orientation estimate.
type frameResponse struct {
	Hand *jsonHand `json:"hand"`
	Face *jsonFace `json:"face"`
}

type jsonHand struct {
	Points []jsonPoint `json:"points"`
	Score  float64     `json:"score"`
}

type jsonPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type jsonFace struct {
	// Facing is the service's forward-facing estimate, derived from eye
	// distance and nose offset relative to the eye midpoint.
	Facing bool `json:"facing"`
}

func (h jsonHand) toHandLandmarks() HandLandmarks {
	lm := HandLandmarks{
		Score: h.Score,
	}

	for i := 0; i < NumLandmarks && i < len(h.Points); i++ {
		lm.Points[i] = Point{
			X: h.Points[i].X,
			Y: h.Points[i].Y,
		}
	}

	return lm
}
