package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/chetana/airpoint/internal/app"
	"github.com/chetana/airpoint/internal/tray"
)

func main() {
	cameraID := flag.Int("camera", 0, "video capture device ID")
	sensitivity := flag.Float64("sensitivity", 0, "cursor sensitivity scale (0 uses the default)")
	gaze := flag.Bool("gaze", true, "require facing the screen before gestures act")
	dwell := flag.Bool("dwell", false, "click by holding the cursor still")
	flag.Parse()

	fmt.Println("AirPoint - Hand Gesture Mouse")

	cfg := app.DefaultConfig()
	cfg.Camera.DeviceID = *cameraID
	cfg.GazeEnabled = *gaze
	cfg.DwellEnabled = *dwell
	if *sensitivity > 0 {
		cfg.Pointer.Sensitivity = *sensitivity
	}

	a := app.New(cfg)

	if err := a.Start(); err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
	a.SetEnabled(true)

	t := tray.New(true, cfg.GazeEnabled, cfg.DwellEnabled)
	t.OnToggle(a.SetEnabled)
	t.OnGazeToggle(a.SetGazeEnabled)
	t.OnDwellToggle(a.SetDwellEnabled)
	t.OnQuit(a.Stop)
	a.OnIntent(t.SetLastIntent)

	// Blocks until Quit is chosen from the menu.
	t.Run()
}
