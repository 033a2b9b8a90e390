// Package tray provides the system tray interface for AirPoint.
package tray

import (
	"sync"

	"github.com/getlantern/systray"
)

// Tray is the system tray menu: toggles for pointer control, the gaze
// gate, and dwell clicking, plus a read-only display of the last
// performed action.
type Tray struct {
	onToggle func(enabled bool)
	onGaze   func(enabled bool)
	onDwell  func(enabled bool)
	onQuit   func()

	enabled      bool
	gazeEnabled  bool
	dwellEnabled bool
	mu           sync.RWMutex

	// Menu items stored for later updates
	menuToggle     *systray.MenuItem
	menuGaze       *systray.MenuItem
	menuDwell      *systray.MenuItem
	menuLastIntent *systray.MenuItem
}

// New creates a Tray reflecting the given initial toggle states.
func New(enabled, gazeEnabled, dwellEnabled bool) *Tray {
	return &Tray{
		enabled:      enabled,
		gazeEnabled:  gazeEnabled,
		dwellEnabled: dwellEnabled,
	}
}

// OnToggle sets the callback for the pointer control toggle.
func (t *Tray) OnToggle(fn func(enabled bool)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onToggle = fn
}

// OnGazeToggle sets the callback for the gaze gate toggle.
func (t *Tray) OnGazeToggle(fn func(enabled bool)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onGaze = fn
}

// OnDwellToggle sets the callback for the dwell click toggle.
func (t *Tray) OnDwellToggle(fn func(enabled bool)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onDwell = fn
}

// OnQuit sets the callback for the quit menu item.
func (t *Tray) OnQuit(fn func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onQuit = fn
}

// Run starts the system tray. This function blocks until systray.Quit()
// is called.
func (t *Tray) Run() {
	systray.Run(t.onReady, t.onExit)
}

func (t *Tray) onReady() {
	systray.SetTitle("AirPoint")
	systray.SetTooltip("AirPoint hand gesture mouse")

	t.menuToggle = systray.AddMenuItem(toggleTitle(t.enabled), "Toggle pointer control")
	systray.AddSeparator()

	t.menuGaze = systray.AddMenuItemCheckbox("Require facing screen", "Only act while you face the screen", t.gazeEnabled)
	t.menuDwell = systray.AddMenuItemCheckbox("Dwell click", "Click by holding the cursor still", t.dwellEnabled)
	systray.AddSeparator()

	t.menuLastIntent = systray.AddMenuItem("Last: none", "Last performed action")
	t.menuLastIntent.Disable()
	systray.AddSeparator()

	menuQuit := systray.AddMenuItem("Quit", "Quit AirPoint")

	go func() {
		for {
			select {
			case <-t.menuToggle.ClickedCh:
				t.handleToggle()
			case <-t.menuGaze.ClickedCh:
				t.handleGaze()
			case <-t.menuDwell.ClickedCh:
				t.handleDwell()
			case <-menuQuit.ClickedCh:
				t.handleQuit()
				return
			}
		}
	}()
}

func (t *Tray) onExit() {}

func toggleTitle(enabled bool) string {
	if enabled {
		return "● Enabled"
	}
	return "○ Disabled"
}

func (t *Tray) handleToggle() {
	t.mu.Lock()
	t.enabled = !t.enabled
	enabled := t.enabled
	t.menuToggle.SetTitle(toggleTitle(enabled))
	callback := t.onToggle
	t.mu.Unlock()

	// Call the callback outside the lock to prevent deadlocks
	if callback != nil {
		callback(enabled)
	}
}

func (t *Tray) handleGaze() {
	t.mu.Lock()
	t.gazeEnabled = !t.gazeEnabled
	enabled := t.gazeEnabled
	if enabled {
		t.menuGaze.Check()
	} else {
		t.menuGaze.Uncheck()
	}
	callback := t.onGaze
	t.mu.Unlock()

	if callback != nil {
		callback(enabled)
	}
}

func (t *Tray) handleDwell() {
	t.mu.Lock()
	t.dwellEnabled = !t.dwellEnabled
	enabled := t.dwellEnabled
	if enabled {
		t.menuDwell.Check()
	} else {
		t.menuDwell.Uncheck()
	}
	callback := t.onDwell
	t.mu.Unlock()

	if callback != nil {
		callback(enabled)
	}
}

func (t *Tray) handleQuit() {
	t.mu.RLock()
	callback := t.onQuit
	t.mu.RUnlock()

	if callback != nil {
		callback()
	}

	systray.Quit()
}

// SetLastIntent updates the last action display in the menu.
func (t *Tray) SetLastIntent(intent string) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if t.menuLastIntent != nil {
		t.menuLastIntent.SetTitle("Last: " + intent)
	}
}
