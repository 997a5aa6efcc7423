// Package host runs the bubble field in a terminal: it owns the tcell screen, turns mouse
// events into pointer phases and ticks the frame driver at a fixed rate
package host

import (
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/bubbles/engine"
	"github.com/lixenwraith/bubbles/gesture"
	"github.com/lixenwraith/bubbles/parameter"
	"github.com/lixenwraith/bubbles/render"
)

// Host serializes input events and frame ticks for one driver
type Host struct {
	screen   tcell.Screen
	scene    *render.Scene
	driver   *engine.Driver
	interval time.Duration

	pressed  bool // button 1 currently held
	dragging bool // press landed on the handle and a track is live
}

func New(screen tcell.Screen, scene *render.Scene, driver *engine.Driver, interval time.Duration) *Host {
	if interval <= 0 {
		interval = time.Second / parameter.FrameRate
	}
	return &Host{
		screen:   screen,
		scene:    scene,
		driver:   driver,
		interval: interval,
	}
}

// Start measures the labels against the current screen and starts the driver
func (h *Host) Start(labels []string) {
	h.driver.SetRegion(h.scene.OnHill)
	h.driver.Start(h.scene.Measure(labels), h.scene.Bounds())
	h.scene.Draw()
}

// Run pumps events and frames until a quit key or the screen is finalized
func (h *Host) Run() {
	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, parameter.EventChannelSize)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				h.screen.Fini()
				fmt.Fprintf(os.Stderr, "\r\nevent poller crashed: %v\r\n%s\r\n", r, debug.Stack())
				os.Exit(1)
			}
		}()
		defer close(eventChan)

		for {
			ev := h.screen.PollEvent()
			// nil after Fini
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	for {
		select {
		case ev, ok := <-eventChan:
			if !ok {
				return
			}
			if !h.HandleEvent(ev) {
				return
			}

		case <-ticker.C:
			h.Tick()
		}
	}
}

// Tick advances one frame and redraws
func (h *Host) Tick() {
	h.driver.Frame()
	h.scene.Draw()
}

// HandleEvent applies one terminal event; returns false when the host should exit
func (h *Host) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if isQuit(ev) {
			return false
		}

	case *tcell.EventMouse:
		h.handleMouse(ev)

	case *tcell.EventFocus:
		if !ev.Focused {
			h.cancel()
		}

	case *tcell.EventResize:
		h.screen.Sync()
		h.cancel()
		h.driver.Resize(h.scene.Bounds())
	}

	return true
}

func isQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q'
	}
	return false
}

// handleMouse derives pointer phases from button 1 transitions
// A press only begins a track when it lands on the docked handle
func (h *Host) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	s := gesture.Sample{
		PointerID: parameter.PointerID,
		Pos:       h.scene.CellCenter(x, y),
		Time:      ev.When(),
	}
	down := ev.Buttons()&tcell.Button1 != 0

	switch {
	case down && !h.pressed:
		h.pressed = true
		if h.scene.OnHandle(x, y) && h.driver.PointerDown(s) {
			h.dragging = true
			h.scene.SetHandFloating(true, s.Pos)
			log.Printf("host: drag began at cell (%d,%d)", x, y)
		}

	case down && h.dragging:
		h.scene.MoveHand(s.Pos)
		h.driver.PointerMove(s)

	case !down && h.pressed:
		h.pressed = false
		if h.dragging {
			h.dragging = false
			h.driver.PointerUp(s.PointerID)
			h.scene.SetHandFloating(false, mgl64.Vec2{})
		}
	}
}

// cancel abandons any drag in progress
func (h *Host) cancel() {
	h.pressed = false
	if h.dragging {
		h.dragging = false
		h.driver.PointerCancel()
		h.scene.SetHandFloating(false, mgl64.Vec2{})
	}
}

// Dragging reports whether the handle is being dragged
func (h *Host) Dragging() bool {
	return h.dragging
}
