package panel

import (
	"context"
	"fmt"
	"sync"
	"time"

	"led-key/board"
	"led-key/debug"
	"led-key/midi"
	"led-key/pattern"
)

// Launchpad surface layout: the bottom grid row mirrors the LEDs and the
// first three pads of the top control row act as the buttons.
const (
	surfaceLEDRow    = 0
	surfaceButtonRow = 8
)

const (
	surfaceFPS = 30
	// How long a synthesized press holds the line low. Comfortably longer
	// than poll + debounce so the scanner always confirms it.
	pressHold = 150 * time.Millisecond
	maxEvents = 6
)

// Controller owns the board, the shared mode cell, and both tasks, and
// mirrors the panel onto an optional Launchpad surface.
type Controller struct {
	board   board.Board
	timings Timings

	cell     Cell
	scanner  *Scanner
	renderer *Renderer

	mu       sync.RWMutex
	frame    pattern.Frame
	rendered Mode
	events   []string
	surface  midi.Controller
	prevPads map[[2]int]uint8
	dirty    bool

	// UpdateChan coalesces change notifications for the TUI.
	UpdateChan chan struct{}
}

// New creates a controller for the given board.
func New(b board.Board, t Timings) *Controller {
	c := &Controller{
		board:      b,
		timings:    t,
		prevPads:   make(map[[2]int]uint8),
		UpdateChan: make(chan struct{}, 1),
	}
	c.scanner = NewScanner(b, &c.cell, t, c.onModeChange)
	c.renderer = NewRenderer(b, &c.cell, t, c.onFrame)
	return c
}

// Start launches the scanner, the renderer, and the surface mirror loop.
func (c *Controller) Start(ctx context.Context) {
	go c.scanner.Run(ctx)
	go c.renderer.Run(ctx)
	go c.surfaceLoop(ctx)
}

// BoardName identifies the board for the UI.
func (c *Controller) BoardName() string {
	return c.board.Name()
}

// Mode returns the currently selected mode.
func (c *Controller) Mode() Mode {
	return c.cell.Load()
}

// Frame returns the last rendered frame.
func (c *Controller) Frame() pattern.Frame {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.frame
}

// Events returns the most recent diagnostic lines, oldest first.
func (c *Controller) Events() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]string, len(c.events))
	copy(out, c.events)
	return out
}

// Press synthesizes a momentary press of button i (0-based) on boards that
// support it. Hardware boards ignore this: their buttons are physical.
func (c *Controller) Press(i int) {
	p, ok := c.board.(board.Presser)
	if !ok {
		debug.Log("panel", "press %d ignored: board %q has no synthetic buttons", i+1, c.board.Name())
		return
	}
	p.Press(i, pressHold)
}

// HandlePad routes a surface pad press to the matching button.
func (c *Controller) HandlePad(row, col int) {
	if row == surfaceButtonRow && col >= 0 && col < board.NumButtons {
		c.Press(col)
	}
}

// SetSurface attaches (or detaches, with nil) a Launchpad mirror.
func (c *Controller) SetSurface(s midi.Controller) {
	c.mu.Lock()
	c.surface = s
	c.prevPads = make(map[[2]int]uint8)
	c.dirty = true
	c.mu.Unlock()
	if s != nil {
		s.Clear()
	}
	c.notify()
}

// onModeChange is the scanner's confirm callback.
func (c *Controller) onModeChange(m Mode) {
	line := fmt.Sprintf("%s  mode -> %s", time.Now().Format("15:04:05"), m)
	c.mu.Lock()
	c.events = append(c.events, line)
	if len(c.events) > maxEvents {
		c.events = c.events[len(c.events)-maxEvents:]
	}
	c.dirty = true
	c.mu.Unlock()
	c.notify()
}

// onFrame is the renderer's per-frame callback.
func (c *Controller) onFrame(f pattern.Frame, m Mode) {
	c.mu.Lock()
	c.frame = f
	c.rendered = m
	c.dirty = true
	c.mu.Unlock()
	c.notify()
}

func (c *Controller) notify() {
	select {
	case c.UpdateChan <- struct{}{}:
	default:
	}
}

// surfaceLoop flushes pad changes to the Launchpad at a fixed FPS.
func (c *Controller) surfaceLoop(ctx context.Context) {
	ticker := time.NewTicker(time.Second / surfaceFPS)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.mu.Lock()
			dirty := c.dirty
			c.dirty = false
			surface := c.surface
			c.mu.Unlock()

			if dirty && surface != nil {
				c.flushSurface(surface)
			}
		}
	}
}

// flushSurface diffs the desired pad colors against what was last sent and
// pushes only the changes.
func (c *Controller) flushSurface(surface midi.Controller) {
	desired := c.surfacePads()

	c.mu.Lock()
	var updates []midi.LEDUpdate
	for key, color := range desired {
		if prev, ok := c.prevPads[key]; !ok || prev != color {
			updates = append(updates, midi.LEDUpdate{Row: key[0], Col: key[1], Color: color})
		}
	}
	c.prevPads = desired
	c.mu.Unlock()

	if len(updates) > 0 {
		if err := surface.SetLEDBatch(updates); err != nil {
			debug.Log("panel", "surface flush: %v", err)
		}
	}
}

// surfacePads computes the full desired pad state for the mirror.
func (c *Controller) surfacePads() map[[2]int]uint8 {
	c.mu.RLock()
	frame := c.frame
	lit := modeColor(c.rendered)
	c.mu.RUnlock()
	selected := c.cell.Load()

	pads := make(map[[2]int]uint8, board.NumLEDs+board.NumButtons)

	for i, on := range frame {
		color := midi.ColorOff
		if on {
			color = lit
		}
		pads[[2]int{surfaceLEDRow, i}] = color
	}

	for i, m := range buttonModes {
		color := dimModeColor(m)
		if m == selected {
			color = modeColor(m)
		}
		pads[[2]int{surfaceButtonRow, i}] = color
	}

	return pads
}

func modeColor(m Mode) uint8 {
	switch m {
	case ModeChase:
		return midi.ColorOrange
	case ModeBinary:
		return midi.ColorGreen
	default:
		return midi.ColorRed
	}
}

func dimModeColor(m Mode) uint8 {
	switch m {
	case ModeChase:
		return midi.ColorDimOrange
	case ModeBinary:
		return midi.ColorDimGreen
	default:
		return midi.ColorDimRed
	}
}
