package board

import (
	"sync"
	"time"
)

// Sim is an in-memory board for the TUI and for tests. Button levels idle
// high (pulled up); Press holds a line low for a while and releases it, so
// the scanner's debounce path runs exactly as it would on hardware.
type Sim struct {
	mu      sync.Mutex
	leds    [NumLEDs]bool
	buttons [NumButtons]bool
}

var (
	_ Board   = &Sim{}
	_ Presser = &Sim{}
)

// NewSim creates a simulated board with all LEDs off and all buttons released.
func NewSim() *Sim {
	s := &Sim{}
	for i := range s.buttons {
		s.buttons[i] = true // pull-up
	}
	return s
}

func (s *Sim) Name() string {
	return "sim"
}

func (s *Sim) SetLED(i int, on bool) {
	if i < 0 || i >= NumLEDs {
		return
	}
	s.mu.Lock()
	s.leds[i] = on
	s.mu.Unlock()
}

// LEDs returns a snapshot of the output levels.
func (s *Sim) LEDs() [NumLEDs]bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.leds
}

func (s *Sim) Button(i int) bool {
	if i < 0 || i >= NumButtons {
		return true
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buttons[i]
}

// SetButton forces the raw level of input i (false = pressed).
func (s *Sim) SetButton(i int, level bool) {
	if i < 0 || i >= NumButtons {
		return
	}
	s.mu.Lock()
	s.buttons[i] = level
	s.mu.Unlock()
}

// Press holds button i low for hold, then releases it.
func (s *Sim) Press(i int, hold time.Duration) {
	if i < 0 || i >= NumButtons {
		return
	}
	s.SetButton(i, false)
	time.AfterFunc(hold, func() {
		s.SetButton(i, true)
	})
}

func (s *Sim) Close() error {
	return nil
}
