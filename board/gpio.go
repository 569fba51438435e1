//go:build linux

package board

import (
	"fmt"

	"github.com/warthog618/go-gpiocdev"

	"led-key/debug"
)

// GPIOConfig names the character device and line offsets for a real panel.
type GPIOConfig struct {
	Chip    string
	LEDs    [NumLEDs]int
	Buttons [NumButtons]int
}

// GPIO drives a panel wired to a Linux gpiochip. LEDs are requested as
// outputs (initially low), buttons as pulled-up inputs.
type GPIO struct {
	chip    string
	leds    [NumLEDs]*gpiocdev.Line
	buttons [NumButtons]*gpiocdev.Line
	last    [NumButtons]bool
}

var _ Board = &GPIO{}

// OpenGPIO requests all panel lines. Any failure releases the lines already
// requested and reports which offset could not be opened.
func OpenGPIO(cfg GPIOConfig) (Board, error) {
	g := &GPIO{chip: cfg.Chip}
	for i := range g.last {
		g.last[i] = true // pull-up
	}

	for i, offset := range cfg.LEDs {
		l, err := gpiocdev.RequestLine(cfg.Chip, offset,
			gpiocdev.AsOutput(0),
			gpiocdev.WithConsumer("led-key"))
		if err != nil {
			g.Close()
			return nil, fmt.Errorf("request LED line %s:%d: %w", cfg.Chip, offset, err)
		}
		g.leds[i] = l
	}

	for i, offset := range cfg.Buttons {
		l, err := gpiocdev.RequestLine(cfg.Chip, offset,
			gpiocdev.AsInput,
			gpiocdev.WithPullUp,
			gpiocdev.WithConsumer("led-key"))
		if err != nil {
			g.Close()
			return nil, fmt.Errorf("request button line %s:%d: %w", cfg.Chip, offset, err)
		}
		g.buttons[i] = l
	}

	return g, nil
}

func (g *GPIO) Name() string {
	return "gpio:" + g.chip
}

func (g *GPIO) SetLED(i int, on bool) {
	if i < 0 || i >= NumLEDs || g.leds[i] == nil {
		return
	}
	v := 0
	if on {
		v = 1
	}
	if err := g.leds[i].SetValue(v); err != nil {
		debug.Log("gpio", "set LED %d: %v", i, err)
	}
}

func (g *GPIO) Button(i int) bool {
	if i < 0 || i >= NumButtons || g.buttons[i] == nil {
		return true
	}
	v, err := g.buttons[i].Value()
	if err != nil {
		debug.Log("gpio", "read button %d: %v", i, err)
		return g.last[i]
	}
	g.last[i] = v != 0
	return g.last[i]
}

// Close reverts LED lines to inputs and releases everything.
func (g *GPIO) Close() error {
	for _, l := range g.leds {
		if l != nil {
			l.Reconfigure(gpiocdev.AsInput)
			l.Close()
		}
	}
	for _, l := range g.buttons {
		if l != nil {
			l.Close()
		}
	}
	return nil
}
