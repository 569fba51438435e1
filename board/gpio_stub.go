//go:build !linux

package board

import "errors"

// GPIOConfig names the character device and line offsets for a real panel.
type GPIOConfig struct {
	Chip    string
	LEDs    [NumLEDs]int
	Buttons [NumButtons]int
}

// OpenGPIO is only available on Linux, where the GPIO character device lives.
func OpenGPIO(cfg GPIOConfig) (Board, error) {
	return nil, errors.New("gpio board requires linux")
}
