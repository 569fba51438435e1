// Package board abstracts the panel hardware: four LEDs and three push
// buttons. Implementations expose raw digital levels - buttons are wired
// active low with pull-ups, so a released button reads high.
package board

import "time"

const (
	// NumLEDs is the number of output lines on the panel.
	NumLEDs = 4
	// NumButtons is the number of input lines on the panel.
	NumButtons = 3
)

// Board is a panel the scanner and renderer can drive.
//
// SetLED and Button never report errors: the underlying pin primitives are
// treated as infallible once the board is open, and implementations that can
// fail (GPIO) log and carry on with the last known level.
type Board interface {
	// Name identifies the board for the UI and logs.
	Name() string
	// SetLED drives output i high (on=true) or low.
	SetLED(i int, on bool)
	// Button returns the raw level of input i: true = high = released.
	Button(i int) bool
	// Close releases the underlying lines.
	Close() error
}

// Presser is implemented by boards that can synthesize a momentary button
// press (the simulator). The level is held low for hold, then released.
type Presser interface {
	Press(i int, hold time.Duration)
}
