// Package midi lets a Novation Launchpad X act as a physical control surface
// for the panel: three pads in the top control row stand in for the buttons,
// and a row of grid pads mirrors the four LEDs.
package midi

// PadEvent is sent when a pad is pressed on the controller.
type PadEvent struct {
	Row, Col int
	Velocity uint8
}

// LEDUpdate is one pad color change in a batch.
type LEDUpdate struct {
	Row, Col int
	Color    uint8
}

// Controller is a connected grid controller.
type Controller interface {
	ID() string

	// PadEvents delivers pad presses (releases are not reported).
	PadEvents() <-chan PadEvent

	// SetLED sets one pad to a palette color.
	SetLED(row, col int, color uint8) error
	// SetLEDBatch applies several pad colors in one go.
	SetLEDBatch(updates []LEDUpdate) error
	// Clear turns every pad off.
	Clear() error

	Close() error
}

// Launchpad X palette velocities for the colors the panel uses.
// See the Programmer's Reference Manual for the full palette.
const (
	ColorOff       uint8 = 0
	ColorWhite     uint8 = 3
	ColorRed       uint8 = 5
	ColorDimRed    uint8 = 7
	ColorOrange    uint8 = 9
	ColorDimOrange uint8 = 11
	ColorGreen     uint8 = 21
	ColorDimGreen  uint8 = 19
)
