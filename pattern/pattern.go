// Package pattern holds the step generators for the LED lighting modes.
//
// A generator produces one frame per call and keeps its own position or
// counter between calls. That state deliberately survives mode switches:
// leaving a mode and coming back resumes wherever the generator left off.
package pattern

import "time"

// Size is the number of LEDs on the panel.
const Size = 4

// Frame is the desired level of each LED, index order.
type Frame [Size]bool

// Generator steps a lighting pattern one frame at a time.
type Generator interface {
	// Next returns the frame to display now and advances internal state.
	Next() Frame
	// Period is how long a frame should stay on the LEDs.
	Period() time.Duration
}

// Bits renders the low Size bits of v as a frame (bit index = LED index).
func Bits(v uint8) Frame {
	var f Frame
	for i := 0; i < Size; i++ {
		f[i] = v&(1<<i) != 0
	}
	return f
}
