package pattern

import "time"

// Binary renders an incrementing 8-bit counter across the LEDs. Only the low
// 4 bits are visible, so the display repeats every 16 frames while the
// counter itself wraps every 256.
type Binary struct {
	value  uint8
	period time.Duration
}

var _ Generator = &Binary{}

// NewBinary creates a binary-count generator with the given frame period.
func NewBinary(period time.Duration) *Binary {
	return &Binary{period: period}
}

// Next returns the current counter value as a frame, then increments.
func (b *Binary) Next() Frame {
	f := Bits(b.value)
	b.value++ // uint8 wraparound is the intended behavior
	return f
}

func (b *Binary) Period() time.Duration {
	return b.period
}
