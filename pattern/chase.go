package pattern

import "time"

// Chase lights exactly one LED at a time, walking the panel in index order
// and wrapping back to the first LED after the last.
type Chase struct {
	pos    int
	period time.Duration
}

var _ Generator = &Chase{}

// NewChase creates a chase generator with the given frame period.
func NewChase(period time.Duration) *Chase {
	return &Chase{period: period}
}

// Next returns a one-hot frame for the current position, then advances.
func (c *Chase) Next() Frame {
	var f Frame
	f[c.pos] = true
	c.pos = (c.pos + 1) % Size
	return f
}

func (c *Chase) Period() time.Duration {
	return c.period
}
