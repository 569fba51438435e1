// Package panel is the core of led-key: a button scanner task and an LED
// renderer task sharing a single mode cell. The scanner is the only writer,
// the renderer the only reader, and the cell is explicitly atomic so nothing
// depends on hardware write granularity.
package panel

import "sync/atomic"

// Mode is the currently selected lighting behavior.
type Mode int32

const (
	ModeOff Mode = iota
	ModeChase
	ModeBinary
)

func (m Mode) String() string {
	switch m {
	case ModeChase:
		return "chase"
	case ModeBinary:
		return "binary-count"
	default:
		return "off"
	}
}

// Cell is the shared mode variable between the scanner and the renderer.
// The zero value holds ModeOff.
type Cell struct {
	v atomic.Int32
}

func (c *Cell) Store(m Mode) {
	c.v.Store(int32(m))
}

func (c *Cell) Load() Mode {
	return Mode(c.v.Load())
}
