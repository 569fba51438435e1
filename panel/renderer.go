package panel

import (
	"context"

	"led-key/board"
	"led-key/pattern"
)

// Renderer drives the LEDs from whatever mode the cell holds. Each iteration
// reads the mode once, applies one frame, and sleeps for that mode's period.
// The generators keep their position and counter across mode changes.
type Renderer struct {
	board   board.Board
	cell    *Cell
	timings Timings
	chase   *pattern.Chase
	binary  *pattern.Binary
	onFrame func(pattern.Frame, Mode)
}

// NewRenderer creates a renderer. onFrame, if non-nil, is called after every
// frame has been written to the board.
func NewRenderer(b board.Board, cell *Cell, t Timings, onFrame func(pattern.Frame, Mode)) *Renderer {
	return &Renderer{
		board:   b,
		cell:    cell,
		timings: t,
		chase:   pattern.NewChase(t.Chase),
		binary:  pattern.NewBinary(t.Binary),
		onFrame: onFrame,
	}
}

// Run renders until ctx is cancelled.
func (r *Renderer) Run(ctx context.Context) {
	for {
		m := r.cell.Load()

		var frame pattern.Frame
		delay := r.timings.Off
		switch m {
		case ModeChase:
			frame = r.chase.Next()
			delay = r.chase.Period()
		case ModeBinary:
			frame = r.binary.Next()
			delay = r.binary.Period()
		default:
			// all off
		}

		r.apply(frame, m)
		if !sleep(ctx, delay) {
			return
		}
	}
}

func (r *Renderer) apply(f pattern.Frame, m Mode) {
	for i, on := range f {
		r.board.SetLED(i, on)
	}
	if r.onFrame != nil {
		r.onFrame(f, m)
	}
}
