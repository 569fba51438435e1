package panel

import (
	"context"

	"led-key/board"
	"led-key/debug"
)

// buttonModes maps button index to the mode it selects:
// button 1 chase, button 2 binary count, button 3 off.
var buttonModes = [board.NumButtons]Mode{ModeChase, ModeBinary, ModeOff}

// Scanner polls the three buttons and writes confirmed presses to the cell.
//
// Each iteration samples all buttons once. A high-to-low transition is only
// acted on after the debounce delay if the line is still low on a re-read;
// a level that bounces back within the delay changes nothing. Previous
// samples update unconditionally at the end of the iteration, so two buttons
// falling in the same window both confirm, in index order, and the second
// write wins.
type Scanner struct {
	board    board.Board
	cell     *Cell
	timings  Timings
	last     [board.NumButtons]bool
	onChange func(Mode)
}

// NewScanner creates a scanner. onChange, if non-nil, is called after every
// confirmed press with the newly stored mode.
func NewScanner(b board.Board, cell *Cell, t Timings, onChange func(Mode)) *Scanner {
	s := &Scanner{
		board:    b,
		cell:     cell,
		timings:  t,
		onChange: onChange,
	}
	for i := range s.last {
		s.last[i] = true // pull-up: idle level is high
	}
	return s
}

// Run scans until ctx is cancelled.
func (s *Scanner) Run(ctx context.Context) {
	for {
		var cur [board.NumButtons]bool
		for i := range cur {
			cur[i] = s.board.Button(i)
		}

		for i, level := range cur {
			if !s.last[i] || level {
				continue // no falling edge
			}
			if !sleep(ctx, s.timings.Debounce) {
				return
			}
			if s.board.Button(i) {
				continue // bounced back up: glitch, ignore
			}
			m := buttonModes[i]
			s.cell.Store(m)
			debug.Log("key", "button %d confirmed, mode -> %s", i+1, m)
			if s.onChange != nil {
				s.onChange(m)
			}
		}

		s.last = cur
		if !sleep(ctx, s.timings.Poll) {
			return
		}
	}
}
