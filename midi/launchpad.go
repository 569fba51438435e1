package midi

import (
	"fmt"

	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
)

// Launchpad handles a Novation Launchpad X in programmer mode.
type Launchpad struct {
	id       string
	inPort   drivers.In
	outPort  drivers.Out
	send     func(msg gomidi.Message) error
	stopFunc func()

	padChan chan PadEvent
}

var _ Controller = &Launchpad{}

// NewLaunchpad opens both ports and switches the device to programmer mode.
func NewLaunchpad(id string, inPort drivers.In, outPort drivers.Out) (*Launchpad, error) {
	lp := &Launchpad{
		id:      id,
		inPort:  inPort,
		outPort: outPort,
		padChan: make(chan PadEvent, 32),
	}

	if outPort != nil {
		send, err := gomidi.SendTo(outPort)
		if err != nil {
			return nil, fmt.Errorf("open output: %w", err)
		}
		lp.send = send

		// Programmer mode: F0 00 20 29 02 0C 00 7F F7
		lp.send(gomidi.SysEx([]byte{0x00, 0x20, 0x29, 0x02, 0x0C, 0x00, 0x7F}))
		// Brightness to maximum: F0 00 20 29 02 0C 08 <brightness> F7
		lp.send(gomidi.SysEx([]byte{0x00, 0x20, 0x29, 0x02, 0x0C, 0x08, 0x7F}))
	}

	if inPort != nil {
		stop, err := gomidi.ListenTo(inPort, func(msg gomidi.Message, timestampms int32) {
			var channel, note, velocity uint8
			var cc, value uint8

			// Grid pads arrive as notes, the top control row as CC.
			if msg.GetNoteOn(&channel, &note, &velocity) && velocity > 0 {
				if row, col := noteToRowCol(note); row >= 0 {
					lp.emit(PadEvent{Row: row, Col: col, Velocity: velocity})
				}
			}
			if msg.GetControlChange(&channel, &cc, &value) && value > 0 {
				if row, col := ccToRowCol(cc); row >= 0 {
					lp.emit(PadEvent{Row: row, Col: col, Velocity: value})
				}
			}
		})
		if err != nil {
			return nil, fmt.Errorf("open input: %w", err)
		}
		lp.stopFunc = stop
	}

	return lp, nil
}

func (lp *Launchpad) emit(e PadEvent) {
	select {
	case lp.padChan <- e:
	default:
		// drop if nobody is draining
	}
}

func (lp *Launchpad) ID() string {
	return lp.id
}

func (lp *Launchpad) PadEvents() <-chan PadEvent {
	return lp.padChan
}

func (lp *Launchpad) SetLED(row, col int, color uint8) error {
	if lp.send == nil {
		return nil
	}
	return lp.send(gomidi.NoteOn(0, rowColToNote(row, col), color))
}

// SetLEDBatch sends the updates as individual NoteOn messages. The caller's
// diffing keeps batches small, so SysEx batching isn't worth its quirks.
func (lp *Launchpad) SetLEDBatch(updates []LEDUpdate) error {
	if lp.send == nil {
		return nil
	}
	for _, u := range updates {
		if err := lp.send(gomidi.NoteOn(0, rowColToNote(u.Row, u.Col), u.Color)); err != nil {
			return err
		}
	}
	return nil
}

// Clear turns off the full 9x9 surface.
func (lp *Launchpad) Clear() error {
	if lp.send == nil {
		return nil
	}
	var updates []LEDUpdate
	for row := 0; row < 9; row++ {
		for col := 0; col < 9; col++ {
			if row == 8 && col == 8 {
				continue // no LED at 8,8
			}
			updates = append(updates, LEDUpdate{Row: row, Col: col, Color: ColorOff})
		}
	}
	return lp.SetLEDBatch(updates)
}

func (lp *Launchpad) Close() error {
	lp.Clear()
	if lp.stopFunc != nil {
		lp.stopFunc()
	}
	close(lp.padChan)
	return nil
}

// Launchpad X note mapping
// 8x8 Grid:  Row 0 (bottom) = notes 11-18, Row 7 = notes 81-88
// Top row:   Row 8 (control row) = CC 91-98 for input, notes 91-98 for LEDs

func rowColToNote(row, col int) uint8 {
	if row == 8 {
		return uint8(91 + col)
	}
	return uint8((row+1)*10 + col + 1)
}

func noteToRowCol(note uint8) (row, col int) {
	if note >= 91 && note <= 98 {
		return 8, int(note - 91)
	}
	row = int(note/10) - 1
	col = int(note%10) - 1
	if row < 0 || row > 7 || col < 0 || col > 7 {
		return -1, -1
	}
	return row, col
}

func ccToRowCol(cc uint8) (row, col int) {
	if cc >= 91 && cc <= 98 {
		return 8, int(cc - 91)
	}
	return -1, -1
}
