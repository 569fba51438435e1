package panel

import (
	"context"
	"testing"
	"time"

	"led-key/board"
	"led-key/pattern"
)

// testTimings keep the tests fast while preserving the poll < debounce <
// frame-period ordering of the stock values.
func testTimings() Timings {
	return Timings{
		Poll:     2 * time.Millisecond,
		Debounce: 10 * time.Millisecond,
		Off:      5 * time.Millisecond,
		Chase:    10 * time.Millisecond,
		Binary:   10 * time.Millisecond,
	}
}

func waitFor(t *testing.T, what string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatalf("timed out waiting for %s", what)
		}
		time.Sleep(time.Millisecond)
	}
}

func TestCellDefaultsToOff(t *testing.T) {
	var c Cell
	if got := c.Load(); got != ModeOff {
		t.Fatalf("zero cell holds %v, want off", got)
	}

	c.Store(ModeChase)
	if got := c.Load(); got != ModeChase {
		t.Fatalf("cell holds %v after store, want chase", got)
	}
}

func TestModeStrings(t *testing.T) {
	cases := map[Mode]string{
		ModeOff:    "off",
		ModeChase:  "chase",
		ModeBinary: "binary-count",
	}
	for m, want := range cases {
		if got := m.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", m, got, want)
		}
	}
}

func TestScannerConfirmsHeldPress(t *testing.T) {
	sim := board.NewSim()
	var cell Cell
	s := NewScanner(sim, &cell, testTimings(), nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go s.Run(ctx)

	sim.SetButton(0, false) // button 1: chase
	waitFor(t, "mode to become chase", func() bool {
		return cell.Load() == ModeChase
	})
	sim.SetButton(0, true)
}

func TestScannerIgnoresGlitch(t *testing.T) {
	sim := board.NewSim()
	var cell Cell
	tm := testTimings()
	tm.Debounce = 50 * time.Millisecond // wide margin so the release always lands inside it
	s := NewScanner(sim, &cell, tm, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go s.Run(ctx)

	// Level drops and bounces back well inside the debounce window, so the
	// confirm re-read must see it high again and change nothing.
	sim.Press(1, 5*time.Millisecond)

	time.Sleep(100 * time.Millisecond)
	if got := cell.Load(); got != ModeOff {
		t.Fatalf("glitch changed mode to %v, want off", got)
	}
}

func TestScannerLastConfirmedEdgeWins(t *testing.T) {
	sim := board.NewSim()
	var cell Cell
	s := NewScanner(sim, &cell, testTimings(), nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go s.Run(ctx)

	// Both buttons fall in the same sampling window. Both confirm in index
	// order within one iteration, so button 2's mode lands last.
	sim.SetButton(0, false)
	sim.SetButton(1, false)

	waitFor(t, "mode to settle on binary-count", func() bool {
		return cell.Load() == ModeBinary
	})

	sim.SetButton(0, true)
	sim.SetButton(1, true)

	// A later press of button 3 still wins over everything before it.
	sim.SetButton(2, false)
	waitFor(t, "mode to become off", func() bool {
		return cell.Load() == ModeOff
	})
}

func TestRendererOffForcesAllLow(t *testing.T) {
	sim := board.NewSim()
	sim.SetLED(0, true)
	sim.SetLED(3, true)

	var cell Cell
	frames := make(chan pattern.Frame, 64)
	r := NewRenderer(sim, &cell, testTimings(), func(f pattern.Frame, m Mode) {
		select {
		case frames <- f:
		default:
		}
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go r.Run(ctx)

	<-frames
	if leds := sim.LEDs(); leds != ([board.NumLEDs]bool{}) {
		t.Fatalf("LEDs %v after off render, want all low", leds)
	}

	// And they stay low on every subsequent render.
	for i := 0; i < 5; i++ {
		if f := <-frames; f != (pattern.Frame{}) {
			t.Fatalf("off mode produced frame %v, want all low", f)
		}
	}
}

func TestRendererChaseAdvances(t *testing.T) {
	sim := board.NewSim()
	var cell Cell
	cell.Store(ModeChase)

	frames := make(chan pattern.Frame, 64)
	r := NewRenderer(sim, &cell, testTimings(), func(f pattern.Frame, m Mode) {
		frames <- f
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go r.Run(ctx)

	for want := 0; want < 8; want++ {
		f := <-frames
		lit := -1
		for i, on := range f {
			if on {
				if lit >= 0 {
					t.Fatalf("frame %d has multiple LEDs lit: %v", want, f)
				}
				lit = i
			}
		}
		if lit != want%pattern.Size {
			t.Fatalf("frame %d lights LED %d, want %d", want, lit, want%pattern.Size)
		}
	}
}

func TestRendererBinaryCounts(t *testing.T) {
	sim := board.NewSim()
	var cell Cell
	cell.Store(ModeBinary)

	frames := make(chan pattern.Frame, 64)
	r := NewRenderer(sim, &cell, testTimings(), func(f pattern.Frame, m Mode) {
		frames <- f
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go r.Run(ctx)

	for step := 0; step < 20; step++ {
		f := <-frames
		var got uint8
		for i, on := range f {
			if on {
				got |= 1 << i
			}
		}
		if want := uint8(step % 16); got != want {
			t.Fatalf("step %d shows %04b, want %04b", step, got, want)
		}
	}
}

// Any interleaving of the two tasks must only ever produce frames that are
// consistent with a single mode: chase frames one-hot, off frames dark.
func TestConcurrentModeFlipsNeverTearFrames(t *testing.T) {
	sim := board.NewSim()
	var cell Cell

	type render struct {
		frame pattern.Frame
		mode  Mode
	}
	frames := make(chan render, 256)
	r := NewRenderer(sim, &cell, testTimings(), func(f pattern.Frame, m Mode) {
		select {
		case frames <- render{f, m}:
		default:
		}
	})

	ctx, cancel := context.WithCancel(context.Background())
	go r.Run(ctx)

	modes := []Mode{ModeOff, ModeChase, ModeBinary}
	for i := 0; i < 50; i++ {
		cell.Store(modes[i%len(modes)])
		time.Sleep(3 * time.Millisecond)
	}
	cancel()
	time.Sleep(20 * time.Millisecond)

	for {
		var got render
		select {
		case got = <-frames:
		default:
			return
		}
		switch got.mode {
		case ModeOff:
			if got.frame != (pattern.Frame{}) {
				t.Fatalf("off frame not dark: %v", got.frame)
			}
		case ModeChase:
			lit := 0
			for _, on := range got.frame {
				if on {
					lit++
				}
			}
			if lit != 1 {
				t.Fatalf("chase frame not one-hot: %v", got.frame)
			}
		}
	}
}

func TestControllerEndToEnd(t *testing.T) {
	sim := board.NewSim()
	ctrl := New(sim, testTimings())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ctrl.Start(ctx)

	if got := ctrl.Mode(); got != ModeOff {
		t.Fatalf("initial mode %v, want off", got)
	}
	waitFor(t, "initial dark frame", func() bool {
		return ctrl.Frame() == pattern.Frame{}
	})

	ctrl.Press(0) // button 1: chase
	waitFor(t, "mode to become chase", func() bool {
		return ctrl.Mode() == ModeChase
	})
	waitFor(t, "a lit frame", func() bool {
		return ctrl.Frame() != pattern.Frame{}
	})

	if events := ctrl.Events(); len(events) == 0 {
		t.Error("no diagnostic events after a confirmed press")
	}
}

func TestControllerHandlePadRoutesButtons(t *testing.T) {
	sim := board.NewSim()
	ctrl := New(sim, testTimings())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ctrl.Start(ctx)

	// Pad in the control row, col 1 -> button 2 -> binary count.
	ctrl.HandlePad(surfaceButtonRow, 1)
	waitFor(t, "mode to become binary-count", func() bool {
		return ctrl.Mode() == ModeBinary
	})

	// Grid pads outside the button row are ignored.
	ctrl.HandlePad(3, 3)
	time.Sleep(50 * time.Millisecond)
	if got := ctrl.Mode(); got != ModeBinary {
		t.Fatalf("grid pad changed mode to %v", got)
	}
}
