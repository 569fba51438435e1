package board

import (
	"testing"
	"time"
)

func TestSimDefaults(t *testing.T) {
	s := NewSim()

	for i := 0; i < NumButtons; i++ {
		if !s.Button(i) {
			t.Errorf("button %d: level low at rest, want high (pull-up)", i)
		}
	}
	for i, on := range s.LEDs() {
		if on {
			t.Errorf("LED %d on at rest, want off", i)
		}
	}
}

func TestSimSetLED(t *testing.T) {
	s := NewSim()

	s.SetLED(2, true)
	leds := s.LEDs()
	if !leds[2] {
		t.Error("LED 2 off after SetLED(2, true)")
	}
	if leds[0] || leds[1] || leds[3] {
		t.Errorf("other LEDs changed: %v", leds)
	}

	// out of range is a no-op
	s.SetLED(-1, true)
	s.SetLED(NumLEDs, true)
}

func TestSimPressHoldsThenReleases(t *testing.T) {
	s := NewSim()

	s.Press(1, 50*time.Millisecond)
	if s.Button(1) {
		t.Fatal("button 1 still high immediately after Press")
	}

	deadline := time.Now().Add(time.Second)
	for !s.Button(1) {
		if time.Now().After(deadline) {
			t.Fatal("button 1 never released")
		}
		time.Sleep(5 * time.Millisecond)
	}
}
