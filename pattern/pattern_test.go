package pattern

import (
	"testing"
	"time"
)

func frameToBits(f Frame) uint8 {
	var v uint8
	for i, on := range f {
		if on {
			v |= 1 << i
		}
	}
	return v
}

func TestChaseOneHotWithPeriodFour(t *testing.T) {
	c := NewChase(time.Millisecond)

	for step := 0; step < 12; step++ {
		f := c.Next()

		lit := -1
		count := 0
		for i, on := range f {
			if on {
				lit = i
				count++
			}
		}
		if count != 1 {
			t.Fatalf("step %d: %d LEDs lit, want exactly 1", step, count)
		}
		if want := step % Size; lit != want {
			t.Fatalf("step %d: LED %d lit, want %d", step, lit, want)
		}
	}
}

func TestChaseRetainsPosition(t *testing.T) {
	c := NewChase(time.Millisecond)

	c.Next() // position 0
	c.Next() // position 1

	// A new caller (as after a mode change) resumes at position 2.
	f := c.Next()
	if !f[2] {
		t.Fatalf("expected LED 2 lit after two prior steps, got %v", f)
	}
}

func TestBinaryCountsLowBits(t *testing.T) {
	b := NewBinary(time.Millisecond)

	for step := 0; step < 40; step++ {
		f := b.Next()
		if got, want := frameToBits(f), uint8(step%16); got != want {
			t.Fatalf("step %d: visible pattern %04b, want %04b", step, got, want)
		}
	}
}

func TestBinaryCounterWrapsAt256(t *testing.T) {
	b := NewBinary(time.Millisecond)

	for step := 0; step < 256; step++ {
		b.Next()
	}
	// The underlying counter has wrapped; the display starts over at 0.
	if got := frameToBits(b.Next()); got != 0 {
		t.Fatalf("after 256 steps, visible pattern %04b, want 0000", got)
	}
}

func TestBitsRendersBitIndexToLEDIndex(t *testing.T) {
	cases := []struct {
		v    uint8
		want Frame
	}{
		{0x0, Frame{false, false, false, false}},
		{0x1, Frame{true, false, false, false}},
		{0xA, Frame{false, true, false, true}},
		{0xF, Frame{true, true, true, true}},
		{0x1F, Frame{true, true, true, true}}, // only low 4 bits visible
	}
	for _, tc := range cases {
		if got := Bits(tc.v); got != tc.want {
			t.Errorf("Bits(%#x) = %v, want %v", tc.v, got, tc.want)
		}
	}
}
