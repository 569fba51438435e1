package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Board.Backend != BackendSim {
		t.Errorf("default backend %q, want sim", cfg.Board.Backend)
	}
	if cfg.Timings.DebounceMs != 20 {
		t.Errorf("default debounce %dms, want 20", cfg.Timings.DebounceMs)
	}
	if cfg.Timings.PollMs != 10 || cfg.Timings.OffMs != 50 || cfg.Timings.ChaseMs != 150 || cfg.Timings.BinaryMs != 200 {
		t.Errorf("default timings %+v not the stock values", cfg.Timings)
	}
	if !cfg.Surface.AutoConnect {
		t.Error("surface auto-connect disabled by default")
	}
}

func TestLoadReturnsDefaultsWhenMissing(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Board.Backend != BackendSim {
		t.Errorf("backend %q from empty home, want sim", cfg.Board.Backend)
	}
}

func TestSaveThenLoadRoundTrip(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.Board.Backend = BackendGPIO
	cfg.Board.Chip = "gpiochip2"
	cfg.Board.LEDs = [4]int{1, 2, 3, 4}
	cfg.Timings.ChaseMs = 75

	if err := cfg.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Board.Backend != BackendGPIO || loaded.Board.Chip != "gpiochip2" {
		t.Errorf("board round-trip lost data: %+v", loaded.Board)
	}
	if loaded.Board.LEDs != ([4]int{1, 2, 3, 4}) {
		t.Errorf("LED lines round-trip lost data: %v", loaded.Board.LEDs)
	}
	if loaded.Timings.ChaseMs != 75 {
		t.Errorf("chase period %dms after round-trip, want 75", loaded.Timings.ChaseMs)
	}
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".config", "led-key")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.json"), []byte("{nope"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(); err == nil {
		t.Error("Load accepted malformed JSON")
	}
}
