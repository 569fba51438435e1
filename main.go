package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"led-key/board"
	"led-key/config"
	"led-key/debug"
	"led-key/midi"
	"led-key/panel"
	"led-key/theme"
	"led-key/tui"
)

func main() {
	debugFlag := flag.Bool("debug", false, "log diagnostics to ~/.config/led-key/debug.log")
	backendFlag := flag.String("board", "", "board backend override (sim or gpio)")
	flag.Parse()

	if *debugFlag {
		if err := debug.Enable(); err != nil {
			fmt.Printf("debug log: %v\n", err)
		}
		defer debug.Disable()
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("config: %v\n", err)
		os.Exit(1)
	}
	if *backendFlag != "" {
		cfg.Board.Backend = config.Backend(*backendFlag)
	}

	// Theme
	palette := theme.Default()
	if cfg.UI.Palette != "" {
		if p, err := theme.LoadGPL(cfg.UI.Palette); err == nil {
			palette = p
		} else {
			fmt.Printf("palette %s: %v (using built-in)\n", cfg.UI.Palette, err)
		}
	}
	th := theme.New(palette)

	// Board
	b, err := openBoard(cfg)
	if err != nil {
		fmt.Printf("open board: %v\n", err)
		os.Exit(1)
	}
	defer b.Close()

	ctrl := panel.New(b, timings(cfg.Timings))

	deviceMgr := midi.NewDeviceManager()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if cfg.Surface.AutoConnect {
		go deviceMgr.Run(ctx)
	}
	ctrl.Start(ctx)

	m := tui.NewModel(ctrl, deviceMgr, th)
	p := tea.NewProgram(m, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

func openBoard(cfg *config.Config) (board.Board, error) {
	switch cfg.Board.Backend {
	case config.BackendGPIO:
		return board.OpenGPIO(board.GPIOConfig{
			Chip:    cfg.Board.Chip,
			LEDs:    cfg.Board.LEDs,
			Buttons: cfg.Board.Buttons,
		})
	case config.BackendSim, "":
		return board.NewSim(), nil
	default:
		return nil, fmt.Errorf("unknown board backend %q", cfg.Board.Backend)
	}
}

func timings(tc config.TimingConfig) panel.Timings {
	t := panel.DefaultTimings()
	if tc.PollMs > 0 {
		t.Poll = time.Duration(tc.PollMs) * time.Millisecond
	}
	if tc.DebounceMs > 0 {
		t.Debounce = time.Duration(tc.DebounceMs) * time.Millisecond
	}
	if tc.OffMs > 0 {
		t.Off = time.Duration(tc.OffMs) * time.Millisecond
	}
	if tc.ChaseMs > 0 {
		t.Chase = time.Duration(tc.ChaseMs) * time.Millisecond
	}
	if tc.BinaryMs > 0 {
		t.Binary = time.Duration(tc.BinaryMs) * time.Millisecond
	}
	return t
}
