//go:build linux

package main

import (
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/warthog618/go-gpiocdev"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		return
	}

	switch os.Args[1] {
	case "list":
		listChips()
	case "blink":
		blink(os.Args[2:])
	case "buttons":
		buttons(os.Args[2:])
	default:
		usage()
	}
}

func usage() {
	fmt.Println("GPIO bring-up tool")
	fmt.Println("")
	fmt.Println("Commands:")
	fmt.Println("  list                           - list gpiochips and line counts")
	fmt.Println("  blink [chip [offsets]]         - walk the LED lines (default gpiochip0 17,27,22,23)")
	fmt.Println("  buttons [chip [offsets]]       - report debounced presses (default gpiochip0 5,6,13)")
}

func listChips() {
	chips := gpiocdev.Chips()
	if len(chips) == 0 {
		fmt.Println("no gpiochips found")
		return
	}
	for _, name := range chips {
		c, err := gpiocdev.NewChip(name)
		if err != nil {
			fmt.Printf("  %s: %v\n", name, err)
			continue
		}
		fmt.Printf("  %s: %d lines (%s)\n", name, c.Lines(), c.Label)
		c.Close()
	}
}

func parseArgs(args []string, defChip string, defOffsets []int) (string, []int) {
	chip := defChip
	offsets := defOffsets
	if len(args) > 0 {
		chip = args[0]
	}
	if len(args) > 1 {
		offsets = nil
		for _, f := range strings.Split(args[1], ",") {
			n, err := strconv.Atoi(strings.TrimSpace(f))
			if err != nil {
				fmt.Printf("bad offset %q: %v\n", f, err)
				os.Exit(1)
			}
			offsets = append(offsets, n)
		}
	}
	return chip, offsets
}

func quitChan() chan os.Signal {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	return quit
}

// blink walks the LED lines one at a time until interrupted.
func blink(args []string) {
	chip, offsets := parseArgs(args, "gpiochip0", []int{17, 27, 22, 23})

	var lines []*gpiocdev.Line
	for _, offset := range offsets {
		l, err := gpiocdev.RequestLine(chip, offset, gpiocdev.AsOutput(0))
		if err != nil {
			fmt.Printf("request %s:%d: %v\n", chip, offset, err)
			os.Exit(1)
		}
		// revert to input on the way out
		defer func(l *gpiocdev.Line) {
			l.Reconfigure(gpiocdev.AsInput)
			l.Close()
		}(l)
		lines = append(lines, l)
	}

	quit := quitChan()
	defer signal.Stop(quit)

	fmt.Printf("walking %d LEDs on %s (ctrl-c to stop)\n", len(lines), chip)
	pos := 0
	for {
		select {
		case <-time.After(150 * time.Millisecond):
			for i, l := range lines {
				v := 0
				if i == pos {
					v = 1
				}
				l.SetValue(v)
			}
			pos = (pos + 1) % len(lines)
		case <-quit:
			return
		}
	}
}

// buttons polls the button lines and reports debounced presses, using the
// same 10ms poll / 20ms confirm the panel scanner uses.
func buttons(args []string) {
	chip, offsets := parseArgs(args, "gpiochip0", []int{5, 6, 13})

	var lines []*gpiocdev.Line
	for _, offset := range offsets {
		l, err := gpiocdev.RequestLine(chip, offset, gpiocdev.AsInput, gpiocdev.WithPullUp)
		if err != nil {
			fmt.Printf("request %s:%d: %v\n", chip, offset, err)
			os.Exit(1)
		}
		defer l.Close()
		lines = append(lines, l)
	}

	quit := quitChan()
	defer signal.Stop(quit)

	fmt.Printf("watching %d buttons on %s (ctrl-c to stop)\n", len(lines), chip)

	last := make([]int, len(lines))
	for i := range last {
		last[i] = 1
	}

	for {
		select {
		case <-time.After(10 * time.Millisecond):
			for i, l := range lines {
				v, err := l.Value()
				if err != nil {
					continue
				}
				if last[i] == 1 && v == 0 {
					time.Sleep(20 * time.Millisecond)
					if confirmed, err := l.Value(); err == nil && confirmed == 0 {
						fmt.Printf("button %d pressed (%s:%d)\n", i+1, chip, offsets[i])
					}
				}
				last[i] = v
			}
		case <-quit:
			return
		}
	}
}
