package widgets

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Pad is one renderable cell: a symbol in a color.
type Pad struct {
	Symbol rune
	Color  [3]uint8
	Label  string
}

// RenderPad renders a single colored pad symbol
func RenderPad(p Pad) string {
	style := lipgloss.NewStyle().Foreground(lipgloss.Color(rgbToHex(p.Color)))
	return style.Render(string(p.Symbol))
}

// RenderRow renders pads side by side with their labels underneath, each
// symbol centered over its label.
func RenderRow(pads []Pad) string {
	width := 4
	for _, p := range pads {
		if len(p.Label) > width {
			width = len(p.Label)
		}
	}

	var symbols []string
	var labels []string
	for _, p := range pads {
		left := (width - 1) / 2
		right := width - 1 - left
		symbols = append(symbols, strings.Repeat(" ", left)+RenderPad(p)+strings.Repeat(" ", right))
		labels = append(labels, fmt.Sprintf("%-*s", width, p.Label))
	}
	return strings.Join(symbols, "  ") + "\n" + strings.Join(labels, "  ")
}

// RenderKeyHelp formats key bindings in a friendly way
func RenderKeyHelp(sections []KeySection) string {
	var lines []string
	for _, sec := range sections {
		if sec.Title != "" {
			lines = append(lines, sec.Title)
		}
		for _, k := range sec.Keys {
			lines = append(lines, fmt.Sprintf("  %-12s %s", k.Key, k.Desc))
		}
	}
	return strings.Join(lines, "\n")
}

// KeySection groups related key bindings
type KeySection struct {
	Title string
	Keys  []KeyBinding
}

// KeyBinding is a single key and its description
type KeyBinding struct {
	Key  string
	Desc string
}

func rgbToHex(c [3]uint8) string {
	return fmt.Sprintf("#%02x%02x%02x", c[0], c[1], c[2])
}
