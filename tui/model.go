package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"led-key/midi"
	"led-key/panel"
	"led-key/theme"
	"led-key/widgets"
)

type Model struct {
	Panel    *panel.Controller
	Devices  *midi.DeviceManager
	Theme    *theme.Theme
	quitting bool
	surface  string // connected surface ID ("" if none)
}

type UpdateMsg struct{}

type DeviceEventMsg midi.DeviceEvent

func NewModel(ctrl *panel.Controller, devices *midi.DeviceManager, th *theme.Theme) Model {
	return Model{
		Panel:   ctrl,
		Devices: devices,
		Theme:   th,
	}
}

func ListenForUpdates(ctrl *panel.Controller) tea.Cmd {
	return func() tea.Msg {
		<-ctrl.UpdateChan
		return UpdateMsg{}
	}
}

func ListenForDevices(devices *midi.DeviceManager) tea.Cmd {
	return func() tea.Msg {
		event := <-devices.Events()
		return DeviceEventMsg(event)
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		ListenForUpdates(m.Panel),
		ListenForDevices(m.Devices),
	)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case "1", "2", "3":
			idx := int(msg.String()[0] - '1')
			m.Panel.Press(idx)
		}

	case UpdateMsg:
		return m, ListenForUpdates(m.Panel)

	case DeviceEventMsg:
		event := midi.DeviceEvent(msg)
		if event.Type == midi.DeviceConnected && event.Controller != nil {
			m.surface = event.ID
			m.Panel.SetSurface(event.Controller)

			// Route pad presses from the surface to the panel.
			go func() {
				for pad := range event.Controller.PadEvents() {
					m.Panel.HandlePad(pad.Row, pad.Col)
				}
			}()
		} else if event.Type == midi.DeviceDisconnected {
			if m.surface == event.ID {
				m.surface = ""
				m.Panel.SetSurface(nil)
			}
		}
		return m, ListenForDevices(m.Devices)
	}

	return m, nil
}

// modeRole maps a mode to its theme color role.
func modeRole(mode panel.Mode) float64 {
	switch mode {
	case panel.ModeChase:
		return theme.RoleAccent
	case panel.ModeBinary:
		return theme.RoleGo
	default:
		return theme.RoleAlert
	}
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	mode := m.Panel.Mode()
	frame := m.Panel.Frame()

	headerStyle := lipgloss.NewStyle().Foreground(m.Theme.Accent())
	dimStyle := lipgloss.NewStyle().Foreground(m.Theme.Muted())
	sectionStyle := lipgloss.NewStyle().Foreground(m.Theme.FG())

	surfaceStatus := ""
	if m.surface != "" {
		surfaceStatus = "  LP:X"
	}
	header := headerStyle.Render(fmt.Sprintf("led-key  board:%s  mode:%s%s", m.Panel.BoardName(), mode, surfaceStatus))

	// LED row
	litColor := m.Theme.RGB(modeRole(mode))
	darkColor := m.Theme.RGB(theme.RoleMuted)
	var leds []widgets.Pad
	for i, on := range frame {
		p := widgets.Pad{
			Symbol: m.Theme.Symbols.LEDOff,
			Color:  darkColor,
			Label:  fmt.Sprintf("LED%d", i+1),
		}
		if on {
			p.Symbol = m.Theme.Symbols.LEDOn
			p.Color = litColor
		}
		leds = append(leds, p)
	}

	// Button row
	buttonModes := []panel.Mode{panel.ModeChase, panel.ModeBinary, panel.ModeOff}
	var buttons []widgets.Pad
	for i, bm := range buttonModes {
		color := darkColor
		if bm == mode {
			color = m.Theme.RGB(modeRole(bm))
		}
		buttons = append(buttons, widgets.Pad{
			Symbol: m.Theme.Symbols.Button,
			Color:  color,
			Label:  fmt.Sprintf("%d:%s", i+1, bm),
		})
	}

	// Recent events
	var events []string
	for _, line := range m.Panel.Events() {
		events = append(events, dimStyle.Render(line))
	}
	if len(events) == 0 {
		events = append(events, dimStyle.Render("press a button to switch modes"))
	}

	help := widgets.RenderKeyHelp([]widgets.KeySection{
		{Keys: []widgets.KeyBinding{
			{Key: "1", Desc: "chase mode"},
			{Key: "2", Desc: "binary-count mode"},
			{Key: "3", Desc: "all off"},
			{Key: "q", Desc: "quit"},
		}},
	})

	var out strings.Builder
	out.WriteString("\n " + header + "\n\n")
	out.WriteString(indent(widgets.RenderRow(leds)) + "\n\n")
	out.WriteString(indent(widgets.RenderRow(buttons)) + "\n\n")
	out.WriteString(" " + sectionStyle.Render("events") + "\n")
	out.WriteString(indent(strings.Join(events, "\n")) + "\n\n")
	out.WriteString(dimStyle.Render(help) + "\n")
	return out.String()
}

func indent(s string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = " " + l
	}
	return strings.Join(lines, "\n")
}
