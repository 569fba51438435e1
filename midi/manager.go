package midi

import (
	"context"
	"strings"
	"sync"
	"time"

	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // Register MIDI driver

	"led-key/debug"
)

// DeviceEvent is emitted when a controller connects or disconnects.
type DeviceEvent struct {
	Type       DeviceEventType
	Controller Controller
	ID         string
}

type DeviceEventType int

const (
	DeviceConnected DeviceEventType = iota
	DeviceDisconnected
)

// DeviceManager polls the MIDI ports and hot-plugs Launchpads.
type DeviceManager struct {
	mu          sync.Mutex
	controllers map[string]Controller
	events      chan DeviceEvent
	pollRate    time.Duration
}

// NewDeviceManager creates a device manager polling once per second.
func NewDeviceManager() *DeviceManager {
	return &DeviceManager{
		controllers: make(map[string]Controller),
		events:      make(chan DeviceEvent, 16),
		pollRate:    time.Second,
	}
}

// Events returns the connect/disconnect event channel.
func (dm *DeviceManager) Events() <-chan DeviceEvent {
	return dm.events
}

// Run polls until ctx is cancelled (blocking - run in a goroutine).
func (dm *DeviceManager) Run(ctx context.Context) {
	ticker := time.NewTicker(dm.pollRate)
	defer ticker.Stop()

	dm.scan()

	for {
		select {
		case <-ctx.Done():
			dm.closeAll()
			close(dm.events)
			return
		case <-ticker.C:
			dm.scan()
		}
	}
}

func (dm *DeviceManager) scan() {
	inPorts, outPorts, ok := listPorts()
	if !ok {
		// CoreMIDI can hang; skip this scan rather than block forever.
		debug.Log("midi", "port scan timed out")
		return
	}

	seen := make(map[string]bool)

	for i, inPort := range inPorts {
		if !isLaunchpad(inPort.String()) {
			continue
		}
		id := inPort.String()
		seen[id] = true

		dm.mu.Lock()
		_, exists := dm.controllers[id]
		dm.mu.Unlock()
		if exists {
			continue
		}

		var outPort drivers.Out
		for j, op := range outPorts {
			if strings.EqualFold(op.String(), id) {
				outPort = outPorts[j]
				break
			}
		}

		lp, err := NewLaunchpad(id, inPorts[i], outPort)
		if err != nil {
			debug.Log("midi", "connect %q: %v", id, err)
			continue
		}

		dm.mu.Lock()
		dm.controllers[id] = lp
		dm.mu.Unlock()
		debug.Log("midi", "connected %q", id)
		dm.events <- DeviceEvent{Type: DeviceConnected, Controller: lp, ID: id}
	}

	// Anything we held that is no longer listed has been unplugged.
	dm.mu.Lock()
	var gone []string
	for id := range dm.controllers {
		if !seen[id] {
			gone = append(gone, id)
		}
	}
	for _, id := range gone {
		dm.controllers[id].Close()
		delete(dm.controllers, id)
	}
	dm.mu.Unlock()

	for _, id := range gone {
		debug.Log("midi", "disconnected %q", id)
		dm.events <- DeviceEvent{Type: DeviceDisconnected, ID: id}
	}
}

// listPorts fetches the port lists with a timeout.
func listPorts() ([]drivers.In, []drivers.Out, bool) {
	type result struct {
		ins  []drivers.In
		outs []drivers.Out
	}
	ch := make(chan result, 1)
	go func() {
		ch <- result{ins: gomidi.GetInPorts(), outs: gomidi.GetOutPorts()}
	}()

	select {
	case r := <-ch:
		return r.ins, r.outs, true
	case <-time.After(3 * time.Second):
		return nil, nil, false
	}
}

func (dm *DeviceManager) closeAll() {
	dm.mu.Lock()
	defer dm.mu.Unlock()
	for _, c := range dm.controllers {
		c.Close()
	}
	dm.controllers = make(map[string]Controller)
}

func isLaunchpad(name string) bool {
	name = strings.ToLower(name)
	return strings.Contains(name, "launchpad") && strings.Contains(name, "midi")
}
