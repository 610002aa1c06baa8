//go:build linux

package pps

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/warthog618/go-gpiocdev"
)

// Monitor counts rising edges on a PPS GPIO line via the Linux GPIO
// character device.
type Monitor struct {
	pin int

	mu        sync.Mutex
	pulses    uint64
	lastPulse time.Time

	chip *gpiocdev.Chip
	line *gpiocdev.Line
}

// Open requests the PPS line as an edge-triggered input. On Pi-style
// boards the header line is named "GPIO<n>"; likely chips are tried first
// and the rest of /dev/gpiochip* after.
func Open(pin int) (*Monitor, error) {
	if pin <= 0 {
		return nil, fmt.Errorf("pps: invalid gpio pin %d", pin)
	}
	lineName := fmt.Sprintf("GPIO%d", pin)

	chipCandidates := []string{"/dev/gpiochip0", "/dev/gpiochip4"}
	entries, _ := os.ReadDir("/dev")
	for _, e := range entries {
		name := e.Name()
		if strings.HasPrefix(name, "gpiochip") {
			chipCandidates = append(chipCandidates, filepath.Join("/dev", name))
		}
	}

	m := &Monitor{pin: pin}
	for _, chipPath := range chipCandidates {
		chip, err := gpiocdev.NewChip(chipPath)
		if err != nil {
			continue
		}
		offset, err := chip.FindLine(lineName)
		if err != nil {
			_ = chip.Close()
			continue
		}
		line, err := chip.RequestLine(offset,
			gpiocdev.AsInput,
			gpiocdev.WithRisingEdge,
			gpiocdev.WithEventHandler(m.onEvent),
			gpiocdev.WithConsumer("gnssrx-pps"))
		if err != nil {
			_ = chip.Close()
			continue
		}
		m.chip = chip
		m.line = line
		return m, nil
	}
	return nil, fmt.Errorf("pps: gpio line %q not found (or busy)", lineName)
}

func (m *Monitor) onEvent(evt gpiocdev.LineEvent) {
	if evt.Type != gpiocdev.LineEventRisingEdge {
		return
	}
	m.mu.Lock()
	m.pulses++
	m.lastPulse = time.Now().UTC()
	m.mu.Unlock()
}

func (m *Monitor) Snapshot() Snapshot {
	if m == nil {
		return Snapshot{}
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	out := Snapshot{Enabled: true, Pin: m.pin, Pulses: m.pulses}
	if !m.lastPulse.IsZero() {
		out.LastPulseUTC = m.lastPulse.Format(time.RFC3339Nano)
	}
	return out
}

func (m *Monitor) Close() error {
	if m == nil {
		return nil
	}
	var err1, err2 error
	if m.line != nil {
		err1 = m.line.Close()
		m.line = nil
	}
	if m.chip != nil {
		err2 = m.chip.Close()
		m.chip = nil
	}
	if err1 != nil {
		return err1
	}
	return err2
}
