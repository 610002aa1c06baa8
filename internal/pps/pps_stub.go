//go:build !linux

package pps

import "fmt"

// Monitor is unavailable off Linux; Open always fails.
type Monitor struct{}

func Open(pin int) (*Monitor, error) {
	return nil, fmt.Errorf("pps: gpio not supported on this platform")
}

func (m *Monitor) Snapshot() Snapshot { return Snapshot{} }

func (m *Monitor) Close() error { return nil }
