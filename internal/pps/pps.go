// Package pps watches a pulse-per-second GPIO line from a GNSS timing hat.
//
// Receivers with a fix discipline their PPS output to UTC second edges, so
// a steady pulse count is a cheap health signal for the rest of the stack.
// This package only observes the line; it does not discipline any clock.
package pps

// Snapshot is a point-in-time view of the monitor for status reporting.
type Snapshot struct {
	Enabled      bool   `json:"enabled"`
	Pin          int    `json:"pin,omitempty"`
	Pulses       uint64 `json:"pulses"`
	LastPulseUTC string `json:"last_pulse_utc,omitempty"`
}
