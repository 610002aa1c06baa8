// Package serial opens GNSS receiver serial devices in raw mode for NMEA
// reading. Only Linux is supported; other platforms get a stub error.
package serial

import (
	"fmt"
	"os"
)

// AutoDetect returns the first present USB serial device a GNSS receiver
// typically enumerates as, or "" when none exists. Kept intentionally tiny
// and predictable.
func AutoDetect() string {
	candidates := make([]string, 0, 20)
	for i := 0; i < 10; i++ {
		candidates = append(candidates, fmt.Sprintf("/dev/ttyACM%d", i))
	}
	for i := 0; i < 10; i++ {
		candidates = append(candidates, fmt.Sprintf("/dev/ttyUSB%d", i))
	}
	for _, p := range candidates {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}
