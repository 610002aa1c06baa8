//go:build linux

package serial

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"golang.org/x/sys/unix"
)

func TestBaudToUnix(t *testing.T) {
	spd, err := baudToUnix(9600)
	assert.NoError(t, err)
	assert.Equal(t, uint32(unix.B9600), spd)

	_, err = baudToUnix(31250)
	assert.Error(t, err)
}

func TestOpen_MissingDevice(t *testing.T) {
	_, err := Open("/dev/does-not-exist", 9600)
	assert.Error(t, err)
}
