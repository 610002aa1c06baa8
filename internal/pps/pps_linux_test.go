//go:build linux

package pps

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOpen_InvalidPin(t *testing.T) {
	_, err := Open(0)
	assert.Error(t, err)
	_, err = Open(-3)
	assert.Error(t, err)
}

func TestSnapshot_NilMonitor(t *testing.T) {
	var m *Monitor
	assert.Equal(t, Snapshot{}, m.Snapshot())
	assert.NoError(t, m.Close())
}
