package preview

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOpen_DeviceUnavailable(t *testing.T) {
	m, err := Open(Source{DevicePath: filepath.Join(t.TempDir(), "card0")}, Config{})
	assert.Nil(t, m)
	assert.ErrorIs(t, err, ErrDeviceUnavailable)

	m, err = Open(Source{LeaseSocket: filepath.Join(t.TempDir(), "lease.sock")}, Config{})
	assert.Nil(t, m)
	assert.ErrorIs(t, err, ErrDeviceUnavailable)
}
