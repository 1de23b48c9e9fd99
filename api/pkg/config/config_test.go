package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadPreviewConfig_Defaults(t *testing.T) {
	cfg, err := LoadPreviewConfig()
	require.NoError(t, err)

	assert.Equal(t, "/dev/dri/card0", cfg.Device.Path)
	assert.False(t, cfg.Device.UniversalPlanes)
	assert.True(t, cfg.Device.ActivateOutput)
	assert.Empty(t, cfg.Lease.Socket)
	assert.Equal(t, uint32(1920), cfg.Lease.Width)
	assert.Equal(t, uint32(1080), cfg.Lease.Height)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadPreviewConfig_Environment(t *testing.T) {
	t.Setenv("DRM_DEVICE", "/dev/dri/card1")
	t.Setenv("DRM_UNIVERSAL_PLANES", "true")
	t.Setenv("DRM_ACTIVATE_OUTPUT", "false")
	t.Setenv("DRM_LEASE_SOCKET", "/run/helix/drm-lease.sock")
	t.Setenv("DRM_LEASE_WIDTH", "2560")
	t.Setenv("DRM_LEASE_HEIGHT", "1440")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := LoadPreviewConfig()
	require.NoError(t, err)

	assert.Equal(t, "/dev/dri/card1", cfg.Device.Path)
	assert.True(t, cfg.Device.UniversalPlanes)
	assert.False(t, cfg.Device.ActivateOutput)
	assert.Equal(t, "/run/helix/drm-lease.sock", cfg.Lease.Socket)
	assert.Equal(t, uint32(2560), cfg.Lease.Width)
	assert.Equal(t, uint32(1440), cfg.Lease.Height)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadPreviewConfig_Invalid(t *testing.T) {
	t.Setenv("DRM_LEASE_WIDTH", "wide")

	_, err := LoadPreviewConfig()
	assert.Error(t, err)
}
