package config

import (
	"github.com/kelseyhightower/envconfig"
)

type PreviewConfig struct {
	Device Device
	Lease  Lease
	Log    Log
}

func LoadPreviewConfig() (PreviewConfig, error) {
	var cfg PreviewConfig
	err := envconfig.Process("", &cfg)
	if err != nil {
		return PreviewConfig{}, err
	}
	return cfg, nil
}

type Device struct {
	Path string `envconfig:"DRM_DEVICE" default:"/dev/dri/card0" description:"DRM device node to open when no lease socket is configured."`

	// Lists primary and cursor planes alongside overlays. Needed on drivers
	// that expose few or no overlay planes.
	UniversalPlanes bool `envconfig:"DRM_UNIVERSAL_PLANES" default:"false"`

	// Sets the CRTC to the connector's preferred mode with a black background
	// before the first plane is shown.
	ActivateOutput bool `envconfig:"DRM_ACTIVATE_OUTPUT" default:"true"`
}

// Lease configures acquisition of the display through a DRM lease manager
// instead of opening the device node directly.
type Lease struct {
	Socket string `envconfig:"DRM_LEASE_SOCKET" description:"Unix socket of the lease manager. Empty opens DRM_DEVICE."`
	Width  uint32 `envconfig:"DRM_LEASE_WIDTH" default:"1920"`
	Height uint32 `envconfig:"DRM_LEASE_HEIGHT" default:"1080"`
}

type Log struct {
	Level string `envconfig:"LOG_LEVEL" default:"info" description:"One of trace, debug, info, warn, error."`
}
