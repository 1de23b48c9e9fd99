package preview

import (
	"fmt"

	"github.com/helixml/helix-preview/api/pkg/drm"
)

var _ Device = (*drm.Card)(nil)

// Open obtains the device described by src and constructs a Manager on it.
func Open(src Source, cfg Config) (*Manager, error) {
	var (
		card *drm.Card
		err  error
	)
	if src.LeaseSocket != "" {
		card, err = drm.OpenLease(src.LeaseSocket, src.LeaseWidth, src.LeaseHeight)
	} else {
		card, err = drm.Open(src.DevicePath)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDeviceUnavailable, err)
	}

	cfg.Logger.Debug().Str("device", card.Name()).Msg("display device opened")
	return New(card, cfg)
}
