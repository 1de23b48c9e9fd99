package preview

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/helixml/helix-preview/api/pkg/drm"
)

// DisplayTarget is the output chosen at construction. The connector and CRTC
// stay fixed; Width and Height follow the mode ActivateOutput programs.
type DisplayTarget struct {
	ConnectorID uint32
	CrtcID      uint32
	// CrtcIndex is the CRTC's position in the resource list and its bit in
	// plane possible_crtcs masks.
	CrtcIndex int
	Width     uint32
	Height    uint32
	Modes     []drm.ModeInfo
}

// discover picks the first connector, in device order, whose current encoder
// drives a CRTC, and records that CRTC's resolution.
func discover(dev Device, log zerolog.Logger) (*DisplayTarget, error) {
	res, err := dev.Resources()
	if err != nil {
		return nil, fmt.Errorf("get display resources: %w", err)
	}
	if len(res.Crtcs) == 0 {
		return nil, fmt.Errorf("%w: no CRTCs", ErrNotFound)
	}

	log.Debug().
		Int("connectors", len(res.Connectors)).
		Int("crtcs", len(res.Crtcs)).
		Msg("no connector specified, choosing the first one with an active CRTC")

	var (
		chosen *drm.Connector
		crtc   *drm.Crtc
	)
	for _, connectorID := range res.Connectors {
		conn, err := dev.Connector(connectorID)
		if err != nil {
			return nil, fmt.Errorf("get connector %d: %w", connectorID, err)
		}

		active, err := activeCrtc(dev, conn)
		if err != nil {
			return nil, err
		}

		event := log.Debug().
			Uint32("connector_id", conn.ID).
			Uint32("connector_type", conn.Type)
		if active != nil {
			event = event.
				Uint32("crtc_id", active.ID).
				Uint32("width", active.Width).
				Uint32("height", active.Height)
		}
		event.Bool("chosen", active != nil).Msg("connector")

		if active != nil {
			chosen, crtc = conn, active
			break
		}
	}

	if chosen == nil {
		return nil, fmt.Errorf("%w: no connector with an active CRTC", ErrNotFound)
	}

	index, ok := res.CrtcIndex(crtc.ID)
	if !ok {
		return nil, fmt.Errorf("%w: CRTC %d not in resource list", ErrNotFound, crtc.ID)
	}

	if len(chosen.Modes) == 0 {
		return nil, fmt.Errorf("%w: connector %d supports no mode", ErrNotFound, chosen.ID)
	}

	return &DisplayTarget{
		ConnectorID: chosen.ID,
		CrtcID:      crtc.ID,
		CrtcIndex:   index,
		Width:       crtc.Width,
		Height:      crtc.Height,
		Modes:       chosen.Modes,
	}, nil
}

// activeCrtc resolves connector -> encoder -> CRTC. It returns nil without an
// error when the connector is not currently driven.
func activeCrtc(dev Device, conn *drm.Connector) (*drm.Crtc, error) {
	if conn.EncoderID == 0 {
		return nil, nil
	}
	enc, err := dev.Encoder(conn.EncoderID)
	if err != nil {
		return nil, fmt.Errorf("get encoder %d: %w", conn.EncoderID, err)
	}
	if enc.CrtcID == 0 {
		return nil, nil
	}
	crtc, err := dev.Crtc(enc.CrtcID)
	if err != nil {
		return nil, fmt.Errorf("get CRTC %d: %w", enc.CrtcID, err)
	}
	return crtc, nil
}
