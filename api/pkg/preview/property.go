package preview

import (
	"fmt"
	"strings"

	"github.com/helixml/helix-preview/api/pkg/drm"
)

// SetPlaneProperty writes an enum property of a plane, e.g. ("COLOR_ENCODING",
// "BT.709"). The property is the first enum whose name contains name, and
// the value the first of its entries whose name contains value.
//
// Failures are logged and returned wrapping ErrPropertyNotApplicable; they
// never affect buffers or planes.
func (m *Manager) SetPlaneProperty(planeID uint32, name, value string) error {
	log := m.log.With().
		Uint32("plane_id", planeID).
		Str("property", name).
		Str("value", value).
		Logger()

	propIDs, _, err := m.dev.ObjectProperties(planeID, drm.ObjectPlane)
	if err != nil {
		log.Warn().Err(err).Msg("failed to read plane properties")
		return fmt.Errorf("%w: %w", ErrPropertyNotApplicable, err)
	}

	for _, propID := range propIDs {
		prop, err := m.dev.Property(propID)
		if err != nil {
			continue
		}
		if !prop.IsEnum() || !strings.Contains(prop.Name, name) {
			continue
		}

		for _, e := range prop.Enums {
			if !strings.Contains(e.Name, value) {
				continue
			}
			if err := m.dev.SetObjectProperty(planeID, drm.ObjectPlane, propID, e.Value); err != nil {
				log.Warn().Err(err).Msg("failed to set property value")
				return fmt.Errorf("%w: set %s=%s: %w", ErrPropertyNotApplicable, prop.Name, e.Name, err)
			}
			log.Debug().Str("matched_property", prop.Name).Str("matched_value", e.Name).Msg("plane property set")
			return nil
		}

		log.Warn().Str("matched_property", prop.Name).Msg("failed to find property value")
		return fmt.Errorf("%w: %s has no value matching %q", ErrPropertyNotApplicable, prop.Name, value)
	}

	log.Warn().Msg("failed to find property")
	return fmt.Errorf("%w: no enum property matching %q", ErrPropertyNotApplicable, name)
}
