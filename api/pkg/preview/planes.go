package preview

import (
	"fmt"

	"github.com/helixml/helix-preview/api/pkg/drm"
)

// findPlane returns the first free plane, scanning from the number of planes
// already handed out, that can be attached to the target CRTC and accepts the
// format.
func (m *Manager) findPlane(format drm.Format) (uint32, error) {
	ids, err := m.dev.PlaneResources()
	if err != nil {
		return 0, fmt.Errorf("get plane resources: %w", err)
	}

	offset := len(m.slots)
	if offset >= len(ids) {
		return 0, fmt.Errorf("%w (%d planes)", ErrPlanesExhausted, len(ids))
	}

	for _, id := range ids[offset:] {
		if _, taken := m.slots[id]; taken {
			continue
		}

		plane, err := m.dev.Plane(id)
		if err != nil {
			return 0, fmt.Errorf("get plane %d: %w", id, err)
		}
		if !plane.SupportsCrtc(m.target.CrtcIndex) {
			continue
		}
		if !plane.SupportsFormat(format) {
			continue
		}
		return id, nil
	}

	return 0, fmt.Errorf("%w: no plane supports %s on CRTC %d", ErrNotFound, format, m.target.CrtcID)
}

// Planes lists every plane the device exposes, including ones this manager
// has not allocated.
func (m *Manager) Planes() ([]*drm.Plane, error) {
	ids, err := m.dev.PlaneResources()
	if err != nil {
		return nil, fmt.Errorf("get plane resources: %w", err)
	}
	planes := make([]*drm.Plane, 0, len(ids))
	for _, id := range ids {
		plane, err := m.dev.Plane(id)
		if err != nil {
			return nil, fmt.Errorf("get plane %d: %w", id, err)
		}
		planes = append(planes, plane)
	}
	return planes, nil
}
