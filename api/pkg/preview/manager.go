// Package preview places off-screen pixel buffers on hardware display planes.
//
// A Manager discovers the active output of a DRM device, hands out planes to
// buffers, registers the buffers as framebuffers and commits their normalized
// placement to the hardware. It is meant as a preview surface for camera and
// video pipelines.
//
// A Manager is not safe for concurrent use. Every method blocks on the
// underlying device calls.
package preview

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/helixml/helix-preview/api/pkg/drm"
)

// Config configures a Manager.
type Config struct {
	// Logger receives debug traces of discovery and binding and warnings for
	// non-fatal failures. The zero value discards everything.
	Logger zerolog.Logger

	// ActivateOutput programs the CRTC with the connector's first mode and a
	// black scanout buffer before the first plane is bound.
	ActivateOutput bool

	// UniversalPlanes asks the device to also list primary and cursor planes.
	UniversalPlanes bool

	// Layouts overrides the plane layouts used for imported buffers.
	// Defaults to drm.DefaultLayouts().
	Layouts drm.FormatLayouts
}

// Manager owns a display device, the planes it allocated and the buffers bound
// to them.
type Manager struct {
	dev     Device
	log     zerolog.Logger
	cfg     Config
	layouts drm.FormatLayouts
	target  *DisplayTarget

	// slots is the authoritative owner of bound buffers; order records bind
	// order for teardown.
	slots map[uint32]*Buffer
	order []uint32

	// handles counts the buffers sharing each imported GEM handle. The kernel
	// returns the same handle when one dma-buf is imported twice.
	handles map[uint32]int

	scanout *scanout
}

// scanout is the manager-owned buffer the CRTC shows under all planes once the
// output has been activated.
type scanout struct {
	handle uint32
	fbID   uint32
}

// New discovers the display behind dev and returns a Manager for it. New takes
// ownership of dev: when discovery fails the device is closed and no Manager
// is returned.
func New(dev Device, cfg Config) (*Manager, error) {
	log := cfg.Logger
	if cfg.UniversalPlanes {
		if err := dev.SetClientCap(drm.ClientCapUniversalPlanes, 1); err != nil {
			dev.Close()
			return nil, fmt.Errorf("enable universal planes: %w", err)
		}
	}

	target, err := discover(dev, log)
	if err != nil {
		dev.Close()
		return nil, err
	}

	layouts := cfg.Layouts
	if layouts == nil {
		layouts = drm.DefaultLayouts()
	}

	log.Debug().
		Uint32("connector_id", target.ConnectorID).
		Uint32("crtc_id", target.CrtcID).
		Uint32("width", target.Width).
		Uint32("height", target.Height).
		Msg("display target discovered")

	return &Manager{
		dev:     dev,
		log:     log,
		cfg:     cfg,
		layouts: layouts,
		target:  target,
		slots:   make(map[uint32]*Buffer),
		handles: make(map[uint32]int),
	}, nil
}

// Display returns the discovered output.
func (m *Manager) Display() DisplayTarget {
	return *m.target
}

// MakeBuffer returns an unbound, zero-sized buffer. The caller fills in the
// pixel dimensions, format and placement before calling AddPlane.
func (m *Manager) MakeBuffer() *Buffer {
	m.log.Debug().Msg("generating new buffer")
	return &Buffer{}
}

// Buffer returns the buffer bound to planeID. The pointer is borrowed: it stays
// valid until Close.
func (m *Manager) Buffer(planeID uint32) (*Buffer, bool) {
	buf, ok := m.slots[planeID]
	return buf, ok
}

// AddPlane allocates a plane for buf, computes its placement and binds it as a
// framebuffer. On failure buf stays unbound and no kernel objects are left
// behind; buffers bound earlier are unaffected.
func (m *Manager) AddPlane(buf *Buffer, kind BufferType) (uint32, error) {
	if buf == nil {
		return 0, errors.New("nil buffer")
	}
	if buf.state >= Bound {
		return 0, fmt.Errorf("%w: plane %d", ErrAlreadyBound, buf.planeID)
	}
	if kind != DumbBuffer && kind != PrimeBuffer {
		return 0, fmt.Errorf("unknown buffer type %v", kind)
	}

	// Imported buffers need a known plane layout; reject them before any
	// device call.
	var layout drm.Layout
	if kind == PrimeBuffer {
		var err error
		layout, err = m.layouts.Lookup(buf.Format, buf.Width, buf.Height, buf.Stride)
		if err != nil {
			return 0, err
		}
	}

	if m.cfg.ActivateOutput {
		if err := m.ActivateOutput(); err != nil {
			return 0, err
		}
	}

	planeID, err := m.findPlane(buf.Format)
	if err != nil {
		return 0, err
	}

	m.log.Debug().
		Uint32("plane_id", planeID).
		Stringer("type", kind).
		Stringer("format", buf.Format).
		Msg("adding buffer to plane")

	if err := m.SetPlaneSizes(buf); err != nil {
		return 0, err
	}

	switch kind {
	case DumbBuffer:
		err = m.bindDumb(buf)
	case PrimeBuffer:
		err = m.bindPrime(buf, layout)
	}
	if err != nil {
		return 0, fmt.Errorf("bind %s buffer to plane %d: %w", kind, planeID, err)
	}

	buf.kind = kind
	buf.planeID = planeID
	buf.state = Bound
	m.slots[planeID] = buf
	m.order = append(m.order, planeID)

	return planeID, nil
}

// SetPlaneSizes recomputes the device pixel rectangles of buf from its
// normalized placement, the display resolution and the buffer size. It does not
// touch the hardware; call ShowPlane to commit.
func (m *Manager) SetPlaneSizes(buf *Buffer) error {
	if buf == nil {
		return errors.New("nil buffer")
	}
	buf.crtc, buf.src = MapGeometry(m.target.Width, m.target.Height, buf.Width, buf.Height, buf.Display, buf.ROI)
	if buf.state == Created {
		buf.state = PlacementComputed
	}
	return nil
}

// ShowPlane commits the current geometry of the buffer on planeID. Repeated
// calls re-commit the latest geometry.
func (m *Manager) ShowPlane(planeID uint32) error {
	buf, ok := m.slots[planeID]
	if !ok {
		return fmt.Errorf("%w: plane %d has no buffer", ErrNotFound, planeID)
	}

	commit := drm.PlaneCommit{
		PlaneID:       planeID,
		CrtcID:        m.target.CrtcID,
		FramebufferID: buf.fbID,
		CrtcX:         buf.crtc.X,
		CrtcY:         buf.crtc.Y,
		CrtcW:         buf.crtc.W,
		CrtcH:         buf.crtc.H,
		SrcX:          uint32(buf.src.X) << 16,
		SrcY:          uint32(buf.src.Y) << 16,
		SrcW:          buf.src.W << 16,
		SrcH:          buf.src.H << 16,
	}
	if err := m.dev.SetPlane(commit); err != nil {
		return fmt.Errorf("show plane %d: %w", planeID, err)
	}

	buf.state = Visible
	return nil
}

// ActivateOutput sets the target CRTC to the connector's first mode, scanning
// out a black buffer at that resolution, which becomes the display resolution
// for later placements. It runs at most once.
func (m *Manager) ActivateOutput() (err error) {
	if m.scanout != nil {
		return nil
	}

	var undo rollback
	defer func() {
		if err != nil {
			undo.run(m.log)
		}
	}()

	mode := m.target.Modes[0]
	width, height := uint32(mode.Hdisplay), uint32(mode.Vdisplay)

	// Dumb buffers are zero filled by the kernel, so no mapping is needed to
	// get a black frame.
	dumb, err := m.dev.CreateDumb(width, height, 32)
	if err != nil {
		return fmt.Errorf("activate output: %w", err)
	}
	undo.push(func() error { return m.dev.DestroyDumb(dumb.Handle) })

	fbID, err := m.dev.AddFB(width, height, dumb.Pitch, 32, 24, dumb.Handle)
	if err != nil {
		return fmt.Errorf("activate output: %w", err)
	}
	undo.push(func() error { return m.dev.RemoveFB(fbID) })

	if err := m.dev.SetCrtc(m.target.CrtcID, fbID, []uint32{m.target.ConnectorID}, &mode); err != nil {
		return fmt.Errorf("activate output: %w", err)
	}

	m.scanout = &scanout{handle: dumb.Handle, fbID: fbID}
	m.target.Width, m.target.Height = width, height
	m.log.Debug().
		Str("mode", mode.ModeName()).
		Uint32("crtc_id", m.target.CrtcID).
		Uint32("fb_id", fbID).
		Msg("output activated")
	return nil
}

// Close releases every bound buffer in reverse bind order, then the scanout
// buffer, then the device. It returns all release errors joined.
func (m *Manager) Close() error {
	var errs []error
	for i := len(m.order) - 1; i >= 0; i-- {
		planeID := m.order[i]
		if err := m.release(m.slots[planeID]); err != nil {
			errs = append(errs, err)
		}
		delete(m.slots, planeID)
	}
	m.order = nil

	if m.scanout != nil {
		if err := m.dev.RemoveFB(m.scanout.fbID); err != nil {
			errs = append(errs, err)
		}
		if err := m.dev.DestroyDumb(m.scanout.handle); err != nil {
			errs = append(errs, err)
		}
		m.scanout = nil
	}

	if err := m.dev.Close(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
