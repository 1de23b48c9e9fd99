package preview

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/helixml/helix-preview/api/pkg/drm"
)

// rollback collects undo steps for a multi-call bind so a failure part way
// through leaves no kernel objects behind.
type rollback []func() error

func (r *rollback) push(undo func() error) {
	*r = append(*r, undo)
}

func (r rollback) run(log zerolog.Logger) {
	for i := len(r) - 1; i >= 0; i-- {
		if err := r[i](); err != nil {
			log.Warn().Err(err).Msg("rollback step failed")
		}
	}
}

// bindDumb allocates a device buffer, registers it as a framebuffer with bpp
// as both depth and bpp, and maps it for direct pixel writes.
func (m *Manager) bindDumb(buf *Buffer) (err error) {
	var undo rollback
	defer func() {
		if err != nil {
			undo.run(m.log)
		}
	}()

	dumb, err := m.dev.CreateDumb(buf.Width, buf.Height, buf.BPP)
	if err != nil {
		return err
	}
	undo.push(func() error { return m.dev.DestroyDumb(dumb.Handle) })

	fbID, err := m.dev.AddFB(buf.Width, buf.Height, dumb.Pitch, buf.BPP, buf.BPP, dumb.Handle)
	if err != nil {
		return err
	}
	undo.push(func() error { return m.dev.RemoveFB(fbID) })

	pixels, err := m.dev.MapDumb(dumb.Handle, dumb.Size)
	if err != nil {
		return err
	}

	buf.handle = dumb.Handle
	buf.pitch = dumb.Pitch
	buf.size = dumb.Size
	buf.fbID = fbID
	buf.pixels = pixels

	m.log.Debug().
		Uint32("handle", buf.handle).
		Uint32("fb_id", buf.fbID).
		Uint32("pitch", buf.pitch).
		Uint64("size", buf.size).
		Msg("dumb buffer bound")
	return nil
}

// bindPrime imports a foreign dma-buf and registers a multi-plane framebuffer
// for it using the already resolved layout.
func (m *Manager) bindPrime(buf *Buffer, layout drm.Layout) (err error) {
	var undo rollback
	defer func() {
		if err != nil {
			undo.run(m.log)
		}
	}()

	handle, err := m.dev.PrimeFDToHandle(buf.PrimeFD)
	if err != nil {
		return err
	}
	m.handles[handle]++
	undo.push(func() error { return m.dropHandle(handle) })

	fbID, err := m.dev.AddFB2(layout.Framebuffer(buf.Width, buf.Height, buf.Format, handle))
	if err != nil {
		return err
	}

	buf.handle = handle
	buf.pitch = layout.Pitches[0]
	buf.fbID = fbID

	m.log.Debug().
		Int("prime_fd", buf.PrimeFD).
		Uint32("handle", buf.handle).
		Uint32("fb_id", buf.fbID).
		Int("color_planes", layout.Planes).
		Msg("prime buffer bound")
	return nil
}

// release undoes a successful bind. Imported memory is never unmapped; only
// the framebuffer object and the local handle are dropped.
func (m *Manager) release(buf *Buffer) error {
	var errs []error
	if buf.pixels != nil {
		if err := m.dev.Unmap(buf.pixels); err != nil {
			errs = append(errs, err)
		}
		buf.pixels = nil
	}
	if err := m.dev.RemoveFB(buf.fbID); err != nil {
		errs = append(errs, err)
	}
	switch buf.kind {
	case DumbBuffer:
		if err := m.dev.DestroyDumb(buf.handle); err != nil {
			errs = append(errs, err)
		}
	case PrimeBuffer:
		if err := m.dropHandle(buf.handle); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("release plane %d: %w", buf.planeID, errors.Join(errs...))
	}
	return nil
}

// dropHandle closes an imported handle once no bound buffer uses it.
func (m *Manager) dropHandle(handle uint32) error {
	m.handles[handle]--
	if m.handles[handle] > 0 {
		return nil
	}
	delete(m.handles, handle)
	return m.dev.CloseHandle(handle)
}
