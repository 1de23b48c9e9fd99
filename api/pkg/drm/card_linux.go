package drm

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// Card is an open DRM device. It is either a device node on which this process
// holds master, or a lease fd handed out by a lease manager.
type Card struct {
	f      *os.File
	master bool   // SET_MASTER was acquired and must be dropped
	lease  *Lease // nil unless opened from a lease
}

// Open opens a DRM device node such as /dev/dri/card0 and acquires master.
func Open(path string) (*Card, error) {
	f, err := openDRM(path)
	if err != nil {
		return nil, err
	}
	return &Card{f: f, master: true}, nil
}

// OpenLease requests a lease from the manager at socketPath and wraps the
// returned fd. Closing the card also releases the lease.
func OpenLease(socketPath string, width, height uint32) (*Card, error) {
	lease, err := NewLeaseClient(socketPath).RequestLease(width, height)
	if err != nil {
		return nil, fmt.Errorf("request DRM lease: %w", err)
	}
	f := os.NewFile(uintptr(lease.FD), "drm-lease-"+lease.ConnectorName)
	if f == nil {
		unix.Close(lease.FD)
		lease.Close()
		return nil, fmt.Errorf("invalid lease fd %d", lease.FD)
	}
	return &Card{f: f, lease: lease}, nil
}

func (c *Card) Name() string {
	return c.f.Name()
}

func (c *Card) SetClientCap(capability, value uint64) error {
	return setClientCap(c.f, capability, value)
}

func (c *Card) Resources() (*Resources, error) {
	return getResources(c.f)
}

func (c *Card) Connector(id uint32) (*Connector, error) {
	return getConnector(c.f, id)
}

func (c *Card) Encoder(id uint32) (*Encoder, error) {
	return getEncoder(c.f, id)
}

func (c *Card) Crtc(id uint32) (*Crtc, error) {
	return getCrtc(c.f, id)
}

func (c *Card) SetCrtc(crtcID, fbID uint32, connectors []uint32, mode *ModeInfo) error {
	return setCrtc(c.f, crtcID, fbID, connectors, mode)
}

func (c *Card) PlaneResources() ([]uint32, error) {
	return getPlaneResources(c.f)
}

func (c *Card) Plane(id uint32) (*Plane, error) {
	return getPlane(c.f, id)
}

func (c *Card) SetPlane(commit PlaneCommit) error {
	return setPlane(c.f, commit)
}

func (c *Card) CreateDumb(width, height, bpp uint32) (*DumbBuffer, error) {
	return createDumb(c.f, width, height, bpp)
}

// MapDumb maps a dumb buffer into the process for direct pixel writes.
func (c *Card) MapDumb(handle uint32, size uint64) ([]byte, error) {
	return mapDumb(c.f, handle, size)
}

func (c *Card) Unmap(data []byte) error {
	if err := unix.Munmap(data); err != nil {
		return fmt.Errorf("munmap: %w", err)
	}
	return nil
}

func (c *Card) DestroyDumb(handle uint32) error {
	return destroyDumb(c.f, handle)
}

func (c *Card) AddFB(width, height, pitch, bpp, depth, handle uint32) (uint32, error) {
	return addFB(c.f, width, height, pitch, bpp, depth, handle)
}

func (c *Card) AddFB2(fb FramebufferRequest) (uint32, error) {
	return addFB2(c.f, fb)
}

func (c *Card) RemoveFB(fbID uint32) error {
	return rmFB(c.f, fbID)
}

// PrimeFDToHandle imports a dma-buf fd as a local GEM handle.
func (c *Card) PrimeFDToHandle(fd int) (uint32, error) {
	return primeFDToHandle(c.f, fd)
}

// CloseHandle drops a GEM handle. For imported buffers this releases only the
// local reference; the exporter's memory is untouched.
func (c *Card) CloseHandle(handle uint32) error {
	return gemClose(c.f, handle)
}

func (c *Card) ObjectProperties(objID, objType uint32) ([]uint32, []uint64, error) {
	return getObjectProperties(c.f, objID, objType)
}

func (c *Card) Property(id uint32) (*Property, error) {
	return getProperty(c.f, id)
}

func (c *Card) SetObjectProperty(objID, objType, propID uint32, value uint64) error {
	return setObjectProperty(c.f, objID, objType, propID, value)
}

// Close drops master (when held), closes the device and releases any lease.
func (c *Card) Close() error {
	var errs []error
	if c.master {
		if err := dropMaster(c.f); err != nil {
			errs = append(errs, err)
		}
		c.master = false
	}
	if err := c.f.Close(); err != nil {
		errs = append(errs, err)
	}
	if c.lease != nil {
		if err := c.lease.Close(); err != nil {
			errs = append(errs, err)
		}
		c.lease = nil
	}
	return errors.Join(errs...)
}
