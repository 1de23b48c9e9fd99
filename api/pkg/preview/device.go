package preview

import "github.com/helixml/helix-preview/api/pkg/drm"

// Device is the subset of the DRM/KMS protocol the manager drives. *drm.Card
// implements it; tests use the generated mock.
//
//go:generate mockgen -source $GOFILE -destination device_mocks.go -package $GOPACKAGE
type Device interface {
	SetClientCap(capability, value uint64) error

	Resources() (*drm.Resources, error)
	Connector(id uint32) (*drm.Connector, error)
	Encoder(id uint32) (*drm.Encoder, error)
	Crtc(id uint32) (*drm.Crtc, error)
	SetCrtc(crtcID, fbID uint32, connectors []uint32, mode *drm.ModeInfo) error

	PlaneResources() ([]uint32, error)
	Plane(id uint32) (*drm.Plane, error)
	SetPlane(commit drm.PlaneCommit) error

	CreateDumb(width, height, bpp uint32) (*drm.DumbBuffer, error)
	MapDumb(handle uint32, size uint64) ([]byte, error)
	Unmap(data []byte) error
	DestroyDumb(handle uint32) error

	AddFB(width, height, pitch, bpp, depth, handle uint32) (uint32, error)
	AddFB2(fb drm.FramebufferRequest) (uint32, error)
	RemoveFB(fbID uint32) error

	PrimeFDToHandle(fd int) (uint32, error)
	CloseHandle(handle uint32) error

	ObjectProperties(objID, objType uint32) ([]uint32, []uint64, error)
	Property(id uint32) (*drm.Property, error)
	SetObjectProperty(objID, objType, propID uint32, value uint64) error

	Close() error
}
