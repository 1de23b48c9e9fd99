package drm

import "bytes"

// Object types used with the object property ioctls.
const (
	ObjectCrtc      = 0xcccccccc
	ObjectConnector = 0xc0c0c0c0
	ObjectEncoder   = 0xe0e0e0e0
	ObjectPlane     = 0xeeeeeeee
)

// Property flags
const (
	PropRange     = 1 << 1
	PropImmutable = 1 << 2
	PropEnum      = 1 << 3
	PropBlob      = 1 << 4
	PropBitmask   = 1 << 5
)

// Client capabilities
const (
	ClientCapUniversalPlanes = 2
)

// Connector status values
const (
	ConnectorStatusConnected    = 1
	ConnectorStatusDisconnected = 2
	ConnectorStatusUnknown      = 3
)

// ModeInfo corresponds to struct drm_mode_modeinfo (68 bytes).
type ModeInfo struct {
	Clock      uint32
	Hdisplay   uint16
	HsyncStart uint16
	HsyncEnd   uint16
	Htotal     uint16
	Hskew      uint16
	Vdisplay   uint16
	VsyncStart uint16
	VsyncEnd   uint16
	Vtotal     uint16
	Vscan      uint16
	Vrefresh   uint32
	Flags      uint32
	Type       uint32
	Name       [32]byte
}

// ModeName returns the NUL-trimmed mode name, e.g. "1920x1080".
func (m ModeInfo) ModeName() string {
	return cString(m.Name[:])
}

// Resources lists the mode-setting objects exposed by a device.
type Resources struct {
	Framebuffers []uint32
	Crtcs        []uint32
	Connectors   []uint32
	Encoders     []uint32

	MinWidth, MaxWidth   uint32
	MinHeight, MaxHeight uint32
}

// CrtcIndex returns the position of crtcID in the CRTC list, which is the bit
// used for it in possible_crtcs masks.
func (r *Resources) CrtcIndex(crtcID uint32) (int, bool) {
	for i, id := range r.Crtcs {
		if id == crtcID {
			return i, true
		}
	}
	return -1, false
}

type Connector struct {
	ID         uint32
	EncoderID  uint32 // current encoder, 0 when none
	Type       uint32
	TypeID     uint32
	Connection uint32
	MmWidth    uint32
	MmHeight   uint32
	Modes      []ModeInfo
	Encoders   []uint32
}

type Encoder struct {
	ID             uint32
	Type           uint32
	CrtcID         uint32 // current CRTC, 0 when none
	PossibleCrtcs  uint32
	PossibleClones uint32
}

type Crtc struct {
	ID            uint32
	FramebufferID uint32
	X, Y          uint32
	Width, Height uint32
	ModeValid     bool
	Mode          ModeInfo
	GammaSize     uint32
}

type Plane struct {
	ID            uint32
	CrtcID        uint32
	FramebufferID uint32
	PossibleCrtcs uint32
	GammaSize     uint32
	Formats       []Format
}

// SupportsCrtc reports whether the plane can be attached to the CRTC at the
// given index of the resource list.
func (p *Plane) SupportsCrtc(index int) bool {
	if index < 0 || index >= 32 {
		return false
	}
	return p.PossibleCrtcs&(1<<uint(index)) != 0
}

func (p *Plane) SupportsFormat(f Format) bool {
	for _, pf := range p.Formats {
		if pf == f {
			return true
		}
	}
	return false
}

// DumbBuffer describes a buffer created with MODE_CREATE_DUMB. Pitch, Size and
// Handle are assigned by the kernel.
type DumbBuffer struct {
	Handle uint32
	Width  uint32
	Height uint32
	BPP    uint32
	Pitch  uint32
	Size   uint64
}

// FramebufferRequest is a multi-plane framebuffer registration for ADDFB2.
type FramebufferRequest struct {
	Width   uint32
	Height  uint32
	Format  Format
	Handles [4]uint32
	Pitches [4]uint32
	Offsets [4]uint32
}

// PlaneCommit is a SETPLANE request. Source coordinates are 16.16 fixed point.
type PlaneCommit struct {
	PlaneID       uint32
	CrtcID        uint32
	FramebufferID uint32

	CrtcX, CrtcY int32
	CrtcW, CrtcH uint32

	SrcX, SrcY uint32
	SrcW, SrcH uint32
}

type Property struct {
	ID     uint32
	Flags  uint32
	Name   string
	Values []uint64
	Enums  []PropertyEnum
}

func (p *Property) IsEnum() bool {
	return p.Flags&PropEnum != 0
}

type PropertyEnum struct {
	Value uint64
	Name  string
}

func cString(b []byte) string {
	name, _, _ := bytes.Cut(b, []byte{0})
	return string(name)
}
