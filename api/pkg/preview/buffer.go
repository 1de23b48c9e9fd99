package preview

import (
	"fmt"

	"github.com/helixml/helix-preview/api/pkg/drm"
)

// BufferType selects who owns a buffer's pixel memory.
type BufferType int

const (
	// DumbBuffer memory is allocated by the device, mapped into this process
	// and released by the manager.
	DumbBuffer BufferType = iota + 1
	// PrimeBuffer memory belongs to another subsystem and is imported by its
	// dma-buf descriptor. The manager never maps or frees it.
	PrimeBuffer
)

func (t BufferType) String() string {
	switch t {
	case DumbBuffer:
		return "dumb"
	case PrimeBuffer:
		return "prime"
	default:
		return fmt.Sprintf("BufferType(%d)", int(t))
	}
}

// State is the lifecycle stage of a Buffer.
type State int

const (
	Created State = iota
	PlacementComputed
	Bound
	Visible
)

func (s State) String() string {
	switch s {
	case Created:
		return "created"
	case PlacementComputed:
		return "placement-computed"
	case Bound:
		return "bound"
	case Visible:
		return "visible"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Placement is a rectangle in normalized coordinates. Values are nominally in
// [0,1] but are not validated; out-of-range values produce off-screen or
// oversized rectangles.
type Placement struct {
	X, Y, W, H float32
}

// FullFrame covers the whole display or the whole buffer.
var FullFrame = Placement{X: 0, Y: 0, W: 1, H: 1}

// Rect is a rectangle in device pixels.
type Rect struct {
	X, Y int32
	W, H uint32
}

// Buffer is one caller-visible surface. Exported fields are set by the caller
// before AddPlane; everything else is owned by the Manager.
type Buffer struct {
	Width  uint32
	Height uint32
	BPP    uint32 // bits per pixel, used by dumb buffers
	Format drm.Format

	// PrimeFD is the dma-buf descriptor of an imported buffer.
	PrimeFD int
	// Stride is the luma/packed row pitch of an imported buffer in bytes.
	// Zero selects the format's packed default.
	Stride uint32

	// Display is the fraction of the display the buffer covers.
	Display Placement
	// ROI is the fraction of the buffer's own pixels that is shown.
	ROI Placement

	kind    BufferType
	state   State
	planeID uint32
	handle  uint32
	fbID    uint32
	pitch   uint32
	size    uint64
	pixels  []byte

	crtc Rect
	src  Rect
}

func (b *Buffer) Type() BufferType { return b.kind }

func (b *Buffer) State() State { return b.state }

// PlaneID is the plane the buffer is bound to, or 0.
func (b *Buffer) PlaneID() uint32 { return b.planeID }

// Handle is the kernel buffer handle.
func (b *Buffer) Handle() uint32 { return b.handle }

// FramebufferID is the id of the registered framebuffer object.
func (b *Buffer) FramebufferID() uint32 { return b.fbID }

// Pitch is the row pitch in bytes.
func (b *Buffer) Pitch() uint32 { return b.pitch }

// Size is the byte size of a dumb buffer.
func (b *Buffer) Size() uint64 { return b.size }

// Pixels is the mapped memory of a dumb buffer; nil for prime buffers. Writes
// are not synchronized with ShowPlane.
func (b *Buffer) Pixels() []byte { return b.pixels }

// CRTC is the computed destination rectangle on screen.
func (b *Buffer) CRTC() Rect { return b.crtc }

// Source is the computed crop rectangle inside the buffer.
func (b *Buffer) Source() Rect { return b.src }
