package drm

import (
	"fmt"
	"os"
	"unsafe"

	"golang.org/x/sys/unix"
)

// DRM ioctl numbers for 64-bit Linux.
// These use the standard Linux ioctl encoding:
//
//	_IO(type, nr)          = (type << 8) | nr
//	_IOR(type, nr, size)   = 0x80000000 | (size << 16) | (type << 8) | nr
//	_IOW(type, nr, size)   = 0x40000000 | (size << 16) | (type << 8) | nr
//	_IOWR(type, nr, size)  = 0xC0000000 | (size << 16) | (type << 8) | nr
const (
	// DRM_IOCTL_GEM_CLOSE = _IOW('d', 0x09, struct drm_gem_close)
	ioctlGemClose = 0x40086409

	// DRM_IOCTL_SET_CLIENT_CAP = _IOW('d', 0x0d, struct drm_set_client_cap)
	ioctlSetClientCap = 0x4010640d

	// DRM_IOCTL_SET_MASTER = _IO('d', 0x1e)
	ioctlSetMaster = 0x641e

	// DRM_IOCTL_DROP_MASTER = _IO('d', 0x1f)
	ioctlDropMaster = 0x641f

	// DRM_IOCTL_PRIME_FD_TO_HANDLE = _IOWR('d', 0x2e, struct drm_prime_handle)
	ioctlPrimeFDToHandle = 0xc00c642e

	// DRM_IOCTL_MODE_GETRESOURCES = _IOWR('d', 0xa0, struct drm_mode_card_res)
	// struct drm_mode_card_res is 64 bytes
	ioctlModeGetResources = 0xc04064a0

	// DRM_IOCTL_MODE_GETCRTC = _IOWR('d', 0xa1, struct drm_mode_crtc)
	ioctlModeGetCrtc = 0xc06864a1

	// DRM_IOCTL_MODE_SETCRTC = _IOWR('d', 0xa2, struct drm_mode_crtc)
	ioctlModeSetCrtc = 0xc06864a2

	// DRM_IOCTL_MODE_GETENCODER = _IOWR('d', 0xa6, struct drm_mode_get_encoder)
	ioctlModeGetEncoder = 0xc01464a6

	// DRM_IOCTL_MODE_GETCONNECTOR = _IOWR('d', 0xa7, struct drm_mode_get_connector)
	// struct drm_mode_get_connector is 80 bytes
	ioctlModeGetConnector = 0xc05064a7

	// DRM_IOCTL_MODE_GETPROPERTY = _IOWR('d', 0xaa, struct drm_mode_get_property)
	ioctlModeGetProperty = 0xc04064aa

	// DRM_IOCTL_MODE_ADDFB = _IOWR('d', 0xae, struct drm_mode_fb_cmd)
	ioctlModeAddFB = 0xc01c64ae

	// DRM_IOCTL_MODE_RMFB = _IOWR('d', 0xaf, unsigned int)
	ioctlModeRmFB = 0xc00464af

	// DRM_IOCTL_MODE_CREATE_DUMB = _IOWR('d', 0xb2, struct drm_mode_create_dumb)
	ioctlModeCreateDumb = 0xc02064b2

	// DRM_IOCTL_MODE_MAP_DUMB = _IOWR('d', 0xb3, struct drm_mode_map_dumb)
	ioctlModeMapDumb = 0xc01064b3

	// DRM_IOCTL_MODE_DESTROY_DUMB = _IOWR('d', 0xb4, struct drm_mode_destroy_dumb)
	ioctlModeDestroyDumb = 0xc00464b4

	// DRM_IOCTL_MODE_GETPLANERESOURCES = _IOWR('d', 0xb5, struct drm_mode_get_plane_res)
	ioctlModeGetPlaneResources = 0xc01064b5

	// DRM_IOCTL_MODE_GETPLANE = _IOWR('d', 0xb6, struct drm_mode_get_plane)
	ioctlModeGetPlane = 0xc02064b6

	// DRM_IOCTL_MODE_SETPLANE = _IOWR('d', 0xb7, struct drm_mode_set_plane)
	ioctlModeSetPlane = 0xc03064b7

	// DRM_IOCTL_MODE_ADDFB2 = _IOWR('d', 0xb8, struct drm_mode_fb_cmd2)
	// struct drm_mode_fb_cmd2 is 104 bytes (modifier array is 8-byte aligned)
	ioctlModeAddFB2 = 0xc06864b8

	// DRM_IOCTL_MODE_OBJ_GETPROPERTIES = _IOWR('d', 0xb9, struct drm_mode_obj_get_properties)
	ioctlModeObjGetProperties = 0xc02064b9

	// DRM_IOCTL_MODE_OBJ_SETPROPERTY = _IOWR('d', 0xba, struct drm_mode_obj_set_property)
	ioctlModeObjSetProperty = 0xc01864ba
)

// drmModeCardRes corresponds to struct drm_mode_card_res.
type drmModeCardRes struct {
	FbIDPtr         uint64
	CrtcIDPtr       uint64
	ConnectorIDPtr  uint64
	EncoderIDPtr    uint64
	CountFbs        uint32
	CountCrtcs      uint32
	CountConnectors uint32
	CountEncoders   uint32
	MinWidth        uint32
	MaxWidth        uint32
	MinHeight       uint32
	MaxHeight       uint32
}

// drmModeGetConnector corresponds to struct drm_mode_get_connector.
type drmModeGetConnector struct {
	EncodersPtr     uint64
	ModesPtr        uint64
	PropsPtr        uint64
	PropValuesPtr   uint64
	CountModes      uint32
	CountProps      uint32
	CountEncoders   uint32
	EncoderID       uint32
	ConnectorID     uint32
	ConnectorType   uint32
	ConnectorTypeID uint32
	Connection      uint32
	MmWidth         uint32
	MmHeight        uint32
	Subpixel        uint32
	Pad             uint32
}

// drmModeGetEncoder corresponds to struct drm_mode_get_encoder.
type drmModeGetEncoder struct {
	EncoderID      uint32
	EncoderType    uint32
	CrtcID         uint32
	PossibleCrtcs  uint32
	PossibleClones uint32
}

// drmModeCrtc corresponds to struct drm_mode_crtc.
type drmModeCrtc struct {
	SetConnectorsPtr uint64
	CountConnectors  uint32
	CrtcID           uint32
	FbID             uint32
	X                uint32
	Y                uint32
	GammaSize        uint32
	ModeValid        uint32
	Mode             ModeInfo
}

type drmModeGetPlaneRes struct {
	PlaneIDPtr  uint64
	CountPlanes uint32
}

type drmModeGetPlane struct {
	PlaneID          uint32
	CrtcID           uint32
	FbID             uint32
	PossibleCrtcs    uint32
	GammaSize        uint32
	CountFormatTypes uint32
	FormatTypePtr    uint64
}

// drmModeSetPlane corresponds to struct drm_mode_set_plane.
// Note the kernel orders the source size as height before width.
type drmModeSetPlane struct {
	PlaneID uint32
	CrtcID  uint32
	FbID    uint32
	Flags   uint32
	CrtcX   int32
	CrtcY   int32
	CrtcW   uint32
	CrtcH   uint32
	SrcX    uint32
	SrcY    uint32
	SrcH    uint32
	SrcW    uint32
}

type drmModeCreateDumb struct {
	Height uint32
	Width  uint32
	Bpp    uint32
	Flags  uint32
	Handle uint32
	Pitch  uint32
	Size   uint64
}

type drmModeMapDumb struct {
	Handle uint32
	Pad    uint32
	Offset uint64
}

type drmModeDestroyDumb struct {
	Handle uint32
}

type drmModeFBCmd struct {
	FbID   uint32
	Width  uint32
	Height uint32
	Pitch  uint32
	Bpp    uint32
	Depth  uint32
	Handle uint32
}

type drmModeFBCmd2 struct {
	FbID        uint32
	Width       uint32
	Height      uint32
	PixelFormat uint32
	Flags       uint32
	Handles     [4]uint32
	Pitches     [4]uint32
	Offsets     [4]uint32
	Modifier    [4]uint64
}

type drmPrimeHandle struct {
	Handle uint32
	Flags  uint32
	FD     int32
}

type drmGemClose struct {
	Handle uint32
	Pad    uint32
}

type drmSetClientCap struct {
	Capability uint64
	Value      uint64
}

type drmModeObjGetProperties struct {
	PropsPtr      uint64
	PropValuesPtr uint64
	CountProps    uint32
	ObjID         uint32
	ObjType       uint32
}

type drmModeGetProperty struct {
	ValuesPtr      uint64
	EnumBlobPtr    uint64
	PropID         uint32
	Flags          uint32
	Name           [32]byte
	CountValues    uint32
	CountEnumBlobs uint32
}

type drmModePropertyEnum struct {
	Value uint64
	Name  [32]byte
}

type drmModeObjSetProperty struct {
	Value   uint64
	PropID  uint32
	ObjID   uint32
	ObjType uint32
}

// ioctl issues a DRM ioctl, restarting it when interrupted the way libdrm's
// drmIoctl does.
func ioctl(f *os.File, req uintptr, arg unsafe.Pointer) error {
	for {
		_, _, errno := unix.Syscall(unix.SYS_IOCTL, f.Fd(), req, uintptr(arg))
		if errno == unix.EINTR || errno == unix.EAGAIN {
			continue
		}
		if errno != 0 {
			return errno
		}
		return nil
	}
}

// openDRM opens the DRM device and acquires master.
func openDRM(path string) (*os.File, error) {
	f, err := os.OpenFile(path, os.O_RDWR|unix.O_CLOEXEC, 0)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	if err := setMaster(f); err != nil {
		f.Close()
		return nil, err
	}
	return f, nil
}

func setMaster(f *os.File) error {
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, f.Fd(), ioctlSetMaster, 0)
	if errno != 0 {
		return fmt.Errorf("DRM_IOCTL_SET_MASTER: %w", errno)
	}
	return nil
}

func dropMaster(f *os.File) error {
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, f.Fd(), ioctlDropMaster, 0)
	if errno != 0 {
		return fmt.Errorf("DRM_IOCTL_DROP_MASTER: %w", errno)
	}
	return nil
}

func setClientCap(f *os.File, capability, value uint64) error {
	req := drmSetClientCap{Capability: capability, Value: value}
	if err := ioctl(f, ioctlSetClientCap, unsafe.Pointer(&req)); err != nil {
		return fmt.Errorf("SET_CLIENT_CAP(%d): %w", capability, err)
	}
	return nil
}

// getResources retrieves CRTCs, connectors, encoders and framebuffers from DRM.
func getResources(f *os.File) (*Resources, error) {
	// First call: get counts
	var res drmModeCardRes
	if err := ioctl(f, ioctlModeGetResources, unsafe.Pointer(&res)); err != nil {
		return nil, fmt.Errorf("MODE_GETRESOURCES (count): %w", err)
	}

	out := &Resources{
		MinWidth:  res.MinWidth,
		MaxWidth:  res.MaxWidth,
		MinHeight: res.MinHeight,
		MaxHeight: res.MaxHeight,
	}

	// Second call: fill arrays
	fill := drmModeCardRes{
		CountFbs:        res.CountFbs,
		CountCrtcs:      res.CountCrtcs,
		CountConnectors: res.CountConnectors,
		CountEncoders:   res.CountEncoders,
	}
	if res.CountFbs > 0 {
		out.Framebuffers = make([]uint32, res.CountFbs)
		fill.FbIDPtr = uint64(uintptr(unsafe.Pointer(&out.Framebuffers[0])))
	}
	if res.CountCrtcs > 0 {
		out.Crtcs = make([]uint32, res.CountCrtcs)
		fill.CrtcIDPtr = uint64(uintptr(unsafe.Pointer(&out.Crtcs[0])))
	}
	if res.CountConnectors > 0 {
		out.Connectors = make([]uint32, res.CountConnectors)
		fill.ConnectorIDPtr = uint64(uintptr(unsafe.Pointer(&out.Connectors[0])))
	}
	if res.CountEncoders > 0 {
		out.Encoders = make([]uint32, res.CountEncoders)
		fill.EncoderIDPtr = uint64(uintptr(unsafe.Pointer(&out.Encoders[0])))
	}

	if err := ioctl(f, ioctlModeGetResources, unsafe.Pointer(&fill)); err != nil {
		return nil, fmt.Errorf("MODE_GETRESOURCES (fill): %w", err)
	}

	// A hotplug between the two calls can shrink the lists.
	out.Framebuffers = out.Framebuffers[:min(len(out.Framebuffers), int(fill.CountFbs))]
	out.Crtcs = out.Crtcs[:min(len(out.Crtcs), int(fill.CountCrtcs))]
	out.Connectors = out.Connectors[:min(len(out.Connectors), int(fill.CountConnectors))]
	out.Encoders = out.Encoders[:min(len(out.Encoders), int(fill.CountEncoders))]

	return out, nil
}

func getConnector(f *os.File, connectorID uint32) (*Connector, error) {
	conn := drmModeGetConnector{ConnectorID: connectorID}
	if err := ioctl(f, ioctlModeGetConnector, unsafe.Pointer(&conn)); err != nil {
		return nil, fmt.Errorf("MODE_GETCONNECTOR(%d): %w", connectorID, err)
	}

	var (
		modes    []ModeInfo
		encoders []uint32
	)
	fill := drmModeGetConnector{
		ConnectorID:   connectorID,
		CountModes:    conn.CountModes,
		CountEncoders: conn.CountEncoders,
	}
	if conn.CountModes > 0 {
		modes = make([]ModeInfo, conn.CountModes)
		fill.ModesPtr = uint64(uintptr(unsafe.Pointer(&modes[0])))
	}
	if conn.CountEncoders > 0 {
		encoders = make([]uint32, conn.CountEncoders)
		fill.EncodersPtr = uint64(uintptr(unsafe.Pointer(&encoders[0])))
	}

	if err := ioctl(f, ioctlModeGetConnector, unsafe.Pointer(&fill)); err != nil {
		return nil, fmt.Errorf("MODE_GETCONNECTOR(%d) (fill): %w", connectorID, err)
	}

	return &Connector{
		ID:         fill.ConnectorID,
		EncoderID:  fill.EncoderID,
		Type:       fill.ConnectorType,
		TypeID:     fill.ConnectorTypeID,
		Connection: fill.Connection,
		MmWidth:    fill.MmWidth,
		MmHeight:   fill.MmHeight,
		Modes:      modes[:min(len(modes), int(fill.CountModes))],
		Encoders:   encoders[:min(len(encoders), int(fill.CountEncoders))],
	}, nil
}

func getEncoder(f *os.File, encoderID uint32) (*Encoder, error) {
	enc := drmModeGetEncoder{EncoderID: encoderID}
	if err := ioctl(f, ioctlModeGetEncoder, unsafe.Pointer(&enc)); err != nil {
		return nil, fmt.Errorf("MODE_GETENCODER(%d): %w", encoderID, err)
	}
	return &Encoder{
		ID:             enc.EncoderID,
		Type:           enc.EncoderType,
		CrtcID:         enc.CrtcID,
		PossibleCrtcs:  enc.PossibleCrtcs,
		PossibleClones: enc.PossibleClones,
	}, nil
}

func getCrtc(f *os.File, crtcID uint32) (*Crtc, error) {
	crtc := drmModeCrtc{CrtcID: crtcID}
	if err := ioctl(f, ioctlModeGetCrtc, unsafe.Pointer(&crtc)); err != nil {
		return nil, fmt.Errorf("MODE_GETCRTC(%d): %w", crtcID, err)
	}
	return &Crtc{
		ID:            crtc.CrtcID,
		FramebufferID: crtc.FbID,
		X:             crtc.X,
		Y:             crtc.Y,
		Width:         uint32(crtc.Mode.Hdisplay),
		Height:        uint32(crtc.Mode.Vdisplay),
		ModeValid:     crtc.ModeValid != 0,
		Mode:          crtc.Mode,
		GammaSize:     crtc.GammaSize,
	}, nil
}

func setCrtc(f *os.File, crtcID, fbID uint32, connectors []uint32, mode *ModeInfo) error {
	req := drmModeCrtc{
		CrtcID:          crtcID,
		FbID:            fbID,
		CountConnectors: uint32(len(connectors)),
	}
	if len(connectors) > 0 {
		req.SetConnectorsPtr = uint64(uintptr(unsafe.Pointer(&connectors[0])))
	}
	if mode != nil {
		req.Mode = *mode
		req.ModeValid = 1
	}
	if err := ioctl(f, ioctlModeSetCrtc, unsafe.Pointer(&req)); err != nil {
		return fmt.Errorf("MODE_SETCRTC(%d): %w", crtcID, err)
	}
	return nil
}

func getPlaneResources(f *os.File) ([]uint32, error) {
	var res drmModeGetPlaneRes
	if err := ioctl(f, ioctlModeGetPlaneResources, unsafe.Pointer(&res)); err != nil {
		return nil, fmt.Errorf("MODE_GETPLANERESOURCES (count): %w", err)
	}
	if res.CountPlanes == 0 {
		return nil, nil
	}

	ids := make([]uint32, res.CountPlanes)
	fill := drmModeGetPlaneRes{
		PlaneIDPtr:  uint64(uintptr(unsafe.Pointer(&ids[0]))),
		CountPlanes: res.CountPlanes,
	}
	if err := ioctl(f, ioctlModeGetPlaneResources, unsafe.Pointer(&fill)); err != nil {
		return nil, fmt.Errorf("MODE_GETPLANERESOURCES (fill): %w", err)
	}
	return ids[:min(len(ids), int(fill.CountPlanes))], nil
}

func getPlane(f *os.File, planeID uint32) (*Plane, error) {
	plane := drmModeGetPlane{PlaneID: planeID}
	if err := ioctl(f, ioctlModeGetPlane, unsafe.Pointer(&plane)); err != nil {
		return nil, fmt.Errorf("MODE_GETPLANE(%d): %w", planeID, err)
	}

	var formats []Format
	if plane.CountFormatTypes > 0 {
		formats = make([]Format, plane.CountFormatTypes)
		fill := drmModeGetPlane{
			PlaneID:          planeID,
			CountFormatTypes: plane.CountFormatTypes,
			FormatTypePtr:    uint64(uintptr(unsafe.Pointer(&formats[0]))),
		}
		if err := ioctl(f, ioctlModeGetPlane, unsafe.Pointer(&fill)); err != nil {
			return nil, fmt.Errorf("MODE_GETPLANE(%d) (fill): %w", planeID, err)
		}
		plane = fill
		formats = formats[:min(len(formats), int(fill.CountFormatTypes))]
	}

	return &Plane{
		ID:            plane.PlaneID,
		CrtcID:        plane.CrtcID,
		FramebufferID: plane.FbID,
		PossibleCrtcs: plane.PossibleCrtcs,
		GammaSize:     plane.GammaSize,
		Formats:       formats,
	}, nil
}

func setPlane(f *os.File, c PlaneCommit) error {
	req := drmModeSetPlane{
		PlaneID: c.PlaneID,
		CrtcID:  c.CrtcID,
		FbID:    c.FramebufferID,
		CrtcX:   c.CrtcX,
		CrtcY:   c.CrtcY,
		CrtcW:   c.CrtcW,
		CrtcH:   c.CrtcH,
		SrcX:    c.SrcX,
		SrcY:    c.SrcY,
		SrcW:    c.SrcW,
		SrcH:    c.SrcH,
	}
	if err := ioctl(f, ioctlModeSetPlane, unsafe.Pointer(&req)); err != nil {
		return fmt.Errorf("MODE_SETPLANE(%d): %w", c.PlaneID, err)
	}
	return nil
}

func createDumb(f *os.File, width, height, bpp uint32) (*DumbBuffer, error) {
	req := drmModeCreateDumb{Width: width, Height: height, Bpp: bpp}
	if err := ioctl(f, ioctlModeCreateDumb, unsafe.Pointer(&req)); err != nil {
		return nil, fmt.Errorf("MODE_CREATE_DUMB: %w", err)
	}
	return &DumbBuffer{
		Handle: req.Handle,
		Width:  width,
		Height: height,
		BPP:    bpp,
		Pitch:  req.Pitch,
		Size:   req.Size,
	}, nil
}

func mapDumb(f *os.File, handle uint32, size uint64) ([]byte, error) {
	req := drmModeMapDumb{Handle: handle}
	if err := ioctl(f, ioctlModeMapDumb, unsafe.Pointer(&req)); err != nil {
		return nil, fmt.Errorf("MODE_MAP_DUMB(%d): %w", handle, err)
	}
	data, err := unix.Mmap(int(f.Fd()), int64(req.Offset), int(size),
		unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		return nil, fmt.Errorf("mmap dumb buffer %d: %w", handle, err)
	}
	return data, nil
}

func destroyDumb(f *os.File, handle uint32) error {
	req := drmModeDestroyDumb{Handle: handle}
	if err := ioctl(f, ioctlModeDestroyDumb, unsafe.Pointer(&req)); err != nil {
		return fmt.Errorf("MODE_DESTROY_DUMB(%d): %w", handle, err)
	}
	return nil
}

func addFB(f *os.File, width, height, pitch, bpp, depth, handle uint32) (uint32, error) {
	req := drmModeFBCmd{
		Width:  width,
		Height: height,
		Pitch:  pitch,
		Bpp:    bpp,
		Depth:  depth,
		Handle: handle,
	}
	if err := ioctl(f, ioctlModeAddFB, unsafe.Pointer(&req)); err != nil {
		return 0, fmt.Errorf("MODE_ADDFB: %w", err)
	}
	return req.FbID, nil
}

func addFB2(f *os.File, fb FramebufferRequest) (uint32, error) {
	req := drmModeFBCmd2{
		Width:       fb.Width,
		Height:      fb.Height,
		PixelFormat: uint32(fb.Format),
		Handles:     fb.Handles,
		Pitches:     fb.Pitches,
		Offsets:     fb.Offsets,
	}
	if err := ioctl(f, ioctlModeAddFB2, unsafe.Pointer(&req)); err != nil {
		return 0, fmt.Errorf("MODE_ADDFB2(%s): %w", fb.Format, err)
	}
	return req.FbID, nil
}

func rmFB(f *os.File, fbID uint32) error {
	id := fbID
	if err := ioctl(f, ioctlModeRmFB, unsafe.Pointer(&id)); err != nil {
		return fmt.Errorf("MODE_RMFB(%d): %w", fbID, err)
	}
	return nil
}

func primeFDToHandle(f *os.File, fd int) (uint32, error) {
	req := drmPrimeHandle{FD: int32(fd)}
	if err := ioctl(f, ioctlPrimeFDToHandle, unsafe.Pointer(&req)); err != nil {
		return 0, fmt.Errorf("PRIME_FD_TO_HANDLE(fd=%d): %w", fd, err)
	}
	return req.Handle, nil
}

func gemClose(f *os.File, handle uint32) error {
	req := drmGemClose{Handle: handle}
	if err := ioctl(f, ioctlGemClose, unsafe.Pointer(&req)); err != nil {
		return fmt.Errorf("GEM_CLOSE(%d): %w", handle, err)
	}
	return nil
}

func getObjectProperties(f *os.File, objID, objType uint32) ([]uint32, []uint64, error) {
	req := drmModeObjGetProperties{ObjID: objID, ObjType: objType}
	if err := ioctl(f, ioctlModeObjGetProperties, unsafe.Pointer(&req)); err != nil {
		return nil, nil, fmt.Errorf("MODE_OBJ_GETPROPERTIES(%d): %w", objID, err)
	}
	if req.CountProps == 0 {
		return nil, nil, nil
	}

	props := make([]uint32, req.CountProps)
	values := make([]uint64, req.CountProps)
	fill := drmModeObjGetProperties{
		PropsPtr:      uint64(uintptr(unsafe.Pointer(&props[0]))),
		PropValuesPtr: uint64(uintptr(unsafe.Pointer(&values[0]))),
		CountProps:    req.CountProps,
		ObjID:         objID,
		ObjType:       objType,
	}
	if err := ioctl(f, ioctlModeObjGetProperties, unsafe.Pointer(&fill)); err != nil {
		return nil, nil, fmt.Errorf("MODE_OBJ_GETPROPERTIES(%d) (fill): %w", objID, err)
	}
	n := min(len(props), int(fill.CountProps))
	return props[:n], values[:n], nil
}

func getProperty(f *os.File, propID uint32) (*Property, error) {
	req := drmModeGetProperty{PropID: propID}
	if err := ioctl(f, ioctlModeGetProperty, unsafe.Pointer(&req)); err != nil {
		return nil, fmt.Errorf("MODE_GETPROPERTY(%d): %w", propID, err)
	}

	var (
		values []uint64
		enums  []drmModePropertyEnum
	)
	fill := drmModeGetProperty{
		PropID:         propID,
		CountValues:    req.CountValues,
		CountEnumBlobs: req.CountEnumBlobs,
	}
	if req.CountValues > 0 {
		values = make([]uint64, req.CountValues)
		fill.ValuesPtr = uint64(uintptr(unsafe.Pointer(&values[0])))
	}
	// Blob properties report blob ids through enum_blob_ptr; only enum and
	// bitmask properties carry name tables.
	if req.CountEnumBlobs > 0 && req.Flags&(PropEnum|PropBitmask) != 0 {
		enums = make([]drmModePropertyEnum, req.CountEnumBlobs)
		fill.EnumBlobPtr = uint64(uintptr(unsafe.Pointer(&enums[0])))
	} else {
		fill.CountEnumBlobs = 0
	}

	if err := ioctl(f, ioctlModeGetProperty, unsafe.Pointer(&fill)); err != nil {
		return nil, fmt.Errorf("MODE_GETPROPERTY(%d) (fill): %w", propID, err)
	}

	prop := &Property{
		ID:     fill.PropID,
		Flags:  fill.Flags,
		Name:   cString(fill.Name[:]),
		Values: values[:min(len(values), int(fill.CountValues))],
	}
	for _, e := range enums[:min(len(enums), int(fill.CountEnumBlobs))] {
		prop.Enums = append(prop.Enums, PropertyEnum{Value: e.Value, Name: cString(e.Name[:])})
	}
	return prop, nil
}

func setObjectProperty(f *os.File, objID, objType, propID uint32, value uint64) error {
	req := drmModeObjSetProperty{
		Value:   value,
		PropID:  propID,
		ObjID:   objID,
		ObjType: objType,
	}
	if err := ioctl(f, ioctlModeObjSetProperty, unsafe.Pointer(&req)); err != nil {
		return fmt.Errorf("MODE_OBJ_SETPROPERTY(obj=%d prop=%d): %w", objID, propID, err)
	}
	return nil
}
