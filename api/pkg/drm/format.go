package drm

import (
	"errors"
	"fmt"
)

// ErrUnsupportedFormat is returned when a pixel format has no plane layout.
var ErrUnsupportedFormat = errors.New("unsupported format layout")

// Format is a DRM fourcc pixel format code.
type Format uint32

// FourCC builds a format code the way drm_fourcc.h's fourcc_code() does.
func FourCC(a, b, c, d byte) Format {
	return Format(uint32(a) | uint32(b)<<8 | uint32(c)<<16 | uint32(d)<<24)
}

var (
	FormatRGB565   = FourCC('R', 'G', '1', '6')
	FormatXRGB8888 = FourCC('X', 'R', '2', '4')
	FormatARGB8888 = FourCC('A', 'R', '2', '4')
	FormatXBGR8888 = FourCC('X', 'B', '2', '4')
	FormatABGR8888 = FourCC('A', 'B', '2', '4')
	FormatYUYV     = FourCC('Y', 'U', 'Y', 'V')
	FormatNV12     = FourCC('N', 'V', '1', '2')
	FormatYUV420   = FourCC('Y', 'U', '1', '2')
)

var formatNames = map[string]Format{
	"RGB565":   FormatRGB565,
	"XRGB8888": FormatXRGB8888,
	"ARGB8888": FormatARGB8888,
	"XBGR8888": FormatXBGR8888,
	"ABGR8888": FormatABGR8888,
	"YUYV":     FormatYUYV,
	"NV12":     FormatNV12,
	"YUV420":   FormatYUV420,
}

// ParseFormat accepts either a well-known name ("ARGB8888") or a raw
// four-character code ("AR24").
func ParseFormat(s string) (Format, error) {
	if f, ok := formatNames[s]; ok {
		return f, nil
	}
	if len(s) == 4 {
		return FourCC(s[0], s[1], s[2], s[3]), nil
	}
	return 0, fmt.Errorf("unknown pixel format %q", s)
}

// String renders the four character code, e.g. "AR24".
func (f Format) String() string {
	b := []byte{byte(f), byte(f >> 8), byte(f >> 16), byte(f >> 24)}
	for i, c := range b {
		if c < 0x20 || c > 0x7e {
			b[i] = '?'
		}
	}
	return string(b)
}

// Layout describes where each color plane of a frame lives inside a single
// buffer object.
type Layout struct {
	Planes  int
	Offsets [4]uint32
	Pitches [4]uint32
}

// Framebuffer expands the layout into an ADDFB2 request where every color plane
// references the same buffer handle.
func (l Layout) Framebuffer(width, height uint32, format Format, handle uint32) FramebufferRequest {
	req := FramebufferRequest{
		Width:   width,
		Height:  height,
		Format:  format,
		Offsets: l.Offsets,
		Pitches: l.Pitches,
	}
	for i := 0; i < l.Planes && i < len(req.Handles); i++ {
		req.Handles[i] = handle
	}
	return req
}

// LayoutFunc computes the layout of a width x height frame. A zero stride
// selects the format's tightly packed default.
type LayoutFunc func(width, height, stride uint32) Layout

// FormatLayouts maps pixel formats to their layout functions.
type FormatLayouts map[Format]LayoutFunc

// Lookup returns the layout for the format or ErrUnsupportedFormat.
func (fl FormatLayouts) Lookup(f Format, width, height, stride uint32) (Layout, error) {
	fn, ok := fl[f]
	if !ok {
		return Layout{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, f)
	}
	return fn(width, height, stride), nil
}

// DefaultLayouts returns the layouts for planar YUV 4:2:0 and packed ABGR8888.
func DefaultLayouts() FormatLayouts {
	return FormatLayouts{
		FormatYUV420:   yuv420Layout,
		FormatABGR8888: abgr8888Layout,
	}
}

func yuv420Layout(width, height, stride uint32) Layout {
	if stride == 0 {
		stride = width
	}
	luma := stride * height
	chroma := (stride / 2) * (height / 2)
	return Layout{
		Planes:  3,
		Offsets: [4]uint32{0, luma, luma + chroma},
		Pitches: [4]uint32{stride, stride / 2, stride / 2},
	}
}

func abgr8888Layout(width, _, stride uint32) Layout {
	if stride == 0 {
		stride = width * 4
	}
	return Layout{
		Planes:  1,
		Pitches: [4]uint32{stride},
	}
}
