// Package surface draws into the mapped memory of dumb preview buffers.
package surface

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/helixml/helix-preview/api/pkg/drm"
	"github.com/helixml/helix-preview/api/pkg/preview"
)

var ErrUnsupportedFormat = errors.New("surface: unsupported pixel format")

// Image is a 32 bits per pixel little-endian image (B, G, R, X/A in memory)
// backed by buffer memory it does not own.
type Image struct {
	// Rect is the image bounding box.
	Rect image.Rectangle

	// Pix are the image pixels.
	Pix []byte

	// Stride is the Pix stride (in bytes) between vertically adjacent pixels.
	Stride int

	// Alpha is set for ARGB8888; XRGB8888 images always read back opaque.
	Alpha bool
}

var _ draw.Image = (*Image)(nil)

// New wraps pix as a width x height image with the given pitch.
func New(pix []byte, width, height, pitch int, format drm.Format) (*Image, error) {
	var alpha bool
	switch format {
	case drm.FormatXRGB8888:
	case drm.FormatARGB8888:
		alpha = true
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
	if pitch < width*4 || len(pix) < pitch*height {
		return nil, fmt.Errorf("surface: %d bytes too small for %dx%d with pitch %d", len(pix), width, height, pitch)
	}
	return &Image{
		Rect:   image.Rect(0, 0, width, height),
		Pix:    pix,
		Stride: pitch,
		Alpha:  alpha,
	}, nil
}

// FromBuffer wraps the mapped pixels of a bound dumb buffer.
func FromBuffer(buf *preview.Buffer) (*Image, error) {
	if buf.Pixels() == nil {
		return nil, errors.New("surface: buffer has no mapped pixels")
	}
	return New(buf.Pixels(), int(buf.Width), int(buf.Height), int(buf.Pitch()), buf.Format)
}

func (p *Image) ColorModel() color.Model {
	return color.RGBAModel
}

func (p *Image) Bounds() image.Rectangle {
	return p.Rect
}

func (p *Image) PixOffset(x, y int) int {
	return y*p.Stride + x*4
}

func (p *Image) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return color.RGBA{}
	}
	i := p.PixOffset(x, y)
	a := p.Pix[i+3]
	if !p.Alpha {
		a = 0xff
	}
	return color.RGBA{R: p.Pix[i+2], G: p.Pix[i+1], B: p.Pix[i], A: a}
}

func (p *Image) Set(x, y int, c color.Color) {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return
	}
	p.setRGBA(p.PixOffset(x, y), color.RGBAModel.Convert(c).(color.RGBA))
}

func (p *Image) setRGBA(i int, c color.RGBA) {
	p.Pix[i+0] = c.B
	p.Pix[i+1] = c.G
	p.Pix[i+2] = c.R
	p.Pix[i+3] = c.A
}

// Fill the image with a single color.
func (p *Image) Fill(c color.Color) {
	rgba := color.RGBAModel.Convert(c).(color.RGBA)
	for y := p.Rect.Min.Y; y < p.Rect.Max.Y; y++ {
		for x := p.Rect.Min.X; x < p.Rect.Max.X; x++ {
			p.setRGBA(p.PixOffset(x, y), rgba)
		}
	}
}

// Label draws text centered in the image with the built-in 7x13 face.
func (p *Image) Label(text string, c color.Color) {
	face := basicfont.Face7x13
	d := &font.Drawer{
		Dst:  p,
		Src:  image.NewUniform(c),
		Face: face,
	}
	width := d.MeasureString(text)
	metrics := face.Metrics()
	height := metrics.Ascent + metrics.Descent

	center := fixed.P(p.Rect.Dx()/2, p.Rect.Dy()/2)
	d.Dot = fixed.Point26_6{
		X: center.X - width/2,
		Y: center.Y - height/2 + metrics.Ascent,
	}
	d.DrawString(text)
}

// ParseColor parses #rgb or #rrggbb into an opaque color.
func ParseColor(s string) (color.RGBA, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
}
