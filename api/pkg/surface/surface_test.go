package surface

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helixml/helix-preview/api/pkg/drm"
	"github.com/helixml/helix-preview/api/pkg/preview"
)

func TestNew(t *testing.T) {
	_, err := New(make([]byte, 64), 4, 4, 16, drm.FormatXRGB8888)
	assert.NoError(t, err)

	_, err = New(make([]byte, 64), 4, 4, 16, drm.FormatYUV420)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = New(make([]byte, 63), 4, 4, 16, drm.FormatXRGB8888)
	assert.Error(t, err)

	_, err = New(make([]byte, 64), 4, 4, 12, drm.FormatXRGB8888)
	assert.Error(t, err)
}

func TestSetAt_ByteOrder(t *testing.T) {
	pix := make([]byte, 2*8*2)
	img, err := New(pix, 2, 2, 16, drm.FormatXRGB8888)
	require.NoError(t, err)

	img.Set(1, 1, color.RGBA{R: 0x11, G: 0x22, B: 0x33, A: 0xff})

	i := img.PixOffset(1, 1)
	assert.Equal(t, 20, i)
	assert.Equal(t, []byte{0x33, 0x22, 0x11, 0xff}, pix[i:i+4])
	assert.Equal(t, color.RGBA{R: 0x11, G: 0x22, B: 0x33, A: 0xff}, img.At(1, 1))

	// Padding between rows is never written.
	assert.Equal(t, make([]byte, 8), pix[8:16])

	// Out of bounds writes are ignored.
	img.Set(2, 0, color.White)
	img.Set(-1, 0, color.White)
	assert.Equal(t, color.RGBA{}, img.At(5, 5))
}

func TestAt_XRGBIsOpaque(t *testing.T) {
	pix := make([]byte, 4)
	xrgb, err := New(pix, 1, 1, 4, drm.FormatXRGB8888)
	require.NoError(t, err)
	argb, err := New(pix, 1, 1, 4, drm.FormatARGB8888)
	require.NoError(t, err)

	assert.Equal(t, uint8(0xff), xrgb.At(0, 0).(color.RGBA).A)
	assert.Equal(t, uint8(0), argb.At(0, 0).(color.RGBA).A)
}

func TestFill(t *testing.T) {
	img, err := New(make([]byte, 200*200*4), 200, 200, 800, drm.FormatXRGB8888)
	require.NoError(t, err)

	img.Fill(color.White)

	for _, p := range [][2]int{{0, 0}, {199, 0}, {100, 100}, {199, 199}} {
		assert.Equal(t, color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, img.At(p[0], p[1]))
	}
}

func TestLabel(t *testing.T) {
	img, err := New(make([]byte, 100*40*4), 100, 40, 400, drm.FormatXRGB8888)
	require.NoError(t, err)
	img.Fill(color.Black)

	img.Label("cam0", color.White)

	lit := 0
	for y := 0; y < 40; y++ {
		for x := 0; x < 100; x++ {
			if img.At(x, y).(color.RGBA).R != 0 {
				lit++
				// Four glyphs of the 7x13 face centered in a 100x40 image.
				assert.True(t, x >= 36 && x < 64, "pixel at x=%d outside the label", x)
			}
		}
	}
	assert.Positive(t, lit)
}

func TestFromBuffer(t *testing.T) {
	_, err := FromBuffer(&preview.Buffer{Width: 4, Height: 4, Format: drm.FormatXRGB8888})
	assert.Error(t, err)
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor("#ff8000")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{R: 0xff, G: 0x80, B: 0x00, A: 0xff}, c)

	c, err = ParseColor("#fff")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, c)

	_, err = ParseColor("orange")
	assert.Error(t, err)
}
