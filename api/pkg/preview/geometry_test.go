package preview

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapGeometry(t *testing.T) {
	tests := []struct {
		name          string
		displayWidth  uint32
		displayHeight uint32
		bufferWidth   uint32
		bufferHeight  uint32
		display       Placement
		roi           Placement
		wantCrtc      Rect
		wantSrc       Rect
	}{
		{
			name:          "centered quarter",
			displayWidth:  1920,
			displayHeight: 1080,
			bufferWidth:   640,
			bufferHeight:  480,
			display:       Placement{X: 0.25, Y: 0.25, W: 0.5, H: 0.5},
			roi:           FullFrame,
			wantCrtc:      Rect{X: 480, Y: 270, W: 960, H: 540},
			wantSrc:       Rect{X: 0, Y: 0, W: 640, H: 480},
		},
		{
			name:          "bottom right corner",
			displayWidth:  1920,
			displayHeight: 1080,
			bufferWidth:   1280,
			bufferHeight:  720,
			display:       Placement{X: 0.75, Y: 0.75, W: 0.25, H: 0.25},
			roi:           FullFrame,
			wantCrtc:      Rect{X: 1440, Y: 810, W: 480, H: 270},
			wantSrc:       Rect{X: 0, Y: 0, W: 1280, H: 720},
		},
		{
			name:          "cropped source",
			displayWidth:  1920,
			displayHeight: 1080,
			bufferWidth:   1280,
			bufferHeight:  720,
			display:       FullFrame,
			roi:           Placement{X: 0.5, Y: 0.5, W: 0.5, H: 0.5},
			wantCrtc:      Rect{X: 0, Y: 0, W: 1920, H: 1080},
			wantSrc:       Rect{X: 640, Y: 360, W: 640, H: 360},
		},
		{
			name:          "fractions are floored",
			displayWidth:  1366,
			displayHeight: 768,
			bufferWidth:   101,
			bufferHeight:  99,
			display:       Placement{X: 0.5, Y: 0.5, W: 0.5, H: 0.5},
			roi:           Placement{X: 0.5, Y: 0.5, W: 0.5, H: 0.5},
			wantCrtc:      Rect{X: 683, Y: 384, W: 683, H: 384},
			wantSrc:       Rect{X: 50, Y: 49, W: 50, H: 49},
		},
		{
			name:          "out of range values pass through",
			displayWidth:  1920,
			displayHeight: 1080,
			bufferWidth:   640,
			bufferHeight:  480,
			display:       Placement{X: -0.5, Y: 1.5, W: 1.5, H: 2},
			roi:           FullFrame,
			wantCrtc:      Rect{X: -960, Y: 1620, W: 2880, H: 2160},
			wantSrc:       Rect{X: 0, Y: 0, W: 640, H: 480},
		},
		{
			name:          "zero sized buffer",
			displayWidth:  1920,
			displayHeight: 1080,
			display:       FullFrame,
			roi:           FullFrame,
			wantCrtc:      Rect{X: 0, Y: 0, W: 1920, H: 1080},
			wantSrc:       Rect{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			crtc, src := MapGeometry(tt.displayWidth, tt.displayHeight, tt.bufferWidth, tt.bufferHeight, tt.display, tt.roi)
			assert.Equal(t, tt.wantCrtc, crtc)
			assert.Equal(t, tt.wantSrc, src)
		})
	}
}

func TestMapGeometry_Idempotent(t *testing.T) {
	display := Placement{X: 0.1, Y: 0.2, W: 0.3, H: 0.4}
	roi := Placement{X: 0.05, Y: 0.05, W: 0.9, H: 0.9}

	crtc1, src1 := MapGeometry(1920, 1080, 640, 480, display, roi)
	crtc2, src2 := MapGeometry(1920, 1080, 640, 480, display, roi)

	assert.Equal(t, crtc1, crtc2)
	assert.Equal(t, src1, src2)
}
