package preview

import "math"

// MapGeometry converts normalized placements into device pixel rectangles.
//
// Each component is floor(dimension * fraction), evaluated in float32 so
// results match existing callers bit for bit. Nothing is rounded or clamped.
func MapGeometry(displayWidth, displayHeight, bufferWidth, bufferHeight uint32, display, roi Placement) (crtc, src Rect) {
	crtc = Rect{
		X: int32(scale(displayWidth, display.X)),
		Y: int32(scale(displayHeight, display.Y)),
		W: uint32(scale(displayWidth, display.W)),
		H: uint32(scale(displayHeight, display.H)),
	}
	src = Rect{
		X: int32(scale(bufferWidth, roi.X)),
		Y: int32(scale(bufferHeight, roi.Y)),
		W: uint32(scale(bufferWidth, roi.W)),
		H: uint32(scale(bufferHeight, roi.H)),
	}
	return crtc, src
}

func scale(dim uint32, fraction float32) int64 {
	// The conversion forces float32 rounding of the product.
	product := float32(float32(dim) * fraction)
	return int64(math.Floor(float64(product)))
}
