package preview

import "errors"

var (
	// ErrDeviceUnavailable means the device could not be opened or this
	// process does not hold display control. Construction fails.
	ErrDeviceUnavailable = errors.New("display device unavailable")

	// ErrNotFound means a required display resource is missing: a CRTC, a
	// connector with an active CRTC or modes, a plane for the requested
	// format, or a plane id the manager does not know.
	ErrNotFound = errors.New("display resource not found")

	// ErrPlanesExhausted means every plane has already been handed out.
	// Callers should stop adding surfaces rather than retry.
	ErrPlanesExhausted = errors.New("maximum plane count reached")

	// ErrPropertyNotApplicable is returned by SetPlaneProperty when the
	// property or value is missing or the write is rejected. It never
	// changes manager state.
	ErrPropertyNotApplicable = errors.New("plane property not applicable")

	ErrAlreadyBound = errors.New("buffer is already bound to a plane")
)
