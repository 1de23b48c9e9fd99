package preview

// Source selects how the display device is obtained.
type Source struct {
	// DevicePath is a DRM node such as /dev/dri/card0. This process must be
	// able to become DRM master on it.
	DevicePath string

	// LeaseSocket, when set, requests a lease from a lease manager instead of
	// opening DevicePath.
	LeaseSocket string
	LeaseWidth  uint32
	LeaseHeight uint32
}
