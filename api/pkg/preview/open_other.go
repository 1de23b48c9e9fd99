//go:build !linux

package preview

import "fmt"

// Open is only available on Linux.
func Open(_ Source, _ Config) (*Manager, error) {
	return nil, fmt.Errorf("%w: DRM devices require linux", ErrDeviceUnavailable)
}
