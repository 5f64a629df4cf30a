package vbox

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/chassis-vm/chassis/api/v1alpha1"
	"github.com/chassis-vm/chassis/internal/machine"
)

// MediumResolver resolves device locations to medium identifiers that
// storageattach accepts. It implements machine.MediumResolver.
type MediumResolver struct{}

var _ machine.MediumResolver = (*MediumResolver)(nil)

// Resolve turns a storage location into an attachable medium. Locations
// are file paths and must exist; an empty location on a dvd device
// attaches an empty drive.
func (MediumResolver) Resolve(location string, kind v1alpha1.DeviceKind) (string, error) {
	if location == "" {
		if kind == v1alpha1.DeviceDVD {
			return MediumEmptyDrive, nil
		}
		return "", fmt.Errorf("%s devices require a medium location", kind)
	}

	abs, err := filepath.Abs(location)
	if err != nil {
		return "", fmt.Errorf("failed to resolve medium path: %w", err)
	}
	if _, err := os.Stat(abs); err != nil {
		return "", fmt.Errorf("medium not found at %s: %w", abs, err)
	}
	return abs, nil
}
