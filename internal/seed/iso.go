// Package seed builds configuration seed ISO images. A seed ISO carries
// small key/value files for in-guest provisioning tools and is attached to
// the machine as a dvd device through the normal storage configuration.
package seed

import (
	"bytes"
	"fmt"
	"os"
	"sort"

	"github.com/kdomanski/iso9660"
)

// DefaultVolumeLabel is the volume identifier guests look for when probing
// for a seed drive.
const DefaultVolumeLabel = "CHASSIS"

// GenerateISO creates an ISO9660 image containing the given files at the
// image root, with file names as map keys. The resulting image attaches
// through a DeviceSpec with kind dvd.
func GenerateISO(files map[string][]byte, volumeLabel string) ([]byte, error) {
	if len(files) == 0 {
		return nil, fmt.Errorf("seed image requires at least one file")
	}
	if volumeLabel == "" {
		volumeLabel = DefaultVolumeLabel
	}

	writer, err := iso9660.NewWriter()
	if err != nil {
		return nil, fmt.Errorf("failed to create ISO writer: %w", err)
	}
	defer func() {
		// Cleanup removes the writer's temporary staging files. The image
		// is already in memory at that point, so errors are ignorable.
		_ = writer.Cleanup()
	}()

	// Stable file order keeps images reproducible for identical input.
	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if err := writer.AddFile(bytes.NewReader(files[name]), name); err != nil {
			return nil, fmt.Errorf("failed to add %s: %w", name, err)
		}
	}

	var buf bytes.Buffer
	if err := writer.WriteTo(&buf, volumeLabel); err != nil {
		return nil, fmt.Errorf("failed to write ISO image: %w", err)
	}

	return buf.Bytes(), nil
}

// WriteISO generates a seed image and writes it to path, creating or
// truncating the file.
func WriteISO(path string, files map[string][]byte, volumeLabel string) error {
	data, err := GenerateISO(files, volumeLabel)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write ISO to %s: %w", path, err)
	}
	return nil
}
