// Package loader provides functions for loading Machine resources from
// YAML files.
package loader

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/chassis-vm/chassis/api/v1alpha1"
)

// LoadFromFile loads a Machine resource from a YAML file.
// The file must be in the chassis.dev/v1alpha1 format.
func LoadFromFile(path string) (*v1alpha1.Machine, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}

	return LoadFromYAML(data)
}

// LoadFromYAML loads a Machine resource from YAML bytes. The document is
// normalized and structurally validated; platform-dependent checks (bus
// compatibility, medium existence) happen at apply time.
func LoadFromYAML(data []byte) (*v1alpha1.Machine, error) {
	var m v1alpha1.Machine
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to unmarshal YAML: %w", err)
	}

	if m.APIVersion == "" {
		return nil, fmt.Errorf("missing required field: apiVersion")
	}
	if m.Kind == "" {
		return nil, fmt.Errorf("missing required field: kind")
	}

	expectedAPIVersion := v1alpha1.GroupName + "/" + v1alpha1.Version
	if m.APIVersion != expectedAPIVersion {
		return nil, fmt.Errorf("unsupported apiVersion: %s (expected: %s)", m.APIVersion, expectedAPIVersion)
	}
	if m.Kind != v1alpha1.MachineKind {
		return nil, fmt.Errorf("unsupported kind: %s (expected: %s)", m.Kind, v1alpha1.MachineKind)
	}

	m.Normalize()
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("invalid machine configuration: %w", err)
	}

	return &m, nil
}
