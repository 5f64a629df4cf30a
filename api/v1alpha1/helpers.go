package v1alpha1

import (
	"time"

	"github.com/google/uuid"
)

const (
	// GroupName is the API group for chassis resources.
	GroupName = "chassis.dev"

	// Version is the API version.
	Version = "v1alpha1"

	// MachineKind is the kind string for Machine resources.
	MachineKind = "Machine"
)

// NewMachine creates a new Machine with TypeMeta and ObjectMeta defaults.
func NewMachine(name string) *Machine {
	return &Machine{
		TypeMeta: TypeMeta{
			APIVersion: GroupName + "/" + Version,
			Kind:       MachineKind,
		},
		ObjectMeta: ObjectMeta{
			Name:              name,
			UID:               uuid.New().String(),
			CreationTimestamp: Time{Time: time.Now()},
			Generation:        1,
		},
	}
}

// SetDefaultAPIVersion ensures the Machine has the correct apiVersion and
// kind. Useful when loading from files that might be missing these fields.
func SetDefaultAPIVersion(m *Machine) {
	if m.APIVersion == "" {
		m.APIVersion = GroupName + "/" + Version
	}
	if m.Kind == "" {
		m.Kind = MachineKind
	}
}
