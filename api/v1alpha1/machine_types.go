package v1alpha1

import (
	"fmt"
	"regexp"
	"strings"
)

// Machine represents a VirtualBox virtual machine whose hardware is managed
// declaratively by chassis.
//
// The resource only describes desired configuration; applying it mutates an
// already-registered, writable machine through an ordered sequence of
// platform calls. Chassis never creates, starts, stops, or persists the
// machine itself.
type Machine struct {
	// TypeMeta contains the API version and kind.
	TypeMeta `json:",inline" yaml:",inline"`

	// ObjectMeta contains metadata like name, labels, annotations.
	// +optional
	ObjectMeta `json:"metadata,omitempty" yaml:"metadata,omitempty"`

	// Spec defines the desired hardware configuration of the Machine.
	Spec MachineSpec `json:"spec" yaml:"spec"`
}

// MachineSpec defines the desired hardware configuration of a Machine.
//
// Network and Storage are positional: the entry at index i configures
// adapter slot i or controller slot i, and a null list entry means "leave
// this slot alone". Every other key in the spec document is a generic
// scalar machine property resolved through a setter table at apply time;
// keys without a registered setter are reported and skipped, never fatal.
type MachineSpec struct {
	// Network configures the machine's network adapters by slot. Entries
	// beyond the platform's supported adapter count are silently dropped.
	// +optional
	Network []*NetworkAdapterSpec `json:"network,omitempty" yaml:"network,omitempty"`

	// Storage configures the machine's storage controllers in order.
	// +optional
	Storage []*StorageControllerSpec `json:"storage,omitempty" yaml:"storage,omitempty"`

	// BootMountPoint is reserved and currently ignored by the applier.
	// +optional
	BootMountPoint string `json:"bootMountPoint,omitempty" yaml:"bootMountPoint,omitempty"`

	// Properties holds generic scalar machine properties (memory, cpus,
	// boot order, ...). In YAML these appear inline next to network and
	// storage rather than nested under a properties key.
	// +optional
	Properties map[string]any `json:"properties,omitempty" yaml:",inline"`
}

// BusKind is the storage transport type a controller implements.
type BusKind string

const (
	BusIDE  BusKind = "ide"
	BusSATA BusKind = "sata"
	BusSCSI BusKind = "scsi"
	BusSAS  BusKind = "sas"
)

// ControllerKind is the specific chipset emulated by a storage controller.
// Legal values are constrained by the controller's bus kind.
type ControllerKind string

const (
	ControllerPIIX3       ControllerKind = "piix3"
	ControllerPIIX4       ControllerKind = "piix4"
	ControllerICH6        ControllerKind = "ich6"
	ControllerIntelAHCI   ControllerKind = "intel-ahci"
	ControllerLSILogic    ControllerKind = "lsi-logic"
	ControllerBusLogic    ControllerKind = "bus-logic"
	ControllerLSILogicSAS ControllerKind = "lsi-logic-sas"
)

// DeviceKind declares how a medium should be attached to a controller.
type DeviceKind string

const (
	DeviceDisk   DeviceKind = "disk"
	DeviceDVD    DeviceKind = "dvd"
	DeviceFloppy DeviceKind = "floppy"
)

// AttachmentKind is the networking backend mode an adapter is wired to.
type AttachmentKind string

const (
	AttachmentBridged      AttachmentKind = "bridged"
	AttachmentNAT          AttachmentKind = "nat"
	AttachmentInternal     AttachmentKind = "internal"
	AttachmentHostOnly     AttachmentKind = "host-only"
	AttachmentSharedFolder AttachmentKind = "shared-folder"
)

// StorageControllerSpec describes one storage controller and the media
// attached to it.
type StorageControllerSpec struct {
	// Name is the controller name registered with the platform.
	Name string `json:"name" yaml:"name"`

	// Bus is the storage bus the controller implements.
	Bus BusKind `json:"bus" yaml:"bus"`

	// Type optionally pins the emulated chipset. Must be compatible with
	// Bus; the applier rejects incompatible pairs before creating anything.
	// +optional
	Type *ControllerKind `json:"type,omitempty" yaml:"type,omitempty"`

	// Devices lists media by bay position. A null entry means "no device
	// in this bay" and produces no attach call, while later entries keep
	// their positional coordinates.
	Devices []*DeviceSpec `json:"devices" yaml:"devices"`
}

// DeviceSpec identifies a medium by location and declares how it attaches.
type DeviceSpec struct {
	// Location is the storage location of the medium, typically a file
	// path. May be empty for dvd devices to attach an empty drive.
	// +optional
	Location string `json:"location,omitempty" yaml:"location,omitempty"`

	// Kind is the device kind the medium attaches as.
	Kind DeviceKind `json:"kind" yaml:"kind"`
}

// NetworkAdapterSpec configures one network adapter slot.
//
// Optional scalar properties use pointer types so an absent value means
// "leave the adapter's current setting alone" rather than "reset to zero".
type NetworkAdapterSpec struct {
	// AttachmentType selects the networking backend the adapter is wired
	// to. Only bridged attachment mutates the adapter today; the other
	// known kinds are reported as unsupported and skipped.
	// +optional
	AttachmentType AttachmentKind `json:"attachmentType,omitempty" yaml:"attachmentType,omitempty"`

	// AdapterType is the emulated NIC hardware, e.g. "Am79C973",
	// "82540EM" or "virtio".
	// +optional
	AdapterType string `json:"adapterType,omitempty" yaml:"adapterType,omitempty"`

	// Network is the internal network name used by internal attachment.
	// +optional
	Network string `json:"network,omitempty" yaml:"network,omitempty"`

	// HostInterface is the host interface used by bridged attachment.
	// +optional
	HostInterface string `json:"hostInterface,omitempty" yaml:"hostInterface,omitempty"`

	// Enabled toggles the adapter.
	// +optional
	Enabled *bool `json:"enabled,omitempty" yaml:"enabled,omitempty"`

	// CableConnected toggles the virtual cable.
	// +optional
	CableConnected *bool `json:"cableConnected,omitempty" yaml:"cableConnected,omitempty"`

	// MACAddress sets the adapter MAC, formatted without separators.
	// +optional
	MACAddress string `json:"macAddress,omitempty" yaml:"macAddress,omitempty"`

	// LineSpeed sets the adapter line speed in kbps.
	// +optional
	LineSpeed *uint32 `json:"lineSpeed,omitempty" yaml:"lineSpeed,omitempty"`

	// NATDriver carries NAT engine settings. Recognized but not yet
	// applied; the applier reports it and continues.
	// +optional
	NATDriver map[string]any `json:"natDriver,omitempty" yaml:"natDriver,omitempty"`

	// Extra collects unrecognized adapter keys from the YAML document.
	// They are reported at apply time and never mutate the adapter.
	// +optional
	Extra map[string]any `json:"extra,omitempty" yaml:",inline"`
}

// KnownBus reports whether b is a member of the closed bus enumeration.
func KnownBus(b BusKind) bool {
	switch b {
	case BusIDE, BusSATA, BusSCSI, BusSAS:
		return true
	}
	return false
}

// KnownControllerKind reports whether c is a member of the closed
// controller-kind enumeration, regardless of bus. Whether a kind is legal
// for a particular bus is decided by the hardware package at apply time.
func KnownControllerKind(c ControllerKind) bool {
	switch c {
	case ControllerPIIX3, ControllerPIIX4, ControllerICH6,
		ControllerIntelAHCI, ControllerLSILogic, ControllerBusLogic,
		ControllerLSILogicSAS:
		return true
	}
	return false
}

// KnownDeviceKind reports whether d is a member of the closed device-kind
// enumeration.
func KnownDeviceKind(d DeviceKind) bool {
	switch d {
	case DeviceDisk, DeviceDVD, DeviceFloppy:
		return true
	}
	return false
}

// KnownAttachmentKind reports whether a names one of the attachment modes
// the platform understands, implemented or not.
func KnownAttachmentKind(a AttachmentKind) bool {
	switch a {
	case AttachmentBridged, AttachmentNAT, AttachmentInternal,
		AttachmentHostOnly, AttachmentSharedFolder:
		return true
	}
	return false
}

// Normalize applies defaults and canonicalizes fields after loading.
// Call before Validate.
func (m *Machine) Normalize() {
	m.Name = strings.ToLower(strings.TrimSpace(m.Name))
	for _, ctl := range m.Spec.Storage {
		if ctl == nil {
			continue
		}
		ctl.Bus = BusKind(strings.ToLower(string(ctl.Bus)))
		if ctl.Type != nil {
			t := ControllerKind(strings.ToLower(string(*ctl.Type)))
			ctl.Type = &t
		}
		for _, dev := range ctl.Devices {
			if dev == nil {
				continue
			}
			dev.Kind = DeviceKind(strings.ToLower(string(dev.Kind)))
		}
	}
	for _, nic := range m.Spec.Network {
		if nic == nil {
			continue
		}
		nic.AttachmentType = AttachmentKind(strings.ToLower(string(nic.AttachmentType)))
	}
}

var machineNamePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_.-]*$`)

// Validate checks the resource for structural errors. It does not consult
// the platform: compatibility of controller types with buses and existence
// of media are enforced at apply time, before any mutation.
func (m *Machine) Validate() error {
	if m.Name == "" {
		return fmt.Errorf("metadata.name is required")
	}
	if !machineNamePattern.MatchString(m.Name) {
		return fmt.Errorf("metadata.name must start with an alphanumeric character and contain only alphanumerics, hyphens, underscores, or dots, got %q", m.Name)
	}

	namesSeen := make(map[string]bool)
	for i, ctl := range m.Spec.Storage {
		if ctl == nil {
			continue
		}
		if err := ctl.Validate(); err != nil {
			return fmt.Errorf("storage[%d]: %w", i, err)
		}
		if namesSeen[ctl.Name] {
			return fmt.Errorf("storage[%d]: duplicate controller name %q", i, ctl.Name)
		}
		namesSeen[ctl.Name] = true
	}

	for i, nic := range m.Spec.Network {
		if nic == nil {
			continue
		}
		if err := nic.Validate(); err != nil {
			return fmt.Errorf("network[%d]: %w", i, err)
		}
	}

	return nil
}

// Validate checks one storage controller configuration.
func (c *StorageControllerSpec) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("name is required")
	}
	if !KnownBus(c.Bus) {
		return fmt.Errorf("unknown bus kind %q", c.Bus)
	}
	if c.Type != nil && !KnownControllerKind(*c.Type) {
		return fmt.Errorf("unknown controller kind %q", *c.Type)
	}
	if c.Bus == BusIDE && len(c.Devices) > 4 {
		return fmt.Errorf("ide controllers hold at most 4 devices, got %d", len(c.Devices))
	}
	for i, dev := range c.Devices {
		if dev == nil {
			continue
		}
		if err := dev.Validate(); err != nil {
			return fmt.Errorf("devices[%d]: %w", i, err)
		}
	}
	return nil
}

// Validate checks one device descriptor.
func (d *DeviceSpec) Validate() error {
	if !KnownDeviceKind(d.Kind) {
		return fmt.Errorf("unknown device kind %q", d.Kind)
	}
	// Only dvd drives may be attached empty.
	if d.Location == "" && d.Kind != DeviceDVD {
		return fmt.Errorf("location is required for %s devices", d.Kind)
	}
	return nil
}

// Validate checks one network adapter configuration. Unrecognized
// attachment types and extra keys are deliberately not rejected here: they
// surface as non-fatal diagnostics at apply time instead.
func (n *NetworkAdapterSpec) Validate() error {
	if n.MACAddress != "" {
		mac := strings.ToUpper(n.MACAddress)
		if len(mac) != 12 {
			return fmt.Errorf("macAddress must be 12 hex digits without separators, got %q", n.MACAddress)
		}
		for _, r := range mac {
			if (r < '0' || r > '9') && (r < 'A' || r > 'F') {
				return fmt.Errorf("macAddress must be 12 hex digits without separators, got %q", n.MACAddress)
			}
		}
	}
	return nil
}
