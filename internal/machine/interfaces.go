package machine

import (
	"github.com/chassis-vm/chassis/api/v1alpha1"
)

// Machine defines the mutating operations the appliers need from a live
// virtual machine handle. The handle and everything hanging off it are
// owned by the platform; this package only mutates them by reference.
//
// In production this is satisfied by *vbox.Machine.
// In tests this is satisfied by mock implementations.
type Machine interface {
	// Name returns the machine's registered name.
	Name() string

	// AddStorageController creates a storage controller of the given
	// platform bus value on the machine.
	AddStorageController(name, bus string) error

	// SetStorageControllerType pins the chipset of an existing controller
	// to the given platform controller-type value.
	SetStorageControllerType(name, controllerType string) error

	// AttachDevice attaches a medium to a controller at the given port and
	// device coordinate, as the given platform device-type value.
	AttachDevice(controllerName string, port, device uint, deviceType, medium string) error

	// NetworkAdapter returns the adapter handle for a slot. Slots are
	// zero-based and bounded by SystemProperties.MaxNetworkAdapters.
	NetworkAdapter(slot uint) (NetworkAdapter, error)
}

// NetworkAdapter defines the scalar setters and attachment operations on
// one network adapter handle.
//
// In production this is satisfied by *vbox.Adapter.
type NetworkAdapter interface {
	// SetAdapterType sets the emulated NIC hardware.
	SetAdapterType(hardware string) error

	// SetInternalNetwork sets the internal network name.
	SetInternalNetwork(name string) error

	// SetHostInterface sets the host interface used for bridging.
	SetHostInterface(name string) error

	// SetEnabled toggles the adapter.
	SetEnabled(on bool) error

	// SetCableConnected toggles the virtual cable.
	SetCableConnected(on bool) error

	// SetMACAddress sets the adapter MAC address.
	SetMACAddress(mac string) error

	// SetLineSpeed sets the line speed in kbps.
	SetLineSpeed(kbps uint32) error

	// AttachBridged wires the adapter to its bridged attachment.
	AttachBridged() error
}

// EnumResolver maps symbolic configuration kinds to platform enumeration
// values. A false result means the platform has no value for the symbol.
//
// In production this is satisfied by vbox.Enums.
type EnumResolver interface {
	// StorageBus resolves a bus kind to the platform bus value.
	StorageBus(b v1alpha1.BusKind) (string, bool)

	// ControllerType resolves a controller kind to the platform
	// controller-type value.
	ControllerType(c v1alpha1.ControllerKind) (string, bool)

	// DeviceType resolves a device kind to the platform device-type value.
	DeviceType(d v1alpha1.DeviceKind) (string, bool)
}

// MediumResolver resolves a storage location and device kind to a medium
// identifier the platform can attach.
//
// In production this is satisfied by *vbox.MediumResolver.
type MediumResolver interface {
	Resolve(location string, kind v1alpha1.DeviceKind) (string, error)
}

// SystemProperties reports platform limits consulted during application.
type SystemProperties interface {
	// MaxNetworkAdapters returns the number of adapter slots the machine's
	// chipset supports.
	MaxNetworkAdapters() (int, error)
}

// SetterFunc applies one generic scalar machine property value.
type SetterFunc func(m Machine, value any) error

// SetterTable maps generic configuration keys to their setters. It is
// injected into the Applier rather than looked up from global state so the
// core stays testable without the platform.
type SetterTable map[string]SetterFunc
