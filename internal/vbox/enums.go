package vbox

import (
	"github.com/chassis-vm/chassis/api/v1alpha1"
)

// Platform enumeration values as VBoxManage spells them.
const (
	// storagectl --add values.
	BusValueIDE  = "ide"
	BusValueSATA = "sata"
	BusValueSCSI = "scsi"
	BusValueSAS  = "sas"

	// storagectl --controller values.
	ControllerValuePIIX3       = "PIIX3"
	ControllerValuePIIX4       = "PIIX4"
	ControllerValueICH6        = "ICH6"
	ControllerValueIntelAHCI   = "IntelAHCI"
	ControllerValueLSILogic    = "LSILogic"
	ControllerValueBusLogic    = "BusLogic"
	ControllerValueLSILogicSAS = "LSILogicSAS"

	// storageattach --type values.
	DeviceValueHDD = "hdd"
	DeviceValueDVD = "dvddrive"
	DeviceValueFDD = "fdd"

	// storageattach --medium value for an empty drive.
	MediumEmptyDrive = "emptydrive"
)

var storageBuses = map[v1alpha1.BusKind]string{
	v1alpha1.BusIDE:  BusValueIDE,
	v1alpha1.BusSATA: BusValueSATA,
	v1alpha1.BusSCSI: BusValueSCSI,
	v1alpha1.BusSAS:  BusValueSAS,
}

var controllerTypes = map[v1alpha1.ControllerKind]string{
	v1alpha1.ControllerPIIX3:       ControllerValuePIIX3,
	v1alpha1.ControllerPIIX4:       ControllerValuePIIX4,
	v1alpha1.ControllerICH6:        ControllerValueICH6,
	v1alpha1.ControllerIntelAHCI:   ControllerValueIntelAHCI,
	v1alpha1.ControllerLSILogic:    ControllerValueLSILogic,
	v1alpha1.ControllerBusLogic:    ControllerValueBusLogic,
	v1alpha1.ControllerLSILogicSAS: ControllerValueLSILogicSAS,
}

var deviceTypes = map[v1alpha1.DeviceKind]string{
	v1alpha1.DeviceDisk:   DeviceValueHDD,
	v1alpha1.DeviceDVD:    DeviceValueDVD,
	v1alpha1.DeviceFloppy: DeviceValueFDD,
}

// Enums resolves symbolic configuration kinds to VBoxManage enumeration
// values. The zero value is ready to use.
type Enums struct{}

// StorageBus resolves a bus kind.
func (Enums) StorageBus(b v1alpha1.BusKind) (string, bool) {
	v, ok := storageBuses[b]
	return v, ok
}

// ControllerType resolves a controller kind.
func (Enums) ControllerType(c v1alpha1.ControllerKind) (string, bool) {
	v, ok := controllerTypes[c]
	return v, ok
}

// DeviceType resolves a device kind.
func (Enums) DeviceType(d v1alpha1.DeviceKind) (string, bool) {
	v, ok := deviceTypes[d]
	return v, ok
}
