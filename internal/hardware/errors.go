package hardware

import (
	"errors"
	"fmt"

	"github.com/chassis-vm/chassis/api/v1alpha1"
)

// ErrTooManyIDEDevices is returned when a controller configuration asks an
// IDE controller to hold more devices than its two-channel topology has
// positions for.
var ErrTooManyIDEDevices = errors.New("ide controllers hold at most 4 devices")

// IncompatibleControllerError is returned when a controller configuration
// pins a chipset that is not legal for the controller's bus. It is raised
// before the controller is created, so a failing configuration never
// mutates the machine.
type IncompatibleControllerError struct {
	Bus        v1alpha1.BusKind
	Controller v1alpha1.ControllerKind
}

func (e *IncompatibleControllerError) Error() string {
	return fmt.Sprintf("controller kind %q is not compatible with bus %q", e.Controller, e.Bus)
}

// UnknownDeviceKindError is returned when a device descriptor's kind does
// not map to a platform device type. It is raised before the medium is
// resolved or attached.
type UnknownDeviceKindError struct {
	Kind v1alpha1.DeviceKind
}

func (e *UnknownDeviceKindError) Error() string {
	return fmt.Sprintf("device kind %q has no platform device type", e.Kind)
}
