// Package hardware holds the pure decision rules for machine hardware
// layout: which controller chipsets are legal on which storage bus, and
// which port/device coordinate each storage device lands on. Nothing in
// this package touches the platform.
package hardware

import (
	"github.com/chassis-vm/chassis/api/v1alpha1"
)

// controllersByBus is the closed compatibility table between storage buses
// and the controller chipsets VirtualBox accepts for them.
var controllersByBus = map[v1alpha1.BusKind][]v1alpha1.ControllerKind{
	v1alpha1.BusIDE:  {v1alpha1.ControllerPIIX3, v1alpha1.ControllerPIIX4, v1alpha1.ControllerICH6},
	v1alpha1.BusSATA: {v1alpha1.ControllerIntelAHCI},
	v1alpha1.BusSCSI: {v1alpha1.ControllerLSILogic, v1alpha1.ControllerBusLogic},
	v1alpha1.BusSAS:  {v1alpha1.ControllerLSILogicSAS},
}

// Compatible reports whether controller kind c may be used on a controller
// implementing bus kind b. Unknown bus or controller kinds yield false.
func Compatible(b v1alpha1.BusKind, c v1alpha1.ControllerKind) bool {
	for _, k := range controllersByBus[b] {
		if k == c {
			return true
		}
	}
	return false
}

// ControllersFor returns the controller kinds legal for bus kind b, in the
// platform's canonical order. The result is a copy; callers may mutate it.
func ControllersFor(b v1alpha1.BusKind) []v1alpha1.ControllerKind {
	kinds := controllersByBus[b]
	if kinds == nil {
		return nil
	}
	out := make([]v1alpha1.ControllerKind, len(kinds))
	copy(out, kinds)
	return out
}
