package hardware

import (
	"testing"

	"github.com/chassis-vm/chassis/api/v1alpha1"
)

func TestCompatible(t *testing.T) {
	tests := []struct {
		bus        v1alpha1.BusKind
		controller v1alpha1.ControllerKind
		want       bool
	}{
		{v1alpha1.BusIDE, v1alpha1.ControllerPIIX3, true},
		{v1alpha1.BusIDE, v1alpha1.ControllerPIIX4, true},
		{v1alpha1.BusIDE, v1alpha1.ControllerICH6, true},
		{v1alpha1.BusSATA, v1alpha1.ControllerIntelAHCI, true},
		{v1alpha1.BusSCSI, v1alpha1.ControllerLSILogic, true},
		{v1alpha1.BusSCSI, v1alpha1.ControllerBusLogic, true},
		{v1alpha1.BusSAS, v1alpha1.ControllerLSILogicSAS, true},

		// Cross-bus pairings are rejected.
		{v1alpha1.BusIDE, v1alpha1.ControllerIntelAHCI, false},
		{v1alpha1.BusSATA, v1alpha1.ControllerPIIX4, false},
		{v1alpha1.BusSATA, v1alpha1.ControllerLSILogicSAS, false},
		{v1alpha1.BusSCSI, v1alpha1.ControllerLSILogicSAS, false},
		{v1alpha1.BusSAS, v1alpha1.ControllerLSILogic, false},

		// Unknown kinds on either side yield false, not a panic.
		{v1alpha1.BusKind("usb"), v1alpha1.ControllerPIIX3, false},
		{v1alpha1.BusIDE, v1alpha1.ControllerKind("nec-usb"), false},
		{"", "", false},
	}

	for _, tt := range tests {
		if got := Compatible(tt.bus, tt.controller); got != tt.want {
			t.Errorf("Compatible(%q, %q) = %v, expected %v", tt.bus, tt.controller, got, tt.want)
		}
	}
}

func TestControllersFor(t *testing.T) {
	ide := ControllersFor(v1alpha1.BusIDE)
	want := []v1alpha1.ControllerKind{
		v1alpha1.ControllerPIIX3,
		v1alpha1.ControllerPIIX4,
		v1alpha1.ControllerICH6,
	}
	if len(ide) != len(want) {
		t.Fatalf("expected %v, got %v", want, ide)
	}
	for i := range want {
		if ide[i] != want[i] {
			t.Errorf("ControllersFor(ide)[%d] = %q, expected %q", i, ide[i], want[i])
		}
	}

	if got := ControllersFor(v1alpha1.BusKind("usb")); got != nil {
		t.Errorf("expected nil for unknown bus, got %v", got)
	}

	// Mutating the returned slice must not corrupt the table.
	ide[0] = v1alpha1.ControllerKind("mutated")
	if !Compatible(v1alpha1.BusIDE, v1alpha1.ControllerPIIX3) {
		t.Error("table was corrupted by mutating a returned slice")
	}
}
