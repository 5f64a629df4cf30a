package hardware

import (
	"errors"
	"testing"

	"github.com/chassis-vm/chassis/api/v1alpha1"
)

func TestLayout_IDE(t *testing.T) {
	// The IDE table fills the primary device slot on both ports before
	// moving to the secondary slot.
	want := []Address{
		{Port: 0, Device: 0},
		{Port: 1, Device: 0},
		{Port: 0, Device: 1},
		{Port: 1, Device: 1},
	}

	for count := 0; count <= 4; count++ {
		addrs, err := Layout(v1alpha1.BusIDE, count)
		if err != nil {
			t.Fatalf("Layout(ide, %d) failed: %v", count, err)
		}
		if len(addrs) != count {
			t.Fatalf("Layout(ide, %d) returned %d addresses", count, len(addrs))
		}
		for i := 0; i < count; i++ {
			if addrs[i] != want[i] {
				t.Errorf("Layout(ide, %d)[%d] = %v, expected %v", count, i, addrs[i], want[i])
			}
		}
	}
}

func TestLayout_IDETooManyDevices(t *testing.T) {
	_, err := Layout(v1alpha1.BusIDE, 5)
	if !errors.Is(err, ErrTooManyIDEDevices) {
		t.Fatalf("expected ErrTooManyIDEDevices, got %v", err)
	}
}

func TestLayout_SequentialBuses(t *testing.T) {
	for _, bus := range []v1alpha1.BusKind{v1alpha1.BusSATA, v1alpha1.BusSCSI, v1alpha1.BusSAS} {
		addrs, err := Layout(bus, 30)
		if err != nil {
			t.Fatalf("Layout(%s, 30) failed: %v", bus, err)
		}
		for i, a := range addrs {
			if a.Port != uint(i) || a.Device != 0 {
				t.Errorf("Layout(%s)[%d] = %v, expected port %d device 0", bus, i, a, i)
			}
		}
	}
}

func TestLayout_NoSharedCoordinates(t *testing.T) {
	for _, bus := range []v1alpha1.BusKind{v1alpha1.BusIDE, v1alpha1.BusSATA, v1alpha1.BusSCSI, v1alpha1.BusSAS} {
		count := 4
		if bus != v1alpha1.BusIDE {
			count = 16
		}
		addrs, err := Layout(bus, count)
		if err != nil {
			t.Fatalf("Layout(%s, %d) failed: %v", bus, count, err)
		}
		seen := make(map[Address]int)
		for i, a := range addrs {
			if prev, ok := seen[a]; ok {
				t.Errorf("%s: bays %d and %d share coordinate %v", bus, prev, i, a)
			}
			seen[a] = i
		}
	}
}

func TestLayout_UnknownBus(t *testing.T) {
	if _, err := Layout(v1alpha1.BusKind("usb"), 1); err == nil {
		t.Fatal("expected error for unknown bus")
	}
}

func TestLayout_NegativeCount(t *testing.T) {
	if _, err := Layout(v1alpha1.BusSATA, -1); err == nil {
		t.Fatal("expected error for negative count")
	}
}

func TestLayout_ResultIsIsolated(t *testing.T) {
	addrs, err := Layout(v1alpha1.BusIDE, 4)
	if err != nil {
		t.Fatalf("Layout failed: %v", err)
	}
	addrs[0] = Address{Port: 9, Device: 9}

	again, err := Layout(v1alpha1.BusIDE, 1)
	if err != nil {
		t.Fatalf("Layout failed: %v", err)
	}
	if again[0] != (Address{Port: 0, Device: 0}) {
		t.Errorf("layout table was corrupted by mutating a result: %v", again[0])
	}
}
