package machine

import (
	"fmt"
	"log"

	"github.com/chassis-vm/chassis/api/v1alpha1"
	"github.com/chassis-vm/chassis/internal/hardware"
)

// ConfigureStorage creates and populates the machine's storage controllers
// in order. A nil entry means "no controller in this slot" and is skipped.
// The first failure aborts the remaining controllers; controllers created
// earlier in the same call stay in place (fail-fast, no rollback).
func (a *Applier) ConfigureStorage(m Machine, controllers []*v1alpha1.StorageControllerSpec) error {
	for i, ctl := range controllers {
		if ctl == nil {
			continue
		}
		log.Printf("Configuring storage controller '%s' (%s) on machine '%s'...", ctl.Name, ctl.Bus, m.Name())
		if err := a.addController(m, ctl); err != nil {
			return fmt.Errorf("storage[%d] %q: %w", i, ctl.Name, err)
		}
		if err := a.attachDevices(m, ctl.Bus, ctl.Name, ctl.Devices); err != nil {
			return fmt.Errorf("storage[%d] %q: %w", i, ctl.Name, err)
		}
	}
	return nil
}

// addController validates the controller configuration and creates the
// controller on the machine. Validation happens before any mutation: an
// incompatible bus/chipset pairing fails with zero controllers created.
func (a *Applier) addController(m Machine, ctl *v1alpha1.StorageControllerSpec) error {
	if ctl.Type != nil && !hardware.Compatible(ctl.Bus, *ctl.Type) {
		return &hardware.IncompatibleControllerError{Bus: ctl.Bus, Controller: *ctl.Type}
	}

	bus, ok := a.enums.StorageBus(ctl.Bus)
	if !ok {
		return fmt.Errorf("bus kind %q has no platform bus value", ctl.Bus)
	}
	if err := m.AddStorageController(ctl.Name, bus); err != nil {
		return fmt.Errorf("failed to add controller: %w", err)
	}

	if ctl.Type != nil {
		controllerType, ok := a.enums.ControllerType(*ctl.Type)
		if !ok {
			return fmt.Errorf("controller kind %q has no platform controller type", *ctl.Type)
		}
		if err := m.SetStorageControllerType(ctl.Name, controllerType); err != nil {
			return fmt.Errorf("failed to set controller type: %w", err)
		}
	}

	return nil
}

// attachDevices places each device at the coordinate the bus's placement
// policy assigns to its bay and attaches the resolved medium there. Nil
// descriptors model empty bays: they are skipped without an attach call,
// and their neighbors keep their positional coordinates.
func (a *Applier) attachDevices(m Machine, bus v1alpha1.BusKind, controllerName string, devices []*v1alpha1.DeviceSpec) error {
	addrs, err := hardware.Layout(bus, len(devices))
	if err != nil {
		return err
	}

	for i, dev := range devices {
		if dev == nil {
			continue
		}

		deviceType, ok := a.enums.DeviceType(dev.Kind)
		if !ok {
			return &hardware.UnknownDeviceKindError{Kind: dev.Kind}
		}

		medium, err := a.media.Resolve(dev.Location, dev.Kind)
		if err != nil {
			return fmt.Errorf("failed to resolve medium %q: %w", dev.Location, err)
		}

		addr := addrs[i]
		log.Printf("Attaching %s medium '%s' to '%s' at %s...", dev.Kind, medium, controllerName, addr)
		if err := m.AttachDevice(controllerName, addr.Port, addr.Device, deviceType, medium); err != nil {
			return fmt.Errorf("failed to attach device at %s: %w", addr, err)
		}
	}

	return nil
}
