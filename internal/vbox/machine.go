package vbox

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/chassis-vm/chassis/internal/machine"
)

var reMachineNotFound = regexp.MustCompile(`Could not find a registered machine named '(.+)'`)

// Machine is a handle to a registered VirtualBox machine, mutated through
// VBoxManage. It implements machine.Machine.
type Machine struct {
	name string
	run  Runner
}

var _ machine.Machine = (*Machine)(nil)

// OpenMachine looks up a registered machine by name and returns a handle
// to it. The machine must already exist; chassis never creates machines.
func OpenMachine(name string, r Runner) (*Machine, error) {
	if _, err := r.Output("showvminfo", name, "--machinereadable"); err != nil {
		if reMachineNotFound.MatchString(err.Error()) {
			return nil, fmt.Errorf("%w: %s", ErrMachineNotExist, name)
		}
		return nil, fmt.Errorf("failed to look up machine %q: %w", name, err)
	}
	return &Machine{name: name, run: r}, nil
}

// Name returns the machine's registered name.
func (m *Machine) Name() string {
	return m.name
}

// AddStorageController creates a storage controller on the machine.
func (m *Machine) AddStorageController(name, bus string) error {
	return m.run.Run("storagectl", m.name,
		"--name", name,
		"--add", bus)
}

// SetStorageControllerType pins the chipset of an existing controller.
func (m *Machine) SetStorageControllerType(name, controllerType string) error {
	return m.run.Run("storagectl", m.name,
		"--name", name,
		"--controller", controllerType)
}

// AttachDevice attaches a medium to a controller at the given coordinate.
func (m *Machine) AttachDevice(controllerName string, port, device uint, deviceType, medium string) error {
	return m.run.Run("storageattach", m.name,
		"--storagectl", controllerName,
		"--port", strconv.FormatUint(uint64(port), 10),
		"--device", strconv.FormatUint(uint64(device), 10),
		"--type", deviceType,
		"--medium", medium)
}

// NetworkAdapter returns the adapter handle for a zero-based slot.
// VBoxManage numbers its NIC flags from 1.
func (m *Machine) NetworkAdapter(slot uint) (machine.NetworkAdapter, error) {
	return &Adapter{m: m, index: slot + 1}, nil
}
