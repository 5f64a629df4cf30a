package vbox

import (
	"fmt"
	"strconv"

	"github.com/chassis-vm/chassis/internal/machine"
)

// Adapter is a handle to one of a machine's network adapters. It
// implements machine.NetworkAdapter over modifyvm's per-NIC flags.
type Adapter struct {
	m     *Machine
	index uint // 1-based VBoxManage flag number
}

var _ machine.NetworkAdapter = (*Adapter)(nil)

// flag builds a per-NIC modifyvm flag like --nictype2.
func (a *Adapter) flag(name string) string {
	return fmt.Sprintf("--%s%d", name, a.index)
}

func (a *Adapter) modify(flag, value string) error {
	return a.m.run.Run("modifyvm", a.m.name, a.flag(flag), value)
}

// SetAdapterType sets the emulated NIC hardware, e.g. "Am79C973",
// "82540EM" or "virtio".
func (a *Adapter) SetAdapterType(hardware string) error {
	return a.modify("nictype", hardware)
}

// SetInternalNetwork sets the internal network name.
func (a *Adapter) SetInternalNetwork(name string) error {
	return a.modify("intnet", name)
}

// SetHostInterface sets the host interface used for bridging.
func (a *Adapter) SetHostInterface(name string) error {
	return a.modify("bridgeadapter", name)
}

// SetEnabled toggles the adapter. VBoxManage folds the enabled flag into
// the attachment value: "none" disables the adapter, "null" is an enabled
// adapter that is not attached to anything.
func (a *Adapter) SetEnabled(on bool) error {
	if on {
		return a.modify("nic", "null")
	}
	return a.modify("nic", "none")
}

// SetCableConnected toggles the virtual cable.
func (a *Adapter) SetCableConnected(on bool) error {
	if on {
		return a.modify("cableconnected", "on")
	}
	return a.modify("cableconnected", "off")
}

// SetMACAddress sets the adapter MAC address.
func (a *Adapter) SetMACAddress(mac string) error {
	return a.modify("macaddress", mac)
}

// SetLineSpeed sets the line speed in kbps.
func (a *Adapter) SetLineSpeed(kbps uint32) error {
	return a.modify("nicspeed", strconv.FormatUint(uint64(kbps), 10))
}

// AttachBridged wires the adapter to its bridged attachment. The bridge
// interface itself is chosen with SetHostInterface.
func (a *Adapter) AttachBridged() error {
	return a.modify("nic", "bridged")
}
