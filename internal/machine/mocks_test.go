package machine

import (
	"fmt"

	"github.com/chassis-vm/chassis/api/v1alpha1"
)

// attachCall records one AttachDevice invocation.
type attachCall struct {
	Controller string
	Port       uint
	Device     uint
	DeviceType string
	Medium     string
}

// controllerCall records one AddStorageController invocation.
type controllerCall struct {
	Name string
	Bus  string
}

// typeCall records one SetStorageControllerType invocation.
type typeCall struct {
	Name           string
	ControllerType string
}

// mockMachine is a mock implementation of the Machine interface that
// records every mutating call in order.
type mockMachine struct {
	name string

	// Configurable behavior
	addStorageControllerFunc func(name, bus string) error
	attachDeviceFunc         func(call attachCall) error
	networkAdapterFunc       func(slot uint) (NetworkAdapter, error)

	// Call tracking
	addControllerCalls []controllerCall
	setTypeCalls       []typeCall
	attachCalls        []attachCall
	adapterSlots       []uint

	// Adapters handed out per slot
	adapters map[uint]*mockAdapter
}

func newMockMachine() *mockMachine {
	return &mockMachine{
		name:     "test-machine",
		adapters: make(map[uint]*mockAdapter),
	}
}

func (m *mockMachine) Name() string { return m.name }

func (m *mockMachine) AddStorageController(name, bus string) error {
	m.addControllerCalls = append(m.addControllerCalls, controllerCall{Name: name, Bus: bus})
	if m.addStorageControllerFunc != nil {
		return m.addStorageControllerFunc(name, bus)
	}
	return nil
}

func (m *mockMachine) SetStorageControllerType(name, controllerType string) error {
	m.setTypeCalls = append(m.setTypeCalls, typeCall{Name: name, ControllerType: controllerType})
	return nil
}

func (m *mockMachine) AttachDevice(controllerName string, port, device uint, deviceType, medium string) error {
	call := attachCall{
		Controller: controllerName,
		Port:       port,
		Device:     device,
		DeviceType: deviceType,
		Medium:     medium,
	}
	m.attachCalls = append(m.attachCalls, call)
	if m.attachDeviceFunc != nil {
		return m.attachDeviceFunc(call)
	}
	return nil
}

func (m *mockMachine) NetworkAdapter(slot uint) (NetworkAdapter, error) {
	m.adapterSlots = append(m.adapterSlots, slot)
	if m.networkAdapterFunc != nil {
		return m.networkAdapterFunc(slot)
	}
	a, ok := m.adapters[slot]
	if !ok {
		a = &mockAdapter{}
		m.adapters[slot] = a
	}
	return a, nil
}

// mutations counts every mutating call made against the machine,
// excluding adapter lookups which mutate nothing.
func (m *mockMachine) mutations() int {
	n := len(m.addControllerCalls) + len(m.setTypeCalls) + len(m.attachCalls)
	for _, a := range m.adapters {
		n += len(a.calls)
	}
	return n
}

// mockAdapter is a mock network adapter that records setter and attachment
// calls in order as "name=value" strings.
type mockAdapter struct {
	calls []string

	// Configurable behavior
	failOn string // call name that should fail, e.g. "macAddress"
}

func (a *mockAdapter) record(name, value string) error {
	a.calls = append(a.calls, name+"="+value)
	if a.failOn == name {
		return fmt.Errorf("forced %s failure", name)
	}
	return nil
}

func (a *mockAdapter) SetAdapterType(hardware string) error {
	return a.record("adapterType", hardware)
}

func (a *mockAdapter) SetInternalNetwork(name string) error {
	return a.record("network", name)
}

func (a *mockAdapter) SetHostInterface(name string) error {
	return a.record("hostInterface", name)
}

func (a *mockAdapter) SetEnabled(on bool) error {
	return a.record("enabled", fmt.Sprint(on))
}

func (a *mockAdapter) SetCableConnected(on bool) error {
	return a.record("cableConnected", fmt.Sprint(on))
}

func (a *mockAdapter) SetMACAddress(mac string) error {
	return a.record("macAddress", mac)
}

func (a *mockAdapter) SetLineSpeed(kbps uint32) error {
	return a.record("lineSpeed", fmt.Sprint(kbps))
}

func (a *mockAdapter) AttachBridged() error {
	return a.record("attach", "bridged")
}

// mockEnums resolves the closed symbolic enumerations the way the platform
// adapter does; anything outside the closed sets yields false.
type mockEnums struct{}

func (mockEnums) StorageBus(b v1alpha1.BusKind) (string, bool) {
	switch b {
	case v1alpha1.BusIDE, v1alpha1.BusSATA, v1alpha1.BusSCSI, v1alpha1.BusSAS:
		return string(b), true
	}
	return "", false
}

func (mockEnums) ControllerType(c v1alpha1.ControllerKind) (string, bool) {
	if v1alpha1.KnownControllerKind(c) {
		return string(c), true
	}
	return "", false
}

func (mockEnums) DeviceType(d v1alpha1.DeviceKind) (string, bool) {
	switch d {
	case v1alpha1.DeviceDisk:
		return "hdd", true
	case v1alpha1.DeviceDVD:
		return "dvddrive", true
	case v1alpha1.DeviceFloppy:
		return "fdd", true
	}
	return "", false
}

// mockMedia resolves locations to "medium:<location>" and records what it
// was asked for.
type mockMedia struct {
	resolved []string
	err      error
}

func (m *mockMedia) Resolve(location string, kind v1alpha1.DeviceKind) (string, error) {
	m.resolved = append(m.resolved, location)
	if m.err != nil {
		return "", m.err
	}
	return "medium:" + location, nil
}

// mockSys reports a fixed adapter slot count.
type mockSys struct {
	slots int
	err   error
}

func (s *mockSys) MaxNetworkAdapters() (int, error) {
	return s.slots, s.err
}

// diagRecorder collects diagnostics for assertions.
type diagRecorder struct {
	diags []Diagnostic
}

func (r *diagRecorder) sink(d Diagnostic) {
	r.diags = append(r.diags, d)
}

func (r *diagRecorder) ofKind(kind DiagnosticKind) []Diagnostic {
	var out []Diagnostic
	for _, d := range r.diags {
		if d.Kind == kind {
			out = append(out, d)
		}
	}
	return out
}

// newTestApplier wires an Applier over the mocks with a diagnostic
// recorder, returning both.
func newTestApplier(media *mockMedia, sys *mockSys, setters SetterTable) (*Applier, *diagRecorder) {
	rec := &diagRecorder{}
	a := NewApplier(mockEnums{}, media, sys, setters, WithDiagnosticSink(rec.sink))
	return a, rec
}
