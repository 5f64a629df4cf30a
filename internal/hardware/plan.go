package hardware

import (
	"github.com/chassis-vm/chassis/api/v1alpha1"
)

// Plan is the purely computed placement for a machine's storage
// configuration: which coordinate every device would land on, validated
// against the compatibility table, without touching the platform.
type Plan struct {
	Machine     string              `json:"machine" yaml:"machine"`
	Controllers []PlannedController `json:"controllers" yaml:"controllers"`
}

// PlannedController is the placement outcome for one controller.
type PlannedController struct {
	Name    string                   `json:"name" yaml:"name"`
	Bus     v1alpha1.BusKind         `json:"bus" yaml:"bus"`
	Type    *v1alpha1.ControllerKind `json:"type,omitempty" yaml:"type,omitempty"`
	Devices []PlannedDevice          `json:"devices" yaml:"devices"`
}

// PlannedDevice is one non-empty bay with its computed coordinate.
type PlannedDevice struct {
	Bay      int                 `json:"bay" yaml:"bay"`
	Location string              `json:"location,omitempty" yaml:"location,omitempty"`
	Kind     v1alpha1.DeviceKind `json:"kind" yaml:"kind"`
	Port     uint                `json:"port" yaml:"port"`
	Device   uint                `json:"device" yaml:"device"`
}

// BuildPlan computes the storage placement the appliers would perform for
// m. It applies the same validation the storage applier runs before its
// first mutation, so a configuration that plans cleanly will not fail
// placement at apply time.
func BuildPlan(m *v1alpha1.Machine) (*Plan, error) {
	plan := &Plan{Machine: m.Name}

	for _, ctl := range m.Spec.Storage {
		if ctl == nil {
			continue
		}
		if ctl.Type != nil && !Compatible(ctl.Bus, *ctl.Type) {
			return nil, &IncompatibleControllerError{Bus: ctl.Bus, Controller: *ctl.Type}
		}

		addrs, err := Layout(ctl.Bus, len(ctl.Devices))
		if err != nil {
			return nil, err
		}

		planned := PlannedController{Name: ctl.Name, Bus: ctl.Bus, Type: ctl.Type}
		for i, dev := range ctl.Devices {
			if dev == nil {
				continue
			}
			planned.Devices = append(planned.Devices, PlannedDevice{
				Bay:      i,
				Location: dev.Location,
				Kind:     dev.Kind,
				Port:     addrs[i].Port,
				Device:   addrs[i].Device,
			})
		}
		plan.Controllers = append(plan.Controllers, planned)
	}

	return plan, nil
}
