package machine

import (
	"fmt"
	"log"
	"sort"

	"github.com/chassis-vm/chassis/api/v1alpha1"
)

// Applier drives configuration application against machine handles. One
// Applier may be reused across machines; it holds no per-call state.
type Applier struct {
	enums   EnumResolver
	media   MediumResolver
	sys     SystemProperties
	setters SetterTable
	report  DiagnosticSink
}

// Option configures an Applier.
type Option func(*Applier)

// WithDiagnosticSink replaces the default log-based diagnostic sink.
func WithDiagnosticSink(sink DiagnosticSink) Option {
	return func(a *Applier) {
		a.report = sink
	}
}

// NewApplier creates an Applier over the given platform collaborators.
// setters may be nil; every generic property key then reports a diagnostic.
func NewApplier(enums EnumResolver, media MediumResolver, sys SystemProperties, setters SetterTable, opts ...Option) *Applier {
	a := &Applier{
		enums:   enums,
		media:   media,
		sys:     sys,
		setters: setters,
		report:  logDiagnostic,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// ConfigureMachine routes the top-level configuration onto the machine:
// network configuration to the network applier and every generic property
// key through the setter table. Unrecognized keys are reported and skipped.
//
// Storage is deliberately not applied here; AttachStorage is the entry
// point for that, invoked as a distinct step. bootMountPoint is reserved
// and currently ignored.
func (a *Applier) ConfigureMachine(m Machine, spec *v1alpha1.MachineSpec) error {
	if spec == nil {
		return fmt.Errorf("machine spec cannot be nil")
	}

	if spec.Network != nil {
		if err := a.ConfigureNetwork(m, spec.Network); err != nil {
			return fmt.Errorf("failed to configure network: %w", err)
		}
	}

	// Deterministic order for the generic keys.
	keys := make([]string, 0, len(spec.Properties))
	for k := range spec.Properties {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		value := spec.Properties[key]
		if value == nil {
			continue
		}
		setter, ok := a.setters[key]
		if !ok {
			a.report(Diagnostic{
				Kind:   DiagUnknownPropertyKey,
				Key:    key,
				Detail: "no setter registered for this machine property",
			})
			continue
		}
		if err := setter(m, value); err != nil {
			return fmt.Errorf("failed to set %s: %w", key, err)
		}
	}

	return nil
}

// AttachStorage applies the storage section of the configuration. It is a
// separate entry point from ConfigureMachine because storage attachment is
// invoked as its own step in the machine setup sequence.
func (a *Applier) AttachStorage(m Machine, spec *v1alpha1.MachineSpec) error {
	if spec == nil {
		return fmt.Errorf("machine spec cannot be nil")
	}
	if spec.Storage == nil {
		log.Printf("No storage configuration for machine '%s', skipping", m.Name())
		return nil
	}
	return a.ConfigureStorage(m, spec.Storage)
}
