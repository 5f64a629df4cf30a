package machine

import (
	"fmt"
	"log"
	"sort"

	"github.com/chassis-vm/chassis/api/v1alpha1"
)

// ConfigureNetwork maps the adapter configurations onto the machine's
// adapter slots in order. The pairing is a one-to-one zip against slots
// 0..max-1 as reported by the platform: entries beyond the platform's slot
// count are silently dropped, and nil entries leave their slot alone.
func (a *Applier) ConfigureNetwork(m Machine, adapters []*v1alpha1.NetworkAdapterSpec) error {
	maxSlots, err := a.sys.MaxNetworkAdapters()
	if err != nil {
		return fmt.Errorf("failed to query adapter slot count: %w", err)
	}

	for slot := 0; slot < len(adapters) && slot < maxSlots; slot++ {
		spec := adapters[slot]
		if spec == nil {
			continue
		}

		adapter, err := m.NetworkAdapter(uint(slot))
		if err != nil {
			return fmt.Errorf("failed to get adapter for slot %d: %w", slot, err)
		}

		log.Printf("Configuring network adapter %d on machine '%s'...", slot, m.Name())
		if err := a.applyAdapterProperties(adapter, spec); err != nil {
			return fmt.Errorf("network[%d]: %w", slot, err)
		}
		if err := a.attachAdapter(adapter, spec); err != nil {
			return fmt.Errorf("network[%d]: %w", slot, err)
		}
	}

	return nil
}

// applyAdapterProperties applies the scalar adapter properties. Nil values
// mean "leave unset" and produce no call. The attachment type is handled
// by attachAdapter, not here. NAT driver settings and unrecognized keys
// are reported and skipped without failing the call.
func (a *Applier) applyAdapterProperties(adapter NetworkAdapter, spec *v1alpha1.NetworkAdapterSpec) error {
	if spec.AdapterType != "" {
		if err := adapter.SetAdapterType(spec.AdapterType); err != nil {
			return fmt.Errorf("failed to set adapter type: %w", err)
		}
	}
	if spec.Network != "" {
		if err := adapter.SetInternalNetwork(spec.Network); err != nil {
			return fmt.Errorf("failed to set internal network: %w", err)
		}
	}
	if spec.HostInterface != "" {
		if err := adapter.SetHostInterface(spec.HostInterface); err != nil {
			return fmt.Errorf("failed to set host interface: %w", err)
		}
	}
	if spec.Enabled != nil {
		if err := adapter.SetEnabled(*spec.Enabled); err != nil {
			return fmt.Errorf("failed to set enabled: %w", err)
		}
	}
	if spec.CableConnected != nil {
		if err := adapter.SetCableConnected(*spec.CableConnected); err != nil {
			return fmt.Errorf("failed to set cable connected: %w", err)
		}
	}
	if spec.MACAddress != "" {
		if err := adapter.SetMACAddress(spec.MACAddress); err != nil {
			return fmt.Errorf("failed to set MAC address: %w", err)
		}
	}
	if spec.LineSpeed != nil {
		if err := adapter.SetLineSpeed(*spec.LineSpeed); err != nil {
			return fmt.Errorf("failed to set line speed: %w", err)
		}
	}

	if spec.NATDriver != nil {
		a.report(Diagnostic{
			Kind:   DiagUnsupportedNATDriver,
			Key:    "natDriver",
			Detail: "NAT engine configuration is not supported yet",
		})
	}

	// Deterministic order for reporting leftover keys.
	extra := make([]string, 0, len(spec.Extra))
	for k := range spec.Extra {
		extra = append(extra, k)
	}
	sort.Strings(extra)
	for _, k := range extra {
		a.report(Diagnostic{
			Kind:   DiagUnknownAdapterKey,
			Key:    k,
			Detail: "unrecognized adapter property",
		})
	}

	return nil
}

// attachAdapter dispatches on the attachment type. Bridged attachment is
// the only kind implemented today; the remaining known kinds report a
// distinct "not yet supported" diagnostic so callers can tell them apart
// from malformed input. No mutation happens in either skipped case.
func (a *Applier) attachAdapter(adapter NetworkAdapter, spec *v1alpha1.NetworkAdapterSpec) error {
	switch spec.AttachmentType {
	case "":
		// Attachment left unconfigured.
		return nil
	case v1alpha1.AttachmentBridged:
		if err := adapter.AttachBridged(); err != nil {
			return fmt.Errorf("failed to attach bridged: %w", err)
		}
		log.Printf("Attached adapter to bridged network")
		return nil
	case v1alpha1.AttachmentNAT, v1alpha1.AttachmentInternal,
		v1alpha1.AttachmentHostOnly, v1alpha1.AttachmentSharedFolder:
		a.report(Diagnostic{
			Kind:   DiagUnsupportedAttachment,
			Key:    string(spec.AttachmentType),
			Detail: "attachment type is known but not supported yet",
		})
		return nil
	default:
		a.report(Diagnostic{
			Kind:   DiagUnrecognizedAttachment,
			Key:    string(spec.AttachmentType),
			Detail: "unrecognized attachment type",
		})
		return nil
	}
}
