package output

import (
	"bytes"
	"fmt"
	"text/tabwriter"

	"github.com/chassis-vm/chassis/internal/hardware"
)

// TableFormatter formats plans as human-readable tables.
type TableFormatter struct {
	// NoHeaders omits the header row.
	NoHeaders bool
}

// FormatPlan formats a storage placement plan as a table with one row per
// placed device.
func (f *TableFormatter) FormatPlan(p *hardware.Plan) (string, error) {
	if len(p.Controllers) == 0 {
		return "No storage controllers configured\n", nil
	}

	var buf bytes.Buffer
	w := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', 0)

	if !f.NoHeaders {
		_, _ = fmt.Fprintln(w, "CONTROLLER\tBUS\tTYPE\tBAY\tKIND\tPORT\tDEVICE\tLOCATION")
	}

	for _, ctl := range p.Controllers {
		ctlType := "-"
		if ctl.Type != nil {
			ctlType = string(*ctl.Type)
		}
		if len(ctl.Devices) == 0 {
			_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t-\t-\t-\t-\t-\n", ctl.Name, ctl.Bus, ctlType)
			continue
		}
		for _, dev := range ctl.Devices {
			location := dev.Location
			if location == "" {
				location = "(empty drive)"
			}
			_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\t%d\t%d\t%s\n",
				ctl.Name, ctl.Bus, ctlType, dev.Bay, dev.Kind, dev.Port, dev.Device, location)
		}
	}

	if err := w.Flush(); err != nil {
		return "", fmt.Errorf("failed to format table: %w", err)
	}

	return buf.String(), nil
}
