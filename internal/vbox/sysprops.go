package vbox

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/chassis-vm/chassis/internal/machine"
)

var reColonLine = regexp.MustCompile(`(.+):\s+(.*)`)

// SystemProperties reports platform limits by parsing
// `VBoxManage list systemproperties`. It implements
// machine.SystemProperties.
type SystemProperties struct {
	run Runner

	// Chipset is the machine chipset the limits are looked up for.
	// Defaults to PIIX3, VirtualBox's default chipset.
	Chipset string
}

var _ machine.SystemProperties = (*SystemProperties)(nil)

// NewSystemProperties creates a SystemProperties over the given runner.
func NewSystemProperties(r Runner) *SystemProperties {
	return &SystemProperties{run: r, Chipset: "PIIX3"}
}

// MaxNetworkAdapters returns the number of network adapter slots the
// chipset supports.
func (p *SystemProperties) MaxNetworkAdapters() (int, error) {
	out, err := p.run.Output("list", "systemproperties")
	if err != nil {
		return 0, fmt.Errorf("failed to list system properties: %w", err)
	}

	want := fmt.Sprintf("Maximum %s Network Adapter count", p.Chipset)
	for _, line := range strings.Split(out, "\n") {
		groups := reColonLine.FindStringSubmatch(strings.TrimRight(line, "\r"))
		if groups == nil || strings.TrimSpace(groups[1]) != want {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(groups[2]))
		if err != nil {
			return 0, fmt.Errorf("failed to parse adapter count %q: %w", groups[2], err)
		}
		return n, nil
	}

	return 0, fmt.Errorf("adapter count for chipset %s not reported by platform", p.Chipset)
}
