package output

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/chassis-vm/chassis/internal/hardware"
)

// YAMLFormatter formats plans as YAML.
type YAMLFormatter struct{}

// FormatPlan formats a storage placement plan as YAML.
func (f *YAMLFormatter) FormatPlan(p *hardware.Plan) (string, error) {
	data, err := yaml.Marshal(p)
	if err != nil {
		return "", fmt.Errorf("failed to marshal plan to YAML: %w", err)
	}
	return string(data), nil
}
