package output

import (
	"encoding/json"
	"fmt"

	"github.com/chassis-vm/chassis/internal/hardware"
)

// JSONFormatter formats plans as JSON.
type JSONFormatter struct{}

// FormatPlan formats a storage placement plan as indented JSON.
func (f *JSONFormatter) FormatPlan(p *hardware.Plan) (string, error) {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal plan to JSON: %w", err)
	}
	return string(data) + "\n", nil
}
