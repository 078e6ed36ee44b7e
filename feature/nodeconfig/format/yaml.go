package format

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// YAML reads overrides written as a flat YAML mapping.
type YAML struct{}

func (YAML) Name() string { return "yaml" }
func (YAML) Ext() string  { return ".yaml" }

func (YAML) Decode(data []byte) (map[string]any, error) {
	out := map[string]any{}
	if err := yaml.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("invalid yaml: %w", err)
	}
	return out, nil
}
