package format

import (
	"fmt"

	"github.com/pelletier/go-toml/v2"
)

// TOML reads overrides written as top-level TOML keys:
//
//	sleep_interval = 10
//	dfrobot_moisture = true
type TOML struct{}

func (TOML) Name() string { return "toml" }
func (TOML) Ext() string  { return ".toml" }

func (TOML) Decode(data []byte) (map[string]any, error) {
	out := map[string]any{}
	if err := toml.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("invalid toml: %w", err)
	}
	return out, nil
}
