package format

import (
	"fmt"
	"sort"
)

// Format decodes override files of one syntax into a key-value mapping.
type Format interface {
	// Name is the identifier used in configuration (nodes.format).
	Name() string
	// Ext is the file extension override files of this format carry, including the dot.
	Ext() string
	// Decode parses an override file. It never evaluates code.
	Decode(data []byte) (map[string]any, error)
}

var registry = map[string]Format{
	TOML{}.Name(): TOML{},
	YAML{}.Name(): YAML{},
	Dict{}.Name(): Dict{},
}

// Lookup returns the format registered under name.
func Lookup(name string) (Format, error) {
	f, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown override format %q (supported: %v)", name, Names())
	}
	return f, nil
}

// Names lists the supported format names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
