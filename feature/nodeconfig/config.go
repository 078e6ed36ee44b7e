package nodeconfig

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	SourceDisk = "disk"
	SourceS3   = "s3"
)

// Config holds configuration for locating and decoding node override files.
type Config struct {
	// Dir is the directory holding override files. Empty means "nodes" next to the executable.
	Dir string `mapstructure:"dir" default:""`
	// Format selects the override file syntax (toml, yaml, dict).
	Format string `mapstructure:"format" default:"toml"`
	// Source selects where override files are read from (disk, s3).
	Source string `mapstructure:"source" default:"disk"`
	// Prefix is the object key prefix used when Source is s3.
	Prefix string `mapstructure:"prefix" default:"nodes/"`
}

// NodesDir resolves the override directory.
func (c Config) NodesDir() (string, error) {
	if c.Dir != "" {
		return c.Dir, nil
	}
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("failed to locate executable: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Join(filepath.Dir(exe), "nodes"), nil
}

// IsValidSource checks if the configured source is supported.
func (c Config) IsValidSource() bool {
	switch c.Source {
	case SourceDisk, SourceS3:
		return true
	default:
		return false
	}
}
