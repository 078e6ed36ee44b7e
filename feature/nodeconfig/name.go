package nodeconfig

import (
	"fmt"
	"regexp"
	"strings"
)

var nodeNamePattern = regexp.MustCompile(`^[A-Za-z0-9_-][A-Za-z0-9_.-]*$`)

// TrimPath strips every leading and trailing slash from a request path.
func TrimPath(path string) string {
	return strings.Trim(path, "/")
}

// IsSkippedPath reports whether a trimmed path is a browser probe rather than a node.
func IsSkippedPath(trimmed string) bool {
	return trimmed == "" || trimmed == "favicon.ico"
}

// NodeName maps a trimmed request path to a node name. Hyphens in URLs
// match underscores in override file names.
func NodeName(trimmed string) string {
	return strings.ReplaceAll(trimmed, "-", "_")
}

// ValidateNodeName rejects names that could address a file outside the nodes
// directory: separators, "..", NUL and anything beyond letters, digits, '_', '-' and '.'.
func ValidateNodeName(name string) error {
	if !nodeNamePattern.MatchString(name) || strings.Contains(name, "..") {
		return fmt.Errorf("%w: %q", ErrInvalidNodeName, name)
	}
	return nil
}
