// Package utils provides common utility functions for the node config server.
// It includes the scalar conversion helpers used to normalize decoded override
// values and other shared logic that doesn't fit into domain-specific packages.
package utils
