package nodeconfig

import "errors"

var (
	// ErrInvalidNodeName means the node name could address a file outside the nodes directory.
	ErrInvalidNodeName = errors.New("invalid node name")
	// ErrOverrideNotFound means the node has no override file.
	ErrOverrideNotFound = errors.New("override not found")
	// ErrOverrideUnreadable means the override file exists but could not be read.
	ErrOverrideUnreadable = errors.New("override unreadable")
	// ErrOverrideMalformed means the override file could not be decoded or holds unsupported values.
	ErrOverrideMalformed = errors.New("override malformed")
)
