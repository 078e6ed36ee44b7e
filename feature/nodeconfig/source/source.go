package source

import (
	"context"
	"errors"
)

// ErrNotFound is returned (wrapped) when an override file does not exist.
var ErrNotFound = errors.New("override file not found")

// Source is where node override files are read from.
type Source interface {
	// Read returns the content of the named file. The content is fully read and
	// the underlying handle closed before Read returns.
	Read(ctx context.Context, file string) ([]byte, error)
	// Location describes where the named file lives, for log messages.
	Location(file string) string
	// List returns the names of all files in the source ending in ext.
	List(ctx context.Context, ext string) ([]string, error)
}
