package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Dir reads override files from a local directory.
type Dir struct {
	path string
}

// NewDir creates a source rooted at path.
func NewDir(path string) *Dir {
	return &Dir{path: path}
}

// Path returns the directory the source reads from.
func (d *Dir) Path() string {
	return d.path
}

// Read opens the file through an os.Root so no name can escape the directory.
func (d *Dir) Read(_ context.Context, file string) ([]byte, error) {
	root, err := os.OpenRoot(d.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, d.Location(file))
		}
		return nil, fmt.Errorf("failed to open nodes directory: %w", err)
	}
	defer root.Close()

	f, err := root.Open(file)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, d.Location(file))
		}
		return nil, fmt.Errorf("failed to open %s: %w", d.Location(file), err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", d.Location(file), err)
	}
	return data, nil
}

func (d *Dir) Location(file string) string {
	return filepath.Join(d.path, file)
}

func (d *Dir) List(_ context.Context, ext string) ([]string, error) {
	entries, err := os.ReadDir(d.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, d.path)
		}
		return nil, fmt.Errorf("failed to list nodes directory: %w", err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ext) {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names, nil
}
