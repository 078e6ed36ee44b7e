package nodeconfig

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"
)

const (
	StatusOK          = "ok"
	StatusMalformed   = "malformed"
	StatusUnreadable  = "unreadable"
	StatusInvalidName = "invalid_name"
)

// checkConcurrency bounds how many override files are decoded at once.
const checkConcurrency = 8

// FileReport is the result of validating one override file.
type FileReport struct {
	Node        string   `json:"node"`
	File        string   `json:"file"`
	Status      string   `json:"status"`
	Error       string   `json:"error,omitempty"`
	UnknownKeys []string `json:"unknown_keys,omitempty"`
}

// CheckReport summarizes the validation of every override file in a source.
type CheckReport struct {
	Format string       `json:"format"`
	Files  []FileReport `json:"files"`
	Failed int          `json:"failed"`
}

// Check decodes every override file the resolver's source holds and reports
// the ones a node would silently fall back to defaults for.
func Check(ctx context.Context, r *Resolver) (*CheckReport, error) {
	ext := r.Format().Ext()
	names, err := r.Source().List(ctx, ext)
	if err != nil {
		return nil, fmt.Errorf("failed to list override files: %w", err)
	}

	report := &CheckReport{
		Format: r.Format().Name(),
		Files:  make([]FileReport, len(names)),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(checkConcurrency)
	for i, name := range names {
		g.Go(func() error {
			node := strings.TrimSuffix(name, ext)
			fr := FileReport{
				Node:   node,
				File:   r.Source().Location(name),
				Status: StatusOK,
			}

			override, err := r.LoadOverride(gctx, node)
			switch {
			case err == nil:
				fr.UnknownKeys = UnknownKeys(override)
			case errors.Is(err, ErrInvalidNodeName):
				fr.Status = StatusInvalidName
			case errors.Is(err, ErrOverrideMalformed):
				fr.Status = StatusMalformed
			default:
				fr.Status = StatusUnreadable
			}
			if err != nil {
				fr.Error = err.Error()
			}

			report.Files[i] = fr
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, fr := range report.Files {
		if fr.Status != StatusOK {
			report.Failed++
		}
	}
	return report, nil
}
