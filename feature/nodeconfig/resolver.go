package nodeconfig

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"node-config/core/utils"
	"node-config/feature/nodeconfig/format"
	"node-config/feature/nodeconfig/source"

	"dario.cat/mergo"
	"go.uber.org/zap"
)

// Resolver merges the default configuration with a node's override file.
type Resolver struct {
	source source.Source
	format format.Format
	logger *zap.Logger
}

// NewResolver creates a resolver reading override files of format f from src.
func NewResolver(src source.Source, f format.Format, logger *zap.Logger) *Resolver {
	return &Resolver{
		source: src,
		format: f,
		logger: logger,
	}
}

// WithLogger returns a copy of the resolver that logs to l.
func (r *Resolver) WithLogger(l *zap.Logger) *Resolver {
	clone := *r
	clone.logger = l
	return &clone
}

// FileName returns the override file name for a node.
func (r *Resolver) FileName(node string) string {
	return node + r.format.Ext()
}

// Format returns the override file format.
func (r *Resolver) Format() format.Format {
	return r.format
}

// Source returns where override files are read from.
func (r *Resolver) Source() source.Source {
	return r.source
}

// Resolve returns the configuration for node. It never fails: a missing,
// unreadable or malformed override is logged and the defaults are returned.
// The result is a fresh map owned by the caller.
func (r *Resolver) Resolve(ctx context.Context, node string) map[string]any {
	conf, err := r.Inspect(ctx, node)
	if err == nil {
		return conf
	}

	fields := []zap.Field{
		zap.String("node", node),
		zap.Error(err),
	}
	if !errors.Is(err, ErrInvalidNodeName) {
		fields = append(fields, zap.String("file", r.source.Location(r.FileName(node))))
	}

	switch {
	case errors.Is(err, ErrInvalidNodeName):
		r.logger.Error("Rejected node name", fields...)
	case errors.Is(err, ErrOverrideMalformed):
		r.logger.Error("Config for node is malformed", fields...)
	case errors.Is(err, ErrOverrideUnreadable):
		r.logger.Error("Config for node could not be read", fields...)
	default:
		r.logger.Error("Config for node not found", fields...)
	}
	return conf
}

// Inspect resolves like Resolve but reports why the override was not applied.
// The returned configuration is always usable: on error it holds the defaults.
func (r *Resolver) Inspect(ctx context.Context, node string) (map[string]any, error) {
	override, err := r.LoadOverride(ctx, node)
	if err != nil {
		return Defaults(), err
	}

	conf := Defaults()
	if len(override) == 0 {
		return conf, nil
	}
	if err := mergo.Merge(&conf, override, mergo.WithOverride); err != nil {
		return Defaults(), fmt.Errorf("%w: %w", ErrOverrideMalformed, err)
	}
	return conf, nil
}

// LoadOverride reads and decodes the override file of node without merging it.
// Integer values are normalized to int; values other than booleans and
// integers make the file malformed.
func (r *Resolver) LoadOverride(ctx context.Context, node string) (map[string]any, error) {
	if err := ValidateNodeName(node); err != nil {
		return nil, err
	}

	data, err := r.source.Read(ctx, r.FileName(node))
	if err != nil {
		if errors.Is(err, source.ErrNotFound) {
			return nil, fmt.Errorf("%w: %w", ErrOverrideNotFound, err)
		}
		return nil, fmt.Errorf("%w: %w", ErrOverrideUnreadable, err)
	}

	raw, err := r.format.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOverrideMalformed, err)
	}

	override := make(map[string]any, len(raw))
	for _, key := range sortedKeys(raw) {
		val, ok := utils.NormalizeScalar(raw[key])
		if !ok {
			return nil, fmt.Errorf("%w: %q has unsupported %s value", ErrOverrideMalformed, key, utils.TypeName(raw[key]))
		}
		override[key] = val
	}
	return override, nil
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
