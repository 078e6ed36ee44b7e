package cmd

import (
	"fmt"

	"node-config/core/config"
	"node-config/core/logger"
	"node-config/core/storage"
	"node-config/feature/nodeconfig"
	"node-config/feature/nodeconfig/format"
	"node-config/feature/nodeconfig/source"

	"go.uber.org/zap"
)

// newResolver builds the resolver for the configured override format and source.
func newResolver(cfg *config.Config, logg *zap.Logger) (*nodeconfig.Resolver, error) {
	f, err := format.Lookup(cfg.Nodes.Format)
	if err != nil {
		return nil, err
	}

	if !cfg.Nodes.IsValidSource() {
		return nil, fmt.Errorf("unknown node source %q (supported: %s, %s)", cfg.Nodes.Source, nodeconfig.SourceDisk, nodeconfig.SourceS3)
	}

	var src source.Source
	switch cfg.Nodes.Source {
	case nodeconfig.SourceDisk:
		dir, err := cfg.Nodes.NodesDir()
		if err != nil {
			return nil, err
		}
		src = source.NewDir(dir)
	case nodeconfig.SourceS3:
		store, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return nil, fmt.Errorf("failed to create storage client: %w", err)
		}
		src = source.NewBucket(store, cfg.Storage.Bucket, cfg.Nodes.Prefix)
	}

	return nodeconfig.NewResolver(src, f, logg), nil
}

// setup loads the configuration and creates the logger and resolver every command needs.
func setup() (*config.Config, *zap.Logger, *nodeconfig.Resolver, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to create logger: %w", err)
	}

	resolver, err := newResolver(cfg, logg)
	if err != nil {
		return nil, nil, nil, err
	}
	return cfg, logg, resolver, nil
}
