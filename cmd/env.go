package cmd

import (
	"context"
	"fmt"

	"l10n-manager/core/config"
	"l10n-manager/core/database"
	"l10n-manager/core/errs"
	"l10n-manager/core/logger"
	"l10n-manager/core/reconcile"
	"l10n-manager/core/resource"
	"l10n-manager/core/storage"
	"l10n-manager/core/translation"
	"l10n-manager/feature/history"
	"l10n-manager/feature/localized"
	"l10n-manager/feature/publish"

	"go.uber.org/zap"
)

// env holds what every command builds from the configuration.
type env struct {
	cfg    *config.Config
	logger *zap.Logger
	layout resource.Layout
	reader *resource.Reader
	client storage.Client
}

// newEnv loads the configuration from the working directory, applies the
// command line overrides and creates the logger.
func newEnv(resDir, inputDir string) (*env, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if resDir != "" {
		cfg.Resources.ResDir = resDir
	}
	if inputDir != "" {
		cfg.Resources.TranslationsDir = inputDir
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	layout := cfg.Resources.Layout()
	return &env{
		cfg:    cfg,
		logger: logg,
		layout: layout,
		reader: resource.NewReader(layout),
	}, nil
}

// storageClient returns the storage client, created on first use.
func (e *env) storageClient() (storage.Client, error) {
	if e.client != nil {
		return e.client, nil
	}
	client, err := storage.NewClient(e.cfg.Storage)
	if err != nil {
		return nil, err
	}
	e.client = client
	return client, nil
}

// pools returns the canonical pool provider. A cached provider keeps the pool
// for server.cache_ttl_seconds.
func (e *env) pools(cached bool) *reconcile.Pools {
	if !cached || e.cfg.Server.CacheTTL() == 0 {
		return reconcile.NewPools(e.reader, nil)
	}
	return reconcile.NewPools(e.reader, reconcile.NewPoolCache(e.cfg.Server.CacheTTL()))
}

// source builds the translation import source.
func (e *env) source() (translation.Source, error) {
	var client storage.Client
	if e.cfg.Import.Source == translation.SourceStorage {
		c, err := e.storageClient()
		if err != nil {
			return nil, err
		}
		client = c
	}
	return translation.NewSource(e.cfg.Import, e.cfg.Resources.TranslationsDir, client, e.cfg.Storage.Bucket)
}

// historyFeature connects the history database when history is enabled. A failed
// connection disables the feature with a warning.
func (e *env) historyFeature(ctx context.Context) *history.Feature {
	if !e.cfg.History.Enabled {
		return history.NewFeature(nil, false, e.cfg.History.Limit, e.logger)
	}
	db, err := database.Connect(e.cfg.Database)
	if err != nil {
		e.logger.Warn("History database connection failed", zap.Error(err))
		return history.NewFeature(nil, false, e.cfg.History.Limit, e.logger)
	}
	f := history.NewFeature(db, true, e.cfg.History.Limit, e.logger)
	if err := f.Store().Migrate(ctx); err != nil {
		e.logger.Warn("History migration failed", zap.Error(err))
		return history.NewFeature(nil, false, e.cfg.History.Limit, e.logger)
	}
	e.logger.Info("Connected to history database", zap.String("driver", e.cfg.Database.Driver))
	return f
}

// publisher creates the publisher when publishing is enabled.
func (e *env) publisher(ctx context.Context) (*publish.Publisher, error) {
	if !e.cfg.Publish.Enabled {
		return nil, nil
	}
	client, err := e.storageClient()
	if err != nil {
		return nil, err
	}
	p := publish.NewPublisher(client, e.cfg.Storage, e.cfg.Publish.Prefix, e.layout, e.logger)
	if err := p.Prepare(ctx); err != nil {
		return nil, fmt.Errorf("failed to prepare bucket: %w", err)
	}
	return p, nil
}

// importService wires the import service. The optional collaborators stay nil
// interfaces when their feature is off.
func (e *env) importService(pools localized.PoolProvider, hist *history.Feature, pub *publish.Publisher) (*localized.Service, error) {
	src, err := e.source()
	if err != nil {
		return nil, err
	}

	var recorder localized.Recorder
	if hist.IsEnabled() {
		recorder = hist.Store()
	}
	var publisher localized.Publisher
	if pub != nil {
		publisher = pub
	}

	return localized.NewService(
		pools,
		e.reader,
		resource.NewWriter(e.layout),
		src,
		e.cfg.Reconcile.Workers,
		recorder,
		publisher,
		e.logger,
	), nil
}

// parseMappings parses the --mapping flag values. An empty mapping is
// rejected before anything else is touched.
func parseMappings(values []string) ([]translation.Mapping, error) {
	mappings, err := translation.ParseMapping(values)
	if err != nil {
		return nil, err
	}
	if len(mappings) == 0 {
		return nil, errs.Argument("locale mapping can't be empty")
	}
	return mappings, nil
}
