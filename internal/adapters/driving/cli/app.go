package cli

import (
	"fmt"

	"github.com/parallax-labs/meetlens/internal/adapters/driven/blob/filesystem"
	redisstore "github.com/parallax-labs/meetlens/internal/adapters/driven/storage/redis"
	"github.com/parallax-labs/meetlens/internal/adapters/driven/storage/sqlite"
	"github.com/parallax-labs/meetlens/internal/config"
	"github.com/parallax-labs/meetlens/internal/core/ports/driven"
	"github.com/parallax-labs/meetlens/internal/core/services"
)

// app bundles the configured backends and services for one command
// invocation.
type app struct {
	cfg       config.Config
	overrides driven.OverrideStore
	meetings  *services.MeetingService
	closers   []func() error
}

// openApp loads configuration and wires the storage backends into the
// meeting service. Callers must Close when done.
func openApp() (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	blob, err := filesystem.NewBlobStore(cfg.Blob.Root)
	if err != nil {
		return nil, fmt.Errorf("opening blob store: %w", err)
	}

	store, err := sqlite.NewStore(cfg.Storage.DataDir)
	if err != nil {
		return nil, fmt.Errorf("opening metadata store: %w", err)
	}

	a := &app{
		cfg:       cfg,
		overrides: store.OverrideStore(),
		closers:   []func() error{store.Close},
	}

	analyses := store.AnalysisStore()
	if cfg.Storage.RedisAddr != "" {
		rs := redisstore.NewAnalysisStore(cfg.Storage.RedisAddr, cfg.Storage.RedisDB, cfg.Storage.RedisTTL())
		a.closers = append(a.closers, rs.Close)
		analyses = rs
	}

	a.meetings = services.NewMeetingService(
		blob,
		a.overrides,
		analyses,
		services.NewTranscriptClassifier(),
		services.NewKeyMomentExtractor(),
		services.MeetingConfig{
			Prefix:             cfg.Blob.Prefix,
			FetchConcurrency:   cfg.Pipeline.FetchConcurrency,
			FetchRatePerSecond: cfg.Pipeline.FetchRatePerSecond,
			StorageTimeout:     cfg.Pipeline.StorageTimeout(),
			ListingTTL:         cfg.Pipeline.ListingTTL(),
			SignedURLTTL:       cfg.Pipeline.SignedURLTTL(),
		},
	)

	return a, nil
}

// loadConfigQuiet loads configuration for commands that need settings
// but no backends.
func loadConfigQuiet() (config.Config, error) {
	return config.Load(configPath)
}

// Close releases the app's backends.
func (a *app) Close() {
	for _, closer := range a.closers {
		_ = closer()
	}
}
