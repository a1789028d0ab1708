// Package config loads the MeetLens configuration from a TOML file.
// Every field has a working default so a missing file yields a usable
// local setup.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Config is the full engine configuration.
type Config struct {
	// Blob configures the artifact backend.
	Blob BlobConfig `toml:"blob"`

	// Storage configures the override and analysis stores.
	Storage StorageConfig `toml:"storage"`

	// Pipeline tunes the listing and analysis pipeline.
	Pipeline PipelineConfig `toml:"pipeline"`

	// Suggestions tunes the link suggestion engine.
	Suggestions SuggestionsConfig `toml:"suggestions"`
}

// BlobConfig selects and configures the blob backend.
type BlobConfig struct {
	// Root is the local directory backing the filesystem blob store.
	Root string `toml:"root"`

	// Prefix restricts listings to a key prefix.
	Prefix string `toml:"prefix"`
}

// StorageConfig selects the persistence backends.
type StorageConfig struct {
	// DataDir holds the SQLite database. Empty defaults to
	// ~/.meetlens/data.
	DataDir string `toml:"data_dir"`

	// RedisAddr, when set, moves the analysis cache onto Redis.
	RedisAddr string `toml:"redis_addr"`

	// RedisDB selects the Redis logical database.
	RedisDB int `toml:"redis_db"`

	// RedisTTLMinutes bounds the lifetime of Redis-cached analyses.
	// Zero keeps entries indefinitely.
	RedisTTLMinutes int `toml:"redis_ttl_minutes"`
}

// PipelineConfig tunes the meeting pipeline.
type PipelineConfig struct {
	// FetchConcurrency bounds per-meeting enrichment fan-out.
	FetchConcurrency int `toml:"fetch_concurrency"`

	// FetchRatePerSecond limits blob round-trips.
	FetchRatePerSecond float64 `toml:"fetch_rate_per_second"`

	// StorageTimeoutSeconds is the per-round-trip deadline.
	StorageTimeoutSeconds int `toml:"storage_timeout_seconds"`

	// ListingTTLMinutes is the listing cache lifetime.
	ListingTTLMinutes int `toml:"listing_ttl_minutes"`

	// SignedURLTTLMinutes is the requested signed URL lifetime.
	SignedURLTTLMinutes int `toml:"signed_url_ttl_minutes"`
}

// SuggestionsConfig tunes the link suggestion engine.
type SuggestionsConfig struct {
	// MinScore excludes suggestions below it.
	MinScore float64 `toml:"min_score"`
}

// StorageTimeout returns the per-round-trip deadline as a duration.
func (p PipelineConfig) StorageTimeout() time.Duration {
	return time.Duration(p.StorageTimeoutSeconds) * time.Second
}

// ListingTTL returns the listing cache lifetime as a duration.
func (p PipelineConfig) ListingTTL() time.Duration {
	return time.Duration(p.ListingTTLMinutes) * time.Minute
}

// SignedURLTTL returns the signed URL lifetime as a duration.
func (p PipelineConfig) SignedURLTTL() time.Duration {
	return time.Duration(p.SignedURLTTLMinutes) * time.Minute
}

// RedisTTL returns the Redis entry lifetime as a duration.
func (s StorageConfig) RedisTTL() time.Duration {
	return time.Duration(s.RedisTTLMinutes) * time.Minute
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Blob: BlobConfig{
			Root: "./meetings",
		},
		Pipeline: PipelineConfig{
			FetchConcurrency:      8,
			FetchRatePerSecond:    20,
			StorageTimeoutSeconds: 30,
			ListingTTLMinutes:     30,
			SignedURLTTLMinutes:   60,
		},
		Suggestions: SuggestionsConfig{
			MinScore: 4,
		},
	}
}

// Load reads configuration from path, layering it over the defaults.
// A missing file is not an error. If path is empty, the default
// location ~/.meetlens/config.toml is used.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return cfg, fmt.Errorf("getting home directory: %w", err)
		}
		path = filepath.Join(home, ".meetlens", "config.toml")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects configurations the engine cannot run with.
func (c Config) Validate() error {
	if c.Pipeline.FetchConcurrency < 0 {
		return fmt.Errorf("pipeline.fetch_concurrency must not be negative")
	}
	if c.Pipeline.FetchRatePerSecond < 0 {
		return fmt.Errorf("pipeline.fetch_rate_per_second must not be negative")
	}
	if c.Suggestions.MinScore < 0 || c.Suggestions.MinScore > 10 {
		return fmt.Errorf("suggestions.min_score must be within [0, 10]")
	}
	return nil
}
