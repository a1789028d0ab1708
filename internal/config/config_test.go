package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))

	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, 30*time.Second, cfg.Pipeline.StorageTimeout())
	assert.Equal(t, 30*time.Minute, cfg.Pipeline.ListingTTL())
	assert.Equal(t, time.Hour, cfg.Pipeline.SignedURLTTL())
}

func TestLoad_LayersOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[blob]
root = "/srv/meetings"
prefix = "team-a/"

[storage]
redis_addr = "localhost:6379"
redis_ttl_minutes = 120

[pipeline]
fetch_concurrency = 4
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "/srv/meetings", cfg.Blob.Root)
	assert.Equal(t, "team-a/", cfg.Blob.Prefix)
	assert.Equal(t, "localhost:6379", cfg.Storage.RedisAddr)
	assert.Equal(t, 2*time.Hour, cfg.Storage.RedisTTL())
	assert.Equal(t, 4, cfg.Pipeline.FetchConcurrency)

	// Untouched sections keep their defaults.
	assert.Equal(t, 30, cfg.Pipeline.StorageTimeoutSeconds)
	assert.InDelta(t, 4.0, cfg.Suggestions.MinScore, 0.001)
}

func TestLoad_InvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("not [valid"), 0600))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_RejectsInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[suggestions]
min_score = 42.0
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "min_score")
}

func TestValidate_NegativeConcurrency(t *testing.T) {
	cfg := Default()
	cfg.Pipeline.FetchConcurrency = -1

	assert.Error(t, cfg.Validate())
}
