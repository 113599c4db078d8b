package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultsValidate(t *testing.T) {
	cfg := Defaults()
	assert.NoError(t, cfg.Validate())
}

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)

	assert.Equal(t, "https://gamma-api.polymarket.com", cfg.Polymarket.GammaHost)
	assert.Equal(t, 50, cfg.Polymarket.PageLimit)
	assert.Equal(t, 20*time.Second, cfg.Polymarket.RequestTimeout.Duration)
	assert.Equal(t, "data/signals.jsonl", cfg.Signals.Path)
	assert.Equal(t, "data.json", cfg.Output.Path)
	assert.Equal(t, "once", cfg.Mode)
	assert.Equal(t, 10*time.Minute, cfg.Interval.Duration)
	assert.False(t, cfg.Redis.Enabled)
	assert.False(t, cfg.S3.Enabled)
}

func TestLoadMergesFileOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
mode = "loop"
interval = "5m"

[polymarket]
page_limit = 100
request_timeout = "30s"

[output]
path = "/tmp/out.json"

[redis]
enabled = true
addr = "redis:6379"
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "loop", cfg.Mode)
	assert.Equal(t, 5*time.Minute, cfg.Interval.Duration)
	assert.Equal(t, 100, cfg.Polymarket.PageLimit)
	assert.Equal(t, 30*time.Second, cfg.Polymarket.RequestTimeout.Duration)
	assert.Equal(t, "/tmp/out.json", cfg.Output.Path)
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, "redis:6379", cfg.Redis.Addr)

	// Untouched sections keep their defaults.
	assert.Equal(t, "https://gamma-api.polymarket.com", cfg.Polymarket.GammaHost)
	assert.Equal(t, "data/signals.jsonl", cfg.Signals.Path)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("POLYDASH_GAMMA_HOST", "http://localhost:9999")
	t.Setenv("POLYDASH_PAGE_LIMIT", "25")
	t.Setenv("POLYDASH_MODE", "loop")
	t.Setenv("POLYDASH_INTERVAL", "1m")
	t.Setenv("POLYDASH_REDIS_ENABLED", "true")
	t.Setenv("POLYDASH_S3_BUCKET", "override-bucket")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:9999", cfg.Polymarket.GammaHost)
	assert.Equal(t, 25, cfg.Polymarket.PageLimit)
	assert.Equal(t, "loop", cfg.Mode)
	assert.Equal(t, time.Minute, cfg.Interval.Duration)
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, "override-bucket", cfg.S3.Bucket)
}

func TestLoadEnvIgnoresUnparsableValues(t *testing.T) {
	t.Setenv("POLYDASH_PAGE_LIMIT", "lots")
	t.Setenv("POLYDASH_REDIS_ENABLED", "sure")
	t.Setenv("POLYDASH_INTERVAL", "soonish")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)

	assert.Equal(t, 50, cfg.Polymarket.PageLimit)
	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, 10*time.Minute, cfg.Interval.Duration)
}

func TestLoadRejectsMalformedTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`mode = [unclosed`), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidateCollectsAllProblems(t *testing.T) {
	cfg := Defaults()
	cfg.Mode = "sometimes"
	cfg.LogLevel = "loud"
	cfg.Polymarket.PageLimit = 0
	cfg.Output.Path = ""

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown mode "sometimes"`)
	assert.Contains(t, err.Error(), `unknown log_level "loud"`)
	assert.Contains(t, err.Error(), "page_limit must be 1-500")
	assert.Contains(t, err.Error(), "output: path must not be empty")
}

func TestValidateLoopNeedsInterval(t *testing.T) {
	cfg := Defaults()
	cfg.Mode = "loop"
	cfg.Interval.Duration = 0

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "interval must be positive")
}

func TestValidateTelegramPair(t *testing.T) {
	cfg := Defaults()
	cfg.Notify.TelegramToken = "token-only"

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "telegram_token and telegram_chat_id must be set together")

	cfg.Notify.TelegramChatID = "12345"
	assert.NoError(t, cfg.Validate())
}

func TestValidateEnabledMirrorsRequireTargets(t *testing.T) {
	cfg := Defaults()
	cfg.Redis.Enabled = true
	cfg.Redis.Addr = ""
	cfg.S3.Enabled = true
	cfg.S3.Bucket = ""

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "redis: addr must not be empty")
	assert.Contains(t, err.Error(), "s3: bucket must not be empty")
}
