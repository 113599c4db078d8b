package config

import (
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Load reads a TOML configuration file at path, merges it on top of the
// built-in defaults, applies POLYDASH_* environment variable overrides, and
// returns the final Config. A missing file is not an error: defaults plus
// environment are enough to run. The returned Config has NOT been validated;
// the caller should invoke Config.Validate() after Load.
func Load(path string) (*Config, error) {
	cfg := Defaults()

	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return nil, err
		}
	}

	// Load .env file if present (silently ignore if missing).
	_ = godotenv.Load()

	applyEnvOverrides(&cfg)

	return &cfg, nil
}

// applyEnvOverrides reads well-known POLYDASH_* environment variables and
// overwrites the corresponding Config fields when a variable is set (i.e.
// not empty). This lets operators inject secrets at deploy time without
// touching the TOML file.
func applyEnvOverrides(cfg *Config) {
	// ── Polymarket ──
	setStr(&cfg.Polymarket.GammaHost, "POLYDASH_GAMMA_HOST")
	setInt(&cfg.Polymarket.PageLimit, "POLYDASH_PAGE_LIMIT")
	setDuration(&cfg.Polymarket.RequestTimeout, "POLYDASH_REQUEST_TIMEOUT")

	// ── Signals / output ──
	setStr(&cfg.Signals.Path, "POLYDASH_SIGNALS_PATH")
	setStr(&cfg.Output.Path, "POLYDASH_OUTPUT_PATH")

	// ── Redis ──
	setBool(&cfg.Redis.Enabled, "POLYDASH_REDIS_ENABLED")
	setStr(&cfg.Redis.Addr, "POLYDASH_REDIS_ADDR")
	setStr(&cfg.Redis.Password, "POLYDASH_REDIS_PASSWORD")
	setInt(&cfg.Redis.DB, "POLYDASH_REDIS_DB")
	setInt(&cfg.Redis.PoolSize, "POLYDASH_REDIS_POOL_SIZE")
	setInt(&cfg.Redis.MaxRetries, "POLYDASH_REDIS_MAX_RETRIES")
	setBool(&cfg.Redis.TLSEnabled, "POLYDASH_REDIS_TLS_ENABLED")

	// ── S3 ──
	setBool(&cfg.S3.Enabled, "POLYDASH_S3_ENABLED")
	setStr(&cfg.S3.Endpoint, "POLYDASH_S3_ENDPOINT")
	setStr(&cfg.S3.Region, "POLYDASH_S3_REGION")
	setStr(&cfg.S3.Bucket, "POLYDASH_S3_BUCKET")
	setStr(&cfg.S3.Key, "POLYDASH_S3_KEY")
	setStr(&cfg.S3.AccessKey, "POLYDASH_S3_ACCESS_KEY")
	setStr(&cfg.S3.SecretKey, "POLYDASH_S3_SECRET_KEY")
	setBool(&cfg.S3.UseSSL, "POLYDASH_S3_USE_SSL")
	setBool(&cfg.S3.ForcePathStyle, "POLYDASH_S3_FORCE_PATH_STYLE")

	// ── Notify ──
	setStr(&cfg.Notify.TelegramToken, "POLYDASH_NOTIFY_TELEGRAM_TOKEN")
	setStr(&cfg.Notify.TelegramChatID, "POLYDASH_NOTIFY_TELEGRAM_CHAT_ID")
	setStr(&cfg.Notify.DiscordWebhookURL, "POLYDASH_NOTIFY_DISCORD_WEBHOOK_URL")

	// ── Top-level ──
	setStr(&cfg.Mode, "POLYDASH_MODE")
	setDuration(&cfg.Interval, "POLYDASH_INTERVAL")
	setStr(&cfg.LogLevel, "POLYDASH_LOG_LEVEL")
}

// ---------------------------------------------------------------------------
// Typed env-var helpers. Each only mutates the target when the environment
// variable is present and non-empty.
// ---------------------------------------------------------------------------

func setStr(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

func setBool(dst *bool, key string) {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			*dst = b
		}
	}
}

func setDuration(dst *duration, key string) {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			dst.Duration = d
		}
	}
}
