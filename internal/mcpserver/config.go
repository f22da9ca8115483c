package mcpserver

import (
	"log/slog"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/erraggy/oastype/parser"
)

// envPrefix is prepended to every setting, e.g. OASTYPE_WALK_LIMIT.
const envPrefix = "oastype"

// serverConfig holds all configurable MCP server defaults.
// Loaded once at startup from environment variables via loadConfig().
type serverConfig struct {
	// Cache settings.
	CacheEnabled       bool          `envconfig:"CACHE_ENABLED"`
	CacheMaxSize       int           `envconfig:"CACHE_MAX_SIZE"`
	CacheFileTTL       time.Duration `envconfig:"CACHE_FILE_TTL"`
	CacheContentTTL    time.Duration `envconfig:"CACHE_CONTENT_TTL"`
	CacheSweepInterval time.Duration `envconfig:"CACHE_SWEEP_INTERVAL"`

	// Walk tool defaults.
	WalkLimit int `envconfig:"WALK_LIMIT"`
	MaxLimit  int `envconfig:"MAX_LIMIT"`

	// Input limits.
	MaxInlineSize   int64 `envconfig:"MAX_INLINE_SIZE"`
	MaxDocumentSize int64 `envconfig:"MAX_DOCUMENT_SIZE"`

	// LogLevel controls the server's stderr logging: debug, info, warn or error.
	LogLevel string `envconfig:"LOG_LEVEL"`
}

// cfg is the active server configuration, initialized at package load time.
var cfg = loadConfig()

func defaultConfig() *serverConfig {
	return &serverConfig{
		CacheEnabled:       true,
		CacheMaxSize:       10,
		CacheFileTTL:       15 * time.Minute,
		CacheContentTTL:    15 * time.Minute,
		CacheSweepInterval: 60 * time.Second,
		WalkLimit:          100,
		MaxLimit:           1000,
		MaxInlineSize:      10 * 1024 * 1024,
		MaxDocumentSize:    parser.DefaultMaxSize,
		LogLevel:           "warn",
	}
}

// loadConfig reads configuration from OASTYPE_* environment variables.
// A value that does not parse discards the environment entirely; a value
// that parses but is out of range falls back to its default.
func loadConfig() *serverConfig {
	c := defaultConfig()
	if err := envconfig.Process(envPrefix, c); err != nil {
		slog.Warn("invalid OASTYPE_* environment, using defaults", "error", err)
		return defaultConfig()
	}

	def := defaultConfig()
	positive(&c.CacheMaxSize, def.CacheMaxSize, "CACHE_MAX_SIZE")
	positive(&c.WalkLimit, def.WalkLimit, "WALK_LIMIT")
	positive(&c.MaxLimit, def.MaxLimit, "MAX_LIMIT")
	positive(&c.MaxInlineSize, def.MaxInlineSize, "MAX_INLINE_SIZE")
	positive(&c.MaxDocumentSize, def.MaxDocumentSize, "MAX_DOCUMENT_SIZE")
	positive(&c.CacheFileTTL, def.CacheFileTTL, "CACHE_FILE_TTL")
	positive(&c.CacheContentTTL, def.CacheContentTTL, "CACHE_CONTENT_TTL")
	positive(&c.CacheSweepInterval, def.CacheSweepInterval, "CACHE_SWEEP_INTERVAL")
	if _, ok := logLevels[c.LogLevel]; !ok {
		slog.Warn("invalid env var, using default", "key", "OASTYPE_LOG_LEVEL", "value", c.LogLevel, "default", def.LogLevel)
		c.LogLevel = def.LogLevel
	}
	return c
}

func positive[T int | int64 | time.Duration](v *T, fallback T, key string) {
	if *v > 0 {
		return
	}
	slog.Warn("invalid env var, using default", "key", "OASTYPE_"+key, "value", *v, "default", fallback)
	*v = fallback
}

var logLevels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// slogLevel returns the configured log level.
func (c *serverConfig) slogLevel() slog.Level {
	return logLevels[c.LogLevel]
}
