package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds all service configuration. Values are read once at startup
// from the environment (a .env file is loaded first if present); every
// option has a working default so a bare `sankofa serve` starts locally.
type Config struct {
	Host string `envconfig:"HOST" default:"0.0.0.0"`
	Port int    `envconfig:"PORT" default:"5000"`

	DataDir     string `envconfig:"DATA_DIR" default:"./data"`
	UploadDir   string `envconfig:"UPLOAD_DIR" default:"./data/uploads"`
	MaxUploadMB int    `envconfig:"MAX_UPLOAD_MB" default:"16"`

	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
	Debug    bool   `envconfig:"DEBUG" default:"false"`

	// SeedOnStart fetches a small set of starter topics from the online
	// lookup when the content store is empty.
	SeedOnStart bool `envconfig:"SEED_ON_START" default:"false"`

	// LookupBaseURL is the MediaWiki-compatible API endpoint used for
	// online learning. LookupTimeout bounds each request.
	LookupBaseURL string        `envconfig:"LOOKUP_BASE_URL" default:"https://en.wikipedia.org/w/api.php"`
	LookupTimeout time.Duration `envconfig:"LOOKUP_TIMEOUT" default:"15s"`
}

// Load reads configuration from a .env file (if present) and SANKOFA_*
// environment variables.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("SANKOFA", &cfg); err != nil {
		return Config{}, fmt.Errorf("processing config: %w", err)
	}

	if cfg.MaxUploadMB <= 0 {
		return Config{}, fmt.Errorf("SANKOFA_MAX_UPLOAD_MB must be positive, got %d", cfg.MaxUploadMB)
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return Config{}, fmt.Errorf("SANKOFA_PORT out of range: %d", cfg.Port)
	}

	return cfg, nil
}

// MaxUploadBytes returns the upload size cap in bytes.
func (c Config) MaxUploadBytes() int64 {
	return int64(c.MaxUploadMB) << 20
}
