package config

import (
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// envConfig mirrors Config for environment lookup. Unset variables stay zero
// and do not override earlier sources.
type envConfig struct {
	BaseURL        string        `env:"SUBTRACKER_BASE_URL"`
	RequestTimeout time.Duration `env:"SUBTRACKER_REQUEST_TIMEOUT"`
	SnapshotPath   string        `env:"SUBTRACKER_SNAPSHOT_PATH"`
	MetricsAddr    string        `env:"SUBTRACKER_METRICS_ADDR"`
	LogLevel       string        `env:"SUBTRACKER_LOG_LEVEL"`
	Currency       string        `env:"SUBTRACKER_CURRENCY"`
}

// parseEnv overlays Config with SUBTRACKER_* variables. Panics when a
// variable cannot be parsed.
func parseEnv(cfg *Config) {
	var ec envConfig
	if err := cleanenv.ReadEnv(&ec); err != nil {
		panic(err)
	}

	if ec.BaseURL != "" {
		cfg.BaseURL = ec.BaseURL
	}
	if ec.RequestTimeout != 0 {
		cfg.RequestTimeout = ec.RequestTimeout
	}
	if ec.SnapshotPath != "" {
		cfg.SnapshotPath = ec.SnapshotPath
	}
	if ec.MetricsAddr != "" {
		cfg.MetricsAddr = ec.MetricsAddr
	}
	if ec.LogLevel != "" {
		cfg.LogLevel = ec.LogLevel
	}
	if ec.Currency != "" {
		cfg.Currency = ec.Currency
	}
}
