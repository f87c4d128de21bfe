package config

import "time"

// Config holds runtime settings for the subtracker CLI.
//
// Fields:
//   - BaseURL: URL of the subscription collection on the remote store.
//   - RequestTimeout: upper bound for a single remote call.
//   - SnapshotPath: SQLite file keeping the last fetched list ("" disables it).
//   - MetricsAddr: host:port to expose Prometheus metrics on ("" disables it).
//   - LogLevel: debug, info, warn or error.
//   - Currency: symbol printed in front of amounts.
type Config struct {
	BaseURL        string
	RequestTimeout time.Duration
	SnapshotPath   string
	MetricsAddr    string
	LogLevel       string
	Currency       string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "http://localhost:8085/api/subscriptions"
	c.RequestTimeout = 10 * time.Second
	c.SnapshotPath = "subtracker.db"
	c.MetricsAddr = ""
	c.LogLevel = "info"
	c.Currency = "₹"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), the environment, and command-line flags (if present).
// Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
