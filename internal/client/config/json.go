package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/subtracker/internal/flagx"
	"github.com/dmitrijs2005/subtracker/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Durations use
// timex.Duration so the file may say "5s" or give integer nanoseconds.
type JsonConfig struct {
	BaseURL        string         `json:"base_url"`
	RequestTimeout timex.Duration `json:"request_timeout"`
	SnapshotPath   *string        `json:"snapshot_path"`
	MetricsAddr    string         `json:"metrics_addr"`
	LogLevel       string         `json:"log_level"`
	Currency       string         `json:"currency"`
}

// parseJson overlays Config with values loaded from the JSON file named by
// -c or -config. Absent keys leave the current values alone; snapshot_path
// may be set to "" explicitly to disable the snapshot.
//
// Panics on read or unmarshal errors.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.ConfigFile(os.Args[1:])
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.BaseURL != "" {
		cfg.BaseURL = jc.BaseURL
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.SnapshotPath != nil {
		cfg.SnapshotPath = *jc.SnapshotPath
	}
	if jc.MetricsAddr != "" {
		cfg.MetricsAddr = jc.MetricsAddr
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
	if jc.Currency != "" {
		cfg.Currency = jc.Currency
	}
}
