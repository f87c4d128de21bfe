// Package config loads runtime configuration for the subtracker CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. SUBTRACKER_* environment variables (see parseEnv). The CLI loads a .env
//     file into the environment first, when one exists.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the subscription collection
//	-t int      request timeout (seconds)
//	-s string   snapshot database path
//	-m string   metrics listen address
//	-l string   log level
//
// # JSON schema
//
//	{
//	  "base_url": "http://localhost:8085/api/subscriptions",
//	  "request_timeout": "10s",
//	  "snapshot_path": "subtracker.db",
//	  "metrics_addr": "127.0.0.1:9100",
//	  "log_level": "info",
//	  "currency": "₹"
//	}
package config
