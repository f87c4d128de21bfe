package devserver

import (
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds dev server settings. It is read from the environment only.
type Config struct {
	Addr            string        `env:"DEVSERVER_ADDR" env-default:"127.0.0.1:8085" env-description:"listen address"`
	RateLimit       float64       `env:"DEVSERVER_RATE_LIMIT" env-default:"20" env-description:"requests per second, 0 disables limiting"`
	RateBurst       int           `env:"DEVSERVER_RATE_BURST" env-default:"40" env-description:"token bucket size"`
	LogLevel        string        `env:"DEVSERVER_LOG_LEVEL" env-default:"info" env-description:"debug, info, warn or error"`
	ShutdownTimeout time.Duration `env:"DEVSERVER_SHUTDOWN_TIMEOUT" env-default:"5s" env-description:"graceful shutdown deadline"`
}

// LoadConfig reads Config from the environment, applying defaults.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Usage describes the supported variables.
func Usage() string {
	var cfg Config
	text, err := cleanenv.GetDescription(&cfg, nil)
	if err != nil {
		return ""
	}
	return text
}
