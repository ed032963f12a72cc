// Package config loads runtime configuration from the environment.
package config

import "time"

// Config holds runtime configuration for the CLI and the serve mode.
type Config struct {
	BaseURL     string
	HTTPTimeout time.Duration
	Log         LogConfig
	Server      ServerConfig
}

// LogConfig controls logger construction.
type LogConfig struct {
	Level  string
	Format string
}

// ServerConfig controls the optional HTTP presentation surface.
type ServerConfig struct {
	Port           string
	MetricsEnabled bool
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		BaseURL:     envOrDefault(envBaseURL, defaultBaseURL),
		HTTPTimeout: durationEnvOrDefault(envHTTPTimeout, defaultHTTPTimeout),
		Log: LogConfig{
			Level:  envOrDefault(envLogLevel, ""),
			Format: envOrDefault(envLogFormat, ""),
		},
		Server: ServerConfig{
			Port:           envOrDefault(envPort, defaultPort),
			MetricsEnabled: boolEnvOrDefault(envMetricsOn, defaultMetricsOn),
		},
	}
}
