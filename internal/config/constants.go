package config

import "time"

const (
	envBaseURL     = "MLB_BASE_URL"
	envHTTPTimeout = "MLB_HTTP_TIMEOUT"
	envLogLevel    = "LOG_LEVEL"
	envLogFormat   = "LOG_FORMAT"
	envPort        = "PORT"
	envMetricsOn   = "METRICS_ENABLED"

	defaultBaseURL = "https://statsapi.mlb.com"
	// Upstream requests are single round trips; this bounds a stalled
	// connection without cutting off slow responses.
	defaultHTTPTimeout = 15 * time.Second
	defaultPort        = "8080"
	defaultMetricsOn   = true
)
