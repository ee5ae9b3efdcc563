package config

import "os"

// Config holds runtime configuration for a ranking run.
type Config struct {
	LogLevel     string
	LogFormat    string
	Color        bool
	MaxLineBytes int
	Metrics      MetricsConfig
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		LogLevel:     envOrDefault(envLogLevel, defaultLogLevel),
		LogFormat:    envOrDefault(envLogFormat, defaultLogFormat),
		Color:        loadColor(),
		MaxLineBytes: intEnvOrDefault(envMaxLineBytes, defaultMaxLineBytes),
		Metrics:      loadMetrics(),
	}
}

// NO_COLOR wins over COLOR_ENABLED; see no-color.org.
func loadColor() bool {
	if os.Getenv(envNoColor) != "" {
		return false
	}
	return boolEnvOrDefault(envColorEnabled, defaultColorEnabled)
}
