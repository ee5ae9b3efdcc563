package config

const (
	envLogLevel     = "LOG_LEVEL"
	envLogFormat    = "LOG_FORMAT"
	envNoColor      = "NO_COLOR"
	envColorEnabled = "COLOR_ENABLED"
	envMaxLineBytes = "MAX_LINE_BYTES"
	envMetricsOn    = "METRICS_ENABLED"
	envMetricsFile  = "METRICS_TEXTFILE"
	envOtelEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService  = "OTEL_SERVICE_NAME"
	envOtelInsecure = "OTEL_EXPORTER_OTLP_INSECURE"

	// Batch runs keep stderr quiet unless asked.
	defaultLogLevel     = "warn"
	defaultLogFormat    = "text"
	defaultColorEnabled = true
	defaultMaxLineBytes = 1 << 20
	defaultMetricsOn    = false
	defaultServiceName  = "league-ranker"
)
