package config

import "time"

const (
	envPort          = "PORT"
	envGeminiAPIKey  = "GEMINI_API_KEY"
	envGeminiModel   = "GEMINI_MODEL"
	envGeminiTimeout = "GEMINI_TIMEOUT"
	envGeminiBaseURL = "GEMINI_BASE_URL"
	envCORSOrigins   = "CORS_ALLOWED_ORIGINS"
	envMetricsPort   = "METRICS_PORT"
	envMetricsOn     = "METRICS_ENABLED"
	envOtelEndpoint  = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService   = "OTEL_SERVICE_NAME"
	envOtelInsecure  = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultPort        = "5000"
	defaultGeminiModel = "gemini-2.0-flash"
	// Gemini answers for the team prompt routinely take 10-20s; leave headroom.
	defaultGeminiTimeout = 45 * Duration(time.Second)
	defaultCORSOrigins   = "*"
	defaultMetricsPort   = "9090"
	defaultServiceName   = "futebol-bot-service"
)
