package config

// Config holds runtime configuration for the server.
type Config struct {
	Port    string
	Gemini  GeminiConfig
	CORS    CORSConfig
	Metrics MetricsConfig
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:    envOrDefault(envPort, defaultPort),
		Gemini:  loadGemini(),
		CORS:    loadCORS(),
		Metrics: loadMetrics(),
	}
}

// GeminiConfigured reports whether a provider credential was supplied at load time.
func (c Config) GeminiConfigured() bool {
	return c.Gemini.APIKey != ""
}
