package config

import "strings"

// GeminiConfig controls how we talk to the Gemini API.
type GeminiConfig struct {
	APIKey  string
	Model   string
	Timeout Duration
	BaseURL string
}

func loadGemini() GeminiConfig {
	return GeminiConfig{
		APIKey:  strings.TrimSpace(envOrDefault(envGeminiAPIKey, "")),
		Model:   envOrDefault(envGeminiModel, defaultGeminiModel),
		Timeout: durationEnvOrDefault(envGeminiTimeout, defaultGeminiTimeout),
		BaseURL: envOrDefault(envGeminiBaseURL, ""),
	}
}
