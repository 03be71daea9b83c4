package config

import "strings"

// CORSConfig lists the origins allowed to call the API from a browser.
type CORSConfig struct {
	AllowedOrigins []string
}

func loadCORS() CORSConfig {
	return CORSConfig{AllowedOrigins: listEnvOrDefault(envCORSOrigins, defaultCORSOrigins)}
}

func listEnvOrDefault(key, defaultValue string) []string {
	raw := envOrDefault(key, defaultValue)
	out := make([]string, 0)
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return []string{defaultValue}
	}
	return out
}
