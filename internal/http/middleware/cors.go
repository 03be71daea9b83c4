package middleware

import (
	"net/http"

	"github.com/rs/cors"

	"github.com/preston-bernstein/futebol-bot-service/internal/http/requestutil"
)

// CORS allows browser calls from origins. An empty list or "*" allows any
// origin, which is what the bundled frontend expects in development.
func CORS(origins []string, next http.Handler) http.Handler {
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	c := cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", requestutil.HeaderRequestID},
		ExposedHeaders: []string{requestutil.HeaderRequestID},
	})
	return c.Handler(next)
}
