package http

import (
	nethttp "net/http"

	"github.com/preston-bernstein/futebol-bot-service/internal/http/handlers"
)

// NewRouter registers HTTP routes on a ServeMux.
func NewRouter(handler *handlers.Handler) nethttp.Handler {
	mux := nethttp.NewServeMux()
	mux.HandleFunc("/health", handler.Health)
	mux.HandleFunc("/test-gemini", handler.TestGemini)
	mux.HandleFunc("/api/team-info", handler.TeamInfo)
	mux.HandleFunc("/api/lineup-only", handler.LineupOnly)
	mux.HandleFunc("/api/chat", handler.Chat)
	return mux
}
