package domain

// Status values reported in response bodies.
const (
	StatusSuccess = "success"
	StatusError   = "error"
	StatusHealthy = "healthy"
)

// TeamRequest is the body accepted by /api/team-info and /api/lineup-only.
type TeamRequest struct {
	Team string `json:"team"`
}

// ChatRequest is the body accepted by /api/chat.
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatResponse is returned by /api/chat.
type ChatResponse struct {
	Reply  string `json:"reply"`
	Status string `json:"status"`
}

// HealthResponse is returned by /health.
type HealthResponse struct {
	Status           string `json:"status"`
	GeminiConfigured bool   `json:"gemini_configured"`
	Model            string `json:"model"`
	ServerDate       string `json:"server_date"`
	ServerYear       int    `json:"server_year"`
	Version          string `json:"version,omitempty"`
}

// ConnectivityResponse is returned by /test-gemini.
type ConnectivityResponse struct {
	Status   string `json:"status"`
	Response string `json:"response,omitempty"`
	Message  string `json:"message,omitempty"`
	Model    string `json:"model,omitempty"`
	Error    string `json:"error,omitempty"`
}
