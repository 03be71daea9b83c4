package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/preston-bernstein/futebol-bot-service/internal/app/teaminfo"
	"github.com/preston-bernstein/futebol-bot-service/internal/domain"
	"github.com/preston-bernstein/futebol-bot-service/internal/extract"
	"github.com/preston-bernstein/futebol-bot-service/internal/logging"
	"github.com/preston-bernstein/futebol-bot-service/internal/timeutil"
)

// User-facing messages. The frontend renders these verbatim.
const (
	msgNotConfigured    = "API Gemini não configurada"
	msgNoData           = "Dados não fornecidos"
	msgMissingTeam      = "Time não especificado"
	msgMissingMessage   = "A mensagem é obrigatória"
	msgInternal         = "Erro interno do servidor"
	msgChatFailed       = "Não foi possível se comunicar com o assistente"
	msgConnectOK        = "Conexão com Gemini API bem-sucedida"
	msgConnectFailed    = "Erro ao conectar com Gemini API. Verifique sua chave API."
	msgMethodNotAllowed = "method not allowed"
)

// Handler wires HTTP routes to the team-info service.
type Handler struct {
	svc     *teaminfo.Service
	logger  *slog.Logger
	now     timeutil.Clock
	version string
}

// NewHandler constructs a Handler with defaults.
func NewHandler(svc *teaminfo.Service, logger *slog.Logger, version string) *Handler {
	return &Handler{
		svc:     svc,
		logger:  logger,
		now:     timeutil.SystemClock,
		version: version,
	}
}

// Health always answers 200 and reports whether the model is configured.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	now := h.now()
	writeJSON(w, http.StatusOK, domain.HealthResponse{
		Status:           domain.StatusHealthy,
		GeminiConfigured: h.svc.Configured(),
		Model:            h.svc.Model(),
		ServerDate:       timeutil.FormatDate(now),
		ServerYear:       timeutil.Year(now),
		Version:          h.version,
	}, h.logger)
}

// TeamInfo returns the extracted briefing for the requested team.
func (h *Handler) TeamInfo(w http.ResponseWriter, r *http.Request) {
	h.structured(w, r, h.svc.TeamInfo)
}

// LineupOnly returns the extracted probable lineup for the requested team.
func (h *Handler) LineupOnly(w http.ResponseWriter, r *http.Request) {
	h.structured(w, r, h.svc.Lineup)
}

// structured serves the team endpoints. Extraction failures are still 200;
// the payload then carries an "error" key.
func (h *Handler) structured(w http.ResponseWriter, r *http.Request, op func(context.Context, string) (extract.Result, error)) {
	if !requireMethod(w, r, http.MethodPost, h.logger) {
		return
	}
	logger := loggerFromContext(r, h.logger)

	req, err := decodeBody[domain.TeamRequest](w, r)
	if err != nil {
		logging.Debug(logger, "rejected team request body", logging.FieldError, err)
		writeError(w, r, http.StatusBadRequest, msgNoData, h.logger)
		return
	}

	res, err := op(r.Context(), req.Team)
	switch {
	case errors.Is(err, teaminfo.ErrMissingTeam):
		writeError(w, r, http.StatusBadRequest, msgMissingTeam, h.logger)
		return
	case errors.Is(err, teaminfo.ErrNotConfigured):
		writeError(w, r, http.StatusInternalServerError, msgNotConfigured, h.logger)
		return
	case err != nil:
		logging.Error(logger, "team request failed", err, logging.FieldTeam, req.Team)
		writeError(w, r, http.StatusInternalServerError, msgInternal, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, res.Payload(), h.logger)
}

// Chat forwards a free-form message and returns the raw reply.
func (h *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost, h.logger) {
		return
	}
	logger := loggerFromContext(r, h.logger)

	req, err := decodeBody[domain.ChatRequest](w, r)
	if err != nil {
		logging.Debug(logger, "rejected chat request body", logging.FieldError, err)
		writeError(w, r, http.StatusBadRequest, msgNoData, h.logger)
		return
	}

	reply, err := h.svc.Chat(r.Context(), req.Message)
	switch {
	case errors.Is(err, teaminfo.ErrMissingMessage):
		writeError(w, r, http.StatusBadRequest, msgMissingMessage, h.logger)
		return
	case errors.Is(err, teaminfo.ErrNotConfigured):
		writeError(w, r, http.StatusInternalServerError, msgNotConfigured, h.logger)
		return
	case err != nil:
		logging.Error(logger, "chat request failed", err)
		writeError(w, r, http.StatusInternalServerError, msgChatFailed, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, domain.ChatResponse{Reply: reply, Status: domain.StatusSuccess}, h.logger)
}

// TestGemini sends the canned connectivity prompt upstream.
func (h *Handler) TestGemini(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	logger := loggerFromContext(r, h.logger)

	start := time.Now()
	reply, err := h.svc.Ping(r.Context())
	if errors.Is(err, teaminfo.ErrNotConfigured) {
		writeJSON(w, http.StatusInternalServerError, domain.ConnectivityResponse{
			Status: domain.StatusError,
			Error:  msgNotConfigured,
		}, h.logger)
		return
	}
	if err != nil {
		logging.Warn(logger, "connectivity check failed",
			logging.FieldModel, h.svc.Model(),
			logging.FieldError, err,
		)
		writeJSON(w, http.StatusInternalServerError, domain.ConnectivityResponse{
			Status:  domain.StatusError,
			Error:   err.Error(),
			Message: msgConnectFailed,
		}, h.logger)
		return
	}

	logging.Info(logger, "connectivity check succeeded",
		logging.FieldModel, h.svc.Model(),
		logging.FieldDurationMS, time.Since(start).Milliseconds(),
	)
	writeJSON(w, http.StatusOK, domain.ConnectivityResponse{
		Status:   domain.StatusSuccess,
		Response: reply,
		Message:  msgConnectOK,
		Model:    h.svc.Model(),
	}, h.logger)
}
