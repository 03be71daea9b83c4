// Package teaminfo implements the model-backed operations behind the API:
// team briefing, lineup, free chat and the connectivity probe.
package teaminfo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/preston-bernstein/futebol-bot-service/internal/extract"
	"github.com/preston-bernstein/futebol-bot-service/internal/logging"
	"github.com/preston-bernstein/futebol-bot-service/internal/metrics"
	"github.com/preston-bernstein/futebol-bot-service/internal/prompts"
	"github.com/preston-bernstein/futebol-bot-service/internal/providers"
)

// Operation names used in logs and metrics.
const (
	OperationTeamInfo = "team_info"
	OperationLineup   = "lineup"
)

// ModelNone is reported when no provider is configured.
const ModelNone = "none"

var (
	ErrNotConfigured  = errors.New("teaminfo: provider not configured")
	ErrMissingTeam    = errors.New("teaminfo: team is required")
	ErrMissingMessage = errors.New("teaminfo: message is required")
)

// Service coordinates prompt rendering, the provider call and extraction.
type Service struct {
	provider providers.TextProvider
	prompts  *prompts.Set
	logger   *slog.Logger
	metrics  *metrics.Recorder
}

// NewService constructs a Service. A nil provider yields a service whose
// model-backed operations all fail with ErrNotConfigured.
func NewService(provider providers.TextProvider, set *prompts.Set, logger *slog.Logger, recorder *metrics.Recorder) *Service {
	if set == nil {
		set = prompts.MustLoad()
	}
	return &Service{
		provider: provider,
		prompts:  set,
		logger:   logger,
		metrics:  recorder,
	}
}

// Configured reports whether a provider is available.
func (s *Service) Configured() bool {
	return s.provider != nil
}

// Model returns the upstream model name, or ModelNone.
func (s *Service) Model() string {
	if s.provider == nil {
		return ModelNone
	}
	return s.provider.Model()
}

// TeamInfo asks the model for next match, recent results, probable lineup and
// news for team, and extracts whatever JSON object the reply contains.
func (s *Service) TeamInfo(ctx context.Context, team string) (extract.Result, error) {
	return s.structured(ctx, OperationTeamInfo, team, s.prompts.TeamInfo)
}

// Lineup asks the model only for the probable lineup of team.
func (s *Service) Lineup(ctx context.Context, team string) (extract.Result, error) {
	return s.structured(ctx, OperationLineup, team, s.prompts.Lineup)
}

// Chat forwards message verbatim and returns the raw reply.
func (s *Service) Chat(ctx context.Context, message string) (string, error) {
	if strings.TrimSpace(message) == "" {
		return "", ErrMissingMessage
	}
	if !s.Configured() {
		return "", ErrNotConfigured
	}
	reply, err := s.provider.Generate(ctx, message)
	if err != nil {
		return "", fmt.Errorf("chat: %w", err)
	}
	return reply, nil
}

// Ping sends the canned connectivity prompt.
func (s *Service) Ping(ctx context.Context) (string, error) {
	if !s.Configured() {
		return "", ErrNotConfigured
	}
	reply, err := s.provider.Generate(ctx, prompts.Ping)
	if err != nil {
		return "", fmt.Errorf("ping: %w", err)
	}
	return reply, nil
}

func (s *Service) structured(ctx context.Context, op, team string, render func(string) (string, error)) (extract.Result, error) {
	team = strings.TrimSpace(team)
	if team == "" {
		return extract.Result{}, ErrMissingTeam
	}
	if !s.Configured() {
		return extract.Result{}, ErrNotConfigured
	}

	prompt, err := render(team)
	if err != nil {
		return extract.Result{}, fmt.Errorf("%s: %w", op, err)
	}

	reply, err := s.provider.Generate(ctx, prompt)
	if err != nil {
		return extract.Result{}, fmt.Errorf("%s: %w", op, err)
	}

	res := extract.Extract(reply)
	s.metrics.RecordExtraction(op, res.Outcome.String())

	logger := logging.FromContext(ctx, s.logger)
	if res.OK() {
		logging.Info(logger, "model reply extracted",
			logging.FieldTeam, team,
			logging.FieldOperation, op,
			logging.FieldOutcome, res.Outcome.String(),
			"keys", len(res.Data),
		)
	} else {
		logging.Warn(logger, "model reply not extractable",
			logging.FieldTeam, team,
			logging.FieldOperation, op,
			logging.FieldOutcome, res.Outcome.String(),
			logging.FieldError, res.Err,
		)
	}
	return res, nil
}
