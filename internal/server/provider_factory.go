package server

import (
	"context"
	"log/slog"

	"github.com/preston-bernstein/futebol-bot-service/internal/config"
	"github.com/preston-bernstein/futebol-bot-service/internal/logging"
	"github.com/preston-bernstein/futebol-bot-service/internal/metrics"
	"github.com/preston-bernstein/futebol-bot-service/internal/providers"
	"github.com/preston-bernstein/futebol-bot-service/internal/providers/gemini"
)

type geminiConstructor func(ctx context.Context, cfg gemini.Config) (providers.TextProvider, error)

func newGeminiProvider(ctx context.Context, cfg gemini.Config) (providers.TextProvider, error) {
	client, err := gemini.NewClient(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return client, nil
}

// providerFactory assembles the model provider with its instrumentation.
type providerFactory struct {
	logger    *slog.Logger
	metrics   *metrics.Recorder
	newGemini geminiConstructor
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: metrics, newGemini: newGeminiProvider}
}

// build returns nil when no credential is configured or the client cannot
// be created; the service then reports itself as not configured.
func (f providerFactory) build(ctx context.Context, cfg config.Config) providers.TextProvider {
	if !cfg.GeminiConfigured() {
		logging.Warn(f.logger, "GEMINI_API_KEY not set, model-backed endpoints disabled")
		return nil
	}

	client, err := f.newGemini(ctx, gemini.Config{
		APIKey:  cfg.Gemini.APIKey,
		Model:   cfg.Gemini.Model,
		Timeout: cfg.Gemini.Timeout,
		BaseURL: cfg.Gemini.BaseURL,
	})
	if err != nil {
		logging.Error(f.logger, "gemini client setup failed, model-backed endpoints disabled", err)
		return nil
	}

	logging.Info(f.logger, "gemini configured",
		logging.FieldProvider, client.Name(),
		logging.FieldModel, client.Model(),
	)
	return providers.NewInstrumentedProvider(client, f.logger, f.metrics)
}
