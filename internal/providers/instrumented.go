package providers

import (
	"context"
	"log/slog"
	"time"

	"github.com/preston-bernstein/futebol-bot-service/internal/logging"
	"github.com/preston-bernstein/futebol-bot-service/internal/metrics"
)

// instrumentedProvider wraps a TextProvider with call metrics and logging.
// It never retries or delays a call.
type instrumentedProvider struct {
	inner   TextProvider
	logger  *slog.Logger
	metrics *metrics.Recorder
	now     func() time.Time
}

// NewInstrumentedProvider decorates inner with latency/error metrics and failure logs.
func NewInstrumentedProvider(inner TextProvider, logger *slog.Logger, recorder *metrics.Recorder) TextProvider {
	if inner == nil {
		return nil
	}
	return &instrumentedProvider{
		inner:   inner,
		logger:  logger,
		metrics: recorder,
		now:     time.Now,
	}
}

func (p *instrumentedProvider) Generate(ctx context.Context, prompt string) (string, error) {
	start := p.now()
	reply, err := p.inner.Generate(ctx, prompt)
	elapsed := p.now().Sub(start)

	name := p.inner.Name()
	p.metrics.RecordProviderAttempt(name, elapsed, err)
	if err != nil {
		if pErr, ok := AsProviderError(err); ok && pErr.IsRateLimited() {
			p.metrics.RecordRateLimit(name, pErr.RetryAfter)
		}
		logWithProvider(ctx, p.logger, slog.LevelWarn, name, "provider call failed",
			slog.String(logging.FieldModel, p.inner.Model()),
			slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()),
			slog.Any(logging.FieldError, err),
		)
		return "", err
	}

	logWithProvider(ctx, p.logger, slog.LevelInfo, name, "provider reply received",
		slog.String(logging.FieldModel, p.inner.Model()),
		slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()),
		slog.Int("reply_chars", len(reply)),
	)
	return reply, nil
}

func (p *instrumentedProvider) Name() string  { return p.inner.Name() }
func (p *instrumentedProvider) Model() string { return p.inner.Model() }
