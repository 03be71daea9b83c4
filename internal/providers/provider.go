package providers

import "context"

// TextProvider sends a single prompt to a generative model and returns the
// model's text reply. Implementations make exactly one upstream call per
// Generate; callers own any retry decisions.
type TextProvider interface {
	Generate(ctx context.Context, prompt string) (string, error)
	// Name identifies the provider in logs and metrics (e.g. "gemini").
	Name() string
	// Model is the upstream model the provider talks to.
	Model() string
}
