package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"google.golang.org/genai"
)

var (
	// ErrMissingAPIKey is returned by NewClient when no credential is supplied.
	ErrMissingAPIKey = errors.New("gemini: api key not configured")
	// ErrEmptyResponse is returned when the model produced no text (e.g. a blocked prompt).
	ErrEmptyResponse = errors.New("gemini: empty response")
)

// Config controls how the Gemini client reaches the upstream API.
type Config struct {
	APIKey  string
	Model   string
	Timeout time.Duration
	BaseURL string
}

// contentGenerator is the slice of the genai Models service the client uses.
type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Client sends prompts to the Gemini API through the official genai SDK.
type Client struct {
	models  contentGenerator
	model   string
	timeout time.Duration
}

// NewClient constructs a Gemini client with the provided configuration.
func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, ErrMissingAPIKey
	}

	cc := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.BaseURL != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}

	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("gemini: create client: %w", err)
	}
	return newClient(client.Models, cfg), nil
}

func newClient(models contentGenerator, cfg Config) *Client {
	return &Client{
		models:  models,
		model:   resolveModel(cfg.Model),
		timeout: resolveTimeout(cfg.Timeout),
	}
}

// Generate sends prompt as a single user turn and returns the reply text.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.models.GenerateContent(ctx, c.model, genai.Text(prompt), nil)
	if err != nil {
		return "", mapError(err)
	}
	if resp == nil {
		return "", ErrEmptyResponse
	}

	text := resp.Text()
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}

// Name identifies the provider in logs and metrics.
func (c *Client) Name() string { return providerName }

// Model returns the configured model name.
func (c *Client) Model() string { return c.model }

func resolveModel(model string) string {
	if model = strings.TrimSpace(model); model != "" {
		return model
	}
	return defaultModel
}

func resolveTimeout(timeout time.Duration) time.Duration {
	if timeout <= 0 {
		return defaultTimeout
	}
	return timeout
}
