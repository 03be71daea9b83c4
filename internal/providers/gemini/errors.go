package gemini

import (
	"errors"
	"time"

	"google.golang.org/genai"

	"github.com/preston-bernstein/futebol-bot-service/internal/providers"
)

// mapError converts genai API errors into providers.ProviderError so callers
// can inspect status codes without importing the SDK.
func mapError(err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return toProviderError(apiErr, err)
	}
	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) && apiErrPtr != nil {
		return toProviderError(*apiErrPtr, err)
	}
	return err
}

func toProviderError(apiErr genai.APIError, cause error) error {
	msg := apiErr.Message
	if msg == "" {
		msg = cause.Error()
	}
	return &providers.ProviderError{
		Provider:   providerName,
		StatusCode: apiErr.Code,
		Status:     apiErr.Status,
		RetryAfter: retryDelay(apiErr.Details),
		Message:    msg,
	}
}

// retryDelay reads the google.rpc.RetryInfo detail Gemini attaches to quota errors.
func retryDelay(details []map[string]any) time.Duration {
	for _, d := range details {
		if t, _ := d["@type"].(string); t != retryInfoType {
			continue
		}
		raw, _ := d["retryDelay"].(string)
		if delay, err := time.ParseDuration(raw); err == nil && delay > 0 {
			return delay
		}
	}
	return 0
}
