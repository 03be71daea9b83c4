package providers

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

// ProviderError captures a non-success response from an upstream provider.
type ProviderError struct {
	Provider   string
	StatusCode int
	Status     string
	RetryAfter time.Duration
	Message    string
}

func (e *ProviderError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "provider request failed"
	}
	if e.Provider != "" {
		msg = e.Provider + ": " + msg
	}
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s (status=%d)", msg, e.StatusCode)
	}
	return msg
}

// IsRateLimited reports whether the upstream rejected the call for quota reasons.
func (e *ProviderError) IsRateLimited() bool {
	return e != nil && e.StatusCode == http.StatusTooManyRequests
}

// AsProviderError attempts to unwrap an error into a ProviderError.
func AsProviderError(err error) (*ProviderError, bool) {
	var pErr *ProviderError
	if errors.As(err, &pErr) {
		return pErr, true
	}
	return nil, false
}
