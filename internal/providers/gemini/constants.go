package gemini

import "time"

const (
	providerName   = "gemini"
	defaultModel   = "gemini-2.0-flash"
	defaultTimeout = 45 * time.Second

	retryInfoType = "type.googleapis.com/google.rpc.RetryInfo"
)
