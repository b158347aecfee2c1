package openai

import "time"

const (
	// DefaultModel matches the model the assistant was first deployed with
	DefaultModel = "gpt-3.5-turbo"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 30 * time.Second

	// DefaultMaxRetries is handed to the SDK; provider-level retries live in llmprovider
	DefaultMaxRetries = 0
)
