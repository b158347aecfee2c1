package openai

import (
	"fmt"
	"net/http"

	oai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// Config holds OpenAI client configuration.
// Provider labels errors and defaults to "openai"; OpenAI-compatible
// gateways set it together with BaseURL.
type Config struct {
	APIKey     string
	Model      string
	BaseURL    string
	HTTPClient *http.Client
	MaxRetries int
	Provider   string

	// LegacyMaxTokens sends max_tokens instead of max_completion_tokens.
	LegacyMaxTokens bool

	// Options are appended after the defaults, for gateway-specific fields.
	Options []option.RequestOption
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Provider == "" {
		c.Provider = "openai"
	}
	if c.APIKey == "" {
		return fmt.Errorf("%s: APIKey is required", c.Provider)
	}
	if c.Model == "" {
		c.Model = DefaultModel
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}
	if c.MaxRetries < 0 {
		c.MaxRetries = DefaultMaxRetries
	}
	return nil
}

// openAIImpl is the internal implementation of IOpenAI
type openAIImpl struct {
	client          oai.Client
	model           string
	provider        string
	legacyMaxTokens bool
}

// Request is a chat completion request.
// Roles are "system", "user" and "assistant".
type Request struct {
	System      string
	Messages    []Message
	Temperature float64
	MaxTokens   int
}

// Message is a single chat message
type Message struct {
	Role    string
	Content string
}

// Response is the first completion choice plus usage
type Response struct {
	Content string
	Model   string
	Usage   *Usage
}

// Usage tracks token consumption
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
