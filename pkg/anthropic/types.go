package anthropic

import (
	"fmt"
	"net/http"

	sdk "github.com/anthropics/anthropic-sdk-go"
)

// Config holds Anthropic client configuration
type Config struct {
	APIKey     string
	Model      string
	BaseURL    string
	HTTPClient *http.Client
	MaxRetries int
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("anthropic: APIKey is required")
	}
	if c.Model == "" {
		c.Model = DefaultModel
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}
	if c.MaxRetries < 0 {
		c.MaxRetries = 0
	}
	return nil
}

// anthropicImpl is the internal implementation of IAnthropic
type anthropicImpl struct {
	client sdk.Client
	model  string
}

// Request is a message creation request. System text is sent as system
// blocks; Messages alternate between "user" and "assistant".
type Request struct {
	System      []string
	Messages    []Message
	Temperature float64
	MaxTokens   int
}

// Message is a single conversation message
type Message struct {
	Role    string
	Content string
}

// Response holds the concatenated text blocks of the reply
type Response struct {
	Content    string
	Model      string
	StopReason string
	Usage      *Usage
}

// Usage tracks token consumption
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
