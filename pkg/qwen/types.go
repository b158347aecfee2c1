package qwen

import (
	"errors"
	"net/http"

	"channel-finance-assistant/pkg/openai"
)

// ErrMissingAPIKey is returned when no DashScope key is configured.
var ErrMissingAPIKey = errors.New("qwen: APIKey is required")

// Config holds Qwen client configuration
type Config struct {
	APIKey         string
	Model          string
	BaseURL        string
	HTTPClient     *http.Client
	EnableThinking bool
}

// Validate validates the configuration and fills defaults
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return ErrMissingAPIKey
	}
	if c.Model == "" {
		c.Model = DefaultModel
	}
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}
	return nil
}

// The compatible-mode API shares the chat completion shapes.
type (
	Request  = openai.Request
	Message  = openai.Message
	Response = openai.Response
	Usage    = openai.Usage
)
