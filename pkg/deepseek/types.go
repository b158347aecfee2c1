package deepseek

import (
	"errors"
	"net/http"

	"channel-finance-assistant/pkg/openai"
)

// ErrMissingAPIKey is returned when no DeepSeek key is configured.
var ErrMissingAPIKey = errors.New("deepseek: APIKey is required")

// Config holds DeepSeek client configuration
type Config struct {
	APIKey     string
	Model      string
	BaseURL    string
	HTTPClient *http.Client
}

// Validate fills defaults
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

type (
	Request  = openai.Request
	Message  = openai.Message
	Response = openai.Response
	Usage    = openai.Usage
)
