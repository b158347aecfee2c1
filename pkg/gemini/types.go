package gemini

import (
	"errors"
	"net/http"

	"google.golang.org/genai"
)

// ErrMissingAPIKey is returned by Validate when no key is configured.
var ErrMissingAPIKey = errors.New("gemini: APIKey is required")

// Config holds Gemini client configuration.
// BaseURL is optional and overrides the public endpoint.
type Config struct {
	APIKey     string
	Model      string
	BaseURL    string
	HTTPClient *http.Client
}

// Validate checks the key and fills defaults.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return ErrMissingAPIKey
	}
	if c.Model == "" {
		c.Model = DefaultModel
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}
	return nil
}

type genaiImpl struct {
	client *genai.Client
	model  string
}

// Turn is one conversation message. Assistant marks a model turn;
// everything else is sent as a user turn.
type Turn struct {
	Assistant bool
	Text      string
}

// Request is a text-only generation request.
type Request struct {
	System      string
	Turns       []Turn
	Temperature float64
	MaxTokens   int
}

// Response carries the joined candidate text.
type Response struct {
	Text  string
	Model string
	Usage *Usage
}

// Usage tracks token consumption
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
