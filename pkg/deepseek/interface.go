package deepseek

import (
	"context"

	"channel-finance-assistant/pkg/openai"
)

// IDeepSeek defines the interface for DeepSeek LLM client
type IDeepSeek interface {
	GenerateContent(ctx context.Context, req *Request) (*Response, error)
	Model() string
}

// New creates a DeepSeek client. DeepSeek only understands max_tokens.
func New(cfg Config) (IDeepSeek, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return openai.New(openai.Config{
		Provider:        providerName,
		APIKey:          cfg.APIKey,
		Model:           cfg.Model,
		BaseURL:         cfg.BaseURL,
		HTTPClient:      cfg.HTTPClient,
		LegacyMaxTokens: true,
	})
}
