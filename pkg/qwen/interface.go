package qwen

import (
	"context"

	"github.com/openai/openai-go/option"

	"channel-finance-assistant/pkg/openai"
)

// IQwen is a Qwen chat client speaking DashScope's OpenAI-compatible API.
type IQwen interface {
	GenerateContent(ctx context.Context, req *Request) (*Response, error)
	Model() string
}

// New creates a Qwen client on top of the openai-go SDK.
func New(cfg Config) (IQwen, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return openai.New(openai.Config{
		Provider:   providerName,
		APIKey:     cfg.APIKey,
		Model:      cfg.Model,
		BaseURL:    cfg.BaseURL,
		HTTPClient: cfg.HTTPClient,
		// qwen3 models reject non-streaming calls unless thinking is off
		Options: []option.RequestOption{option.WithJSONSet("enable_thinking", cfg.EnableThinking)},
	})
}
