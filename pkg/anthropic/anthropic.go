package anthropic

import (
	"context"
	"fmt"
	"strings"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// newAnthropicImpl creates a new Anthropic implementation
func newAnthropicImpl(cfg Config) *anthropicImpl {
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithHTTPClient(cfg.HTTPClient),
		option.WithMaxRetries(cfg.MaxRetries),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	return &anthropicImpl{
		client: sdk.NewClient(opts...),
		model:  cfg.Model,
	}
}

// GenerateContent sends a message creation request to the Anthropic API
func (a *anthropicImpl) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	params, err := a.buildParams(req)
	if err != nil {
		return nil, err
	}

	msg, err := a.client.Messages.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("anthropic: message creation failed: %w", err)
	}

	var texts []string
	for _, block := range msg.Content {
		if block.Type == "text" && block.Text != "" {
			texts = append(texts, block.Text)
		}
	}

	in, out := int(msg.Usage.InputTokens), int(msg.Usage.OutputTokens)
	return &Response{
		Content:    strings.Join(texts, "\n"),
		Model:      string(msg.Model),
		StopReason: string(msg.StopReason),
		Usage: &Usage{
			InputTokens:  in,
			OutputTokens: out,
			TotalTokens:  in + out,
		},
	}, nil
}

// Model returns the model being used
func (a *anthropicImpl) Model() string {
	return a.model
}

func (a *anthropicImpl) buildParams(req *Request) (sdk.MessageNewParams, error) {
	maxTokens := req.MaxTokens
	if maxTokens <= 0 {
		maxTokens = DefaultMaxTokens
	}

	params := sdk.MessageNewParams{
		Model:       sdk.Model(a.model),
		MaxTokens:   int64(maxTokens),
		Temperature: sdk.Float(req.Temperature),
		Messages:    make([]sdk.MessageParam, 0, len(req.Messages)),
	}

	for _, text := range req.System {
		if text != "" {
			params.System = append(params.System, sdk.TextBlockParam{Text: text})
		}
	}

	for _, msg := range req.Messages {
		switch msg.Role {
		case "user":
			params.Messages = append(params.Messages, sdk.NewUserMessage(sdk.NewTextBlock(msg.Content)))
		case "assistant":
			params.Messages = append(params.Messages, sdk.NewAssistantMessage(sdk.NewTextBlock(msg.Content)))
		default:
			return sdk.MessageNewParams{}, fmt.Errorf("anthropic: unsupported role %q", msg.Role)
		}
	}

	return params, nil
}
