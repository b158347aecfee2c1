package llmprovider

import (
	"context"
	"strings"

	"channel-finance-assistant/pkg/anthropic"
	"channel-finance-assistant/pkg/deepseek"
	"channel-finance-assistant/pkg/gemini"
	"channel-finance-assistant/pkg/openai"
	"channel-finance-assistant/pkg/qwen"
)

// Provider names as they appear in configuration
const (
	ProviderGemini    = "gemini"
	ProviderQwen      = "qwen"
	ProviderDeepSeek  = "deepseek"
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
)

// GeminiAdapter adapts pkg/gemini to llmprovider.Provider interface
type GeminiAdapter struct {
	client gemini.IGemini
}

// NewGeminiAdapter creates a new Gemini adapter
func NewGeminiAdapter(client gemini.IGemini) *GeminiAdapter {
	return &GeminiAdapter{client: client}
}

// GenerateContent folds every system text into the system instruction,
// since Gemini has no system role inside contents.
func (a *GeminiAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	system, conversation := splitSystem(req)

	geminiReq := &gemini.Request{
		System:      strings.Join(system, "\n\n"),
		Turns:       make([]gemini.Turn, len(conversation)),
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}
	for i, msg := range conversation {
		geminiReq.Turns[i] = gemini.Turn{Assistant: msg.Role == RoleAssistant, Text: msg.Text()}
	}

	resp, err := a.client.GenerateContent(ctx, geminiReq)
	if err != nil {
		return nil, err
	}

	out := &Response{
		Content:      textResponse(resp.Text),
		ProviderName: ProviderGemini,
		ModelName:    resp.Model,
	}
	if out.ModelName == "" {
		out.ModelName = a.client.Model()
	}
	if resp.Usage != nil {
		out.Usage = &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		}
	}
	return out, nil
}

// Name returns provider name
func (a *GeminiAdapter) Name() string {
	return ProviderGemini
}

// Model returns model name
func (a *GeminiAdapter) Model() string {
	return a.client.Model()
}

// ChatCompletionAdapter serves every provider reached through the
// chat completions API: OpenAI itself, Qwen and DeepSeek.
type ChatCompletionAdapter struct {
	name   string
	client openai.IOpenAI
}

// NewOpenAIAdapter creates an adapter for the OpenAI API
func NewOpenAIAdapter(client openai.IOpenAI) *ChatCompletionAdapter {
	return &ChatCompletionAdapter{name: ProviderOpenAI, client: client}
}

// NewQwenAdapter creates an adapter for DashScope's compatible mode
func NewQwenAdapter(client qwen.IQwen) *ChatCompletionAdapter {
	return &ChatCompletionAdapter{name: ProviderQwen, client: client}
}

// NewDeepSeekAdapter creates an adapter for the DeepSeek API
func NewDeepSeekAdapter(client deepseek.IDeepSeek) *ChatCompletionAdapter {
	return &ChatCompletionAdapter{name: ProviderDeepSeek, client: client}
}

// GenerateContent keeps system messages inline, the API accepts them anywhere.
func (a *ChatCompletionAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	chatReq := &openai.Request{
		Messages:    make([]openai.Message, len(req.Messages)),
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}
	if req.SystemInstruction != nil {
		chatReq.System = req.SystemInstruction.Text()
	}
	for i, msg := range req.Messages {
		chatReq.Messages[i] = openai.Message{Role: msg.Role, Content: msg.Text()}
	}

	resp, err := a.client.GenerateContent(ctx, chatReq)
	if err != nil {
		return nil, err
	}

	model := resp.Model
	if model == "" {
		model = a.client.Model()
	}

	var usage *Usage
	if resp.Usage != nil {
		usage = &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		}
	}

	return &Response{
		Content:      textResponse(resp.Content),
		ProviderName: a.name,
		ModelName:    model,
		Usage:        usage,
	}, nil
}

// Name returns provider name
func (a *ChatCompletionAdapter) Name() string {
	return a.name
}

// Model returns model name
func (a *ChatCompletionAdapter) Model() string {
	return a.client.Model()
}

// AnthropicAdapter adapts pkg/anthropic to llmprovider.Provider interface
type AnthropicAdapter struct {
	client anthropic.IAnthropic
}

// NewAnthropicAdapter creates a new Anthropic adapter
func NewAnthropicAdapter(client anthropic.IAnthropic) *AnthropicAdapter {
	return &AnthropicAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *AnthropicAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	system, conversation := splitSystem(req)

	anthropicReq := &anthropic.Request{
		System:      system,
		Messages:    make([]anthropic.Message, len(conversation)),
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}
	for i, msg := range conversation {
		anthropicReq.Messages[i] = anthropic.Message{Role: msg.Role, Content: msg.Text()}
	}

	resp, err := a.client.GenerateContent(ctx, anthropicReq)
	if err != nil {
		return nil, err
	}

	model := resp.Model
	if model == "" {
		model = a.client.Model()
	}

	var usage *Usage
	if resp.Usage != nil {
		usage = &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		}
	}

	return &Response{
		Content:      textResponse(resp.Content),
		ProviderName: ProviderAnthropic,
		ModelName:    model,
		Usage:        usage,
	}, nil
}

// Name returns provider name
func (a *AnthropicAdapter) Name() string {
	return ProviderAnthropic
}

// Model returns model name
func (a *AnthropicAdapter) Model() string {
	return a.client.Model()
}

func textResponse(text string) Message {
	if text == "" {
		return Message{Role: RoleAssistant}
	}
	return NewTextMessage(RoleAssistant, text)
}
