package history

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"channel-finance-assistant/internal/model"
	"channel-finance-assistant/pkg/llmprovider"
)

// ErrNothingToSummarize is returned for an empty turn list.
var ErrNothingToSummarize = errors.New("no turns to summarize")

type llmSummarizer struct {
	gen Generator
	cfg SummarizerConfig
}

// NewLLMSummarizer creates a Summarizer backed by one completion call.
func NewLLMSummarizer(gen Generator, cfg SummarizerConfig) Summarizer {
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = DefaultSummaryMaxTokens
	}
	return &llmSummarizer{gen: gen, cfg: cfg}
}

func (s *llmSummarizer) Summarize(ctx context.Context, turns []model.Turn) (string, error) {
	if len(turns) == 0 {
		return "", ErrNothingToSummarize
	}

	instruction := llmprovider.NewTextMessage(llmprovider.RoleSystem, SummaryInstruction)
	resp, err := s.gen.GenerateContent(ctx, &llmprovider.Request{
		SystemInstruction: &instruction,
		Messages:          []llmprovider.Message{llmprovider.NewTextMessage(llmprovider.RoleUser, Transcript(turns))},
		Temperature:       s.cfg.Temperature,
		MaxTokens:         s.cfg.MaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("summarize %d turns: %w", len(turns), err)
	}

	return strings.TrimSpace(resp.Text()), nil
}

// Transcript renders turns as "User: ..." and "Assistant: ..." lines.
func Transcript(turns []model.Turn) string {
	var b strings.Builder
	for i, t := range turns {
		if i > 0 {
			b.WriteByte('\n')
		}
		if t.Role == model.RoleAssistant {
			b.WriteString("Assistant: ")
		} else {
			b.WriteString("User: ")
		}
		b.WriteString(t.Content)
	}
	return b.String()
}
