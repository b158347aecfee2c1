package usecase

import (
	"context"
	"time"

	"channel-finance-assistant/internal/chat"
	"channel-finance-assistant/internal/filter"
	"channel-finance-assistant/internal/history"
	"channel-finance-assistant/internal/session/repository"
	"channel-finance-assistant/pkg/llmprovider"
	pkgLog "channel-finance-assistant/pkg/log"
)

// Generator is the completion collaborator. *llmprovider.Manager satisfies it.
type Generator interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

// Config holds the per-process chat settings.
type Config struct {
	SystemPrompt   string
	Temperature    float64
	MaxTokens      int
	RequestTimeout time.Duration
}

type implUseCase struct {
	l         pkgLog.Logger
	filter    *filter.Filter
	formatter history.Formatter
	repo      repository.SessionRepository
	gen       Generator
	cfg       Config
}

// New creates a new chat UseCase instance.
func New(
	l pkgLog.Logger,
	f *filter.Filter,
	formatter history.Formatter,
	repo repository.SessionRepository,
	gen Generator,
	cfg Config,
) chat.UseCase {
	if cfg.SystemPrompt == "" {
		cfg.SystemPrompt = DefaultSystemPrompt
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = DefaultMaxTokens
	}
	return &implUseCase{
		l:         l,
		filter:    f,
		formatter: formatter,
		repo:      repo,
		gen:       gen,
		cfg:       cfg,
	}
}
