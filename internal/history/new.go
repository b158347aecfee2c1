package history

import (
	"channel-finance-assistant/internal/session/repository"
	pkgLog "channel-finance-assistant/pkg/log"
)

type implFormatter struct {
	l          pkgLog.Logger
	repo       repository.SessionRepository
	summarizer Summarizer
	cfg        Config
}

// New creates a Formatter. A nil summarizer means older turns are dropped
// instead of summarized.
func New(l pkgLog.Logger, repo repository.SessionRepository, summarizer Summarizer, cfg Config) Formatter {
	if cfg.WindowSize < 1 {
		cfg.WindowSize = 1
	}
	if cfg.SummaryTimeout <= 0 {
		cfg.SummaryTimeout = DefaultSummaryTimeout
	}
	return &implFormatter{
		l:          l,
		repo:       repo,
		summarizer: summarizer,
		cfg:        cfg,
	}
}
