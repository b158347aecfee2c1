package history

import (
	"context"
	"strings"

	"channel-finance-assistant/internal/session"
)

func (f *implFormatter) Format(ctx context.Context, sessionID string) History {
	turns, err := f.repo.GetHistory(ctx, sessionID)
	if err != nil {
		f.l.Warnf(ctx, "history.Format.GetHistory: session=%s err=%v", sessionID, err)
		return History{}
	}

	limit := session.MaxTurns(f.cfg.WindowSize)
	if len(turns) <= limit {
		return History{Turns: turns}
	}

	split := len(turns) - limit
	older, recent := turns[:split], turns[split:]
	h := History{Turns: recent, Folded: len(older)}

	if f.summarizer == nil {
		return h
	}

	sctx, cancel := context.WithTimeout(ctx, f.cfg.SummaryTimeout)
	defer cancel()

	summary, err := f.summarizer.Summarize(sctx, older)
	if err != nil {
		f.l.Warnf(ctx, "history.Format.Summarize: session=%s folded=%d err=%v", sessionID, len(older), err)
		return h
	}

	h.Summary = strings.TrimSpace(summary)
	if h.Summary == "" {
		f.l.Warnf(ctx, "history.Format.Summarize: session=%s folded=%d empty summary", sessionID, len(older))
	}
	return h
}
