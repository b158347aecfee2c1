package history

import (
	"context"

	"channel-finance-assistant/internal/model"
	"channel-finance-assistant/pkg/llmprovider"
)

// Formatter turns a session's stored turns into the history sent to the model.
type Formatter interface {
	// Format never fails and never mutates the store. Read or summary
	// failures degrade to a shorter history.
	Format(ctx context.Context, sessionID string) History
}

// Summarizer condenses older turns into a short note.
type Summarizer interface {
	Summarize(ctx context.Context, turns []model.Turn) (string, error)
}

// Generator is the completion call the LLM summarizer depends on.
// *llmprovider.Manager satisfies it.
type Generator interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}
