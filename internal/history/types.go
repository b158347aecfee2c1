package history

import (
	"time"

	"channel-finance-assistant/internal/model"
	"channel-finance-assistant/pkg/llmprovider"
)

// History is a formatted conversation: an optional summary of folded turns
// followed by the recent turns, oldest first.
type History struct {
	Summary string
	Turns   []model.Turn
	Folded  int // number of older turns represented by Summary or dropped
}

// Messages renders the history as role-tagged completion messages.
func (h History) Messages() []llmprovider.Message {
	msgs := make([]llmprovider.Message, 0, len(h.Turns)+1)
	if h.Summary != "" {
		msgs = append(msgs, llmprovider.NewTextMessage(llmprovider.RoleSystem, SummaryPrefix+h.Summary))
	}
	for _, t := range h.Turns {
		msgs = append(msgs, llmprovider.NewTextMessage(providerRole(t.Role), t.Content))
	}
	return msgs
}

// Config configures the Formatter.
type Config struct {
	WindowSize     int           // W; the most recent 2*W turns are kept verbatim
	SummaryTimeout time.Duration // bound on the summarization call
}

// SummarizerConfig configures the LLM summarizer.
type SummarizerConfig struct {
	Temperature float64
	MaxTokens   int
}

func providerRole(r model.Role) string {
	if r == model.RoleAssistant {
		return llmprovider.RoleAssistant
	}
	return llmprovider.RoleUser
}
