package history

import "time"

const (
	// SummaryInstruction is the fixed instruction of the summarization call.
	SummaryInstruction = "Summarize the key points of this conversation. Be concise."

	// SummaryPrefix introduces the summary note ahead of the recent turns.
	SummaryPrefix = "Previous conversation summary: "

	DefaultSummaryTimeout   = 15 * time.Second
	DefaultSummaryMaxTokens = 256
)
