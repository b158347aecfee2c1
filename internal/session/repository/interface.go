package repository

import (
	"context"

	"channel-finance-assistant/internal/model"
	"channel-finance-assistant/internal/session"
)

// SessionRepository owns the per-session turn sequences.
// Implementations serialize mutations per session and never lock across sessions.
type SessionRepository interface {
	// Append adds turns to the end of the session, creating it when absent.
	// All turns of one call land contiguously.
	Append(ctx context.Context, sessionID string, turns ...model.Turn) error

	// GetHistory returns a copy of the session's turns, oldest first.
	// An unknown session yields an empty slice.
	GetHistory(ctx context.Context, sessionID string) ([]model.Turn, error)

	// Clear empties the session but keeps its key.
	Clear(ctx context.Context, sessionID string) error

	// Stats reports how many sessions and turns are held.
	Stats(ctx context.Context) session.Stats
}
