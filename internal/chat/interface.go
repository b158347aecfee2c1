package chat

import (
	"context"

	"channel-finance-assistant/internal/model"
	"channel-finance-assistant/internal/session"
)

// UseCase defines the business logic interface for the chat domain.
type UseCase interface {
	// HandleTurn filters the message, asks the model and records the exchange.
	// It never returns an error: failures become a fixed apology reply.
	HandleTurn(ctx context.Context, input TurnInput) TurnOutput

	// History returns the stored turns of a session, oldest first.
	History(ctx context.Context, sessionID string) ([]model.Turn, error)

	// Clear empties a session's history.
	Clear(ctx context.Context, sessionID string) error

	// Stats reports the store's current size.
	Stats(ctx context.Context) session.Stats
}
