package usecase

import (
	"context"

	"channel-finance-assistant/internal/model"
	"channel-finance-assistant/internal/session"
)

func (uc *implUseCase) History(ctx context.Context, sessionID string) ([]model.Turn, error) {
	turns, err := uc.repo.GetHistory(ctx, sessionID)
	if err != nil {
		uc.l.Errorf(ctx, "chat.History.GetHistory: session=%s err=%v", sessionID, err)
		return nil, err
	}
	return turns, nil
}

func (uc *implUseCase) Clear(ctx context.Context, sessionID string) error {
	if err := uc.repo.Clear(ctx, sessionID); err != nil {
		uc.l.Errorf(ctx, "chat.Clear: session=%s err=%v", sessionID, err)
		return err
	}
	uc.l.Infof(ctx, "chat.Clear: session=%s history cleared", sessionID)
	return nil
}

func (uc *implUseCase) Stats(ctx context.Context) session.Stats {
	return uc.repo.Stats(ctx)
}
