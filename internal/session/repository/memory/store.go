package memory

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"channel-finance-assistant/internal/model"
	"channel-finance-assistant/internal/session"
)

// sessionLog is one session's turn sequence guarded by its own mutex.
type sessionLog struct {
	mu    sync.Mutex
	turns []model.Turn
}

func (r *implRepository) Append(ctx context.Context, sessionID string, turns ...model.Turn) error {
	if blank(sessionID) {
		return session.ErrEmptySessionID
	}
	if len(turns) == 0 {
		return nil
	}
	for i, t := range turns {
		if !t.Role.IsValid() {
			return fmt.Errorf("%w: turn %d has role %q", session.ErrInvalidRole, i, t.Role)
		}
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	now := time.Now()
	v, loaded := r.sessions.LoadOrStore(sessionID, &sessionLog{})
	if !loaded {
		r.l.Debugf(ctx, "session.memory.Append: created session %s", sessionID)
	}
	sl := v.(*sessionLog)

	sl.mu.Lock()
	defer sl.mu.Unlock()

	for _, t := range turns {
		if t.CreatedAt.IsZero() {
			t.CreatedAt = now
		}
		sl.turns = append(sl.turns, t)
	}

	if limit := r.opts.Limit(); len(sl.turns) > limit {
		kept := make([]model.Turn, limit)
		copy(kept, sl.turns[len(sl.turns)-limit:])
		sl.turns = kept
	}

	return nil
}

func (r *implRepository) GetHistory(ctx context.Context, sessionID string) ([]model.Turn, error) {
	if blank(sessionID) {
		return nil, session.ErrEmptySessionID
	}

	v, ok := r.sessions.Load(sessionID)
	if !ok {
		return []model.Turn{}, nil
	}
	sl := v.(*sessionLog)

	sl.mu.Lock()
	defer sl.mu.Unlock()

	out := make([]model.Turn, len(sl.turns))
	copy(out, sl.turns)
	return out, nil
}

func (r *implRepository) Clear(ctx context.Context, sessionID string) error {
	if blank(sessionID) {
		return session.ErrEmptySessionID
	}

	v, ok := r.sessions.Load(sessionID)
	if !ok {
		return nil
	}
	sl := v.(*sessionLog)

	sl.mu.Lock()
	sl.turns = nil
	sl.mu.Unlock()

	r.l.Debugf(ctx, "session.memory.Clear: cleared session %s", sessionID)
	return nil
}

func (r *implRepository) Stats(ctx context.Context) session.Stats {
	var stats session.Stats
	r.sessions.Range(func(_, v any) bool {
		sl := v.(*sessionLog)
		sl.mu.Lock()
		stats.Turns += len(sl.turns)
		sl.mu.Unlock()
		stats.Sessions++
		return true
	})
	return stats
}

// blank reports an id that would create an unreachable bucket.
func blank(sessionID string) bool {
	return strings.TrimSpace(sessionID) == ""
}
