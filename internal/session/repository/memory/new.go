package memory

import (
	"sync"

	"channel-finance-assistant/internal/session/repository"
	pkgLog "channel-finance-assistant/pkg/log"
)

type implRepository struct {
	l        pkgLog.Logger
	opts     repository.Options
	sessions sync.Map // session id -> *sessionLog
}

// New creates an in-process session repository.
// Nothing survives a restart.
func New(l pkgLog.Logger, opts repository.Options) (repository.SessionRepository, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &implRepository{
		l:    l,
		opts: opts,
	}, nil
}
