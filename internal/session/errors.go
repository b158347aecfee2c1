package session

import "errors"

// Domain-specific errors for the session package.
var (
	ErrEmptySessionID   = errors.New("session id is empty")
	ErrInvalidRole      = errors.New("turn role must be user or assistant")
	ErrInvalidRetention = errors.New("retention policy must be summarize or truncate")
	ErrInvalidWindow    = errors.New("window size must be at least 1")
)
