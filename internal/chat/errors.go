package chat

import "errors"

// Domain-specific errors for the chat package.
var (
	ErrEmptyReply = errors.New("model returned an empty reply")
	ErrPanic      = errors.New("recovered panic")
)
