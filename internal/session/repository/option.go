package repository

import "channel-finance-assistant/internal/session"

// DefaultMaxRetained caps a summarize-policy session when no cap is configured.
const DefaultMaxRetained = 200

// Options configures a SessionRepository implementation.
type Options struct {
	Retention  session.RetentionPolicy // summarize (default) or truncate
	WindowSize int                     // W, the number of exchanges kept verbatim

	// MaxRetained bounds the stored turns under summarize. The oldest turns
	// beyond it are dropped and never reach the summarizer.
	MaxRetained int
}

// Validate checks the options and fills defaults.
func (o *Options) Validate() error {
	if o.Retention == "" {
		o.Retention = session.RetentionSummarize
	}
	if _, err := session.ParseRetention(string(o.Retention)); err != nil {
		return err
	}
	if o.WindowSize < 1 {
		return session.ErrInvalidWindow
	}
	if o.MaxRetained <= 0 {
		o.MaxRetained = DefaultMaxRetained
	}
	// never below the verbatim window, and even so pairs are not split
	o.MaxRetained = max(o.MaxRetained, session.MaxTurns(o.WindowSize))
	o.MaxRetained += o.MaxRetained % 2
	return nil
}

// Limit is the number of turns a session may hold under these options.
func (o Options) Limit() int {
	if o.Retention == session.RetentionTruncate {
		return session.MaxTurns(o.WindowSize)
	}
	return o.MaxRetained
}
