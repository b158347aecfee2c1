package middleware

import (
	"channel-finance-assistant/pkg/log"
)

// Config configures the shared middlewares.
type Config struct {
	RateLimitEnabled bool
	RequestsPerMin   int
	Burst            int
}

type Middleware struct {
	l       log.Logger
	limiter *rateLimiter // nil when rate limiting is disabled
}

func New(l log.Logger, cfg Config) Middleware {
	mw := Middleware{l: l}
	if cfg.RateLimitEnabled && cfg.RequestsPerMin > 0 {
		mw.limiter = newRateLimiter(cfg.RequestsPerMin, cfg.Burst)
	}
	return mw
}
