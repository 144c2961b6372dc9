package middleware

import (
	"ikraph-email-agent/config"
	"ikraph-email-agent/pkg/log"
)

type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

// New creates the shared middleware set. The rate limiter is nil when rate limiting is disabled.
func New(l log.Logger, rl config.RateLimitConfig) Middleware {
	mw := Middleware{l: l}
	if rl.Enabled && rl.RequestsPerMin > 0 {
		mw.limiter = newRateLimiter(rl.RequestsPerMin, rl.Burst)
	}
	return mw
}
