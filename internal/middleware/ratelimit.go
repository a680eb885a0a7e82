package middleware

import (
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/yigit/courseadmin/internal/pkg/apperrors"
	"github.com/yigit/courseadmin/internal/pkg/logger"
	"golang.org/x/time/rate"
)

const (
	maxTrackedClients = 10000
	limiterIdleTTL    = 30 * time.Minute
)

// RateLimiter throttles requests per client IP. A client's limiter is forgotten once it has
// seen no request for limiterIdleTTL.
type RateLimiter struct {
	mu       sync.Mutex
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

// NewRateLimiter creates a limiter allowing perSecond requests with the given burst
func NewRateLimiter(perSecond float64, burst int) *RateLimiter {
	return newRateLimiter(perSecond, burst, limiterIdleTTL)
}

func newRateLimiter(perSecond float64, burst int, idleTTL time.Duration) *RateLimiter {
	return &RateLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](maxTrackedClients, nil, idleTTL),
		rate:     rate.Limit(perSecond),
		burst:    burst,
	}
}

func (rl *RateLimiter) limiter(key string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	l, ok := rl.limiters.Get(key)
	if !ok {
		l = rate.NewLimiter(rl.rate, rl.burst)
	}
	// Add restarts the entry's expiry, Get does not
	rl.limiters.Add(key, l)
	return l
}

// Handler returns the gin middleware
func (rl *RateLimiter) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.ClientIP()
		if !rl.limiter(key).Allow() {
			logger.Warn().Str("ip", key).Str("path", c.Request.URL.Path).Msg("Rate limit exceeded")
			HandleAPIError(c, apperrors.ErrRateLimited)
			return
		}
		c.Next()
	}
}
