package middleware

import (
	"net/http"
	"sync"
	"time"

	"table-booking/internal/handler/httperr"
	"table-booking/internal/pkg/clock"
	"table-booking/internal/pkg/config"
	"table-booking/internal/pkg/errs"
	"table-booking/internal/pkg/metrics"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

var errRateLimited = errs.New("rate limit exceeded")

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter keeps one token bucket per client IP. Buckets idle for longer
// than idleTTL are dropped on the next sweep.
type RateLimiter struct {
	limit   rate.Limit
	burst   int
	idleTTL time.Duration
	clock   clock.Clock
	metrics *metrics.Metrics

	mu        sync.Mutex
	visitors  map[string]*visitor
	lastSweep time.Time
}

func NewRateLimiter(cfg config.RateLimitConfig, m *metrics.Metrics, clk clock.Clock) *RateLimiter {
	return &RateLimiter{
		limit:     rate.Limit(cfg.RPS),
		burst:     cfg.Burst,
		idleTTL:   cfg.IdleTTL,
		clock:     clk,
		metrics:   m,
		visitors:  make(map[string]*visitor),
		lastSweep: clk.Now(),
	}
}

func (rl *RateLimiter) limiterFor(ip string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.clock.Now()
	rl.sweepLocked(now)

	v, ok := rl.visitors[ip]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.visitors[ip] = v
	}
	v.lastSeen = now
	return v.limiter
}

// sweepLocked runs at most once per idleTTL; callers hold rl.mu.
func (rl *RateLimiter) sweepLocked(now time.Time) {
	if rl.idleTTL <= 0 || now.Sub(rl.lastSweep) < rl.idleTTL {
		return
	}
	for ip, v := range rl.visitors {
		if now.Sub(v.lastSeen) >= rl.idleTTL {
			delete(rl.visitors, ip)
		}
	}
	rl.lastSweep = now
}

// Tracked reports how many client buckets are held.
func (rl *RateLimiter) Tracked() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return len(rl.visitors)
}

func (rl *RateLimiter) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.limiterFor(c.ClientIP()).Allow() {
			rl.metrics.RateLimited.Inc()
			httperr.AbortWithError(c, http.StatusTooManyRequests, errRateLimited, "Too many requests")
			return
		}
		c.Next()
	}
}
