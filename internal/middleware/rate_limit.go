// internal/middleware/rate_limit.go
package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/truvalue/truvalue-backend/internal/config"
)

// visitorTTL is how long an idle client keeps its token bucket before
// the janitor loop drops it.
const visitorTTL = 3 * time.Minute

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter hands out one token bucket per client IP for a named tier.
type RateLimiter struct {
	tier     string
	visitors map[string]*visitor
	mtx      sync.Mutex
	rate     rate.Limit
	burst    int
}

func NewRateLimiter(tier string, r rate.Limit, burst int) *RateLimiter {
	rl := &RateLimiter{
		tier:     tier,
		visitors: make(map[string]*visitor),
		rate:     r,
		burst:    burst,
	}

	go rl.cleanupVisitors()

	return rl
}

func (rl *RateLimiter) cleanupVisitors() {
	for {
		time.Sleep(time.Minute)
		rl.mtx.Lock()
		for ip, v := range rl.visitors {
			if time.Since(v.lastSeen) > visitorTTL {
				delete(rl.visitors, ip)
			}
		}
		rl.mtx.Unlock()
	}
}

func (rl *RateLimiter) getVisitor(ip string) *rate.Limiter {
	rl.mtx.Lock()
	defer rl.mtx.Unlock()

	v, exists := rl.visitors[ip]
	if !exists {
		limiter := rate.NewLimiter(rl.rate, rl.burst)
		rl.visitors[ip] = &visitor{limiter, time.Now()}
		return limiter
	}

	v.lastSeen = time.Now()
	return v.limiter
}

func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		limiter := rl.getVisitor(ip)

		if !limiter.Allow() {
			logrus.WithFields(logrus.Fields{
				"tier": rl.tier,
				"ip":   ip,
				"path": c.Request.URL.Path,
			}).Warn("Rate limit exceeded")
			c.Header("Retry-After", "60")
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error": "Rate limit exceeded. Please try again later.",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

// Tiers. Auth and upload refill one token per minute against a
// configured burst. The anchor tier guards verify/mint: those requests
// stay open until the chain receipt lands, so their budget is a
// fraction of a plain write's.
var (
	generalLimiter = NewRateLimiter("general", rate.Limit(10), 10)
	authLimiter    = NewRateLimiter("auth", rate.Every(time.Minute), 5)
	uploadLimiter  = NewRateLimiter("upload", rate.Every(time.Minute), 10)
	anchorLimiter  = NewRateLimiter("anchor", rate.Every(time.Minute), 3)
)

// ConfigureRateLimits rebuilds the tiers from configuration. Must run
// before the routes are registered.
func ConfigureRateLimits(cfg config.RateLimitConfig) {
	if cfg.GeneralPerSecond > 0 {
		generalLimiter = NewRateLimiter("general", rate.Limit(cfg.GeneralPerSecond), cfg.GeneralPerSecond)
	}
	if cfg.AuthPerMinute > 0 {
		authLimiter = NewRateLimiter("auth", rate.Every(time.Minute), cfg.AuthPerMinute)
	}
	if cfg.UploadPerMinute > 0 {
		uploadLimiter = NewRateLimiter("upload", rate.Every(time.Minute), cfg.UploadPerMinute)
	}
	if cfg.AnchorPerMinute > 0 {
		anchorLimiter = NewRateLimiter("anchor", rate.Every(time.Minute), cfg.AnchorPerMinute)
	}
}

func GeneralRateLimit() gin.HandlerFunc {
	return generalLimiter.Middleware()
}

func AuthRateLimit() gin.HandlerFunc {
	return authLimiter.Middleware()
}

func UploadRateLimit() gin.HandlerFunc {
	return uploadLimiter.Middleware()
}

func AnchorRateLimit() gin.HandlerFunc {
	return anchorLimiter.Middleware()
}
