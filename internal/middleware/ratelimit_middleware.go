package middleware

import (
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/VeloraJewelry/storefront_api/internal/utils"
)

// SubmissionRateLimiter throttles form submissions per client IP so the
// third-party relay is not flooded by a stuck client or a bot.
type SubmissionRateLimiter struct {
	mu       sync.Mutex
	attempts map[string]*attemptInfo
	limit    int
	window   time.Duration
}

type attemptInfo struct {
	count   int
	firstAt time.Time
}

// NewSubmissionRateLimiter constructs a limiter allowing limit submissions
// per window per IP.
func NewSubmissionRateLimiter(limit int, window time.Duration) *SubmissionRateLimiter {
	rl := &SubmissionRateLimiter{
		attempts: make(map[string]*attemptInfo),
		limit:    limit,
		window:   window,
	}
	go rl.cleanup()
	return rl
}

// Allow checks if IP can make another attempt within the current window.
func (r *SubmissionRateLimiter) Allow(ip string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	info, exists := r.attempts[ip]
	if !exists || now.Sub(info.firstAt) > r.window {
		r.attempts[ip] = &attemptInfo{count: 1, firstAt: now}
		return true
	}

	if info.count >= r.limit {
		return false
	}
	info.count++
	return true
}

// Handle is the gin middleware wrapper around Allow.
func (r *SubmissionRateLimiter) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !r.Allow(c.ClientIP()) {
			utils.Error(c, 429, "RATE_LIMITED", "Too many submissions, slow down")
			c.Abort()
			return
		}
		c.Next()
	}
}

func (r *SubmissionRateLimiter) cleanup() {
	ticker := time.NewTicker(5 * time.Minute)
	for range ticker.C {
		r.mu.Lock()
		now := time.Now()
		for ip, info := range r.attempts {
			if now.Sub(info.firstAt) > r.window {
				delete(r.attempts, ip)
			}
		}
		r.mu.Unlock()
	}
}
