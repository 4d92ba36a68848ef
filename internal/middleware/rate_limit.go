package middleware

import (
	"net/http"
	"sync"

	"jample-admin/internal/shared/response"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

type KeyRateLimiter struct {
	keys map[string]*rate.Limiter
	mu   *sync.Mutex
	r    rate.Limit // requests per second
	b    int        // burst
}

func NewKeyRateLimiter(r rate.Limit, b int) *KeyRateLimiter {
	return &KeyRateLimiter{
		keys: make(map[string]*rate.Limiter),
		mu:   &sync.Mutex{},
		r:    r,
		b:    b,
	}
}

func (l *KeyRateLimiter) GetLimiter(key string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	limiter, exists := l.keys[key]
	if !exists {
		limiter = rate.NewLimiter(l.r, l.b)
		l.keys[key] = limiter
	}

	return limiter
}

// RateLimitByIP guards unauthenticated routes such as login.
func RateLimitByIP(r rate.Limit, b int) gin.HandlerFunc {
	limiter := NewKeyRateLimiter(r, b)
	return func(c *gin.Context) {
		if !limiter.GetLimiter(c.ClientIP()).Allow() {
			response.Error(c, http.StatusTooManyRequests, "RATE_LIMITED", "Too many requests from this IP", nil)
			c.Abort()
			return
		}
		c.Next()
	}
}

func RateLimitByUser(r rate.Limit, b int) gin.HandlerFunc {
	limiter := NewKeyRateLimiter(r, b)
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		if userID == "" {
			c.Next()
			return
		}
		if !limiter.GetLimiter(userID).Allow() {
			response.Error(c, http.StatusTooManyRequests, "RATE_LIMITED", "Too many requests from this user", nil)
			c.Abort()
			return
		}
		c.Next()
	}
}
