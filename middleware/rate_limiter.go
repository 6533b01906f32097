package middleware

import (
	"net/http"
	"sync"
	"time"

	"salao/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// 100 requests per minute per client, with the full minute available as
// burst so page loads firing several calls at once are not penalized.
const (
	requestsPerMinute = 100
	burstSize         = 100
)

type ipLimiters struct {
	mu sync.Mutex
	m  map[string]*rate.Limiter
}

var limiters = &ipLimiters{m: make(map[string]*rate.Limiter)}

func (l *ipLimiters) forIP(ip string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	lim, ok := l.m[ip]
	if !ok {
		lim = rate.NewLimiter(rate.Every(time.Minute/requestsPerMinute), burstSize)
		l.m[ip] = lim
	}
	return lim
}

// RateLimitMiddleware rejects clients that exceed the per-IP request rate
// with 429.
func RateLimitMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := clientIP(c)
		if !limiters.forIP(ip).Allow() {
			utils.GetLogger().Warn("Rate limit exceeded", zap.String("ip", ip))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Too many requests. Try again later."})
			return
		}
		c.Next()
	}
}
