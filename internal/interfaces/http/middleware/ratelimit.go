package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"testertalk/internal/infrastructure/ratelimit"
	"testertalk/internal/shared/utils"
)

// RateLimit enforces a per-IP limit on the decorated routes. The limiter
// fails open: when the backing store is unreachable the request proceeds.
func RateLimit(limiter ratelimit.RateLimiter, scope string, cfg ratelimit.RateLimitConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("ratelimit:%s:%s", scope, c.ClientIP())

		allowed, err := limiter.Allow(key, cfg)
		if err != nil {
			c.Next()
			return
		}
		if !allowed {
			utils.ErrorResponse(c, http.StatusTooManyRequests, "rate limit exceeded, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
