package middleware

import (
	"fmt"

	"github.com/labstack/echo/v4"

	"lokapasar/internal/infrastructure/ratelimit"
	"lokapasar/pkg/errors"
	"lokapasar/pkg/logger"
	"lokapasar/pkg/response"
)

type RateLimitMiddleware struct {
	limiter *ratelimit.RateLimiter
}

func NewRateLimitMiddleware(limiter *ratelimit.RateLimiter) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		limiter: limiter,
	}
}

// Limit throttles an admin mutation action per authenticated admin. Requests
// without a uid (should not happen behind Authenticate) fall back to the
// client IP.
func (m *RateLimitMiddleware) Limit(action string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key, ok := c.Get("uid").(string)
			if !ok || key == "" {
				key = c.RealIP()
			}

			allowed, wait := m.limiter.Allow(key, action)
			if !allowed {
				logger.Warn("Rate limit hit: admin=%s, action=%s, retry in %v", key, action, wait)
				return response.Error(c, errors.TooManyRequests(
					fmt.Sprintf("Too many %s requests, retry in %d seconds", action, int(wait.Seconds())+1)))
			}

			return next(c)
		}
	}
}
