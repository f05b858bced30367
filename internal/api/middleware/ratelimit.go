package middleware

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/pressroom/publishing-api/internal/api/metrics"
)

// RateLimiter is a fixed-window request limiter backed by Redis, applied to
// the credential endpoints. Key format: ratelimit:<path>:<client_ip>.
type RateLimiter struct {
	client *redis.Client
	max    int64
	window time.Duration
	log    zerolog.Logger
}

func NewRateLimiter(client *redis.Client, max int64, window time.Duration, log zerolog.Logger) *RateLimiter {
	if max <= 0 {
		max = 5
	}
	if window <= 0 {
		window = time.Minute
	}
	return &RateLimiter{client: client, max: max, window: window, log: log}
}

// Middleware rejects with 429 once the caller exceeds max requests within
// the window. A Redis failure lets the request through: losing rate
// limiting briefly is preferable to refusing logins.
func (rl *RateLimiter) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			count, err := rl.hit(c.Request().Context(), c.Path(), c.RealIP())
			if err != nil {
				rl.log.Warn().Err(err).Msg("rate limit check failed, allowing request")
				return next(c)
			}
			if count > rl.max {
				metrics.RateLimitedTotal.Inc()
				return c.JSON(http.StatusTooManyRequests, map[string]string{
					"error": "too many requests, please try again later",
				})
			}
			return next(c)
		}
	}
}

// hit increments the window counter, setting the expiry on first use.
func (rl *RateLimiter) hit(ctx context.Context, path, ip string) (int64, error) {
	key := fmt.Sprintf("ratelimit:%s:%s", path, ip)

	count, err := rl.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, fmt.Errorf("rate limit incr: %w", err)
	}
	if count == 1 {
		if err := rl.client.Expire(ctx, key, rl.window).Err(); err != nil {
			return 0, fmt.Errorf("rate limit expire: %w", err)
		}
	}
	return count, nil
}
