package serverutils

import (
	"context"
	"strconv"
	"time"

	"recruai-web/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/ulule/limiter/v3"
)

func RequestLogger(log logger.ILogger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		details := map[string]interface{}{
			"method":     c.Method(),
			"path":       c.Path(),
			"status":     status,
			"latency_ms": time.Since(start).Milliseconds(),
		}
		if err != nil {
			details["error"] = err.Error()
		}

		if status >= fiber.StatusInternalServerError {
			log.Error("HTTP", "request failed", details)
		} else {
			log.Debug("HTTP", "request served", details)
		}
		return err
	}
}

// RequestContext gives every request its own context. It ends when the handler
// chain returns, when the server shuts down or once budget has elapsed. A zero
// budget leaves only the first two.
func RequestContext(budget time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var (
			ctx    context.Context
			cancel context.CancelFunc
		)
		if budget > 0 {
			ctx, cancel = context.WithTimeout(c.Context(), budget)
		} else {
			ctx, cancel = context.WithCancel(c.Context())
		}
		defer cancel()

		c.SetUserContext(ctx)
		return c.Next()
	}
}

// RateLimit throttles per client IP and route. A limiter failure lets the
// request through.
func RateLimit(l *limiter.Limiter, log logger.ILogger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		key := c.IP() + ":" + c.Route().Path
		res, err := l.Get(c.UserContext(), key)
		if err != nil {
			log.Warn("RateLimit", "limiter unavailable", map[string]interface{}{"error": err.Error()})
			return c.Next()
		}

		c.Set("X-RateLimit-Limit", strconv.FormatInt(res.Limit, 10))
		c.Set("X-RateLimit-Remaining", strconv.FormatInt(res.Remaining, 10))
		c.Set("X-RateLimit-Reset", strconv.FormatInt(res.Reset, 10))

		if res.Reached {
			return fiber.NewError(fiber.StatusTooManyRequests, "Too many attempts, please try again shortly")
		}
		return c.Next()
	}
}
