package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"event-gallery/pkg/logger"
)

// LoggerMiddleware records every request with its duration and status.
func LoggerMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		started := time.Now()

		err := c.Next()

		logger.API("request", c.Method()+" "+c.Path(), map[string]interface{}{
			"status":      c.Response().StatusCode(),
			"duration_ms": time.Since(started).Milliseconds(),
			"ip":          c.IP(),
		})
		return err
	}
}
