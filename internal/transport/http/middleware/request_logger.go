// Package middleware contains HTTP middlewares for delivery.
package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// RequestLogger logs HTTP requests with method, path, route, status and duration.
// Server errors are logged at error level, client errors at warn.
func RequestLogger(log *zap.SugaredLogger) fiber.Handler {
	log = log.Named("http")
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		dur := time.Since(start)

		reqID, _ := c.Locals("requestid").(string)
		if reqID == "" {
			reqID = c.Get(fiber.HeaderXRequestID)
		}
		status := c.Response().StatusCode()

		fields := []interface{}{
			"method", c.Method(),
			"path", c.OriginalURL(),
			"route", c.Route().Path,
			"status", status,
			"duration_ms", float64(dur.Microseconds()) / 1000.0,
			"request_id", reqID,
		}
		switch {
		case err != nil || status >= fiber.StatusInternalServerError:
			log.Errorw("request failed", append(fields, "error", err)...)
		case status >= fiber.StatusBadRequest:
			log.Warnw("request rejected", fields...)
		default:
			log.Infow("request", fields...)
		}
		return err
	}
}
