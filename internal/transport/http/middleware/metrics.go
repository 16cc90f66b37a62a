package middleware

import (
	"time"

	"mergington-activities/internal/observability"

	"github.com/gofiber/fiber/v2"
)

// RequestMetrics observes request latency labeled by the matched route pattern.
func RequestMetrics() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}
		observability.ObserveHTTPRequest(c.Method(), c.Route().Path, status, time.Since(start))
		return err
	}
}
