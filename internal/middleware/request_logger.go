package middleware

import (
	"log/slog"
	"time"

	"github.com/ecoride/support-backend/internal/identity"
	"github.com/gofiber/fiber/v2"
)

// RequestLogger emits one slog record per request carrying the trace id from
// the requestid middleware, the routed action and the latency. Server errors
// go out at ERROR level so they reach the database sink.
func RequestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if e, ok := err.(*fiber.Error); ok {
				status = e.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}

		attrs := []any{
			"trace_id", traceID(c),
			"action", c.Method() + " " + c.Path(),
			"status", status,
			"latency_ms", time.Since(start).Milliseconds(),
		}
		if userID, idErr := identity.GetUserID(c); idErr == nil {
			attrs = append(attrs, "user_id", userID.String())
		}

		if status >= fiber.StatusInternalServerError {
			if err != nil {
				attrs = append(attrs, "error", err.Error())
			}
			slog.Error("request failed", attrs...)
		} else {
			slog.Info("request completed", attrs...)
		}
		return err
	}
}

func traceID(c *fiber.Ctx) string {
	if id, ok := c.Locals("requestid").(string); ok {
		return id
	}
	return ""
}
