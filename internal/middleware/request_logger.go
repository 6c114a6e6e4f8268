package middleware

import (
	"time"

	"quiz-crew/internal/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// GenerationIDKey is the fiber local holding the ID of the current generation run.
const GenerationIDKey = "generation_id"

// GenerationIDHeader carries the generation ID back to the client.
const GenerationIDHeader = "X-Generation-ID"

// RequestLogger logs every HTTP request once it has been handled.
func RequestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		path := c.Path()
		method := c.Method()

		err := c.Next()
		if err != nil {
			// Run the error handler now so the logged status is the one sent.
			if handlerErr := c.App().ErrorHandler(c, err); handlerErr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		fields := []zap.Field{
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", c.Response().StatusCode()),
			zap.Duration("duration", time.Since(start)),
			zap.String("ip", c.IP()),
			zap.String("user_agent", c.Get(fiber.HeaderUserAgent)),
		}
		if id, ok := c.Locals(GenerationIDKey).(string); ok && id != "" {
			fields = append(fields, zap.String("generation_id", id))
		}
		logger.Get().Info("HTTP Request", fields...)

		return nil
	}
}
