package handler

import (
	"context"
	"time"

	"quiz-crew/internal/domain"
	"quiz-crew/internal/dto"
	"quiz-crew/internal/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const healthPingTimeout = 2 * time.Second

// HealthHandler reports whether the service can serve and store generations.
type HealthHandler struct {
	cache domain.Cache
}

// NewHealthHandler creates a HealthHandler. A nil cache means records are not stored.
func NewHealthHandler(cache domain.Cache) *HealthHandler {
	return &HealthHandler{cache: cache}
}

// Health godoc
// @Summary Readiness check
// @Description Pings the record cache when one is configured.
// @Tags meta
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Failure 503 {object} dto.HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	if h.cache == nil {
		return c.JSON(dto.HealthResponse{Status: "ok", Cache: "disabled"})
	}

	ctx, cancel := context.WithTimeout(c.UserContext(), healthPingTimeout)
	defer cancel()
	if err := h.cache.Ping(ctx); err != nil {
		logger.Get().Warn("Cache ping failed", zap.Error(err))
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.HealthResponse{Status: "unavailable", Cache: "unavailable"})
	}
	return c.JSON(dto.HealthResponse{Status: "ok", Cache: "ok"})
}
