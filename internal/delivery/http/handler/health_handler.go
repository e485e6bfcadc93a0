package handler

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/route-planner/internal/usecase/dto"
	"go.uber.org/zap"
)

const healthTimeout = 2 * time.Second

// HealthChecker - зависимость, умеющая проверить своё состояние
type HealthChecker interface {
	Health(ctx context.Context) error
}

// HealthHandler - проверка PostgreSQL и Redis
type HealthHandler struct {
	checkers map[string]HealthChecker
	logger   *zap.Logger
}

func NewHealthHandler(checkers map[string]HealthChecker, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{
		checkers: checkers,
		logger:   logger,
	}
}

// Health godoc
// @Summary Состояние сервиса
// @Tags Health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Failure 503 {object} dto.HealthResponse
// @Router /api/v1/health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), healthTimeout)
	defer cancel()

	resp := dto.HealthResponse{
		Status:   "healthy",
		Services: make(map[string]string, len(h.checkers)),
	}
	for name, checker := range h.checkers {
		if err := checker.Health(ctx); err != nil {
			h.logger.Warn("Health check failed", zap.String("service", name), zap.Error(err))
			resp.Services[name] = "unhealthy"
			resp.Status = "degraded"
			continue
		}
		resp.Services[name] = "healthy"
	}

	status := fiber.StatusOK
	if resp.Status != "healthy" {
		status = fiber.StatusServiceUnavailable
	}
	return c.Status(status).JSON(resp)
}
