package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/route-planner/internal/pkg/errors"
	"github.com/route-planner/internal/pkg/utils"
	"github.com/route-planner/internal/pkg/validator"
	"github.com/route-planner/internal/usecase"
	"github.com/route-planner/internal/usecase/dto"
	"go.uber.org/zap"
)

// RouteHandler - обработчик построения маршрутов
type RouteHandler struct {
	routeUC *usecase.RouteUseCase
	logger  *zap.Logger
}

// NewRouteHandler - создание нового RouteHandler
func NewRouteHandler(routeUC *usecase.RouteUseCase, logger *zap.Logger) *RouteHandler {
	return &RouteHandler{
		routeUC: routeUC,
		logger:  logger,
	}
}

// Plan godoc
// @Summary Построение маршрута общественным транспортом
// @Description Находит варианты маршрута между двумя точками, оценивает их по профилю предпочтений и возвращает лучший. Если подходящих вариантов нет, возвращается пеший маршрут по прямой (fallback=true). Точки задаются как "lat,lng" или как адрес/название места.
// @Tags Routes
// @Accept json
// @Produce json
// @Param request body dto.PlanRouteRequest true "Начало, конец и предпочтения"
// @Success 200 {object} utils.SuccessResponse{data=dto.PlanRouteResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 503 {object} utils.ErrorResponse
// @Router /api/v1/routes/plan [post]
func (h *RouteHandler) Plan(c *fiber.Ctx) error {
	var req dto.PlanRouteRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.routeUC.Plan(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: len(result.Candidates),
	})
}
