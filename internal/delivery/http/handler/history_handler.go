package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/route-planner/internal/pkg/utils"
	"github.com/route-planner/internal/pkg/validator"
	"github.com/route-planner/internal/usecase"
	"github.com/route-planner/internal/usecase/dto"
	"go.uber.org/zap"
)

// HistoryHandler - обработчик истории маршрутов
type HistoryHandler struct {
	historyUC *usecase.HistoryUseCase
	logger    *zap.Logger
}

func NewHistoryHandler(historyUC *usecase.HistoryUseCase, logger *zap.Logger) *HistoryHandler {
	return &HistoryHandler{
		historyUC: historyUC,
		logger:    logger,
	}
}

// List godoc
// @Summary История маршрутов
// @Description Маршруты, сохранённые в режиме обучения, новые первыми
// @Tags History
// @Produce json
// @Param profile_id path string true "Идентификатор профиля"
// @Param limit query int false "Максимальное количество записей" default(50)
// @Success 200 {object} utils.SuccessResponse{data=dto.HistoryResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/history/{profile_id} [get]
func (h *HistoryHandler) List(c *fiber.Ctx) error {
	profileID, err := profileParam(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	var req dto.HistoryRequest
	req.Limit = c.QueryInt("limit", 0)

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.historyUC.List(c.Context(), profileID, req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: result.Total,
		Limit: req.Limit,
	})
}
