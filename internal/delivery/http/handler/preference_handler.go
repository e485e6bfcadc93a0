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

const maxProfileIDLen = 64

// PreferenceHandler - обработчик профилей предпочтений
type PreferenceHandler struct {
	preferenceUC *usecase.PreferenceUseCase
	logger       *zap.Logger
}

func NewPreferenceHandler(preferenceUC *usecase.PreferenceUseCase, logger *zap.Logger) *PreferenceHandler {
	return &PreferenceHandler{
		preferenceUC: preferenceUC,
		logger:       logger,
	}
}

// Get godoc
// @Summary Профиль предпочтений
// @Description Возвращает сохранённый профиль или значения по умолчанию (saved=false)
// @Tags Preferences
// @Produce json
// @Param profile_id path string true "Идентификатор профиля"
// @Success 200 {object} utils.SuccessResponse{data=dto.PreferencesResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/preferences/{profile_id} [get]
func (h *PreferenceHandler) Get(c *fiber.Ctx) error {
	profileID, err := profileParam(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.preferenceUC.Get(c.Context(), profileID)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}

// Save godoc
// @Summary Сохранение профиля предпочтений
// @Description Проверяет диапазоны (как у слайдеров интерфейса) и сохраняет профиль. Счётчик запусков не сбрасывается.
// @Tags Preferences
// @Accept json
// @Produce json
// @Param profile_id path string true "Идентификатор профиля"
// @Param request body dto.PreferencesInput true "Веса предпочтений"
// @Success 200 {object} utils.SuccessResponse{data=dto.PreferencesResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/preferences/{profile_id} [put]
func (h *PreferenceHandler) Save(c *fiber.Ctx) error {
	profileID, err := profileParam(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	var req dto.PreferencesInput
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.preferenceUC.Save(c.Context(), profileID, req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}

// profileParam - идентификатор профиля из пути
func profileParam(c *fiber.Ctx) (string, error) {
	id := c.Params("profile_id")
	if id == "" || len(id) > maxProfileIDLen {
		return "", errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"profile_id": "must be 1..64 characters",
		})
	}
	return id, nil
}
