package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/route-planner/internal/pkg/utils"
	"github.com/route-planner/internal/pkg/validator"
	"github.com/route-planner/internal/usecase"
	"github.com/route-planner/internal/usecase/dto"
	"go.uber.org/zap"
)

// GeocodeHandler - обработчик геокодирования
type GeocodeHandler struct {
	geolocationUC *usecase.GeolocationUseCase
	logger        *zap.Logger
}

func NewGeocodeHandler(geolocationUC *usecase.GeolocationUseCase, logger *zap.Logger) *GeocodeHandler {
	return &GeocodeHandler{
		geolocationUC: geolocationUC,
		logger:        logger,
	}
}

// Geocode godoc
// @Summary Геокодирование
// @Description Возвращает кандидатов для адреса или названия места, упорядоченных по релевантности. Литерал "lat,lng" возвращается как есть.
// @Tags Geocode
// @Produce json
// @Param query query string true "Адрес, название места или lat,lng"
// @Success 200 {object} utils.SuccessResponse{data=dto.GeocodeResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 503 {object} utils.ErrorResponse
// @Router /api/v1/geocode [get]
func (h *GeocodeHandler) Geocode(c *fiber.Ctx) error {
	var req dto.GeocodeRequest
	req.Query = c.Query("query")

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.geolocationUC.Geocode(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: len(result.Candidates),
	})
}
