package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/route-planner/internal/domain"
	"github.com/route-planner/internal/domain/repository"
	"github.com/route-planner/internal/pkg/errors"
	"github.com/route-planner/internal/usecase/dto"
)

const maxHistoryLimit = 500

// HistoryUseCase - просмотр истории маршрутов
type HistoryUseCase struct {
	historyRepo  repository.HistoryRepository
	logger       *zap.Logger
	defaultLimit int
}

func NewHistoryUseCase(historyRepo repository.HistoryRepository, logger *zap.Logger, defaultLimit int) *HistoryUseCase {
	if defaultLimit <= 0 {
		defaultLimit = 50
	}
	return &HistoryUseCase{
		historyRepo:  historyRepo,
		logger:       logger,
		defaultLimit: defaultLimit,
	}
}

func (uc *HistoryUseCase) List(ctx context.Context, profileID string, req dto.HistoryRequest) (*dto.HistoryResponse, error) {
	if profileID == "" {
		profileID = domain.DefaultProfileID
	}

	limit := req.Limit
	if limit <= 0 {
		limit = uc.defaultLimit
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}

	records, err := uc.historyRepo.ListByProfile(ctx, profileID, limit)
	if err != nil {
		uc.logger.Error("Failed to list history", zap.String("profile_id", profileID), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	if records == nil {
		records = []domain.HistoryRecord{}
	}

	return &dto.HistoryResponse{
		ProfileID: profileID,
		Records:   records,
		Total:     len(records),
	}, nil
}
