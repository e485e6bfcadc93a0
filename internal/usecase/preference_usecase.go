package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/route-planner/internal/domain"
	"github.com/route-planner/internal/domain/repository"
	"github.com/route-planner/internal/pkg/errors"
	"github.com/route-planner/internal/usecase/dto"
)

// PreferenceUseCase - чтение и сохранение профилей предпочтений
type PreferenceUseCase struct {
	prefRepo         repository.PreferenceRepository
	logger           *zap.Logger
	defaultProfileID string
}

func NewPreferenceUseCase(
	prefRepo repository.PreferenceRepository,
	logger *zap.Logger,
	defaultProfileID string,
) *PreferenceUseCase {
	if defaultProfileID == "" {
		defaultProfileID = domain.DefaultProfileID
	}
	return &PreferenceUseCase{
		prefRepo:         prefRepo,
		logger:           logger,
		defaultProfileID: defaultProfileID,
	}
}

func (uc *PreferenceUseCase) profileID(id string) string {
	if id == "" {
		return uc.defaultProfileID
	}
	return id
}

// Get возвращает сохранённый профиль или значения по умолчанию
func (uc *PreferenceUseCase) Get(ctx context.Context, profileID string) (*dto.PreferencesResponse, error) {
	profileID = uc.profileID(profileID)

	saved, err := uc.prefRepo.Get(ctx, profileID)
	if err != nil {
		uc.logger.Error("Failed to load preferences", zap.String("profile_id", profileID), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	if saved == nil {
		return &dto.PreferencesResponse{
			ProfileID:   profileID,
			Preferences: domain.DefaultPreferences(),
		}, nil
	}

	updatedAt := saved.UpdatedAt
	return &dto.PreferencesResponse{
		ProfileID:   profileID,
		Preferences: saved.Preferences.Normalize(),
		Runs:        saved.Runs,
		Saved:       true,
		UpdatedAt:   &updatedAt,
	}, nil
}

// Save нормализует и сохраняет профиль; счётчик запусков сохраняется
func (uc *PreferenceUseCase) Save(ctx context.Context, profileID string, input dto.PreferencesInput) (*dto.PreferencesResponse, error) {
	profileID = uc.profileID(profileID)
	for m := range input.ModePenalty {
		if !m.IsValid() {
			return nil, errors.ErrInvalidPreferences.WithDetails(map[string]interface{}{"mode": m})
		}
	}
	for m := range input.ModePreference {
		if !m.IsValid() {
			return nil, errors.ErrInvalidPreferences.WithDetails(map[string]interface{}{"mode": m})
		}
	}

	saved, err := uc.prefRepo.Save(ctx, profileID, input.ToDomain().Normalize())
	if err != nil {
		uc.logger.Error("Failed to save preferences", zap.String("profile_id", profileID), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	uc.logger.Info("Preferences saved", zap.String("profile_id", profileID))
	updatedAt := saved.UpdatedAt
	return &dto.PreferencesResponse{
		ProfileID:   profileID,
		Preferences: saved.Preferences,
		Runs:        saved.Runs,
		Saved:       true,
		UpdatedAt:   &updatedAt,
	}, nil
}

// Effective - профиль для одного поиска: явный, сохранённый или по умолчанию.
// Ошибка хранилища не прерывает поиск.
func (uc *PreferenceUseCase) Effective(ctx context.Context, profileID string, override *dto.PreferencesInput) domain.PreferenceProfile {
	if override != nil {
		return override.ToDomain().Normalize()
	}

	profileID = uc.profileID(profileID)
	saved, err := uc.prefRepo.Get(ctx, profileID)
	if err != nil {
		uc.logger.Warn("Using default preferences, load failed",
			zap.String("profile_id", profileID), zap.Error(err))
		return domain.DefaultPreferences()
	}
	if saved == nil {
		return domain.DefaultPreferences()
	}
	return saved.Preferences.Normalize()
}
