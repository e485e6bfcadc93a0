package repository

import (
	"context"

	"github.com/route-planner/internal/domain"
)

// PreferenceRepository хранит сохранённые профили предпочтений
type PreferenceRepository interface {
	// Get возвращает профиль или nil, если он не сохранён
	Get(ctx context.Context, profileID string) (*domain.SavedPreferences, error)

	// Save сохраняет профиль; счётчик runs не изменяется
	Save(ctx context.Context, profileID string, prefs domain.PreferenceProfile) (*domain.SavedPreferences, error)

	// IncrementRuns увеличивает счётчик использований профиля
	IncrementRuns(ctx context.Context, profileID string) error
}

// HistoryRepository хранит историю использованных маршрутов
type HistoryRepository interface {
	// Insert сохраняет запись; inserted=false, если запись с таким id уже есть
	Insert(ctx context.Context, record domain.HistoryRecord) (inserted bool, err error)
	ListByProfile(ctx context.Context, profileID string, limit int) ([]domain.HistoryRecord, error)
}
